// Package nibblizer converts 256-byte DOS 3.3 logical sectors into the
// raw 6-and-2 GCR bit stream a Disk II read head would present.
package nibblizer

const (
	// SectorSize is the size in bytes of one logical sector.
	SectorSize = 256
	// SectorsPerTrack is the number of logical sectors on a track.
	SectorsPerTrack = 16
	// RawSectorSize is the size in bytes of one nibblized sector,
	// including sync bytes, prologues, epilogues and the data block.
	RawSectorSize = 383
	// RawTrackSize is the size in bytes of one nibblized track. The 16
	// encoded sectors (RawSectorSize*SectorsPerTrack = 6128 bytes) leave
	// 528 bytes of trailing track-gap padding.
	RawTrackSize = 6656
)

// skewTable maps physical sector position to logical sector number, as
// written by DOS 3.3.
var skewTable = [SectorsPerTrack]byte{
	0, 7, 14, 6, 13, 5, 12, 4, 11, 3, 10, 2, 9, 1, 8, 15,
}

// translate maps a 6-bit value to one of the 64 legal disk bytes.
var translate = [64]byte{
	0x96, 0x97, 0x9a, 0x9b, 0x9d, 0x9e, 0x9f, 0xa6,
	0xa7, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb2, 0xb3,
	0xb4, 0xb5, 0xb6, 0xb7, 0xb9, 0xba, 0xbb, 0xbc,
	0xbd, 0xbe, 0xbf, 0xcb, 0xcd, 0xce, 0xcf, 0xd3,
	0xd6, 0xd7, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde,
	0xdf, 0xe5, 0xe6, 0xe7, 0xe9, 0xea, 0xeb, 0xec,
	0xed, 0xee, 0xef, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6,
	0xf7, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
}

// inverseTranslate maps a legal disk byte back to its 6-bit value. Used
// only by tests to verify the running-XOR data checksum.
var inverseTranslate = func() map[byte]byte {
	m := make(map[byte]byte, len(translate))
	for v, b := range translate {
		m[b] = byte(v)
	}
	return m
}()

// InverseTranslate returns the 6-bit value that encodes to disk byte b,
// and whether b is one of the 64 legal disk bytes.
func InverseTranslate(b byte) (byte, bool) {
	v, ok := inverseTranslate[b]
	return v, ok
}

// NibblizeSector encodes a 256-byte logical sector as a 383-byte raw
// sector stream: sync bytes, an address field (volume/track/sector/
// checksum in 4-and-4 encoding), a data field (256 bytes in 6-and-2 GCR),
// and epilogues.
func NibblizeSector(vol, trk, sector byte, payload []byte) []byte {
	if len(payload) != SectorSize {
		panic("nibblizer: payload must be exactly 256 bytes")
	}

	out := make([]byte, 0, RawSectorSize)

	for i := 0; i < 14; i++ {
		out = append(out, 0xff)
	}

	out = append(out, 0xd5, 0xaa, 0x96)

	chksum := vol ^ trk ^ sector
	out = append(out,
		(vol>>1)|0xaa, vol|0xaa,
		(trk>>1)|0xaa, trk|0xaa,
		(sector>>1)|0xaa, sector|0xaa,
		(chksum>>1)|0xaa, chksum|0xaa,
	)

	out = append(out, 0xde, 0xaa, 0xeb)

	for i := 0; i < 6; i++ {
		out = append(out, 0xff)
	}

	out = append(out, 0xd5, 0xaa, 0xad)

	// Pad the payload with two zero bytes so the low two bits of every
	// byte can be packed into 86 six-bit groups.
	buf := make([]byte, SectorSize+2)
	copy(buf, payload)

	var prev byte
	dataBlock := make([]byte, 0, 343)
	for i := 0; i < 86; i++ {
		v := (buf[i] & 0x01) << 1
		v |= (buf[i] & 0x02) >> 1
		v |= (buf[i+86] & 0x01) << 3
		v |= (buf[i+86] & 0x02) << 1
		v |= (buf[i+172] & 0x01) << 5
		v |= (buf[i+172] & 0x02) << 3
		dataBlock = append(dataBlock, translate[v^prev])
		prev = v
	}

	for i := 0; i < SectorSize; i++ {
		v := buf[i] >> 2
		dataBlock = append(dataBlock, translate[v^prev])
		prev = v
	}

	out = append(out, dataBlock...)
	out = append(out, translate[prev])
	out = append(out, 0xde, 0xaa, 0xeb)

	if len(out) != RawSectorSize {
		panic("nibblizer: encoded sector has wrong length")
	}
	return out
}

// NibblizeTrack encodes a full 16-sector, 4096-byte logical track into
// a 6656-byte raw track stream, writing sectors in physical order per
// the DOS 3.3 skewing table.
func NibblizeTrack(vol, trk byte, track []byte) []byte {
	if len(track) != SectorSize*SectorsPerTrack {
		panic("nibblizer: track must be exactly 4096 bytes")
	}

	out := make([]byte, 0, RawTrackSize)
	for physical := 0; physical < SectorsPerTrack; physical++ {
		// The address field records the physical slot; skewTable picks
		// which logical sector's payload lives in that slot.
		logical := skewTable[physical]
		start := int(logical) * SectorSize
		out = append(out, NibblizeSector(vol, trk, byte(physical), track[start:start+SectorSize])...)
	}

	// Pad out to RawTrackSize with track-gap sync bytes, as the original
	// does by copying the encoded sectors into a pre-filled 0xff array.
	for len(out) < RawTrackSize {
		out = append(out, 0xff)
	}

	if len(out) != RawTrackSize {
		panic("nibblizer: encoded track has wrong length")
	}
	return out
}
