package nibblizer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNibblizeSectorLayout(t *testing.T) {
	payload := make([]byte, SectorSize)
	got := NibblizeSector(254, 0, 0, payload)

	require.Len(t, got, RawSectorSize)
	for i := 0; i < 14; i++ {
		assert.Equalf(t, byte(0xff), got[i], "sync byte %d", i)
	}
	assert.Equal(t, []byte{0xd5, 0xaa, 0x96}, got[14:17])
	assert.Equal(t, translate[0], got[len(got)-4], "data checksum byte")
}

func TestNibblizeTrackSize(t *testing.T) {
	track := make([]byte, SectorSize*SectorsPerTrack)
	out := NibblizeTrack(254, 0, track)

	require.Len(t, out, RawTrackSize)
	assert.Equal(t, 16, bytes.Count(out, []byte{0xd5, 0xaa, 0x96}))
	assert.Equal(t, 16, bytes.Count(out, []byte{0xd5, 0xaa, 0xad}))
}

func TestNibblizeUsesOnlyLegalDiskBytes(t *testing.T) {
	payload := make([]byte, SectorSize)
	for i := range payload {
		payload[i] = byte(i * 37)
	}
	sector := NibblizeSector(254, 3, 5, payload)

	dataStart := 14 + 3 + 8 + 3 + 6 + 3
	dataBlock := sector[dataStart : dataStart+343]
	for _, b := range dataBlock {
		_, ok := InverseTranslate(b)
		assert.Truef(t, ok, "byte 0x%02x is not a legal disk byte", b)
	}
}

func TestNibblizeDataChecksumFolds(t *testing.T) {
	payload := make([]byte, SectorSize)
	for i := range payload {
		payload[i] = byte(i)
	}
	sector := NibblizeSector(1, 2, 3, payload)

	dataStart := 14 + 3 + 8 + 3 + 6 + 3
	dataBlock := sector[dataStart : dataStart+343]

	var xor byte
	for _, b := range dataBlock {
		v, ok := InverseTranslate(b)
		require.True(t, ok)
		xor ^= v
	}
	assert.Equal(t, byte(0), xor)
}

func TestNibblizeTrackPhysicalSectorOrder(t *testing.T) {
	track := make([]byte, SectorSize*SectorsPerTrack)
	for logical := 0; logical < SectorsPerTrack; logical++ {
		for i := 0; i < SectorSize; i++ {
			track[logical*SectorSize+i] = byte(logical)
		}
	}
	out := NibblizeTrack(254, 9, track)

	for physical := 0; physical < SectorsPerTrack; physical++ {
		start := physical * RawSectorSize
		addrBlock := out[start+17 : start+17+8]
		vol := (addrBlock[0]&^0xaa)<<1 | (addrBlock[1] &^ 0xaa)
		assert.Equal(t, byte(254), vol)
		trk := (addrBlock[2]&^0xaa)<<1 | (addrBlock[3] &^ 0xaa)
		assert.Equal(t, byte(9), trk)
		sec := (addrBlock[4]&^0xaa)<<1 | (addrBlock[5] &^ 0xaa)
		assert.Equal(t, byte(physical), sec)
	}
}
