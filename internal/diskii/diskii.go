// Package diskii implements the Disk II controller: the soft-switch
// protocol at $C0s0-$C0sF seen by slot 6, and the per-drive head and
// latch state that protocol drives.
package diskii

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sehugg/apple2go/internal/nibblizer"
)

const (
	// NumDrives is the number of drives one controller can manage.
	NumDrives = 2
	// NumTracks is the number of physical tracks on a 5.25" floppy.
	NumTracks = 35
	// ImageSize is the expected size of a DOS-order disk image.
	ImageSize = NumTracks * nibblizer.SectorsPerTrack * nibblizer.SectorSize
)

// ErrBadImageSize is returned by LoadImage when the image is not
// exactly ImageSize bytes.
var ErrBadImageSize = errors.New("diskii: disk image must be exactly 143360 bytes")

// Drive holds the nibblized view of one loaded floppy and the read
// head's current position.
type Drive struct {
	diskData  [NumTracks][]byte // nibblized tracks, fixed at load
	track     int               // head position in half-tracks, 0..69
	trackData []byte            // nibblized view under the head; nil on a half-track
	trackIdx  int               // byte offset within trackData
}

// LoadImage reads a 143,360-byte DOS-order disk image from path,
// nibblizes all 35 tracks, and returns a Drive positioned at track 0.
func LoadImage(path string, volume byte) (*Drive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "diskii: open %s", path)
	}
	defer f.Close()

	return LoadImageReader(f, volume)
}

// LoadImageReader is the io.Reader-based core of LoadImage, split out
// so tests can exercise it against an in-memory image.
func LoadImageReader(r io.Reader, volume byte) (*Drive, error) {
	image := make([]byte, ImageSize)
	n, err := io.ReadFull(r, image)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "diskii: read image")
	}
	if n != ImageSize {
		return nil, errors.Wrapf(ErrBadImageSize, "diskii: image is %d bytes", n)
	}

	d := &Drive{}
	for trk := 0; trk < NumTracks; trk++ {
		start := trk * nibblizer.SectorSize * nibblizer.SectorsPerTrack
		logical := image[start : start+nibblizer.SectorSize*nibblizer.SectorsPerTrack]
		d.diskData[trk] = nibblizer.NibblizeTrack(volume, byte(trk), logical)
	}
	d.trackData = d.diskData[0]
	return d, nil
}

// servoPhase implements the head-stepping rule from spec.md section
// 4.5: turning on phase N steps the head toward N if N is adjacent
// (mod 4) to the current half-track's implied phase.
func (d *Drive) servoPhase(phase int) {
	t := d.track
	switch phase {
	case (t - 1) & 3:
		if t > 0 {
			t--
		}
	case (t + 1) & 3:
		if t < NumTracks*2-1 {
			t++
		}
	}
	d.track = t

	if t%2 == 0 {
		d.trackData = d.diskData[t/2]
	} else {
		d.trackData = nil
	}
}

// readLatch advances the track position and returns the byte under
// the head. On a half-track (trackData is nil), it returns floating
// noise-like pseudo-random bytes derived from the track index, since a
// real drive would see overlapping, unsynchronized bits there.
func (d *Drive) readLatch() byte {
	if d.trackData == nil {
		d.trackIdx = (d.trackIdx + 1) % nibblizer.RawTrackSize
		return byte(d.trackIdx*2654435761 + d.track)
	}
	d.trackIdx = (d.trackIdx + 1) % len(d.trackData)
	return d.trackData[d.trackIdx]
}

// writeLatch advances the track position and stores val. Writes are
// never persisted back to the on-disk image file: this core has no
// write support for disk images per spec.md's non-goals.
func (d *Drive) writeLatch(val byte) {
	if d.trackData == nil {
		return
	}
	d.trackIdx = (d.trackIdx + 1) % len(d.trackData)
	d.trackData[d.trackIdx] = val
}
