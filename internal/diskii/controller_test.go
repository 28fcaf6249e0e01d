package diskii

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankImage() []byte {
	return make([]byte, ImageSize)
}

func TestLoadImageRejectsWrongSize(t *testing.T) {
	_, err := LoadImageReader(bytes.NewReader(make([]byte, 100)), 254)
	require.ErrorIs(t, err, ErrBadImageSize)
}

func TestLoadImageNibblizesAllTracks(t *testing.T) {
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)
	for trk := 0; trk < NumTracks; trk++ {
		assert.Len(t, d.diskData[trk], 6656)
	}
}

func TestServoPhaseStepsHalfTracks(t *testing.T) {
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)

	// Scenario 6 from spec.md: phase-1, phase-2, phase-3, phase-0 from
	// track 0 leaves the head at half-track 4.
	d.servoPhase(1)
	d.servoPhase(2)
	d.servoPhase(3)
	d.servoPhase(0)
	assert.Equal(t, 4, d.track)
}

func TestServoPhaseClampsAtZero(t *testing.T) {
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)
	d.servoPhase(3) // phase 3 is "one below" phase 0 at track 0: no-op or down
	assert.GreaterOrEqual(t, d.track, 0)
}

func TestReadLatchCyclesSyncThenAddressPrologue(t *testing.T) {
	c := NewController()
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)
	c.Mount(0, d, false)

	c.IO(0xc0ea, 0) // select drive 0
	c.IO(0xc0ee, 0) // read mode

	var out []byte
	for i := 0; i < 20; i++ {
		out = append(out, c.IO(0xc0ec, 0))
	}
	assert.Contains(t, out, byte(0xff))
	assert.True(t, bytes.Contains(out, []byte{0xd5, 0xaa, 0x96}), "address prologue")
}

func TestWriteProtectBlocksWriteLatch(t *testing.T) {
	c := NewController()
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)
	c.Mount(0, d, true)

	c.IO(0xc0ea, 0) // select drive 0
	assert.Equal(t, byte(0x80), c.IO(0xc0ed, 0))

	c.IO(0xc0ef, 0)          // write mode
	before := d.trackData[1] // an unprotected latch write would land here
	c.IO(0xc0ed, 0x55)       // latch write, switch D
	assert.Equal(t, before, d.trackData[1])
}

func TestWriteLatchStoresByteOnSwitchD(t *testing.T) {
	c := NewController()
	d, err := LoadImageReader(bytes.NewReader(blankImage()), 254)
	require.NoError(t, err)
	c.Mount(0, d, false)

	c.IO(0xc0ea, 0) // select drive 0
	c.IO(0xc0ef, 0) // write mode
	before := d.trackIdx
	c.IO(0xc0ed, 0x55) // latch write, switch D
	assert.Equal(t, byte(0x55), d.trackData[d.trackIdx])
	assert.NotEqual(t, before, d.trackIdx)
}

func TestMotorAndDriveSelectSwitches(t *testing.T) {
	c := NewController()
	c.IO(0xc099, 0) // motor on
	assert.True(t, c.motor)
	c.IO(0xc098, 0) // motor off
	assert.False(t, c.motor)

	c.IO(0xc0eb, 0) // select drive 1
	assert.Equal(t, 1, c.selected)
}

func TestROMIOReturnsBootPROM(t *testing.T) {
	c := NewController()
	assert.Equal(t, bootPROM[0], c.ROMIO(0xc600, 0))
	assert.Equal(t, bootPROM[0xff], c.ROMIO(0xc6ff, 0))
}
