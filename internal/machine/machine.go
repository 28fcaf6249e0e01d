// Package machine assembles the Bus and its peripherals into a
// runnable Apple II+ session. The CPU itself remains an external
// collaborator: callers step a go6502.CPU against the Bus this
// package exposes.
package machine

import (
	"github.com/sehugg/apple2go/internal/bus"
	"github.com/sehugg/apple2go/internal/diskii"
	"github.com/sehugg/apple2go/internal/romimage"
)

// Options configures a new session.
type Options struct {
	ROMPath string
	Volume  byte

	Disk1Path         string
	Disk2Path         string
	Disk1WriteProtect bool
	Disk2WriteProtect bool
}

// Apple2 owns the Bus and the Disk II controller installed in slot 6.
type Apple2 struct {
	Bus  *bus.Bus
	Disk *diskii.Controller
}

// New constructs a session: loads the ROM (fatal if missing or
// mis-sized per spec.md section 7), installs the Disk II controller
// in slot 6, and mounts any configured disk images.
func New(opts Options) (*Apple2, error) {
	rom, err := romimage.Load(opts.ROMPath)
	if err != nil {
		return nil, err
	}

	b := bus.New()
	b.LoadROM(rom)

	disk := diskii.NewController()
	b.SetSlot(6, disk)

	if opts.Disk1Path != "" {
		d, err := diskii.LoadImage(opts.Disk1Path, opts.Volume)
		if err != nil {
			return nil, err
		}
		disk.Mount(0, d, opts.Disk1WriteProtect)
	}
	if opts.Disk2Path != "" {
		d, err := diskii.LoadImage(opts.Disk2Path, opts.Volume)
		if err != nil {
			return nil, err
		}
		disk.Mount(1, d, opts.Disk2WriteProtect)
	}

	return &Apple2{Bus: b, Disk: disk}, nil
}

// KeyPressed forwards a keypress to the bus's keyboard latch.
func (a *Apple2) KeyPressed(keycode byte) { a.Bus.KeyPressed(keycode) }

// GrSwitch returns the current display soft-switch mask.
func (a *Apple2) GrSwitch() uint8 { return a.Bus.GrSwitch() }

const (
	// TextPage1 and TextPage2 are the video-RAM ranges a renderer reads
	// through the Bus, per spec.md section 6.
	TextPage1Start = 0x0400
	TextPage1End   = 0x0800
	TextPage2Start = 0x0800
	TextPage2End   = 0x0c00
)

// TextPage returns a snapshot of text page 1 or page 2 (40x24
// characters, 0x400 bytes), reading through the Bus's backing RAM
// directly rather than through LoadByte so a renderer doesn't perturb
// the floating-bus noise counter on every frame.
func (a *Apple2) TextPage(page int) []byte {
	ram := a.Bus.RAM()
	if page == 2 {
		return ram[TextPage2Start:TextPage2End]
	}
	return ram[TextPage1Start:TextPage1End]
}
