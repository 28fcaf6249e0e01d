package diskii

// Controller implements bus.Peripheral for the Disk II card. It owns
// up to two drives and the soft-switches at $C0s0-$C0sF described in
// spec.md section 4.5.
type Controller struct {
	drives   [NumDrives]*Drive
	selected int
	motor    bool
	readMode bool

	// writeProtect mirrors spec.md's Disk II controller field: the
	// flag switch $D reports. It is refreshed from the selected
	// drive's WriteProtect whenever a drive is mounted or selected.
	writeProtect bool

	// perDriveProtect lets each loaded image carry its own protection
	// state, supplementing spec.md's controller-level flag (which
	// remains the only thing the soft-switch table reads).
	perDriveProtect [NumDrives]bool
}

// NewController returns a Controller with no drives mounted, motor
// off, drive 0 selected, and read mode active.
func NewController() *Controller {
	return &Controller{readMode: true}
}

// Mount installs drive d at the given index (0 or 1) with the given
// write-protect state.
func (c *Controller) Mount(index int, d *Drive, writeProtect bool) {
	if index < 0 || index >= NumDrives {
		panic("diskii: drive index must be 0 or 1")
	}
	c.drives[index] = d
	c.perDriveProtect[index] = writeProtect
	if index == c.selected {
		c.writeProtect = writeProtect
	}
}

func (c *Controller) selectedDrive() *Drive {
	return c.drives[c.selected]
}

// IO dispatches one access to $C0s0-$C0sF per the table in spec.md
// section 4.5.
func (c *Controller) IO(addr uint16, val byte) byte {
	switch addr & 0xf {
	case 0, 2, 4, 6: // phase N off
		return 0
	case 1, 3, 5, 7: // phase N on: step head
		if d := c.selectedDrive(); d != nil {
			d.servoPhase(int((addr >> 1) & 3))
		}
		return 0
	case 8:
		c.motor = false
		return 0
	case 9:
		c.motor = true
		return 0
	case 0xa:
		c.selected = 0
		c.writeProtect = c.perDriveProtect[0]
		return 0
	case 0xb:
		c.selected = 1
		c.writeProtect = c.perDriveProtect[1]
		return 0
	case 0xc: // shift latch: read mode only
		d := c.selectedDrive()
		if d == nil {
			return 0
		}
		if c.readMode {
			return d.readLatch()
		}
		return 0
	case 0xd: // write-protect sense / latch write
		if c.writeProtect {
			return 0x80
		}
		if !c.readMode {
			if d := c.selectedDrive(); d != nil {
				d.writeLatch(val)
			}
		}
		return 0
	case 0xe:
		c.readMode = true
		return 0
	default: // 0xf
		c.readMode = false
		return 0
	}
}

// ROMIO returns the controller's fixed 256-byte boot PROM, independent
// of the low byte of addr beyond indexing into the table.
func (c *Controller) ROMIO(addr uint16, val byte) byte {
	return bootPROM[addr&0xff]
}
