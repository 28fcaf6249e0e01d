// Package bus implements the Apple II+ memory-mapped bus: dispatch
// between main RAM, the language-card bank-switched window, the
// $C000-$C0FF soft-switch page, and the seven expansion slots.
package bus

const (
	memSize  = 0x13000
	hwLo     = 0xc000
	romLo    = 0xd000
	numSlots = 8
)

// Bus is the 16-bit address-space dispatcher shared by the CPU and
// every peripheral. It owns all mutable hardware state: main RAM, the
// ROM view, language-card aux RAM, soft-switch state, and the slot
// array.
type Bus struct {
	mem [memSize]byte

	lc langCardState

	kbdLatch     byte
	grSwitch     uint8
	speakerState bool

	slots [numSlots]Peripheral

	noiseCounter uint16
}

// New creates a Bus with all language-card RAM mapped out (ROM
// visible, writes inhibited) and every slot empty, matching power-on
// state.
func New() *Bus {
	b := &Bus{
		lc: newLangCardState(false, 1, true),
	}
	return b
}

// SetSlot installs a peripheral in the given slot (1-7; slot 0 is
// reserved and always empty per spec.md's data model).
func (b *Bus) SetSlot(slot int, p Peripheral) {
	if slot <= 0 || slot >= numSlots {
		panic("bus: slot must be in [1,7]")
	}
	b.slots[slot] = p
}

// LoadROM copies a 12 KiB ROM image into the $D000-$FFFF window of the
// physical array. Must be called before the first CPU step.
func (b *Bus) LoadROM(rom []byte) {
	if len(rom) != 0x3000 {
		panic("bus: ROM image must be exactly 0x3000 bytes")
	}
	copy(b.mem[romLo:romLo+0x3000], rom)
}

// RAM returns the 0x13000-byte physical backing array, for a renderer
// or debugger to read video pages directly. Callers must not mutate
// ranges owned by the bus dispatch (use Store for that).
func (b *Bus) RAM() []byte { return b.mem[:] }

// LoadByte reads one byte from addr, applying the dispatch priority
// order from spec.md section 4.1. Every call advances the floating-bus
// noise counter. Named LoadByte (rather than Load) so *Bus satisfies
// go6502's Memory interface directly.
func (b *Bus) LoadByte(addr uint16) byte {
	b.noiseCounter++

	switch {
	case addr < hwLo:
		return b.mem[addr]
	case addr >= romLo:
		return b.mem[int(addr)+b.readOffset(addr)]
	case addr < hwLo+0x100:
		return b.doIO(addr, b.noise())
	default:
		return b.loadSlotROM(addr)
	}
}

// StoreByte writes one byte to addr, applying the same dispatch
// priority order as LoadByte. Writes to ROM or to a write-inhibited
// language-card window, and writes to a missing slot's ROM page, are
// silently dropped.
func (b *Bus) StoreByte(addr uint16, val byte) {
	switch {
	case addr < hwLo:
		b.mem[addr] = val
	case addr >= romLo:
		if !b.lc.writeInhibit {
			b.mem[int(addr)+b.writeOffset(addr)] = val
		}
	case addr < hwLo+0x100:
		b.doIO(addr, val)
	default:
		b.storeSlotROM(addr, val)
	}
}

func (b *Bus) readOffset(addr uint16) int {
	if addr >= 0xe000 {
		return b.lc.bank1ReadOffset
	}
	return b.lc.bank2ReadOffset
}

func (b *Bus) writeOffset(addr uint16) int {
	if addr >= 0xe000 {
		return b.lc.bank1WriteOffset
	}
	return b.lc.bank2WriteOffset
}

func (b *Bus) loadSlotROM(addr uint16) byte {
	slot := int(addr>>8) & 7
	if p := b.slots[slot]; p != nil {
		return p.ROMIO(addr, 0)
	}
	return b.noise()
}

func (b *Bus) storeSlotROM(addr uint16, val byte) {
	slot := int(addr>>8) & 7
	if p := b.slots[slot]; p != nil {
		p.ROMIO(addr, val)
	}
}

// noise models the Apple II's floating bus: an undefined read returns
// a pseudo-random byte taken from main RAM indexed by a monotonically
// incremented counter.
func (b *Bus) noise() byte {
	return b.mem[b.noiseCounter]
}
