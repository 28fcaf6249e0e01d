package bus

// langCardState tracks the language-card bank-switching state: which
// RAM bank (or ROM) is mapped into the upper 12 KiB, and whether
// writes to that window are permitted. Triggered by any access to
// $C080-$C08F.
type langCardState struct {
	auxRAMSelected bool // true: window reads from aux RAM; false: from ROM
	auxRAMBank     uint8 // 1 or 2: which 4K sub-bank covers $D000-$DFFF
	writeInhibit   bool

	// Offsets added to the virtual address to find the backing byte in
	// the 0x13000-byte physical array. bank1 covers $E000-$FFFF, bank2
	// covers $D000-$DFFF.
	bank1ReadOffset  int
	bank2ReadOffset  int
	bank1WriteOffset int
	bank2WriteOffset int
}

// writeDropped is a sentinel offset: the Bus never issues a store
// computed from this offset because it checks writeInhibit directly,
// but it documents the "drop the write" intent described in spec.md.
const writeDropped = 0

func newLangCardState(auxRAMSelected bool, auxRAMBank uint8, writeInhibit bool) langCardState {
	s := langCardState{
		auxRAMSelected: auxRAMSelected,
		auxRAMBank:     auxRAMBank,
		writeInhibit:   writeInhibit,
	}

	if auxRAMSelected {
		s.bank1ReadOffset = 0x3000
	}
	if auxRAMSelected {
		if auxRAMBank == 2 {
			s.bank2ReadOffset = -0x1000
		} else {
			s.bank2ReadOffset = 0x3000
		}
	}
	if !writeInhibit {
		s.bank1WriteOffset = 0x3000
		if auxRAMBank == 2 {
			s.bank2WriteOffset = -0x1000
		} else {
			s.bank2WriteOffset = 0x3000
		}
	} else {
		s.bank1WriteOffset = writeDropped
		s.bank2WriteOffset = writeDropped
	}
	return s
}

// applyLangCardSwitch implements the $C080-$C08F table from spec.md
// section 4.2. The low nibble of addr selects one of eight operations;
// bit 2 is ignored.
func (lc langCardState) applyLangCardSwitch(addr uint16) langCardState {
	switch addr & 0xf {
	case 0, 4:
		return newLangCardState(true, 2, true)
	case 1, 5:
		return newLangCardState(false, 2, false)
	case 2, 6, 0xa, 0xe:
		return newLangCardState(false, lc.auxRAMBank, true)
	case 3, 7:
		return newLangCardState(true, 2, false)
	case 8, 0xc:
		return newLangCardState(true, 1, false)
	case 9, 0xd:
		return newLangCardState(false, 1, false)
	default: // 0xb, 0xf
		return newLangCardState(true, 1, false)
	}
}
