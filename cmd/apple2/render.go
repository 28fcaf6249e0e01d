package main

import (
	"github.com/beevik/go6502"
	"github.com/gdamore/tcell/v2"

	"github.com/sehugg/apple2go/internal/machine"
)

// textASCII strips the Apple II's inverse/flash high-bit tagging from
// a text-page byte, leaving a renderable ASCII character. This core
// does not model flash timing (out of scope): flashing characters are
// rendered as their inverse-video form.
func textASCII(b byte) (rune, bool) {
	inverse := b < 0x80
	ch := b & 0x7f
	if ch < 0x20 {
		ch += 0x40
	}
	return rune(ch), inverse
}

// runTerminal drives the CPU against the bus and repaints the text page
// selected by the PAGE2 switch to a tcell screen once per batch of
// executed cycles, forwarding key events to the bus's keyboard latch.
// It returns when Ctrl-C is pressed.
func runTerminal(a *machine.Apple2, cpu *go6502.CPU) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, nil)

	const cyclesPerFrame = 17030 // roughly one NTSC video frame at 1.023 MHz

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC {
					return nil
				}
				if r := e.Rune(); r != 0 {
					a.KeyPressed(byte(r))
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		default:
		}

		spent := 0
		for spent < cyclesPerFrame {
			spent += cpu.Step()
		}

		drawTextPage(screen, a, page(a))
		screen.Show()
	}
}

// page selects text page 1 or 2 per the PAGE2 graphics switch (bit 2
// of grswitch, per spec.md's display-switch bit layout).
func page(a *machine.Apple2) int {
	if a.GrSwitch()&(1<<2) != 0 {
		return 2
	}
	return 1
}

func drawTextPage(screen tcell.Screen, a *machine.Apple2, pageNum int) {
	data := a.TextPage(pageNum)
	style := tcell.StyleDefault

	// The Apple II text page is stored in an interleaved row order
	// (blocks of 3 groups of 8 rows); this walks rows in display order.
	for row := 0; row < 24; row++ {
		base := textRowOffset(row)
		for col := 0; col < 40; col++ {
			ch, inverse := textASCII(data[base+col])
			st := style
			if inverse {
				st = st.Reverse(true)
			}
			screen.SetContent(col, row, ch, nil, st)
		}
	}
}

// textRowOffset returns the byte offset of row within a 0x400-byte
// text page, following the Apple II's non-linear row layout.
func textRowOffset(row int) int {
	group := row % 8
	third := row / 8
	return group*0x80 + third*0x28
}
