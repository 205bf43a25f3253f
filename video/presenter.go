// Package video renders the machine's primary text page (RAM
// [0x0400, 0x0800)) to a terminal screen. It is a peripheral component that
// only ever reads RAM through the narrow RAMReader capability rather than
// reaching into a machine directly, so it can be tested against a fake
// source with no CPU or bus behind it at all.
package video

import (
	"github.com/gdamore/tcell"
)

// offsetsForRows is the interleaved Apple II text-page-1 row map: row r's
// 40 bytes start at offsetsForRows[r].
var offsetsForRows = [24]uint16{
	0x400, 0x480, 0x500, 0x580, 0x600, 0x680, 0x700, 0x780,
	0x428, 0x4A8, 0x528, 0x5A8, 0x628, 0x6A8, 0x728, 0x7A8,
	0x450, 0x4D0, 0x550, 0x5D0, 0x650, 0x6D0, 0x750, 0x7D0,
}

const (
	Rows = 24
	Cols = 40
)

// RAMReader is the narrow capability the presenter needs: read-only access
// to RAM bytes, and a way to ask whether text page 1 changed since the
// last frame. A Machine satisfies this directly.
type RAMReader interface {
	RAMByte(addr uint16) byte
	TakeVideoDirty() bool
}

// Presenter draws text page 1 onto a tcell.Screen, redrawing only when the
// machine reports the page has changed.
type Presenter struct {
	Screen tcell.Screen
	Source RAMReader
}

// New constructs a Presenter over an already-initialized screen.
func New(screen tcell.Screen, source RAMReader) *Presenter {
	return &Presenter{Screen: screen, Source: source}
}

// glyph applies the Apple II text-page decoding rules: the top two bits of
// the stored byte select the display attribute (inverse / blink / normal),
// the low bits map onto a printable ASCII code, and the cursor's backtick
// glyph is swapped for an underscore to read better in a terminal font.
func glyph(stored byte) (rune, tcell.Style) {
	if stored == '`' {
		stored = '_'
	}

	style := tcell.StyleDefault
	switch {
	case stored < 0x40:
		style = style.Reverse(true)
	case stored > 0x7F:
		// normal, no attribute
	default:
		style = style.Blink(true)
	}

	b := stored & 0x7F
	if b > 0x5F {
		b &= 0x3F
	}
	if b < 0x20 {
		b |= 0x40
	}
	return rune(b), style
}

// Refresh redraws the full 40x24 text page if the machine reports it dirty,
// then shows the frame. It returns whether a redraw happened.
func (p *Presenter) Refresh() bool {
	if !p.Source.TakeVideoDirty() {
		return false
	}
	for row := 0; row < Rows; row++ {
		base := offsetsForRows[row]
		for col := 0; col < Cols; col++ {
			stored := p.Source.RAMByte(base + uint16(col))
			r, style := glyph(stored)
			p.Screen.SetContent(col, row, r, nil, style)
		}
	}
	p.Screen.Show()
	return true
}
