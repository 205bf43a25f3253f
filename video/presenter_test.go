package video

import (
	"testing"

	"github.com/gdamore/tcell"
)

type fakeSource struct {
	ram   [0x800]byte
	dirty bool
}

func (f *fakeSource) RAMByte(addr uint16) byte { return f.ram[addr] }
func (f *fakeSource) TakeVideoDirty() bool {
	v := f.dirty
	f.dirty = false
	return v
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(Cols, Rows)
	return s
}

func TestGlyphInverseForLowBytes(t *testing.T) {
	r, style := glyph(0x01)
	if r != 'A' {
		t.Fatalf("glyph(0x01) rune = %q, want 'A'", r)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Fatalf("glyph(0x01) not inverse")
	}
}

func TestGlyphNormalForHighBytes(t *testing.T) {
	r, style := glyph(0xC1) // bit7 set + 'A'
	if r != 'A' {
		t.Fatalf("glyph(0xC1) rune = %q, want 'A'", r)
	}
	_, _, attrs := style.Decompose()
	if attrs&(tcell.AttrReverse|tcell.AttrBlink) != 0 {
		t.Fatalf("glyph(0xC1) should be plain normal")
	}
}

func TestGlyphBlinkForMidRange(t *testing.T) {
	r, style := glyph(0x41) // in [0x40,0x7F]: flashing
	if r != 'A' {
		t.Fatalf("glyph(0x41) rune = %q, want 'A'", r)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBlink == 0 {
		t.Fatalf("glyph(0x41) not blinking")
	}
}

func TestGlyphBacktickBecomesUnderscore(t *testing.T) {
	r, _ := glyph('`')
	if r != '_' {
		t.Fatalf("glyph(backtick) rune = %q, want '_'", r)
	}
}

func TestRefreshSkipsWhenNotDirty(t *testing.T) {
	src := &fakeSource{}
	p := New(newSimScreen(t), src)
	if p.Refresh() {
		t.Fatalf("Refresh reported a redraw with nothing dirty")
	}
}

func TestRefreshDrawsTextPageWhenDirty(t *testing.T) {
	src := &fakeSource{dirty: true}
	src.ram[0x400] = 0xC1 // 'A', normal
	p := New(newSimScreen(t), src)
	if !p.Refresh() {
		t.Fatalf("Refresh reported no redraw despite dirty flag")
	}
	r, _, _, _ := p.Screen.GetContent(0, 0)
	if r != 'A' {
		t.Fatalf("cell (0,0) = %q, want 'A'", r)
	}
}
