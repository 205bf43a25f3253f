package input

import (
	"testing"

	"github.com/gdamore/tcell"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func namedKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestTranslateLowercaseUppercases(t *testing.T) {
	b, ok := Translate(runeKey('a'))
	if !ok {
		t.Fatalf("Translate did not accept rune 'a'")
	}
	if b != 0x80|'A' {
		t.Fatalf("Translate('a') = %#02x, want %#02x", b, 0x80|'A')
	}
}

func TestTranslateUppercaseUnchanged(t *testing.T) {
	b, ok := Translate(runeKey('A'))
	if !ok || b != 0x80|'A' {
		t.Fatalf("Translate('A') = %#02x, ok=%v, want %#02x", b, ok, 0x80|'A')
	}
}

func TestTranslateLineFeedBecomesCR(t *testing.T) {
	b, ok := Translate(runeKey(0x0A))
	if !ok || b != 0x80|0x0D {
		t.Fatalf("Translate(LF) = %#02x, ok=%v, want %#02x", b, ok, 0x80|0x0D)
	}
}

func TestTranslateBellBecomesBackspace(t *testing.T) {
	b, ok := Translate(runeKey(0x07))
	if !ok || b != 0x80|0x08 {
		t.Fatalf("Translate(bell) = %#02x, ok=%v, want %#02x", b, ok, 0x80|0x08)
	}
}

func TestTranslateLeftArrowBecomesBackspace(t *testing.T) {
	b, ok := Translate(namedKey(tcell.KeyLeft))
	if !ok || b != 0x80|0x08 {
		t.Fatalf("Translate(Left) = %#02x, ok=%v, want %#02x", b, ok, 0x80|0x08)
	}
}

func TestTranslateRightArrowBecomesNAK(t *testing.T) {
	b, ok := Translate(namedKey(tcell.KeyRight))
	if !ok || b != 0x80|0x15 {
		t.Fatalf("Translate(Right) = %#02x, ok=%v, want %#02x", b, ok, 0x80|0x15)
	}
}

func TestTranslateBitSevenAlwaysSet(t *testing.T) {
	b, ok := Translate(runeKey('!'))
	if !ok || b&0x80 == 0 {
		t.Fatalf("Translate('!') = %#02x, ok=%v, bit7 not set", b, ok)
	}
}

func TestTranslateUnmappedKeyNotTranslated(t *testing.T) {
	if _, ok := Translate(namedKey(tcell.KeyF1)); ok {
		t.Fatalf("Translate(F1) unexpectedly reported ok")
	}
}

func TestPollReportsResetControl(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(1, 1)
	a := New(s)
	s.InjectKey(tcell.KeyF7, 0, tcell.ModNone)
	_, ok, ctrl := a.Poll()
	if ok || ctrl != ControlReset {
		t.Fatalf("Poll() after F7 = ok=%v ctrl=%v, want ControlReset", ok, ctrl)
	}
}

func TestPollReportsQuitControl(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(1, 1)
	a := New(s)
	s.InjectKey(tcell.KeyF12, 0, tcell.ModNone)
	_, ok, ctrl := a.Poll()
	if ok || ctrl != ControlQuit {
		t.Fatalf("Poll() after F12 = ok=%v ctrl=%v, want ControlQuit", ok, ctrl)
	}
}

func TestPollTranslatesOrdinaryKey(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(1, 1)
	a := New(s)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	b, ok, ctrl := a.Poll()
	if !ok || ctrl != ControlNone || b != 0x80|'Q' {
		t.Fatalf("Poll() after 'q' = b=%#02x ok=%v ctrl=%v, want 0x80|'Q' true ControlNone", b, ok, ctrl)
	}
}
