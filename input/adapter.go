// Package input turns host keystrokes into keyboard-latch bytes, driven by
// tcell's event loop rather than a raw terminal fd read: tcell already owns
// raw-mode state for the video screen, and a second raw-mode manager on the
// same fd would fight it for control.
package input

import (
	"github.com/gdamore/tcell"
)

// Control reports a host-level request that isn't a keystroke destined
// for the emulated machine: a processor reset or a request to quit.
type Control int

const (
	ControlNone Control = iota
	ControlReset
	ControlQuit
)

// Adapter reads tcell key events and translates them into the byte the
// Apple II keyboard latch expects: bit 7 set, low 7 bits the key code,
// with a handful of host-terminal keys remapped onto the Apple II's
// control-character conventions.
type Adapter struct {
	Screen tcell.Screen

	// ResetKey and QuitKey bind the supplemented host controls; tcell
	// has no F11/F12 distinction problem here since these are checked
	// before the ordinary rune translation.
	ResetKey tcell.Key
	QuitKey  tcell.Key
}

// New constructs an Adapter over an already-initialized screen, with
// the supplemented reset/quit controls bound to F7 and F12 per
// original_source/reinette-II.c's KEY_F(7)/KEY_F(12).
func New(screen tcell.Screen) *Adapter {
	return &Adapter{
		Screen:   screen,
		ResetKey: tcell.KeyF7,
		QuitKey:  tcell.KeyF12,
	}
}

// Poll blocks for the next host input event. It returns either a
// translated keyboard-latch byte with ok true, or a Control other than
// ControlNone, never both.
func (a *Adapter) Poll() (latch byte, ok bool, ctrl Control) {
	for {
		ev := a.Screen.PollEvent()
		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		switch key.Key() {
		case a.ResetKey:
			return 0, false, ControlReset
		case a.QuitKey:
			return 0, false, ControlQuit
		case tcell.KeyCtrlC:
			return 0, false, ControlQuit
		}
		if b, translated := Translate(key); translated {
			return b, true, ControlNone
		}
	}
}

// Translate maps a single tcell key event onto the byte value the
// Apple II keyboard latch would hold, applying the host-key
// translation rules: line feed becomes carriage return, the arrow
// keys stand in for backspace/NAK, bell becomes backspace, and
// lowercase letters are folded to uppercase by clearing bit 5. Bit 7
// is always forced set on the result, matching a pending, unconsumed
// keystroke. Keys with no Apple II equivalent report translated=false.
func Translate(key *tcell.EventKey) (b byte, translated bool) {
	switch key.Key() {
	case tcell.KeyLeft:
		return withStrobe(0x08), true
	case tcell.KeyRight:
		return withStrobe(0x15), true
	case tcell.KeyEnter:
		return withStrobe(0x0D), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return withStrobe(0x08), true
	case tcell.KeyLF, tcell.KeyBEL:
		// tcell reports these control characters as named keys, not runes.
		return withStrobe(translateRune(rune(key.Key()))), true
	case tcell.KeyRune:
		return withStrobe(translateRune(key.Rune())), true
	}
	return 0, false
}

// translateRune applies the byte-level remapping rules to an ordinary
// character key: LF->CR, bell->BS, lowercase->uppercase.
func translateRune(r rune) byte {
	c := byte(r)
	switch c {
	case 0x0A: // LF
		return 0x0D
	case 0x07: // bell
		return 0x08
	}
	if c >= 0x61 && c <= 0x7A {
		c &^= 0x20
	}
	return c
}

// withStrobe forces bit 7, the latch's "unconsumed keystroke" strobe.
func withStrobe(c byte) byte { return c | 0x80 }
