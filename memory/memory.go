// Package memory implements the default cpu.Bus: a flat 64KiB address space
// split into RAM, a keyboard-latch I/O aperture, and ROM, plus the
// video-dirty signal the presenter polls.
package memory

import "fmt"

const (
	ramSize  = 0xC000 // [0x0000, 0xC000)
	ioStart  = 0xC000
	romStart = 0xD000 // [0xD000, 0x10000)
	romSize  = 0x3000 // 12 KiB

	kbd     = 0xC000 // keyboard data + strobe
	kbdstrb = 0xC010 // clear strobe
)

// ErrBadROMSize is returned by New when the supplied ROM image is not
// exactly 12288 bytes.
var ErrBadROMSize = fmt.Errorf("rom image must be exactly %d bytes", romSize)

// Memory is the machine's address space: 48 KiB of RAM, a two-address
// keyboard-latch I/O aperture, and 12 KiB of ROM. It implements cpu.Bus.
type Memory struct {
	ram [ramSize]byte
	rom [romSize]byte

	key        byte
	videoDirty bool
}

// New constructs a Memory with RAM zeroed and rom copied into the ROM
// region. rom must be exactly 12288 bytes.
func New(rom []byte) (*Memory, error) {
	if len(rom) != romSize {
		return nil, ErrBadROMSize
	}
	m := &Memory{}
	copy(m.rom[:], rom)
	return m, nil
}

// Read dispatches a byte read to RAM, ROM, or the keyboard latch. Reading
// KBDSTRB clears the latch's strobe bit as a side effect; every other I/O
// address reads as 0.
func (m *Memory) Read(addr uint16) byte {
	switch {
	case addr < ramSize:
		return m.ram[addr]
	case addr >= romStart:
		return m.rom[addr-romStart]
	case addr == kbd:
		return m.key
	case addr == kbdstrb:
		m.key &^= 0x80
		return m.key
	default:
		return 0
	}
}

// Write dispatches a byte write. Any address with bit 10 set raises the
// video-dirty flag before the store takes effect, a conservative
// over-approximation of "text page 1 touched" (real text page 1 writes all
// fall in [0x0400, 0x0800), where bit 10 is set and bits 11-15 are clear).
// ROM writes and unrecognized I/O addresses are silently discarded.
func (m *Memory) Write(addr uint16, value byte) {
	if addr&0x0400 != 0 {
		m.videoDirty = true
	}
	switch {
	case addr < ramSize:
		m.ram[addr] = value
	case addr == kbdstrb:
		m.key &^= 0x80
	}
}

// SetKey sets the keyboard latch. The host typically sets bit 7 to signal a
// pending keystroke.
func (m *Memory) SetKey(b byte) {
	m.key = b
}

// RAMByte reads a RAM byte directly, bypassing the I/O aperture and ROM
// dispatch. Used by the video presenter, which only ever looks at text
// page 1 and must not trip keyboard-latch side effects.
func (m *Memory) RAMByte(addr uint16) byte {
	return m.ram[addr]
}

// TakeVideoDirty returns whether the primary text page was touched since
// the last call, clearing the flag atomically from the caller's
// perspective.
func (m *Memory) TakeVideoDirty() bool {
	v := m.videoDirty
	m.videoDirty = false
	return v
}
