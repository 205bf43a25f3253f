package memory

import (
	"testing"

	"apple2go/cpu"
)

func TestIntegrationKeyboardReadAndClear(t *testing.T) {
	rom := romImage()
	m, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := cpu.New(m)
	c.PC = 0x0600
	m.SetKey(0xC1) // bit7 + 'A'

	// LDA $C000; STA $C010
	m.Write(0x0600, 0xAD)
	m.Write(0x0601, 0x00)
	m.Write(0x0602, 0xC0)
	m.Write(0x0603, 0x8D)
	m.Write(0x0604, 0x10)
	m.Write(0x0605, 0xC0)

	c.StepN(2)
	if c.A != 0xC1 {
		t.Fatalf("A = %#02x, want 0xC1", c.A)
	}
	if v := m.Read(0xC000); v != 0x41 {
		t.Fatalf("latch = %#02x, want 0x41 (strobe cleared)", v)
	}
}

func TestIntegrationResetUsesVector(t *testing.T) {
	rom := romImage()
	m, _ := New(rom)
	c := cpu.New(m)
	if c.PC != 0xD000 {
		t.Fatalf("PC after construction = %#04x, want 0xD000", c.PC)
	}
}
