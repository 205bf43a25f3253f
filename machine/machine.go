// Package machine composes the cpu and memory packages into a single
// embeddable unit: construct it from a ROM image, step it, and poke/peek at
// its keyboard latch and video RAM. It owns only the CPU and memory; terminal
// I/O lives in the input/video packages so an embedder that just wants to
// run a ROM headlessly never has to pull in a terminal dependency.
package machine

import (
	"apple2go/cpu"
	"apple2go/memory"
)

// Machine is a complete emulated computer: CPU, RAM, ROM, keyboard latch
// and video-dirty signal. It owns all of its state; nothing about it is
// global, and two Machines never interfere with each other.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// New constructs a Machine from a 12288-byte ROM image, with RAM zeroed
// and the CPU reset from the ROM's reset vector.
func New(rom []byte) (*Machine, error) {
	mem, err := memory.New(rom)
	if err != nil {
		return nil, err
	}
	return &Machine{
		CPU: cpu.New(mem),
		Mem: mem,
	}, nil
}

// Reset reinitializes the CPU from the reset vector. RAM is left as-is.
func (m *Machine) Reset() { m.CPU.Reset() }

// Step executes exactly one instruction.
func (m *Machine) Step() { m.CPU.Step() }

// StepN executes n instructions.
func (m *Machine) StepN(n int) { m.CPU.StepN(n) }

// SetKey sets the keyboard latch. Callers typically set bit 7 to signal a
// pending, unconsumed keystroke.
func (m *Machine) SetKey(b byte) { m.Mem.SetKey(b) }

// RAMByte reads a RAM byte directly, for the video presenter.
func (m *Machine) RAMByte(addr uint16) byte { return m.Mem.RAMByte(addr) }

// TakeVideoDirty reports and clears whether the primary text page was
// written since the last call.
func (m *Machine) TakeVideoDirty() bool { return m.Mem.TakeVideoDirty() }
