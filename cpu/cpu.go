// Package cpu implements a MOS 6502 instruction-set interpreter: all
// documented opcodes, thirteen addressing modes, exact flag semantics
// (including signed overflow and binary-coded-decimal arithmetic), and the
// indirect-JMP page-wrap hardware bug. The CPU owns no storage of its own;
// it is parameterized over a Bus.
package cpu

// Tracer receives one call per executed instruction when non-nil. It exists
// so a host can log execution without the hot Step path paying for a
// log.Printf on every opcode: unconditional per-opcode logging is expensive
// at this call frequency, so tracing is opt-in instead.
type Tracer func(pc uint16, opcode byte, mnemonic string)

// CPU holds the programmer-visible 6502 register file and the bus it reads
// and writes through. There is no hidden shared mutable state: each Step
// call resolves its own Operand and passes it straight to the instruction
// handler.
type CPU struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	SR      byte

	Bus Bus

	Trace Tracer
}

// New constructs a CPU wired to bus and applies Reset.
func New(bus Bus) *CPU {
	c := &CPU{Bus: bus}
	c.Reset()
	return c
}

// Reset reinitializes PC from the reset vector (0xFFFC/0xFFFD), sets SP to
// 0xFF, and forces the U status bit. RAM/ROM contents are untouched.
func (c *CPU) Reset() {
	c.PC = c.read16(0xFFFC)
	c.SP = 0xFF
	c.SR |= FlagU
}

// Step fetches, decodes and executes exactly one instruction.
func (c *CPU) Step() {
	opcode := c.read(c.PC)
	c.PC++

	entry := opcodeTable[opcode]
	op := c.resolve(entry.mode)

	if c.Trace != nil {
		c.Trace(c.PC-1, opcode, entry.mnemonic)
	}

	entry.exec(c, op)
}

// StepN executes n instructions in sequence. Pure convenience for host
// pacing; nothing about the CPU depends on how many steps happen per call.
func (c *CPU) StepN(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

// push writes to the stack page (0x0100 + SP) and decrements SP, wrapping
// modulo 256 without touching the page byte.
func (c *CPU) push(v byte) {
	c.write(0x0100+uint16(c.SP), v)
	c.SP--
}

// pull increments SP (wrapping modulo 256) and reads the stack page.
func (c *CPU) pull() byte {
	c.SP++
	return c.read(0x0100 + uint16(c.SP))
}

// statusForPush returns SR with the Break and U flags forced set, as pushed
// by BRK and PHP.
func (c *CPU) statusForPush() byte {
	return c.SR | FlagB | FlagU
}
