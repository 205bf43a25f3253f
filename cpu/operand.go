package cpu

// OperandKind tags the effective operand an addressing mode leaves behind
// for the instruction to consume. Addressing-mode resolution returns this as
// a plain value rather than mutating a shared record, so the resolver and
// the instruction handler never have to agree on hidden state between them.
type OperandKind int

const (
	// Implicit: no operand (register-only instructions, NOP, BRK, ...).
	Implicit OperandKind = iota
	// Accumulator: the instruction's target is A itself, not memory.
	Accumulator
	// Immediate: Value was fetched from the instruction stream.
	Immediate
	// Memory: Address is the effective address, Value is read(Address).
	Memory
	// Relative: Offset is the sign-extended branch displacement; branches
	// add it directly to PC rather than treating it as a location.
	Relative
)

type Operand struct {
	Kind    OperandKind
	Address uint16
	Value   byte
	Offset  uint16
}

// AddrMode identifies one of the thirteen addressing modes. Each dispatch
// table entry carries one; resolve switches on it and does the work.
type AddrMode int

const (
	IMP AddrMode = iota
	ACC
	IMM
	ZPG
	ZPX
	ZPY
	REL
	ABS
	ABX
	ABY
	IND
	IDX
	IDY
)

// resolve runs the addressing mode for the opcode just fetched, advancing
// PC past any operand bytes and returning the effective Operand.
func (c *CPU) resolve(mode AddrMode) Operand {
	switch mode {
	case IMP:
		return Operand{Kind: Implicit}

	case ACC:
		return Operand{Kind: Accumulator, Value: c.A}

	case IMM:
		addr := c.PC
		c.PC++
		return Operand{Kind: Immediate, Value: c.read(addr)}

	case ZPG:
		addr := uint16(c.read(c.PC))
		c.PC++
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case ZPX:
		addr := uint16(c.read(c.PC)+c.X) & 0xFF
		c.PC++
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case ZPY:
		addr := uint16(c.read(c.PC)+c.Y) & 0xFF
		c.PC++
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case REL:
		d := uint16(c.read(c.PC))
		c.PC++
		if d&0x80 != 0 {
			d |= 0xFF00
		}
		return Operand{Kind: Relative, Offset: d}

	case ABS:
		addr := c.read16(c.PC)
		c.PC += 2
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case ABX:
		addr := c.read16(c.PC) + uint16(c.X)
		c.PC += 2
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case ABY:
		addr := c.read16(c.PC) + uint16(c.Y)
		c.PC += 2
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case IND:
		ptr := c.read16(c.PC)
		c.PC += 2
		lo := c.read(ptr)
		// Page-wrap bug: the high byte is fetched from the same page as the
		// low byte, never carrying into the next page.
		hi := c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		addr := uint16(lo) | uint16(hi)<<8
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case IDX:
		ptr := uint16(c.read(c.PC)+c.X) & 0xFF
		c.PC++
		lo := c.read(ptr)
		hi := c.read((ptr + 1) & 0xFF)
		addr := uint16(lo) | uint16(hi)<<8
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}

	case IDY:
		b := uint16(c.read(c.PC))
		c.PC++
		lo := c.read(b)
		hi := c.read((b & 0xFF00) | ((b + 1) & 0xFF))
		addr := (uint16(lo) | uint16(hi)<<8) + uint16(c.Y)
		return Operand{Kind: Memory, Address: addr, Value: c.read(addr)}
	}

	return Operand{Kind: Implicit}
}

// storeResult writes an RMW instruction's computed byte back to wherever
// the operand came from: A for ACC mode, memory otherwise. Shift and
// rotate instructions share this one write-back path instead of each
// re-deriving where their operand lives.
func (c *CPU) storeResult(op Operand, v byte) {
	if op.Kind == Accumulator {
		c.A = v
		return
	}
	c.write(op.Address, v)
}
