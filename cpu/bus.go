package cpu

// Bus is the memory-access capability the CPU is parameterized over. A host
// supplies an implementation (RAM+ROM+keyboard latch, or a test double) and
// the CPU never touches storage directly, so the same interpreter runs
// unmodified against a full machine or a flat test array.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

func (c *CPU) read(addr uint16) byte {
	return c.Bus.Read(addr)
}

func (c *CPU) write(addr uint16, value byte) {
	c.Bus.Write(addr, value)
}

// read16 fetches a little-endian word with no page-wrap handling. The
// addressing modes that need page-wrap semantics (IND, IDX, IDY) compute
// their two byte reads themselves.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return lo | hi<<8
}
