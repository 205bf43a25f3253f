package cpu

// opcodeEntry pairs one opcode byte's addressing mode with its instruction
// handler and mnemonic (the mnemonic is only used for tracing).
type opcodeEntry struct {
	mode     AddrMode
	exec     InstrFunc
	mnemonic string
}

// opcodeTable is the canonical NMOS 6502 instruction encoding: 256 entries
// indexed by opcode byte. Unassigned opcodes decode to (IMP, und).
var opcodeTable = [256]opcodeEntry{
	// 0x00-0x0F
	0x00: {IMP, brk, "BRK"}, 0x01: {IDX, ora, "ORA"}, 0x02: {IMP, und, "UND"}, 0x03: {IMP, und, "UND"},
	0x04: {IMP, und, "UND"}, 0x05: {ZPG, ora, "ORA"}, 0x06: {ZPG, asl, "ASL"}, 0x07: {IMP, und, "UND"},
	0x08: {IMP, php, "PHP"}, 0x09: {IMM, ora, "ORA"}, 0x0A: {ACC, asl, "ASL"}, 0x0B: {IMP, und, "UND"},
	0x0C: {IMP, und, "UND"}, 0x0D: {ABS, ora, "ORA"}, 0x0E: {ABS, asl, "ASL"}, 0x0F: {IMP, und, "UND"},

	// 0x10-0x1F
	0x10: {REL, bpl, "BPL"}, 0x11: {IDY, ora, "ORA"}, 0x12: {IMP, und, "UND"}, 0x13: {IMP, und, "UND"},
	0x14: {IMP, und, "UND"}, 0x15: {ZPX, ora, "ORA"}, 0x16: {ZPX, asl, "ASL"}, 0x17: {IMP, und, "UND"},
	0x18: {IMP, clc, "CLC"}, 0x19: {ABY, ora, "ORA"}, 0x1A: {IMP, und, "UND"}, 0x1B: {IMP, und, "UND"},
	0x1C: {IMP, und, "UND"}, 0x1D: {ABX, ora, "ORA"}, 0x1E: {ABX, asl, "ASL"}, 0x1F: {IMP, und, "UND"},

	// 0x20-0x2F
	0x20: {ABS, jsr, "JSR"}, 0x21: {IDX, and, "AND"}, 0x22: {IMP, und, "UND"}, 0x23: {IMP, und, "UND"},
	0x24: {ZPG, bit, "BIT"}, 0x25: {ZPG, and, "AND"}, 0x26: {ZPG, rol, "ROL"}, 0x27: {IMP, und, "UND"},
	0x28: {IMP, plp, "PLP"}, 0x29: {IMM, and, "AND"}, 0x2A: {ACC, rol, "ROL"}, 0x2B: {IMP, und, "UND"},
	0x2C: {ABS, bit, "BIT"}, 0x2D: {ABS, and, "AND"}, 0x2E: {ABS, rol, "ROL"}, 0x2F: {IMP, und, "UND"},

	// 0x30-0x3F
	0x30: {REL, bmi, "BMI"}, 0x31: {IDY, and, "AND"}, 0x32: {IMP, und, "UND"}, 0x33: {IMP, und, "UND"},
	0x34: {IMP, und, "UND"}, 0x35: {ZPX, and, "AND"}, 0x36: {ZPX, rol, "ROL"}, 0x37: {IMP, und, "UND"},
	0x38: {IMP, sec, "SEC"}, 0x39: {ABY, and, "AND"}, 0x3A: {IMP, und, "UND"}, 0x3B: {IMP, und, "UND"},
	0x3C: {IMP, und, "UND"}, 0x3D: {ABX, and, "AND"}, 0x3E: {ABX, rol, "ROL"}, 0x3F: {IMP, und, "UND"},

	// 0x40-0x4F
	0x40: {IMP, rti, "RTI"}, 0x41: {IDX, eor, "EOR"}, 0x42: {IMP, und, "UND"}, 0x43: {IMP, und, "UND"},
	0x44: {IMP, und, "UND"}, 0x45: {ZPG, eor, "EOR"}, 0x46: {ZPG, lsr, "LSR"}, 0x47: {IMP, und, "UND"},
	0x48: {IMP, pha, "PHA"}, 0x49: {IMM, eor, "EOR"}, 0x4A: {ACC, lsr, "LSR"}, 0x4B: {IMP, und, "UND"},
	0x4C: {ABS, jmp, "JMP"}, 0x4D: {ABS, eor, "EOR"}, 0x4E: {ABS, lsr, "LSR"}, 0x4F: {IMP, und, "UND"},

	// 0x50-0x5F
	0x50: {REL, bvc, "BVC"}, 0x51: {IDY, eor, "EOR"}, 0x52: {IMP, und, "UND"}, 0x53: {IMP, und, "UND"},
	0x54: {IMP, und, "UND"}, 0x55: {ZPX, eor, "EOR"}, 0x56: {ZPX, lsr, "LSR"}, 0x57: {IMP, und, "UND"},
	0x58: {IMP, cli, "CLI"}, 0x59: {ABY, eor, "EOR"}, 0x5A: {IMP, und, "UND"}, 0x5B: {IMP, und, "UND"},
	0x5C: {IMP, und, "UND"}, 0x5D: {ABX, eor, "EOR"}, 0x5E: {ABX, lsr, "LSR"}, 0x5F: {IMP, und, "UND"},

	// 0x60-0x6F
	0x60: {IMP, rts, "RTS"}, 0x61: {IDX, adc, "ADC"}, 0x62: {IMP, und, "UND"}, 0x63: {IMP, und, "UND"},
	0x64: {IMP, und, "UND"}, 0x65: {ZPG, adc, "ADC"}, 0x66: {ZPG, ror, "ROR"}, 0x67: {IMP, und, "UND"},
	0x68: {IMP, pla, "PLA"}, 0x69: {IMM, adc, "ADC"}, 0x6A: {ACC, ror, "ROR"}, 0x6B: {IMP, und, "UND"},
	0x6C: {IND, jmp, "JMP"}, 0x6D: {ABS, adc, "ADC"}, 0x6E: {ABS, ror, "ROR"}, 0x6F: {IMP, und, "UND"},

	// 0x70-0x7F
	0x70: {REL, bvs, "BVS"}, 0x71: {IDY, adc, "ADC"}, 0x72: {IMP, und, "UND"}, 0x73: {IMP, und, "UND"},
	0x74: {IMP, und, "UND"}, 0x75: {ZPX, adc, "ADC"}, 0x76: {ZPX, ror, "ROR"}, 0x77: {IMP, und, "UND"},
	0x78: {IMP, sei, "SEI"}, 0x79: {ABY, adc, "ADC"}, 0x7A: {IMP, und, "UND"}, 0x7B: {IMP, und, "UND"},
	0x7C: {IMP, und, "UND"}, 0x7D: {ABX, adc, "ADC"}, 0x7E: {ABX, ror, "ROR"}, 0x7F: {IMP, und, "UND"},

	// 0x80-0x8F
	0x80: {IMP, und, "UND"}, 0x81: {IDX, sta, "STA"}, 0x82: {IMP, und, "UND"}, 0x83: {IMP, und, "UND"},
	0x84: {ZPG, sty, "STY"}, 0x85: {ZPG, sta, "STA"}, 0x86: {ZPG, stx, "STX"}, 0x87: {IMP, und, "UND"},
	0x88: {IMP, dey, "DEY"}, 0x89: {IMP, und, "UND"}, 0x8A: {IMP, txa, "TXA"}, 0x8B: {IMP, und, "UND"},
	0x8C: {ABS, sty, "STY"}, 0x8D: {ABS, sta, "STA"}, 0x8E: {ABS, stx, "STX"}, 0x8F: {IMP, und, "UND"},

	// 0x90-0x9F
	0x90: {REL, bcc, "BCC"}, 0x91: {IDY, sta, "STA"}, 0x92: {IMP, und, "UND"}, 0x93: {IMP, und, "UND"},
	0x94: {ZPX, sty, "STY"}, 0x95: {ZPX, sta, "STA"}, 0x96: {ZPY, stx, "STX"}, 0x97: {IMP, und, "UND"},
	0x98: {IMP, tya, "TYA"}, 0x99: {ABY, sta, "STA"}, 0x9A: {IMP, txs, "TXS"}, 0x9B: {IMP, und, "UND"},
	0x9C: {IMP, und, "UND"}, 0x9D: {ABX, sta, "STA"}, 0x9E: {IMP, und, "UND"}, 0x9F: {IMP, und, "UND"},

	// 0xA0-0xAF
	0xA0: {IMM, ldy, "LDY"}, 0xA1: {IDX, lda, "LDA"}, 0xA2: {IMM, ldx, "LDX"}, 0xA3: {IMP, und, "UND"},
	0xA4: {ZPG, ldy, "LDY"}, 0xA5: {ZPG, lda, "LDA"}, 0xA6: {ZPG, ldx, "LDX"}, 0xA7: {IMP, und, "UND"},
	0xA8: {IMP, tay, "TAY"}, 0xA9: {IMM, lda, "LDA"}, 0xAA: {IMP, tax, "TAX"}, 0xAB: {IMP, und, "UND"},
	0xAC: {ABS, ldy, "LDY"}, 0xAD: {ABS, lda, "LDA"}, 0xAE: {ABS, ldx, "LDX"}, 0xAF: {IMP, und, "UND"},

	// 0xB0-0xBF
	0xB0: {REL, bcs, "BCS"}, 0xB1: {IDY, lda, "LDA"}, 0xB2: {IMP, und, "UND"}, 0xB3: {IMP, und, "UND"},
	0xB4: {ZPX, ldy, "LDY"}, 0xB5: {ZPX, lda, "LDA"}, 0xB6: {ZPY, ldx, "LDX"}, 0xB7: {IMP, und, "UND"},
	0xB8: {IMP, clv, "CLV"}, 0xB9: {ABY, lda, "LDA"}, 0xBA: {IMP, tsx, "TSX"}, 0xBB: {IMP, und, "UND"},
	0xBC: {ABX, ldy, "LDY"}, 0xBD: {ABX, lda, "LDA"}, 0xBE: {ABY, ldx, "LDX"}, 0xBF: {IMP, und, "UND"},

	// 0xC0-0xCF
	0xC0: {IMM, cpy, "CPY"}, 0xC1: {IDX, cmp, "CMP"}, 0xC2: {IMP, und, "UND"}, 0xC3: {IMP, und, "UND"},
	0xC4: {ZPG, cpy, "CPY"}, 0xC5: {ZPG, cmp, "CMP"}, 0xC6: {ZPG, dec, "DEC"}, 0xC7: {IMP, und, "UND"},
	0xC8: {IMP, iny, "INY"}, 0xC9: {IMM, cmp, "CMP"}, 0xCA: {IMP, dex, "DEX"}, 0xCB: {IMP, und, "UND"},
	0xCC: {ABS, cpy, "CPY"}, 0xCD: {ABS, cmp, "CMP"}, 0xCE: {ABS, dec, "DEC"}, 0xCF: {IMP, und, "UND"},

	// 0xD0-0xDF
	0xD0: {REL, bne, "BNE"}, 0xD1: {IDY, cmp, "CMP"}, 0xD2: {IMP, und, "UND"}, 0xD3: {IMP, und, "UND"},
	0xD4: {IMP, und, "UND"}, 0xD5: {ZPX, cmp, "CMP"}, 0xD6: {ZPX, dec, "DEC"}, 0xD7: {IMP, und, "UND"},
	0xD8: {IMP, cld, "CLD"}, 0xD9: {ABY, cmp, "CMP"}, 0xDA: {IMP, und, "UND"}, 0xDB: {IMP, und, "UND"},
	0xDC: {IMP, und, "UND"}, 0xDD: {ABX, cmp, "CMP"}, 0xDE: {ABX, dec, "DEC"}, 0xDF: {IMP, und, "UND"},

	// 0xE0-0xEF
	0xE0: {IMM, cpx, "CPX"}, 0xE1: {IDX, sbc, "SBC"}, 0xE2: {IMP, und, "UND"}, 0xE3: {IMP, und, "UND"},
	0xE4: {ZPG, cpx, "CPX"}, 0xE5: {ZPG, sbc, "SBC"}, 0xE6: {ZPG, inc, "INC"}, 0xE7: {IMP, und, "UND"},
	0xE8: {IMP, inx, "INX"}, 0xE9: {IMM, sbc, "SBC"}, 0xEA: {IMP, nop, "NOP"}, 0xEB: {IMP, und, "UND"},
	0xEC: {ABS, cpx, "CPX"}, 0xED: {ABS, sbc, "SBC"}, 0xEE: {ABS, inc, "INC"}, 0xEF: {IMP, und, "UND"},

	// 0xF0-0xFF
	0xF0: {REL, beq, "BEQ"}, 0xF1: {IDY, sbc, "SBC"}, 0xF2: {IMP, und, "UND"}, 0xF3: {IMP, und, "UND"},
	0xF4: {IMP, und, "UND"}, 0xF5: {ZPX, sbc, "SBC"}, 0xF6: {ZPX, inc, "INC"}, 0xF7: {IMP, und, "UND"},
	0xF8: {IMP, sed, "SED"}, 0xF9: {ABY, sbc, "SBC"}, 0xFA: {IMP, und, "UND"}, 0xFB: {IMP, und, "UND"},
	0xFC: {IMP, und, "UND"}, 0xFD: {ABX, sbc, "SBC"}, 0xFE: {ABX, inc, "INC"}, 0xFF: {IMP, und, "UND"},
}
