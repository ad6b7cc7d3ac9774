package cpu

// kind tags how an opcodeEntry's operand flows: kindLoad reads a byte and
// hands it to a loadFn, kindStore asks a storeFn for a byte and writes it,
// kindRMW reads a byte, transforms it via rmwFn and writes it back, and
// kindImplied covers everything with no generic memory-operand shape
// (transfers, stack, flow control, flag bits) via implFn. kindIllegal marks
// the 105 opcode bytes with no defined semantics in the documented set
// (spec.md §6).
type kind int

const (
	kindIllegal kind = iota
	kindLoad
	kindStore
	kindRMW
	kindImplied
)

// opcodeEntry is one row of the 256 entry dispatch table (spec.md §9):
// mnemonic text for tracing, addressing mode, base cycle count, whether an
// indexed load's page-cross adds a cycle, and the mnemonic's execution
// shape plus matching function pointer.
type opcodeEntry struct {
	mnemonic       string
	mode           mode
	base           int
	pageCrossExtra bool
	kind           kind

	loadFn  func(*CPU, uint8)
	storeFn func(*CPU) uint8
	rmwFn   func(*CPU, uint8) uint8
	implFn  func(*CPU) (int, error)
}

// execute dispatches entry against the current CPU state and returns any
// cycles beyond entry.base that this particular execution incurred (a
// crossed page boundary on an indexed load, or a taken/page-crossing
// branch). Stores and RMW never report extra cycles (spec.md §9).
func (c *CPU) execute(entry *opcodeEntry) (int, error) {
	switch entry.kind {
	case kindLoad:
		v, pageCross := c.loadOperand(entry.mode)
		entry.loadFn(c, v)
		if entry.pageCrossExtra && pageCross {
			return 1, nil
		}
		return 0, nil
	case kindStore:
		addr := c.storeAddress(entry.mode)
		c.bus.Write8(addr, entry.storeFn(c))
		return 0, nil
	case kindRMW:
		addr := c.rmwAddress(entry.mode)
		old := c.bus.Read8(addr)
		c.bus.Write8(addr, entry.rmwFn(c, old))
		return 0, nil
	case kindImplied:
		return entry.implFn(c)
	}
	return 0, InvalidCPUState{Reason: "dispatch entry with no kind"}
}

// dispatchTable maps opcode byte to its decoded behavior. Populated by
// init() below, grouped by mnemonic the way a 6502 reference card is laid
// out, rather than as one 256-line literal — easier to check against the
// instruction set by eye. Byte values left unset default to the zero
// opcodeEntry, whose kind is kindIllegal.
var dispatchTable [256]opcodeEntry

func set(op uint8, mnemonic string, m mode, base int, pageCrossExtra bool, e opcodeEntry) {
	e.mnemonic = mnemonic
	e.mode = m
	e.base = base
	e.pageCrossExtra = pageCrossExtra
	dispatchTable[op] = e
}

func setLoad(op uint8, mnemonic string, m mode, base int, pageCrossExtra bool, fn func(*CPU, uint8)) {
	set(op, mnemonic, m, base, pageCrossExtra, opcodeEntry{kind: kindLoad, loadFn: fn})
}

func setStore(op uint8, mnemonic string, m mode, base int, fn func(*CPU) uint8) {
	set(op, mnemonic, m, base, false, opcodeEntry{kind: kindStore, storeFn: fn})
}

func setRMW(op uint8, mnemonic string, m mode, base int, fn func(*CPU, uint8) uint8) {
	set(op, mnemonic, m, base, false, opcodeEntry{kind: kindRMW, rmwFn: fn})
}

func setImplied(op uint8, mnemonic string, m mode, base int, fn func(*CPU) (int, error)) {
	set(op, mnemonic, m, base, false, opcodeEntry{kind: kindImplied, implFn: fn})
}

func init() {
	// LDA
	setLoad(0xA9, "LDA", modeImmediate, 2, false, opLDA)
	setLoad(0xA5, "LDA", modeZeroPage, 3, false, opLDA)
	setLoad(0xB5, "LDA", modeZeroPageX, 4, false, opLDA)
	setLoad(0xAD, "LDA", modeAbsolute, 4, false, opLDA)
	setLoad(0xBD, "LDA", modeAbsoluteX, 4, true, opLDA)
	setLoad(0xB9, "LDA", modeAbsoluteY, 4, true, opLDA)
	setLoad(0xA1, "LDA", modeIndirectX, 6, false, opLDA)
	setLoad(0xB1, "LDA", modeIndirectY, 5, true, opLDA)

	// LDX
	setLoad(0xA2, "LDX", modeImmediate, 2, false, opLDX)
	setLoad(0xA6, "LDX", modeZeroPage, 3, false, opLDX)
	setLoad(0xB6, "LDX", modeZeroPageY, 4, false, opLDX)
	setLoad(0xAE, "LDX", modeAbsolute, 4, false, opLDX)
	setLoad(0xBE, "LDX", modeAbsoluteY, 4, true, opLDX)

	// LDY
	setLoad(0xA0, "LDY", modeImmediate, 2, false, opLDY)
	setLoad(0xA4, "LDY", modeZeroPage, 3, false, opLDY)
	setLoad(0xB4, "LDY", modeZeroPageX, 4, false, opLDY)
	setLoad(0xAC, "LDY", modeAbsolute, 4, false, opLDY)
	setLoad(0xBC, "LDY", modeAbsoluteX, 4, true, opLDY)

	// STA
	setStore(0x85, "STA", modeZeroPage, 3, stLDA)
	setStore(0x95, "STA", modeZeroPageX, 4, stLDA)
	setStore(0x8D, "STA", modeAbsolute, 4, stLDA)
	setStore(0x9D, "STA", modeAbsoluteX, 5, stLDA)
	setStore(0x99, "STA", modeAbsoluteY, 5, stLDA)
	setStore(0x81, "STA", modeIndirectX, 6, stLDA)
	setStore(0x91, "STA", modeIndirectY, 6, stLDA)

	// STX / STY
	setStore(0x86, "STX", modeZeroPage, 3, stLDX)
	setStore(0x96, "STX", modeZeroPageY, 4, stLDX)
	setStore(0x8E, "STX", modeAbsolute, 4, stLDX)
	setStore(0x84, "STY", modeZeroPage, 3, stLDY)
	setStore(0x94, "STY", modeZeroPageX, 4, stLDY)
	setStore(0x8C, "STY", modeAbsolute, 4, stLDY)

	// ADC
	setLoad(0x69, "ADC", modeImmediate, 2, false, opADC)
	setLoad(0x65, "ADC", modeZeroPage, 3, false, opADC)
	setLoad(0x75, "ADC", modeZeroPageX, 4, false, opADC)
	setLoad(0x6D, "ADC", modeAbsolute, 4, false, opADC)
	setLoad(0x7D, "ADC", modeAbsoluteX, 4, true, opADC)
	setLoad(0x79, "ADC", modeAbsoluteY, 4, true, opADC)
	setLoad(0x61, "ADC", modeIndirectX, 6, false, opADC)
	setLoad(0x71, "ADC", modeIndirectY, 5, true, opADC)

	// SBC
	setLoad(0xE9, "SBC", modeImmediate, 2, false, opSBC)
	setLoad(0xE5, "SBC", modeZeroPage, 3, false, opSBC)
	setLoad(0xF5, "SBC", modeZeroPageX, 4, false, opSBC)
	setLoad(0xED, "SBC", modeAbsolute, 4, false, opSBC)
	setLoad(0xFD, "SBC", modeAbsoluteX, 4, true, opSBC)
	setLoad(0xF9, "SBC", modeAbsoluteY, 4, true, opSBC)
	setLoad(0xE1, "SBC", modeIndirectX, 6, false, opSBC)
	setLoad(0xF1, "SBC", modeIndirectY, 5, true, opSBC)

	// AND
	setLoad(0x29, "AND", modeImmediate, 2, false, opAND)
	setLoad(0x25, "AND", modeZeroPage, 3, false, opAND)
	setLoad(0x35, "AND", modeZeroPageX, 4, false, opAND)
	setLoad(0x2D, "AND", modeAbsolute, 4, false, opAND)
	setLoad(0x3D, "AND", modeAbsoluteX, 4, true, opAND)
	setLoad(0x39, "AND", modeAbsoluteY, 4, true, opAND)
	setLoad(0x21, "AND", modeIndirectX, 6, false, opAND)
	setLoad(0x31, "AND", modeIndirectY, 5, true, opAND)

	// ORA
	setLoad(0x09, "ORA", modeImmediate, 2, false, opORA)
	setLoad(0x05, "ORA", modeZeroPage, 3, false, opORA)
	setLoad(0x15, "ORA", modeZeroPageX, 4, false, opORA)
	setLoad(0x0D, "ORA", modeAbsolute, 4, false, opORA)
	setLoad(0x1D, "ORA", modeAbsoluteX, 4, true, opORA)
	setLoad(0x19, "ORA", modeAbsoluteY, 4, true, opORA)
	setLoad(0x01, "ORA", modeIndirectX, 6, false, opORA)
	setLoad(0x11, "ORA", modeIndirectY, 5, true, opORA)

	// EOR
	setLoad(0x49, "EOR", modeImmediate, 2, false, opEOR)
	setLoad(0x45, "EOR", modeZeroPage, 3, false, opEOR)
	setLoad(0x55, "EOR", modeZeroPageX, 4, false, opEOR)
	setLoad(0x4D, "EOR", modeAbsolute, 4, false, opEOR)
	setLoad(0x5D, "EOR", modeAbsoluteX, 4, true, opEOR)
	setLoad(0x59, "EOR", modeAbsoluteY, 4, true, opEOR)
	setLoad(0x41, "EOR", modeIndirectX, 6, false, opEOR)
	setLoad(0x51, "EOR", modeIndirectY, 5, true, opEOR)

	// CMP
	setLoad(0xC9, "CMP", modeImmediate, 2, false, opCMP)
	setLoad(0xC5, "CMP", modeZeroPage, 3, false, opCMP)
	setLoad(0xD5, "CMP", modeZeroPageX, 4, false, opCMP)
	setLoad(0xCD, "CMP", modeAbsolute, 4, false, opCMP)
	setLoad(0xDD, "CMP", modeAbsoluteX, 4, true, opCMP)
	setLoad(0xD9, "CMP", modeAbsoluteY, 4, true, opCMP)
	setLoad(0xC1, "CMP", modeIndirectX, 6, false, opCMP)
	setLoad(0xD1, "CMP", modeIndirectY, 5, true, opCMP)

	// CPX / CPY
	setLoad(0xE0, "CPX", modeImmediate, 2, false, opCPX)
	setLoad(0xE4, "CPX", modeZeroPage, 3, false, opCPX)
	setLoad(0xEC, "CPX", modeAbsolute, 4, false, opCPX)
	setLoad(0xC0, "CPY", modeImmediate, 2, false, opCPY)
	setLoad(0xC4, "CPY", modeZeroPage, 3, false, opCPY)
	setLoad(0xCC, "CPY", modeAbsolute, 4, false, opCPY)

	// BIT
	setLoad(0x24, "BIT", modeZeroPage, 3, false, opBIT)
	setLoad(0x2C, "BIT", modeAbsolute, 4, false, opBIT)

	// ASL / LSR / ROL / ROR, memory forms
	setRMW(0x06, "ASL", modeZeroPage, 5, opASL)
	setRMW(0x16, "ASL", modeZeroPageX, 6, opASL)
	setRMW(0x0E, "ASL", modeAbsolute, 6, opASL)
	setRMW(0x1E, "ASL", modeAbsoluteX, 7, opASL)
	setRMW(0x46, "LSR", modeZeroPage, 5, opLSR)
	setRMW(0x56, "LSR", modeZeroPageX, 6, opLSR)
	setRMW(0x4E, "LSR", modeAbsolute, 6, opLSR)
	setRMW(0x5E, "LSR", modeAbsoluteX, 7, opLSR)
	setRMW(0x26, "ROL", modeZeroPage, 5, opROL)
	setRMW(0x36, "ROL", modeZeroPageX, 6, opROL)
	setRMW(0x2E, "ROL", modeAbsolute, 6, opROL)
	setRMW(0x3E, "ROL", modeAbsoluteX, 7, opROL)
	setRMW(0x66, "ROR", modeZeroPage, 5, opROR)
	setRMW(0x76, "ROR", modeZeroPageX, 6, opROR)
	setRMW(0x6E, "ROR", modeAbsolute, 6, opROR)
	setRMW(0x7E, "ROR", modeAbsoluteX, 7, opROR)

	// ASL / LSR / ROL / ROR, accumulator forms
	setImplied(0x0A, "ASL", modeAccumulator, 2, implASLAcc)
	setImplied(0x4A, "LSR", modeAccumulator, 2, implLSRAcc)
	setImplied(0x2A, "ROL", modeAccumulator, 2, implROLAcc)
	setImplied(0x6A, "ROR", modeAccumulator, 2, implRORAcc)

	// INC / DEC, memory
	setRMW(0xE6, "INC", modeZeroPage, 5, opINC)
	setRMW(0xF6, "INC", modeZeroPageX, 6, opINC)
	setRMW(0xEE, "INC", modeAbsolute, 6, opINC)
	setRMW(0xFE, "INC", modeAbsoluteX, 7, opINC)
	setRMW(0xC6, "DEC", modeZeroPage, 5, opDEC)
	setRMW(0xD6, "DEC", modeZeroPageX, 6, opDEC)
	setRMW(0xCE, "DEC", modeAbsolute, 6, opDEC)
	setRMW(0xDE, "DEC", modeAbsoluteX, 7, opDEC)

	// INX / INY / DEX / DEY
	setImplied(0xE8, "INX", modeImplied, 2, implINX)
	setImplied(0xC8, "INY", modeImplied, 2, implINY)
	setImplied(0xCA, "DEX", modeImplied, 2, implDEX)
	setImplied(0x88, "DEY", modeImplied, 2, implDEY)

	// Transfers
	setImplied(0xAA, "TAX", modeImplied, 2, implTAX)
	setImplied(0xA8, "TAY", modeImplied, 2, implTAY)
	setImplied(0x8A, "TXA", modeImplied, 2, implTXA)
	setImplied(0x98, "TYA", modeImplied, 2, implTYA)
	setImplied(0xBA, "TSX", modeImplied, 2, implTSX)
	setImplied(0x9A, "TXS", modeImplied, 2, implTXS)

	// Flag operations
	setImplied(0x18, "CLC", modeImplied, 2, implCLC)
	setImplied(0x38, "SEC", modeImplied, 2, implSEC)
	setImplied(0x58, "CLI", modeImplied, 2, implCLI)
	setImplied(0x78, "SEI", modeImplied, 2, implSEI)
	setImplied(0xB8, "CLV", modeImplied, 2, implCLV)
	setImplied(0xD8, "CLD", modeImplied, 2, implCLD)
	setImplied(0xF8, "SED", modeImplied, 2, implSED)
	setImplied(0xEA, "NOP", modeImplied, 2, implNOP)

	// Stack
	setImplied(0x48, "PHA", modeImplied, 3, implPHA)
	setImplied(0x68, "PLA", modeImplied, 4, implPLA)
	setImplied(0x08, "PHP", modeImplied, 3, implPHP)
	setImplied(0x28, "PLP", modeImplied, 4, implPLP)

	// Branches (base 2, +1 taken, +1 more on page cross, computed in branch())
	setImplied(0x90, "BCC", modeRelative, 2, implBCC)
	setImplied(0xB0, "BCS", modeRelative, 2, implBCS)
	setImplied(0xF0, "BEQ", modeRelative, 2, implBEQ)
	setImplied(0xD0, "BNE", modeRelative, 2, implBNE)
	setImplied(0x30, "BMI", modeRelative, 2, implBMI)
	setImplied(0x10, "BPL", modeRelative, 2, implBPL)
	setImplied(0x50, "BVC", modeRelative, 2, implBVC)
	setImplied(0x70, "BVS", modeRelative, 2, implBVS)

	// Jumps / subroutine / interrupt return
	setImplied(0x4C, "JMP", modeAbsolute, 3, implJMPAbsolute)
	setImplied(0x6C, "JMP", modeIndirect, 5, implJMPIndirect)
	setImplied(0x20, "JSR", modeAbsolute, 6, implJSR)
	setImplied(0x60, "RTS", modeImplied, 6, implRTS)
	setImplied(0x00, "BRK", modeImplied, 7, implBRK)
	setImplied(0x40, "RTI", modeImplied, 6, implRTI)
}
