package cpu

// This file exposes just enough of the internal dispatch table for
// external tooling (the disassembler, trace output in cmd/runrom) without
// letting those callers reach into opcodeEntry's execution function
// pointers.

// Mode re-exports the addressing mode enumeration for callers outside this
// package, e.g. the disassembler choosing an operand format.
type Mode = mode

// Addressing mode constants, exported for use by disassemble and cmd/runrom.
const (
	ModeImplied     = modeImplied
	ModeAccumulator = modeAccumulator
	ModeImmediate   = modeImmediate
	ModeZeroPage    = modeZeroPage
	ModeZeroPageX   = modeZeroPageX
	ModeZeroPageY   = modeZeroPageY
	ModeAbsolute    = modeAbsolute
	ModeAbsoluteX   = modeAbsoluteX
	ModeAbsoluteY   = modeAbsoluteY
	ModeIndirectX   = modeIndirectX
	ModeIndirectY   = modeIndirectY
	ModeIndirect    = modeIndirect
	ModeRelative    = modeRelative
)

// DispatchInfo is the read-only subset of an opcodeEntry safe to expose.
type DispatchInfo struct {
	Mnemonic string
	Mode     Mode
}

// Lookup reports the mnemonic and addressing mode for opcode, and false if
// opcode has no defined semantics in the documented instruction set.
func Lookup(opcode uint8) (DispatchInfo, bool) {
	e := &dispatchTable[opcode]
	if e.kind == kindIllegal {
		return DispatchInfo{}, false
	}
	return DispatchInfo{Mnemonic: e.mnemonic, Mode: e.mode}, true
}
