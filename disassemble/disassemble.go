// Package disassemble renders a single instruction at a given address as
// text, reading operand bytes through the same memory.Bus the CPU itself
// uses. Adapted from jmchacon-6502/disassemble/disassemble.go, trimmed to
// the 151 documented opcodes cpu.dispatchTable knows about: anything else
// disassembles as "???" rather than naming an undocumented mnemonic this
// module never implements (spec.md's explicit non-goal on illegal
// opcodes).
package disassemble

import (
	"fmt"

	"github.com/jchacon-labs/m6502core/cpu"
	"github.com/jchacon-labs/m6502core/memory"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes it occupies (1-3). For every documented opcode it
// reads both bytes after pc, even when the instruction at pc is shorter;
// for an undocumented opcode it reads only pc.
func Step(pc uint16, bus memory.Bus) (string, int) {
	opcode := bus.Read8(pc)
	entry, ok := cpu.Lookup(opcode)
	if !ok {
		return fmt.Sprintf("%04X %02X         ???", pc, opcode), 1
	}

	b1 := bus.Read8(pc + 1)
	b2 := bus.Read8(pc + 2)
	mnemonic := entry.Mnemonic

	switch entry.Mode {
	case cpu.ModeImplied, cpu.ModeAccumulator:
		return fmt.Sprintf("%04X %02X         %s", pc, opcode, mnemonic), 1
	case cpu.ModeImmediate:
		return fmt.Sprintf("%04X %02X %02X      %s #$%02X", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeZeroPage:
		return fmt.Sprintf("%04X %02X %02X      %s $%02X", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("%04X %02X %02X      %s $%02X,X", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("%04X %02X %02X      %s $%02X,Y", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeIndirectX:
		return fmt.Sprintf("%04X %02X %02X      %s ($%02X,X)", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeIndirectY:
		return fmt.Sprintf("%04X %02X %02X      %s ($%02X),Y", pc, opcode, b1, mnemonic, b1), 2
	case cpu.ModeAbsolute:
		return fmt.Sprintf("%04X %02X %02X %02X   %s $%02X%02X", pc, opcode, b1, b2, mnemonic, b2, b1), 3
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("%04X %02X %02X %02X   %s $%02X%02X,X", pc, opcode, b1, b2, mnemonic, b2, b1), 3
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("%04X %02X %02X %02X   %s $%02X%02X,Y", pc, opcode, b1, b2, mnemonic, b2, b1), 3
	case cpu.ModeIndirect:
		return fmt.Sprintf("%04X %02X %02X %02X   %s ($%02X%02X)", pc, opcode, b1, b2, mnemonic, b2, b1), 3
	case cpu.ModeRelative:
		target := uint16(int32(pc) + 2 + int32(int8(b1)))
		return fmt.Sprintf("%04X %02X %02X      %s $%02X (%04X)", pc, opcode, b1, mnemonic, b1, target), 2
	}
	return fmt.Sprintf("%04X %02X         ???", pc, opcode), 1
}
