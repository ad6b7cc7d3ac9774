// Package cpu implements the MOS 6502 core as used in the NES's 2A03
// (decimal mode present as a status bit only, never affecting arithmetic).
// It drives fetch-decode-execute one full instruction per Step call,
// computing effective addresses, flag side effects and per-instruction
// cycle costs exactly, without modeling individual bus ticks.
package cpu

import (
	"fmt"

	"github.com/jchacon-labs/m6502core/irq"
	"github.com/jchacon-labs/m6502core/memory"
)

// Interrupt vectors, little-endian words (spec.md §3).
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// stackBase is the fixed page the stack pointer indexes into (spec.md §3).
const stackBase = uint16(0x0100)

// CPU is a single 6502 core. It owns no memory of its own; every read and
// write goes through the Bus it was constructed with.
type CPU struct {
	Regs   Registers
	bus    memory.Bus
	nmi    irq.Sender
	irqLn  irq.Sender
	cycles uint64

	strictStack bool

	// op/pc are cached for the duration of the instruction currently being
	// decoded, so mnemonic and error-reporting code can refer to "the
	// opcode PC" without threading it through every call.
	opPC uint16
	op   uint8
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithStrictStack makes push/pop at the S wraparound boundary return
// StackExhaustion instead of silently wrapping like real hardware
// (spec.md §7). Off by default.
func WithStrictStack() Option {
	return func(c *CPU) { c.strictStack = true }
}

// New constructs a CPU wired to bus, with optional NMI and IRQ sources.
// Either may be nil if that line is never driven. Reset is not called
// automatically; call Reset before the first Step.
func New(bus memory.Bus, nmi, irqLine irq.Sender, opts ...Option) *CPU {
	c := &CPU{bus: bus, nmi: nmi, irqLn: irqLine}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cycles returns the running cycle total. Reset adds its 7 cycles to this
// total rather than zeroing it, so the count keeps growing across resets.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Registers returns a copy of the current register file.
func (c *CPU) Registers() Registers {
	return c.Regs
}

// Reset loads PC from the reset vector, sets Interrupt-Disable, and
// otherwise leaves register contents as they were (spec.md §4.7). The
// canonical hardware cost is 7 cycles; this implementation charges that
// against the cycle counter so downstream timing stays consistent with a
// freshly powered-on system.
func (c *CPU) Reset() {
	c.Regs.P.Set(FlagInterrupt, true)
	c.Regs.PC = c.bus.Read16(ResetVector)
	c.cycles += 7
}

// push writes val to the stack and decrements S, wrapping modulo 256
// unless strict-stack mode is enabled and S is already at 0x00.
func (c *CPU) push(val uint8) error {
	if c.strictStack && c.Regs.S == 0x00 {
		return StackExhaustion{Op: c.op, PC: c.opPC, Push: true}
	}
	c.bus.Write8(stackBase+uint16(c.Regs.S), val)
	c.Regs.S--
	return nil
}

// pop reads the top stack byte and increments S, wrapping modulo 256
// unless strict-stack mode is enabled and S is already at 0xFF.
func (c *CPU) pop() (uint8, error) {
	if c.strictStack && c.Regs.S == 0xFF {
		return 0, StackExhaustion{Op: c.op, PC: c.opPC, Push: false}
	}
	c.Regs.S++
	return c.bus.Read8(stackBase + uint16(c.Regs.S)), nil
}

// Step decodes and executes exactly one instruction starting at the
// current PC, or services a pending interrupt if one is latched and
// (for IRQ) not masked. It returns the number of cycles the instruction
// (or interrupt entry) consumed.
//
// Priority on entry, per spec.md §4.7: a latched NMI always wins over a
// pending IRQ; IRQ is only serviced when Interrupt-Disable is clear.
func (c *CPU) Step() (uint64, error) {
	if c.nmi != nil && c.nmi.Raised() {
		if latch, ok := c.nmi.(irq.Latch); ok {
			latch.Clear()
		}
		return c.serviceInterrupt(NMIVector, false)
	}
	if c.irqLn != nil && c.irqLn.Raised() && !c.Regs.P.Has(FlagInterrupt) {
		return c.serviceInterrupt(IRQVector, false)
	}

	c.opPC = c.Regs.PC
	c.op = c.bus.Read8(c.Regs.PC)
	c.Regs.PC++

	entry := &dispatchTable[c.op]
	if entry.kind == kindIllegal {
		return 0, IllegalOpcode{Op: c.op, PC: c.opPC}
	}

	extra, err := c.execute(entry)
	if err != nil {
		return 0, err
	}
	total := uint64(entry.base + extra)
	c.cycles += total
	return total, nil
}

// serviceInterrupt implements the shared NMI/IRQ entry sequence: push PC
// (high, low), push P with Break clear, set Interrupt-Disable, load PC
// from vector. Costs a fixed 7 cycles (spec.md §4.7). brkEntry selects the
// pushed Break bit; Step passes false for both NMI and IRQ, and BRK runs
// its own entry sequence in implBRK.
func (c *CPU) serviceInterrupt(vector uint16, brkEntry bool) (uint64, error) {
	if err := c.pushWord(c.Regs.PC); err != nil {
		return 0, err
	}
	if err := c.push(c.Regs.P.Pushed(brkEntry)); err != nil {
		return 0, err
	}
	c.Regs.P.Set(FlagInterrupt, true)
	c.Regs.PC = c.bus.Read16(vector)
	c.cycles += 7
	return 7, nil
}

// pushWord pushes a 16 bit value high byte first, then low byte, matching
// JSR/BRK/NMI/IRQ entry order.
func (c *CPU) pushWord(v uint16) error {
	if err := c.push(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push(uint8(v))
}

// popWord pops a 16 bit value low byte first, then high byte (RTS/RTI).
func (c *CPU) popWord() (uint16, error) {
	lo, err := c.pop()
	if err != nil {
		return 0, err
	}
	hi, err := c.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// String renders the register file for debugging/trace output.
func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X P=%02X PC=%04X",
		c.Regs.A, c.Regs.X, c.Regs.Y, c.Regs.S, uint8(c.Regs.P), c.Regs.PC)
}
