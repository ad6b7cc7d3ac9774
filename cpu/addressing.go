package cpu

import "fmt"

// mode identifies one of the addressing modes enumerated in spec.md §4.4.
// Implied, Accumulator and Relative are not routed through evalAddress:
// Implied/Accumulator instructions take no operand fetch at all, and
// Relative's cycle accounting (branch taken / page cross) is distinct
// enough from the indexed-load rule that it is handled directly by the
// branch dispatch helper instead.
type mode int

const (
	modeImplied mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect
	modeRelative
)

// loadOperand evaluates mode for a read-only instruction (LDA/ADC/AND/CMP/...),
// returning the operand byte and whether an indexed access crossed a page
// boundary. Only read-like indexed loads ever charge the conditional cycle
// for this (spec.md §9); callers gate on the dispatch entry's
// pageCrossExtra flag before adding it.
func (c *CPU) loadOperand(m mode) (uint8, bool) {
	if m == modeImmediate {
		v := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		return v, false
	}
	addr, pageCross := c.evalAddress(m)
	return c.bus.Read8(addr), pageCross
}

// storeAddress evaluates mode for a write-only instruction (STA/STX/STY).
// Stores never charge a page-cross cycle regardless of the address formed.
func (c *CPU) storeAddress(m mode) uint16 {
	addr, _ := c.evalAddress(m)
	return addr
}

// rmwAddress evaluates mode for a read-modify-write instruction (ASL/LSR/
// ROL/ROR/INC/DEC on memory). Kept distinct from storeAddress so call
// sites read as intent even though the underlying computation is shared.
func (c *CPU) rmwAddress(m mode) uint16 {
	addr, _ := c.evalAddress(m)
	return addr
}

// evalAddress computes the effective address for any memory-backed
// addressing mode and reports whether forming it crossed a page boundary,
// following the table in spec.md §4.4. All arithmetic wraps modulo 65536
// (16 bit) or modulo 256 (zero page), which uint16/uint8 overflow gives us
// for free.
func (c *CPU) evalAddress(m mode) (uint16, bool) {
	switch m {
	case modeZeroPage:
		zp := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		return uint16(zp), false
	case modeZeroPageX:
		zp := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		return uint16(uint8(zp + c.Regs.X)), false
	case modeZeroPageY:
		zp := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		return uint16(uint8(zp + c.Regs.Y)), false
	case modeAbsolute:
		w := c.bus.Read16(c.Regs.PC)
		c.Regs.PC += 2
		return w, false
	case modeAbsoluteX:
		w := c.bus.Read16(c.Regs.PC)
		c.Regs.PC += 2
		addr := w + uint16(c.Regs.X)
		return addr, PageCrossed(w, addr)
	case modeAbsoluteY:
		w := c.bus.Read16(c.Regs.PC)
		c.Regs.PC += 2
		addr := w + uint16(c.Regs.Y)
		return addr, PageCrossed(w, addr)
	case modeIndirectX:
		// (d,x): pointer is read from zero page at (d+X), wrapping within
		// page zero — never a 16 bit add.
		zp := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		ptr := uint8(zp + c.Regs.X)
		return c.bus.Read16ZP(ptr), false
	case modeIndirectY:
		// (d),y: pointer is read from zero page at d, then Y is added to
		// the resulting 16 bit base. Page-cross is measured between that
		// pre-index base and the post-index address (spec.md §9's
		// canonical resolution of the indexed-indirect open question).
		zp := c.bus.Read8(c.Regs.PC)
		c.Regs.PC++
		base := c.bus.Read16ZP(zp)
		addr := base + uint16(c.Regs.Y)
		return addr, PageCrossed(base, addr)
	}
	panic(fmt.Sprintf("evalAddress: unsupported mode %d", m))
}

// jmpIndirectTarget resolves the operand of JMP (a), reproducing the
// documented hardware bug (spec.md §4.5, §8 scenario 6): if the pointer's
// low byte is 0xFF, the high byte is fetched from the start of the same
// page instead of crossing into the next one.
func (c *CPU) jmpIndirectTarget(ptr uint16) uint16 {
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	lo := c.bus.Read8(ptr)
	hi := c.bus.Read8(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// relativeTarget reads the signed branch displacement following the
// opcode, advances PC past it, and returns the branch target PC would have
// if taken along with whether that target lands on a different page than
// the address immediately following the displacement byte — the "current
// PC" baseline spec.md §4.5 specifies for branch page-cross accounting.
func (c *CPU) relativeTarget() (target uint16, pageCross bool) {
	d := int8(c.bus.Read8(c.Regs.PC))
	c.Regs.PC++
	base := c.Regs.PC
	target = uint16(int32(base) + int32(d))
	return target, PageCrossed(base, target)
}
