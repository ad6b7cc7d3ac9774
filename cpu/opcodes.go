package cpu

// This file implements each 6502 mnemonic exactly once (spec.md §2 item 5),
// factored by shape: loadFn operates on a fetched byte, storeFn supplies the
// byte to store, rmwFn transforms an in-place memory byte, and the implFn
// family below handles everything that doesn't decompose into those three
// shapes (transfers, stack, flow control, flag bits).

// --- load-shaped mnemonics: fn(c, operand byte) ---

func opLDA(c *CPU, v uint8) { c.Regs.SetAcc(v) }
func opLDX(c *CPU, v uint8) { c.Regs.SetX(v) }
func opLDY(c *CPU, v uint8) { c.Regs.SetY(v) }

// opADC implements Add with Carry (spec.md §4.5). SBC reuses this with the
// operand one's-complemented: C then represents "no borrow" on entry/exit
// and the same overflow computation applies unchanged.
func opADC(c *CPU, v uint8) {
	carry := uint16(0)
	if c.Regs.P.Has(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.Regs.A) + uint16(v) + carry
	result := uint8(sum)
	c.Regs.P.SetOverflow(c.Regs.A, v, result)
	c.Regs.P.SetCarryFrom9Bit(sum)
	c.Regs.SetAcc(result)
}

func opSBC(c *CPU, v uint8) {
	opADC(c, ^v)
}

func opAND(c *CPU, v uint8) { c.Regs.SetAcc(c.Regs.A & v) }
func opORA(c *CPU, v uint8) { c.Regs.SetAcc(c.Regs.A | v) }
func opEOR(c *CPU, v uint8) { c.Regs.SetAcc(c.Regs.A ^ v) }

// opBIT sets Z from A&v, but N and V from bits 7 and 6 of the operand
// itself, not of the (discarded) AND result (spec.md §4.5).
func opBIT(c *CPU, v uint8) {
	c.Regs.P.Set(FlagZero, c.Regs.A&v == 0)
	c.Regs.P.Set(FlagNegative, v&0x80 != 0)
	c.Regs.P.Set(FlagOverflow, v&0x40 != 0)
}

// compare is shared by CMP/CPX/CPY: C is set when reg >= operand, N/Z come
// from the (unsigned, wrapping) low byte of the difference, and the result
// itself is never stored (spec.md §4.5).
func compare(c *CPU, reg, v uint8) {
	c.Regs.P.Set(FlagCarry, reg >= v)
	c.Regs.P.SetNZ(reg - v)
}

func opCMP(c *CPU, v uint8) { compare(c, c.Regs.A, v) }
func opCPX(c *CPU, v uint8) { compare(c, c.Regs.X, v) }
func opCPY(c *CPU, v uint8) { compare(c, c.Regs.Y, v) }

// --- store-shaped mnemonics: fn(c) uint8, value to write ---

func stLDA(c *CPU) uint8 { return c.Regs.A }
func stLDX(c *CPU) uint8 { return c.Regs.X }
func stLDY(c *CPU) uint8 { return c.Regs.Y }

// --- read-modify-write mnemonics: fn(c, old byte) -> new byte ---

func opASL(c *CPU, v uint8) uint8 {
	c.Regs.P.Set(FlagCarry, v&0x80 != 0)
	result := v << 1
	c.Regs.P.SetNZ(result)
	return result
}

func opLSR(c *CPU, v uint8) uint8 {
	c.Regs.P.Set(FlagCarry, v&0x01 != 0)
	result := v >> 1
	c.Regs.P.SetNZ(result)
	return result
}

func opROL(c *CPU, v uint8) uint8 {
	oldCarry := uint8(0)
	if c.Regs.P.Has(FlagCarry) {
		oldCarry = 1
	}
	c.Regs.P.Set(FlagCarry, v&0x80 != 0)
	result := (v << 1) | oldCarry
	c.Regs.P.SetNZ(result)
	return result
}

func opROR(c *CPU, v uint8) uint8 {
	oldCarry := uint8(0)
	if c.Regs.P.Has(FlagCarry) {
		oldCarry = 0x80
	}
	c.Regs.P.Set(FlagCarry, v&0x01 != 0)
	result := (v >> 1) | oldCarry
	c.Regs.P.SetNZ(result)
	return result
}

func opINC(c *CPU, v uint8) uint8 {
	result := v + 1
	c.Regs.P.SetNZ(result)
	return result
}

func opDEC(c *CPU, v uint8) uint8 {
	result := v - 1
	c.Regs.P.SetNZ(result)
	return result
}

// --- accumulator-mode shifts: implied-kind, operate on Regs.A directly ---

func implASLAcc(c *CPU) (int, error) { c.Regs.A = opASL(c, c.Regs.A); return 0, nil }
func implLSRAcc(c *CPU) (int, error) { c.Regs.A = opLSR(c, c.Regs.A); return 0, nil }
func implROLAcc(c *CPU) (int, error) { c.Regs.A = opROL(c, c.Regs.A); return 0, nil }
func implRORAcc(c *CPU) (int, error) { c.Regs.A = opROR(c, c.Regs.A); return 0, nil }

// --- register transfers ---

func implTAX(c *CPU) (int, error) { c.Regs.SetX(c.Regs.A); return 0, nil }
func implTAY(c *CPU) (int, error) { c.Regs.SetY(c.Regs.A); return 0, nil }
func implTXA(c *CPU) (int, error) { c.Regs.SetAcc(c.Regs.X); return 0, nil }
func implTYA(c *CPU) (int, error) { c.Regs.SetAcc(c.Regs.Y); return 0, nil }
func implTSX(c *CPU) (int, error) { c.Regs.SetX(c.Regs.S); return 0, nil }

// implTXS copies X into S without touching N/Z — the one transfer that
// doesn't, an easy place to err per spec.md §4.5.
func implTXS(c *CPU) (int, error) { c.Regs.S = c.Regs.X; return 0, nil }

// --- increments/decrements ---

func implINX(c *CPU) (int, error) { c.Regs.SetX(c.Regs.X + 1); return 0, nil }
func implINY(c *CPU) (int, error) { c.Regs.SetY(c.Regs.Y + 1); return 0, nil }
func implDEX(c *CPU) (int, error) { c.Regs.SetX(c.Regs.X - 1); return 0, nil }
func implDEY(c *CPU) (int, error) { c.Regs.SetY(c.Regs.Y - 1); return 0, nil }

// --- flag operations: CLD/SED still flip D even though ADC/SBC ignore it ---

func implCLC(c *CPU) (int, error) { c.Regs.P.Set(FlagCarry, false); return 0, nil }
func implSEC(c *CPU) (int, error) { c.Regs.P.Set(FlagCarry, true); return 0, nil }
func implCLI(c *CPU) (int, error) { c.Regs.P.Set(FlagInterrupt, false); return 0, nil }
func implSEI(c *CPU) (int, error) { c.Regs.P.Set(FlagInterrupt, true); return 0, nil }
func implCLV(c *CPU) (int, error) { c.Regs.P.Set(FlagOverflow, false); return 0, nil }
func implCLD(c *CPU) (int, error) { c.Regs.P.Set(FlagDecimal, false); return 0, nil }
func implSED(c *CPU) (int, error) { c.Regs.P.Set(FlagDecimal, true); return 0, nil }

func implNOP(c *CPU) (int, error) { return 0, nil }

// --- stack ---

func implPHA(c *CPU) (int, error) { return 0, c.push(c.Regs.A) }

func implPLA(c *CPU) (int, error) {
	v, err := c.pop()
	if err != nil {
		return 0, err
	}
	c.Regs.SetAcc(v)
	return 0, nil
}

// implPHP always pushes Break set in the pushed copy, regardless of the
// in-register P (spec.md §4.5).
func implPHP(c *CPU) (int, error) { return 0, c.push(c.Regs.P.Pushed(true)) }

// implPLP restores P but discards bits 4/5 of the popped byte on the way
// back in (spec.md §4.5, §9).
func implPLP(c *CPU) (int, error) {
	v, err := c.pop()
	if err != nil {
		return 0, err
	}
	c.Regs.P = FlagsFromPulled(v)
	return 0, nil
}

// --- branches ---

// branch reads the displacement (always, whether or not taken, since it's
// part of the 2 byte instruction), and if taken relocates PC and reports
// the conditional cycle cost: +1 for the taken branch, +1 more if the
// target lands on a different page (spec.md §4.5, §8 property 7).
func branch(c *CPU, taken bool) (int, error) {
	target, pageCross := c.relativeTarget()
	if !taken {
		return 0, nil
	}
	c.Regs.PC = target
	extra := 1
	if pageCross {
		extra++
	}
	return extra, nil
}

func implBCC(c *CPU) (int, error) { return branch(c, !c.Regs.P.Has(FlagCarry)) }
func implBCS(c *CPU) (int, error) { return branch(c, c.Regs.P.Has(FlagCarry)) }
func implBEQ(c *CPU) (int, error) { return branch(c, c.Regs.P.Has(FlagZero)) }
func implBNE(c *CPU) (int, error) { return branch(c, !c.Regs.P.Has(FlagZero)) }
func implBMI(c *CPU) (int, error) { return branch(c, c.Regs.P.Has(FlagNegative)) }
func implBPL(c *CPU) (int, error) { return branch(c, !c.Regs.P.Has(FlagNegative)) }
func implBVC(c *CPU) (int, error) { return branch(c, !c.Regs.P.Has(FlagOverflow)) }
func implBVS(c *CPU) (int, error) { return branch(c, c.Regs.P.Has(FlagOverflow)) }

// --- jumps / subroutine / interrupt return ---

func implJMPAbsolute(c *CPU) (int, error) {
	c.Regs.PC = c.bus.Read16(c.Regs.PC)
	return 0, nil
}

// implJMPIndirect reproduces the documented page-wrap bug via
// jmpIndirectTarget (spec.md §4.5, §8 scenario 6).
func implJMPIndirect(c *CPU) (int, error) {
	ptr := c.bus.Read16(c.Regs.PC)
	c.Regs.PC = c.jmpIndirectTarget(ptr)
	return 0, nil
}

// implJSR pushes the address of the JSR instruction's last byte (PC-1
// relative to the address of the following instruction), then jumps
// (spec.md §4.5).
func implJSR(c *CPU) (int, error) {
	target := c.bus.Read16(c.Regs.PC)
	returnAddr := c.Regs.PC + 1
	if err := c.pushWord(returnAddr); err != nil {
		return 0, err
	}
	c.Regs.PC = target
	return 0, nil
}

// implRTS pops the return address and adds one, undoing JSR's off-by-one
// push (spec.md §4.5).
func implRTS(c *CPU) (int, error) {
	addr, err := c.popWord()
	if err != nil {
		return 0, err
	}
	c.Regs.PC = addr + 1
	return 0, nil
}

// implBRK advances past its padding byte, pushes PC then P (with Break set
// in the pushed copy), sets Interrupt-Disable, and loads PC from the
// IRQ/BRK vector (spec.md §4.5, §4.7).
func implBRK(c *CPU) (int, error) {
	c.Regs.PC++
	if err := c.pushWord(c.Regs.PC); err != nil {
		return 0, err
	}
	if err := c.push(c.Regs.P.Pushed(true)); err != nil {
		return 0, err
	}
	c.Regs.P.Set(FlagInterrupt, true)
	c.Regs.PC = c.bus.Read16(IRQVector)
	return 0, nil
}

// implRTI pops P (clearing the in-register Break bit as hardware does),
// then PC, with no +1 adjustment unlike RTS (spec.md §4.5).
func implRTI(c *CPU) (int, error) {
	v, err := c.pop()
	if err != nil {
		return 0, err
	}
	c.Regs.P = FlagsFromPulled(v)
	addr, err := c.popWord()
	if err != nil {
		return 0, err
	}
	c.Regs.PC = addr
	return 0, nil
}
