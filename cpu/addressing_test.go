package cpu

import (
	"testing"

	"github.com/jchacon-labs/m6502core/irq"
	"github.com/jchacon-labs/m6502core/memory"
)

func newTestCPU() (*CPU, *memory.FlatBus) {
	bus := memory.NewFlatBus()
	c := New(bus, &irq.EdgeLatch{}, &irq.Line{})
	return c, bus
}

func TestEvalAddressZeroPageXWraps(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.X = 0x10
	c.Regs.PC = 0x0000
	bus.Write8(0x0000, 0xF8) // zero page operand
	addr, pageCross := c.evalAddress(modeZeroPageX)
	if addr != 0x08 {
		t.Errorf("address = %02X, want 08 (0xF8+0x10 wraps within page zero)", addr)
	}
	if pageCross {
		t.Error("zero page indexed addressing never reports a page cross")
	}
}

func TestEvalAddressAbsoluteXPageCross(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.X = 0x01
	c.Regs.PC = 0x0000
	bus.Write8(0x0000, 0xFF)
	bus.Write8(0x0001, 0x10) // base = 0x10FF
	addr, pageCross := c.evalAddress(modeAbsoluteX)
	if addr != 0x1100 {
		t.Errorf("address = %04X, want 1100", addr)
	}
	if !pageCross {
		t.Error("0x10FF + 1 crosses into page 0x11, expected pageCross = true")
	}
}

func TestEvalAddressAbsoluteXNoPageCross(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.X = 0x01
	c.Regs.PC = 0x0000
	bus.Write8(0x0000, 0x00)
	bus.Write8(0x0001, 0x10) // base = 0x1000
	addr, pageCross := c.evalAddress(modeAbsoluteX)
	if addr != 0x1001 {
		t.Errorf("address = %04X, want 1001", addr)
	}
	if pageCross {
		t.Error("0x1000 + 1 stays in page 0x10, expected pageCross = false")
	}
}

func TestEvalAddressIndirectXNeverCrossesPage(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.X = 0x01
	c.Regs.PC = 0x0200
	bus.Write8(0x0200, 0xFF) // d = 0xFF, so (d+X) wraps to 0x00
	bus.Write8(0x00, 0x34) // pointer low at zero page 0x00
	bus.Write8(0x01, 0x12) // pointer high at zero page 0x01
	addr, pageCross := c.evalAddress(modeIndirectX)
	if addr != 0x1234 {
		t.Errorf("address = %04X, want 1234", addr)
	}
	if pageCross {
		t.Error("(d,x) addressing never reports a page cross")
	}
}

func TestEvalAddressIndirectYPageCrossMeasuredOnBase(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.Y = 0x01
	c.Regs.PC = 0x0000
	bus.Write8(0x0000, 0x10) // d = 0x10
	bus.Write8(0x10, 0xFF)   // pointer low
	bus.Write8(0x11, 0x10)   // pointer high -> base = 0x10FF
	addr, pageCross := c.evalAddress(modeIndirectY)
	if addr != 0x1100 {
		t.Errorf("address = %04X, want 1100", addr)
	}
	if !pageCross {
		t.Error("base 0x10FF + Y=1 crosses into page 0x11, expected pageCross = true")
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	bus.Write8(0x10FF, 0x34) // low byte of target
	bus.Write8(0x1000, 0x12) // high byte incorrectly fetched from page start, not 0x1100
	bus.Write8(0x1100, 0xFF) // decoy: correct (non-buggy) high byte location
	got := c.jmpIndirectTarget(0x10FF)
	if want := uint16(0x1234); got != want {
		t.Errorf("jmpIndirectTarget(0x10FF) = %04X, want %04X (page-wrap bug)", got, want)
	}
}

func TestRelativeTargetForwardAndBackward(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.PC = 0x0200
	bus.Write8(0x0200, 0x05) // +5
	target, _ := c.relativeTarget()
	if want := uint16(0x0206); target != want {
		t.Errorf("forward branch target = %04X, want %04X", target, want)
	}

	c.Regs.PC = 0x0200
	bus.Write8(0x0200, 0xFB) // -5
	target, _ = c.relativeTarget()
	if want := uint16(0x01FC); target != want {
		t.Errorf("backward branch target = %04X, want %04X", target, want)
	}
}
