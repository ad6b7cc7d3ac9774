package cpu

import "testing"

func TestFlagsSetNZ(t *testing.T) {
	tests := []struct {
		name       string
		v          uint8
		wantZero   bool
		wantNeg    bool
	}{
		{"zero value", 0x00, true, false},
		{"positive", 0x42, false, false},
		{"negative", 0x80, false, true},
		{"negative nonzero low bits", 0xFF, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f Flags
			f.SetNZ(tc.v)
			if got := f.Has(FlagZero); got != tc.wantZero {
				t.Errorf("Zero = %v, want %v", got, tc.wantZero)
			}
			if got := f.Has(FlagNegative); got != tc.wantNeg {
				t.Errorf("Negative = %v, want %v", got, tc.wantNeg)
			}
		})
	}
}

func TestFlagsSetCarryFrom9Bit(t *testing.T) {
	var f Flags
	f.SetCarryFrom9Bit(0x1FF)
	if !f.Has(FlagCarry) {
		t.Error("expected Carry set for 9 bit result with bit 8 set")
	}
	f.SetCarryFrom9Bit(0x00FF)
	if f.Has(FlagCarry) {
		t.Error("expected Carry clear for 9 bit result without bit 8 set")
	}
}

func TestFlagsSetOverflow(t *testing.T) {
	tests := []struct {
		name           string
		a, operand, r  uint8
		wantOverflow   bool
	}{
		// 0x50 + 0x50 = 0xA0: positive + positive = negative, overflow.
		{"pos+pos=neg overflows", 0x50, 0x50, 0xA0, true},
		// 0xD0 + 0x90 = 0x160 -> 0x60: negative + negative = positive, overflow.
		{"neg+neg=pos overflows", 0xD0, 0x90, 0x60, true},
		// 0x50 + 0x10 = 0x60: no overflow.
		{"pos+pos=pos no overflow", 0x50, 0x10, 0x60, false},
		// 0x50 + 0xF0 = 0x140 -> 0x40: mixed signs never overflow.
		{"mixed signs no overflow", 0x50, 0xF0, 0x40, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f Flags
			f.SetOverflow(tc.a, tc.operand, tc.r)
			if got := f.Has(FlagOverflow); got != tc.wantOverflow {
				t.Errorf("Overflow = %v, want %v", got, tc.wantOverflow)
			}
		})
	}
}

func TestFlagsPushedForcesBreakAndUnused(t *testing.T) {
	var f Flags // all clear
	if got := f.Pushed(true); got&uint8(FlagBreak) == 0 || got&uint8(FlagUnused) == 0 {
		t.Errorf("Pushed(true) = %02X, want Break and Unused both set", got)
	}
	if got := f.Pushed(false); got&uint8(FlagBreak) != 0 {
		t.Errorf("Pushed(false) = %02X, want Break clear", got)
	}
	if got := f.Pushed(false); got&uint8(FlagUnused) == 0 {
		t.Errorf("Pushed(false) = %02X, want Unused still set", got)
	}
}

func TestFlagsFromPulledDiscardsBreakForcesUnused(t *testing.T) {
	got := FlagsFromPulled(0xFF)
	if got.Has(FlagBreak) {
		t.Error("FlagsFromPulled should clear Break regardless of pushed byte")
	}
	if !got.Has(FlagUnused) {
		t.Error("FlagsFromPulled should force Unused set regardless of pushed byte")
	}

	got = FlagsFromPulled(0x00)
	if !got.Has(FlagUnused) {
		t.Error("FlagsFromPulled should force Unused even from an all-zero byte")
	}
}
