package cpu

// Registers holds the programmer-visible 6502 state: accumulator, index
// registers, stack pointer, program counter and status flags. Grouped as a
// single struct per original_source's cpu::Registers shape rather than
// split across sub-objects.
type Registers struct {
	A, X, Y, S uint8
	PC         uint16
	P          Flags
}

// SetAcc writes A and updates N/Z, the one register write spec.md calls
// out as a named convenience (§4.2).
func (r *Registers) SetAcc(v uint8) {
	r.A = v
	r.P.SetNZ(v)
}

// SetX writes X and updates N/Z.
func (r *Registers) SetX(v uint8) {
	r.X = v
	r.P.SetNZ(v)
}

// SetY writes Y and updates N/Z.
func (r *Registers) SetY(v uint8) {
	r.Y = v
	r.P.SetNZ(v)
}

// PageCrossed reports whether two addresses fall in different 256 byte
// pages, the shared test used by the absolute indexed and (d),y addressing
// modes and by branch-taken cycle accounting.
func PageCrossed(oldAddr, newAddr uint16) bool {
	return oldAddr&0xFF00 != newAddr&0xFF00
}
