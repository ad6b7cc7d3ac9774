// Package memory defines the bus contract the cpu package consumes and
// provides a flat 64 KiB reference implementation for tests and the
// cmd/runrom harness. Real systems back Bus with a mapper that decodes
// addresses into RAM/ROM/PPU-register regions; that decoding is outside
// this module's scope (see spec.md §1) and is the caller's concern.
package memory

// Bus is the narrow contract between the CPU and the rest of the system.
// Implementations may attach side effects to reads/writes at specific
// addresses (memory-mapped registers); the CPU only ever sees the byte
// values returned, never the side effects themselves.
type Bus interface {
	// Read8 returns the byte at addr. Must have no CPU-visible side effects
	// beyond the returned value.
	Read8(addr uint16) uint8
	// Write8 stores val at addr.
	Write8(addr uint16, val uint8)
	// Read16 performs a little-endian 16 bit read at addr and addr+1,
	// wrapping addr+1 modulo 65536.
	Read16(addr uint16) uint16
	// Read16ZP performs the zero-page-wraparound 16 bit read required by
	// indexed-indirect and indirect-indexed addressing: the low byte is at
	// base, the high byte at (base+1)&0xFF, never crossing into page 1.
	Read16ZP(base uint8) uint16
}

// FlatBus is a reference Bus backed by a single 64 KiB byte array mapped
// 1:1 onto the address space. It is the harness spec.md §1 calls for: no
// mapper, no mirroring, no side effects.
type FlatBus struct {
	ram [65536]uint8
}

// NewFlatBus returns a zero-filled FlatBus.
func NewFlatBus() *FlatBus {
	return &FlatBus{}
}

// Load copies data into the bus starting at addr, for building test
// fixtures and loading raw ROM images in the reference harness. It does not
// wrap; a data slice that runs past 0xFFFF is an error in the caller, not
// here.
func (b *FlatBus) Load(addr uint16, data []uint8) {
	for i, v := range data {
		b.ram[int(addr)+i] = v
	}
}

// Read8 implements Bus.
func (b *FlatBus) Read8(addr uint16) uint8 {
	return b.ram[addr]
}

// Write8 implements Bus.
func (b *FlatBus) Write8(addr uint16, val uint8) {
	b.ram[addr] = val
}

// Read16 implements Bus.
func (b *FlatBus) Read16(addr uint16) uint16 {
	lo := b.ram[addr]
	hi := b.ram[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// Read16ZP implements Bus.
func (b *FlatBus) Read16ZP(base uint8) uint16 {
	lo := b.ram[uint16(base)]
	hi := b.ram[uint16(uint8(base+1))]
	return uint16(hi)<<8 | uint16(lo)
}
