package urprint

// Memory is a read-only view over caller-owned runtime memory.
//
// Addresses are 64-bit values in the traced process's address space; address
// zero is the null address and is never readable. Implementations return a
// structured error for any range that is not backed by captured bytes.
type Memory interface {
	Read(addr uint64, length uint64) ([]byte, error)
	ReadU8(addr uint64) (uint8, error)
	ReadU16(addr uint64) (uint16, error)
	ReadU32(addr uint64) (uint32, error)
	ReadU64(addr uint64) (uint64, error)
}

// PointerSize is the width of pointers and handles in the traced runtime.
// The engine targets 64-bit runtimes.
const PointerSize = 8

// NullLiteral is the token emitted for a null address in place of any
// dereference.
const NullLiteral = "nullptr"
