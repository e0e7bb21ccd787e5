package memory

import (
	"encoding/binary"

	"github.com/unifiedrt/urprint/errors"
)

// Buffer is a single captured segment of runtime memory, addressed by the
// base it occupied in the traced process.
type Buffer struct {
	base uint64
	data []byte
}

// NewBuffer wraps data as the bytes at [base, base+len(data)). The slice is
// not copied; callers must not mutate it during renders.
func NewBuffer(base uint64, data []byte) *Buffer {
	return &Buffer{base: base, data: data}
}

// Base returns the segment's base address.
func (b *Buffer) Base() uint64 { return b.base }

// Len returns the segment's length in bytes.
func (b *Buffer) Len() uint64 { return uint64(len(b.data)) }

func (b *Buffer) contains(addr, length uint64) bool {
	if addr < b.base {
		return false
	}
	off := addr - b.base
	return off <= uint64(len(b.data)) && length <= uint64(len(b.data))-off
}

func (b *Buffer) Read(addr uint64, length uint64) ([]byte, error) {
	if addr == 0 {
		return nil, errors.NullRead()
	}
	if addr+length < addr {
		return nil, errors.Overflow(addr, length)
	}
	if !b.contains(addr, length) {
		return nil, errors.OutOfBounds(addr, length)
	}
	off := addr - b.base
	return b.data[off : off+length], nil
}

func (b *Buffer) ReadU8(addr uint64) (uint8, error) {
	d, err := b.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

func (b *Buffer) ReadU16(addr uint64) (uint16, error) {
	d, err := b.Read(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d), nil
}

func (b *Buffer) ReadU32(addr uint64) (uint32, error) {
	d, err := b.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d), nil
}

func (b *Buffer) ReadU64(addr uint64) (uint64, error) {
	d, err := b.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d), nil
}
