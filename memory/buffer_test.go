package memory

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/unifiedrt/urprint/errors"
)

func TestBuffer_Read(t *testing.T) {
	b := NewBuffer(0x1000, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	d, err := b.Read(0x1002, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(d) != 4 || d[0] != 3 || d[3] != 6 {
		t.Errorf("unexpected bytes: %v", d)
	}
}

func TestBuffer_ReadExactEnd(t *testing.T) {
	b := NewBuffer(0x1000, []byte{1, 2, 3, 4})

	if _, err := b.Read(0x1000, 4); err != nil {
		t.Errorf("full-length read failed: %v", err)
	}
	if _, err := b.Read(0x1004, 0); err != nil {
		t.Errorf("zero-length read at end failed: %v", err)
	}
}

func TestBuffer_ReadOutOfBounds(t *testing.T) {
	b := NewBuffer(0x1000, []byte{1, 2, 3, 4})

	cases := []struct {
		name         string
		addr, length uint64
	}{
		{"below base", 0xfff, 1},
		{"past end", 0x1004, 1},
		{"straddles end", 0x1002, 4},
		{"far away", 0x9000, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Read(tc.addr, tc.length)
			if !stderrors.Is(err, errors.OutOfBounds(tc.addr, tc.length)) {
				t.Errorf("expected out-of-bounds error, got %v", err)
			}
		})
	}
}

func TestBuffer_NullRead(t *testing.T) {
	b := NewBuffer(0, []byte{1, 2, 3, 4})

	_, err := b.Read(0, 4)
	if !stderrors.Is(err, errors.NullRead()) {
		t.Errorf("expected null-read error, got %v", err)
	}
}

func TestBuffer_Overflow(t *testing.T) {
	b := NewBuffer(0x1000, []byte{1, 2, 3, 4})

	_, err := b.Read(math.MaxUint64-1, 8)
	if !stderrors.Is(err, errors.Overflow(0, 0)) {
		t.Errorf("expected overflow error, got %v", err)
	}
}

func TestBuffer_LittleEndian(t *testing.T) {
	b := NewBuffer(0x1000, []byte{0x86, 0x80, 0x00, 0x00, 0xef, 0xbe, 0xad, 0xde})

	if v, err := b.ReadU8(0x1000); err != nil || v != 0x86 {
		t.Errorf("ReadU8 = %#x, %v", v, err)
	}
	if v, err := b.ReadU16(0x1000); err != nil || v != 0x8086 {
		t.Errorf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := b.ReadU32(0x1000); err != nil || v != 0x8086 {
		t.Errorf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := b.ReadU64(0x1000); err != nil || v != 0xdeadbeef00008086 {
		t.Errorf("ReadU64 = %#x, %v", v, err)
	}
}

func TestBuffer_Accessors(t *testing.T) {
	b := NewBuffer(0x2000, make([]byte, 16))
	if b.Base() != 0x2000 {
		t.Errorf("Base = %#x", b.Base())
	}
	if b.Len() != 16 {
		t.Errorf("Len = %d", b.Len())
	}
}

func TestMap_ScatteredSegments(t *testing.T) {
	m := NewMap()
	m.Add(0x1000, []byte{1, 2, 3, 4})
	m.Add(0x9000, []byte{9, 8, 7, 6})

	if m.Segments() != 2 {
		t.Fatalf("Segments = %d", m.Segments())
	}
	if v, err := m.ReadU8(0x1003); err != nil || v != 4 {
		t.Errorf("first segment read = %d, %v", v, err)
	}
	if v, err := m.ReadU8(0x9000); err != nil || v != 9 {
		t.Errorf("second segment read = %d, %v", v, err)
	}
}

// Overlapping segments resolve to the most recently added one.
func TestMap_LaterSegmentWins(t *testing.T) {
	m := NewMap()
	m.Add(0x1000, []byte{1, 1, 1, 1})
	m.Add(0x1000, []byte{2, 2, 2, 2})

	v, err := m.ReadU32(0x1000)
	if err != nil {
		t.Fatalf("ReadU32 failed: %v", err)
	}
	if v != 0x02020202 {
		t.Errorf("expected later segment to win, got %#x", v)
	}
}

// A read must not straddle segments even when their ranges are adjacent.
func TestMap_NoCrossSegmentRead(t *testing.T) {
	m := NewMap()
	m.Add(0x1000, []byte{1, 2})
	m.Add(0x1002, []byte{3, 4})

	_, err := m.ReadU32(0x1000)
	if !stderrors.Is(err, errors.OutOfBounds(0x1000, 4)) {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
}

func TestMap_Errors(t *testing.T) {
	m := NewMap()
	m.Add(0x1000, []byte{1, 2, 3, 4})

	if _, err := m.Read(0, 1); !stderrors.Is(err, errors.NullRead()) {
		t.Errorf("expected null-read error, got %v", err)
	}
	if _, err := m.Read(math.MaxUint64, 2); !stderrors.Is(err, errors.Overflow(0, 0)) {
		t.Errorf("expected overflow error, got %v", err)
	}
	if _, err := m.Read(0x5000, 1); !stderrors.Is(err, errors.OutOfBounds(0, 0)) {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
}
