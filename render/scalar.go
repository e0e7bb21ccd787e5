package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/unifiedrt/urprint"
)

// Scalar identifies a primitive value type and its byte width.
type Scalar uint8

const (
	I8 Scalar = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	Bool
	Size // size_t of the traced runtime
	Ptr  // pointer or handle value
	Char // byte read as a C-string element
)

var scalarSizes = [...]uint64{
	I8:   1,
	U8:   1,
	I16:  2,
	U16:  2,
	I32:  4,
	U32:  4,
	I64:  8,
	U64:  8,
	F32:  4,
	F64:  8,
	Bool: 1,
	Size: urprint.PointerSize,
	Ptr:  urprint.PointerSize,
	Char: 1,
}

var scalarNames = [...]string{
	I8:   "int8_t",
	U8:   "uint8_t",
	I16:  "int16_t",
	U16:  "uint16_t",
	I32:  "int32_t",
	U32:  "uint32_t",
	I64:  "int64_t",
	U64:  "uint64_t",
	F32:  "float",
	F64:  "double",
	Bool: "bool",
	Size: "size_t",
	Ptr:  "void*",
	Char: "char",
}

// ByteSize returns the scalar's width in bytes.
func (s Scalar) ByteSize() uint64 {
	if int(s) < len(scalarSizes) {
		return scalarSizes[s]
	}
	return 0
}

func (s Scalar) String() string {
	if int(s) < len(scalarNames) {
		return scalarNames[s]
	}
	return "unknown"
}

// unreadableToken substitutes for a value whose bytes are not backed by
// captured memory.
const unreadableToken = "unreadable"

// sink accumulates output and latches the first write error so rendering
// code stays linear.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) str(v string) {
	if s.err == nil {
		_, s.err = io.WriteString(s.w, v)
	}
}

func (s *sink) f(format string, args ...any) {
	if s.err == nil {
		_, s.err = fmt.Fprintf(s.w, format, args...)
	}
}

func (s *sink) byte(b byte) {
	if s.err == nil {
		_, s.err = s.w.Write([]byte{b})
	}
}

func (s *sink) addr(a uint64) {
	if a == 0 {
		s.str(urprint.NullLiteral)
		return
	}
	s.f("0x%x", a)
}

// Renderer reads caller-owned memory through the injected view and writes
// diagnostic text. It owns no other state.
type Renderer struct {
	mem urprint.Memory
}

func New(mem urprint.Memory) *Renderer {
	return &Renderer{mem: mem}
}

// TargetKind classifies what a pointer points at for the pointer renderer.
type TargetKind uint8

const (
	TargetVoid    TargetKind = iota // incomplete or unknown pointee
	TargetChar                      // null-terminated byte sequence
	TargetPointer                   // pointer to pointer
	TargetScalar                    // pointee formatted per Elem
)

// Target describes the declared pointee type for Pointer.
type Target struct {
	Kind TargetKind
	Elem Scalar  // used when Kind is TargetScalar
	Next *Target // used when Kind is TargetPointer; nil degrades to address-only
}

// Pointer renders an address and, where the declared pointee type allows,
// one level of dereferenced content. A null address renders the null literal
// and nothing is dereferenced. This renderer never fails on its own; the
// returned error is the sink's write error.
func (r *Renderer) Pointer(w io.Writer, addr uint64, t Target) error {
	s := &sink{w: w}
	r.pointer(s, addr, t)
	return s.err
}

func (r *Renderer) pointer(s *sink, addr uint64, t Target) {
	if addr == 0 {
		s.str(urprint.NullLiteral)
		return
	}
	switch t.Kind {
	case TargetVoid:
		s.addr(addr)
	case TargetChar:
		s.addr(addr)
		s.str(" (")
		r.cstring(s, addr)
		s.str(")")
	case TargetPointer:
		s.addr(addr)
		inner, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(" (" + unreadableToken + ")")
			return
		}
		s.str(" (")
		if t.Next != nil {
			r.pointer(s, inner, *t.Next)
		} else {
			s.addr(inner)
		}
		s.str(")")
	case TargetScalar:
		s.addr(addr)
		s.str(" (")
		r.scalarValue(s, addr, t.Elem)
		s.str(")")
	default:
		s.addr(addr)
	}
}

// cstring prints bytes through to the null terminator. The declared length
// is never consulted; the caller guarantees termination within captured
// memory, and an unreadable first byte substitutes the unreadable token.
func (r *Renderer) cstring(s *sink, addr uint64) {
	b, err := r.mem.ReadU8(addr)
	if err != nil {
		s.str(unreadableToken)
		return
	}
	for b != 0 {
		s.byte(b)
		addr++
		b, err = r.mem.ReadU8(addr)
		if err != nil {
			return
		}
	}
}

// scalarValue reads and formats the value only, without the address prefix.
func (r *Renderer) scalarValue(s *sink, addr uint64, e Scalar) {
	switch e {
	case I8:
		v, err := r.mem.ReadU8(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatInt(int64(int8(v)), 10))
	case U8, Char:
		v, err := r.mem.ReadU8(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatUint(uint64(v), 10))
	case I16:
		v, err := r.mem.ReadU16(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatInt(int64(int16(v)), 10))
	case U16:
		v, err := r.mem.ReadU16(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatUint(uint64(v), 10))
	case I32:
		v, err := r.mem.ReadU32(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatInt(int64(int32(v)), 10))
	case U32:
		v, err := r.mem.ReadU32(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatUint(uint64(v), 10))
	case I64:
		v, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatInt(int64(v), 10))
	case U64, Size:
		v, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatUint(v, 10))
	case F32:
		v, err := r.mem.ReadU32(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatFloat(float64(math.Float32frombits(v)), 'g', -1, 32))
	case F64:
		v, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.str(strconv.FormatFloat(math.Float64frombits(v), 'g', -1, 64))
	case Bool:
		v, err := r.mem.ReadU8(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		if v != 0 {
			s.str("true")
		} else {
			s.str("false")
		}
	case Ptr:
		v, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.addr(v)
	default:
		s.str(unreadableToken)
	}
}
