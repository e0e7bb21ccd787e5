package render

import (
	"io"

	"github.com/unifiedrt/urprint"
)

// Token substituted when the active domain declares no rule for a
// discriminator.
const unknownEnumToken = "unknown enumerator"

// Decode renders the buffer at addr according to the rule d declares for
// disc. size is the caller-declared number of valid bytes at addr; it is
// trusted as an upper bound only. All decode failures render as inline
// diagnostic text and the emitted fragment is always complete; the returned
// error is the sink's write error.
func (r *Renderer) Decode(w io.Writer, d *Domain, disc uint32, addr uint64, size uint64) error {
	s := &sink{w: w}
	r.decode(s, d, disc, addr, size)
	return s.err
}

func (r *Renderer) decode(s *sink, d *Domain, disc uint32, addr uint64, size uint64) {
	if addr == 0 {
		s.str(urprint.NullLiteral)
		return
	}

	rule, ok := d.Rule(disc)
	if !ok {
		s.str(unknownEnumToken)
		return
	}

	// The size check precedes every dereference for fixed-width rules.
	if rule.Kind.FixedWidth() {
		if expected := rule.expectedSize(); size < expected {
			s.f("invalid size (is: %d, expected: >=%d)", size, expected)
			return
		}
	}

	switch rule.Kind {
	case KindScalar:
		s.addr(addr)
		s.str(" (")
		r.scalarValue(s, addr, rule.Elem)
		s.str(")")

	case KindBitmask:
		v, err := r.readUint(addr, rule.Flags.ByteSize())
		s.addr(addr)
		s.str(" (")
		if err != nil {
			s.str(unreadableToken)
		} else {
			renderFlags(s, v, rule.Flags)
		}
		s.str(")")

	case KindCString:
		// Strings are not length-validated; print through to the terminator.
		r.pointer(s, addr, Target{Kind: TargetChar})

	case KindHandle:
		v, err := r.mem.ReadU64(addr)
		s.addr(addr)
		s.str(" (")
		if err != nil {
			s.str(unreadableToken)
		} else if rule.Handle != nil {
			r.pointer(s, v, *rule.Handle)
		} else {
			s.addr(v)
		}
		s.str(")")

	case KindFixedArray:
		r.scalarArray(s, addr, rule.Elem, size/rule.Elem.ByteSize())

	case KindHandleArray:
		r.handleArray(s, addr, size/urprint.PointerSize)

	case KindRecord:
		r.chain(s, rule.Chain, addr, 0)

	default:
		s.str(unknownEnumToken)
	}
}

// scalarArray renders count elements of e starting at addr. A declared size
// that is not an exact multiple of the element width truncates the trailing
// partial element.
func (r *Renderer) scalarArray(s *sink, addr uint64, e Scalar, count uint64) {
	s.str("[")
	width := e.ByteSize()
	for i := uint64(0); i < count; i++ {
		if i > 0 {
			s.str(", ")
		}
		r.scalarValue(s, addr+i*width, e)
	}
	s.str("]")
}

func (r *Renderer) handleArray(s *sink, addr uint64, count uint64) {
	s.str("[")
	for i := uint64(0); i < count; i++ {
		if i > 0 {
			s.str(", ")
		}
		v, err := r.mem.ReadU64(addr + i*urprint.PointerSize)
		if err != nil {
			s.str(unreadableToken)
			continue
		}
		s.addr(v)
	}
	s.str("]")
}

// readUint reads a little-endian unsigned integer of the given byte width.
func (r *Renderer) readUint(addr uint64, width uint64) (uint64, error) {
	switch width {
	case 1:
		v, err := r.mem.ReadU8(addr)
		return uint64(v), err
	case 2:
		v, err := r.mem.ReadU16(addr)
		return uint64(v), err
	case 8:
		return r.mem.ReadU64(addr)
	default:
		v, err := r.mem.ReadU32(addr)
		return uint64(v), err
	}
}
