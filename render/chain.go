package render

import (
	"io"

	"github.com/unifiedrt/urprint"
)

// Extension records begin with a 32-bit structure-type tag and a pointer to
// the next record. With 8-byte pointer alignment the header occupies 16
// bytes; payload fields start at or after recordHeaderSize.
const recordHeaderSize = 16

// Traversal stops reinterpreting past this depth and degrades to
// address-only output, so a malformed cyclic chain cannot hang a render.
const maxChainDepth = 64

// Field describes one payload field of an extension record. Fields are
// data; the chain renderer walks them generically.
type Field struct {
	Name   string
	Offset uint64
	Rule   Rule    // inline interpretation of the bytes at Offset
	Count  uint64  // element count for fixed-array fields
	Ptr    *Target // pointer field: read the pointer at Offset, render its pointee
}

// RecordDef is the declarative layout of one record kind.
type RecordDef struct {
	Name     string // struct name, e.g. "ur_usm_desc_t"
	TypeName string // structure-type tag name, e.g. "UR_STRUCTURE_TYPE_USM_DESC"
	Size     uint64 // full struct size including the header
	Fields   []Field
}

// RecordSet maps structure-type tags to record layouts. It is the "record
// kind" discriminator domain, separate from every property domain.
type RecordSet struct {
	Name    string
	Records map[uint32]*RecordDef
}

// Chain walks the extension-record chain headed at addr and renders each
// record it recognizes. Unknown tags and unreadable headers render as the
// bare address and absorb traversal; a null head renders the null literal.
func (r *Renderer) Chain(w io.Writer, rs *RecordSet, addr uint64) error {
	s := &sink{w: w}
	r.chain(s, rs, addr, 0)
	return s.err
}

func (r *Renderer) chain(s *sink, rs *RecordSet, addr uint64, depth int) {
	if addr == 0 {
		s.str(urprint.NullLiteral)
		return
	}
	if depth >= maxChainDepth {
		s.addr(addr)
		return
	}

	stype, err := r.mem.ReadU32(addr)
	if err != nil {
		s.addr(addr)
		return
	}
	def, ok := rs.Records[stype]
	if !ok {
		// Never interpret fields of an unknown layout.
		s.addr(addr)
		return
	}

	s.str("(" + def.Name + "){ .stype = " + def.TypeName + ", .pNext = ")
	next, err := r.mem.ReadU64(addr + 8)
	if err != nil {
		s.str(unreadableToken)
	} else {
		r.chain(s, rs, next, depth+1)
	}
	for _, f := range def.Fields {
		s.str(", ." + f.Name + " = ")
		r.fieldValue(s, rs, addr+f.Offset, f, depth)
	}
	s.str(" }")
}

// fieldValue renders one record field in place. Each field substitutes its
// own diagnostic text on failure, so the enclosing record always closes.
func (r *Renderer) fieldValue(s *sink, rs *RecordSet, addr uint64, f Field, depth int) {
	if f.Ptr != nil {
		p, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		r.pointer(s, p, *f.Ptr)
		return
	}

	switch f.Rule.Kind {
	case KindScalar:
		r.scalarValue(s, addr, f.Rule.Elem)
	case KindBitmask:
		v, err := r.readUint(addr, f.Rule.Flags.ByteSize())
		if err != nil {
			s.str(unreadableToken)
			return
		}
		renderFlags(s, v, f.Rule.Flags)
	case KindHandle:
		v, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		s.addr(v)
	case KindFixedArray:
		r.scalarArray(s, addr, f.Rule.Elem, f.Count)
	case KindCString:
		// Inline character array, printed through to its terminator.
		r.cstring(s, addr)
	case KindRecord:
		p, err := r.mem.ReadU64(addr)
		if err != nil {
			s.str(unreadableToken)
			return
		}
		r.chain(s, rs, p, depth+1)
	default:
		s.str(unreadableToken)
	}
}
