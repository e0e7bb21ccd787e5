package render

import (
	"strconv"

	"github.com/unifiedrt/urprint"
)

// Rule associates one discriminator value with exactly one interpretation of
// the bytes at an address. Rules are plain data; the decoder is the only
// logic that consumes them.
type Rule struct {
	Kind   Kind
	Elem   Scalar     // scalar and fixed-array element type
	Flags  *FlagSet   // bitmask table
	Chain  *RecordSet // record-kind domain for nested records
	Handle *Target    // optional known pointee for handles
}

func ScalarRule(e Scalar) Rule { return Rule{Kind: KindScalar, Elem: e} }
func ArrayRule(e Scalar) Rule  { return Rule{Kind: KindFixedArray, Elem: e} }

func BitmaskRule(fs *FlagSet) Rule { return Rule{Kind: KindBitmask, Flags: fs} }

func CStringRule() Rule     { return Rule{Kind: KindCString} }
func HandleRule() Rule      { return Rule{Kind: KindHandle} }
func HandleArrayRule() Rule { return Rule{Kind: KindHandleArray} }

func RecordRule(rs *RecordSet) Rule { return Rule{Kind: KindRecord, Chain: rs} }

// expectedSize is the minimum byte size a fixed-width rule requires before
// any read. Variable-count and string rules return 0.
func (r Rule) expectedSize() uint64 {
	switch r.Kind {
	case KindScalar:
		return r.Elem.ByteSize()
	case KindBitmask:
		return r.Flags.ByteSize()
	case KindHandle:
		return urprint.PointerSize
	case KindRecord:
		return recordHeaderSize
	default:
		return 0
	}
}

// Domain is the declarative rule table for one discriminator family.
// Domains from different query families are never mixed; the decoder
// receives the active Domain explicitly.
type Domain struct {
	Name  string            // C enum name, e.g. "ur_device_info_t"
	Names map[uint32]string // discriminator value names, for trace output
	Rules map[uint32]Rule
}

// Rule returns the decode rule for disc, if one is declared.
func (d *Domain) Rule(disc uint32) (Rule, bool) {
	r, ok := d.Rules[disc]
	return r, ok
}

// NameOf returns the symbolic name of disc, or its decimal value when the
// domain does not declare one.
func (d *Domain) NameOf(disc uint32) string {
	if n, ok := d.Names[disc]; ok {
		return n
	}
	return strconv.FormatUint(uint64(disc), 10)
}
