package render

// Kind identifies how a decode rule interprets the bytes at an address.
type Kind uint8

const (
	KindScalar Kind = iota
	KindFixedArray
	KindBitmask
	KindCString
	KindHandle
	KindHandleArray
	KindRecord
)

var kindNames = [...]string{
	KindScalar:      "scalar",
	KindFixedArray:  "fixed_array",
	KindBitmask:     "bitmask",
	KindCString:     "cstring",
	KindHandle:      "handle",
	KindHandleArray: "handle_array",
	KindRecord:      "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// FixedWidth reports whether the kind requires a minimum byte size that is
// checked before any read.
func (k Kind) FixedWidth() bool {
	switch k {
	case KindScalar, KindBitmask, KindHandle, KindRecord:
		return true
	default:
		return false
	}
}
