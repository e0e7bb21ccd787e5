package render

import (
	"io"
	"strconv"
)

// Flag pairs a bit pattern with its symbolic name. Patterns may cover more
// than one bit.
type Flag struct {
	Pattern uint64
	Name    string
}

// FlagSet is an ordered table of named bit patterns, fixed at definition
// time. Patterns are tried in declared order and each match is consumed, so
// a later broader pattern cannot re-claim bits an earlier entry named.
type FlagSet struct {
	Name  string // C type name, e.g. "ur_queue_flags_t"
	Bits  uint   // width of the underlying integer; 0 means 32
	Flags []Flag
}

// BitWidth returns the declared width of the underlying integer.
func (fs *FlagSet) BitWidth() uint {
	if fs.Bits == 0 {
		return 32
	}
	return fs.Bits
}

// ByteSize returns the width in bytes of the underlying integer.
func (fs *FlagSet) ByteSize() uint64 {
	return uint64(fs.BitWidth() / 8)
}

// Known returns the OR of every pattern in the table.
func (fs *FlagSet) Known() uint64 {
	var all uint64
	for _, f := range fs.Flags {
		all |= f.Pattern
	}
	return all
}

// Flags renders value as the ordered symbolic decomposition against fs.
// Every recognized bit is named exactly once; unrecognized bits render as a
// fixed-width binary residual; a value of zero renders the literal "0".
func Flags(w io.Writer, value uint64, fs *FlagSet) error {
	s := &sink{w: w}
	renderFlags(s, value, fs)
	return s.err
}

func renderFlags(s *sink, value uint64, fs *FlagSet) {
	remaining := value
	emitted := false
	for _, f := range fs.Flags {
		if f.Pattern == 0 {
			continue
		}
		if remaining&f.Pattern == f.Pattern {
			if emitted {
				s.str(" | ")
			}
			s.str(f.Name)
			remaining ^= f.Pattern
			emitted = true
		}
	}
	if remaining != 0 {
		if emitted {
			s.str(" | ")
		}
		s.str("unknown bit flags ")
		s.str(binaryFixed(remaining, fs.BitWidth()))
		return
	}
	if !emitted {
		s.str("0")
	}
}

// binaryFixed formats v in binary, zero-padded to width digits.
func binaryFixed(v uint64, width uint) string {
	raw := strconv.FormatUint(v, 2)
	if uint(len(raw)) >= width {
		return raw
	}
	pad := make([]byte, int(width)-len(raw))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + raw
}
