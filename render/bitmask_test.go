package render

import (
	"strings"
	"testing"
)

var testFlags = &FlagSet{
	Name: "test_flags_t",
	Flags: []Flag{
		{Pattern: 1 << 0, Name: "F_ALPHA"},
		{Pattern: 1 << 1, Name: "F_BETA"},
		{Pattern: 1 << 4, Name: "F_GAMMA"},
	},
}

func renderFlagsString(t *testing.T, v uint64, fs *FlagSet) string {
	t.Helper()
	var b strings.Builder
	if err := Flags(&b, v, fs); err != nil {
		t.Fatalf("Flags failed: %v", err)
	}
	return b.String()
}

func TestFlags_Zero(t *testing.T) {
	if got := renderFlagsString(t, 0, testFlags); got != "0" {
		t.Errorf("expected %q, got %q", "0", got)
	}
}

func TestFlags_SingleKnown(t *testing.T) {
	got := renderFlagsString(t, 1<<1, testFlags)
	if got != "F_BETA" {
		t.Errorf("expected bare name, got %q", got)
	}
}

func TestFlags_Multiple(t *testing.T) {
	got := renderFlagsString(t, 1|1<<4, testFlags)
	if got != "F_ALPHA | F_GAMMA" {
		t.Errorf("unexpected decomposition: %q", got)
	}
}

func TestFlags_UnknownResidual(t *testing.T) {
	got := renderFlagsString(t, 1<<1|1<<31, testFlags)
	want := "F_BETA | unknown bit flags 10000000000000000000000000000000"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFlags_OnlyUnknown(t *testing.T) {
	got := renderFlagsString(t, 1<<9, testFlags)
	want := "unknown bit flags 00000000000000000000001000000000"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// An earlier narrow pattern consumes its bits, so a later broader pattern
// cannot re-match them.
func TestFlags_OrderedConsumption(t *testing.T) {
	fs := &FlagSet{
		Name: "overlap_t",
		Flags: []Flag{
			{Pattern: 0x1, Name: "NARROW"},
			{Pattern: 0x3, Name: "BROAD"},
		},
	}
	got := renderFlagsString(t, 0x3, fs)
	want := "NARROW | unknown bit flags 00000000000000000000000000000010"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFlags_MultiBitPattern(t *testing.T) {
	fs := &FlagSet{
		Name: "multi_t",
		Flags: []Flag{
			{Pattern: 0x3, Name: "BOTH"},
			{Pattern: 0x1, Name: "ONE"},
		},
	}
	if got := renderFlagsString(t, 0x3, fs); got != "BOTH" {
		t.Errorf("expected %q, got %q", "BOTH", got)
	}
}

func TestFlags_64BitWidth(t *testing.T) {
	fs := &FlagSet{
		Name: "wide_t",
		Bits: 64,
		Flags: []Flag{
			{Pattern: 1, Name: "W_LOW"},
		},
	}
	got := renderFlagsString(t, 1|1<<40, fs)
	if !strings.HasPrefix(got, "W_LOW | unknown bit flags ") {
		t.Fatalf("unexpected output: %q", got)
	}
	bin := strings.TrimPrefix(got, "W_LOW | unknown bit flags ")
	if len(bin) != 64 {
		t.Errorf("expected 64 binary digits, got %d (%q)", len(bin), bin)
	}
}

// Re-parsing the rendered names and ORing their patterns must reproduce the
// recognized bits, with the residual binary covering exactly the rest.
func TestFlags_RoundTrip(t *testing.T) {
	byName := make(map[string]uint64)
	for _, f := range testFlags.Flags {
		byName[f.Name] = f.Pattern
	}
	values := []uint64{0x1, 0x2, 0x13, 1<<1 | 1<<20, 0xffffffff}
	for _, v := range values {
		out := renderFlagsString(t, v, testFlags)
		var recovered uint64
		for _, tok := range strings.Split(out, " | ") {
			if p, ok := byName[tok]; ok {
				recovered |= p
			}
		}
		if recovered != v&testFlags.Known() {
			t.Errorf("value %#x: recovered %#x, want %#x", v, recovered, v&testFlags.Known())
		}
	}
}
