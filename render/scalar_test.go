package render

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/unifiedrt/urprint/memory"
)

func renderPointer(t *testing.T, r *Renderer, addr uint64, target Target) string {
	t.Helper()
	var b strings.Builder
	if err := r.Pointer(&b, addr, target); err != nil {
		t.Fatalf("Pointer failed: %v", err)
	}
	return b.String()
}

func TestPointer_Null(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, make([]byte, 8)))
	for _, target := range []Target{
		{Kind: TargetVoid},
		{Kind: TargetChar},
		{Kind: TargetPointer},
		{Kind: TargetScalar, Elem: U32},
	} {
		if got := renderPointer(t, r, 0, target); got != "nullptr" {
			t.Errorf("target %v: expected nullptr, got %q", target.Kind, got)
		}
	}
}

func TestPointer_Void(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, make([]byte, 8)))
	if got := renderPointer(t, r, 0x1000, Target{Kind: TargetVoid}); got != "0x1000" {
		t.Errorf("expected address only, got %q", got)
	}
}

func TestPointer_CString(t *testing.T) {
	data := append([]byte("Intel(R) Graphics"), 0)
	r := New(memory.NewBuffer(0x2000, data))
	got := renderPointer(t, r, 0x2000, Target{Kind: TargetChar})
	want := "0x2000 (Intel(R) Graphics)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPointer_Scalar(t *testing.T) {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, 0x8086)
	r := New(memory.NewBuffer(0x3000, data))
	got := renderPointer(t, r, 0x3000, Target{Kind: TargetScalar, Elem: U32})
	if got != "0x3000 (32902)" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPointer_SignedScalar(t *testing.T) {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, 0xffffffff)
	r := New(memory.NewBuffer(0x3000, data))
	got := renderPointer(t, r, 0x3000, Target{Kind: TargetScalar, Elem: I32})
	if got != "0x3000 (-1)" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPointer_PointerToScalar(t *testing.T) {
	mem := memory.NewMap()
	inner := make([]byte, 8)
	binary.LittleEndian.PutUint64(inner, 42)
	outer := make([]byte, 8)
	binary.LittleEndian.PutUint64(outer, 0x5000)
	mem.Add(0x5000, inner)
	mem.Add(0x4000, outer)

	r := New(mem)
	got := renderPointer(t, r, 0x4000, Target{
		Kind: TargetPointer,
		Next: &Target{Kind: TargetScalar, Elem: U64},
	})
	want := "0x4000 (0x5000 (42))"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPointer_PointerWithoutTarget(t *testing.T) {
	outer := make([]byte, 8)
	binary.LittleEndian.PutUint64(outer, 0x5000)
	r := New(memory.NewBuffer(0x4000, outer))
	got := renderPointer(t, r, 0x4000, Target{Kind: TargetPointer})
	if got != "0x4000 (0x5000)" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPointer_Unreadable(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, make([]byte, 4)))
	got := renderPointer(t, r, 0x9000, Target{Kind: TargetScalar, Elem: U32})
	if got != "0x9000 (unreadable)" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestScalar_Bool(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, []byte{1, 0}))
	if got := renderPointer(t, r, 0x1000, Target{Kind: TargetScalar, Elem: Bool}); got != "0x1000 (true)" {
		t.Errorf("unexpected output: %q", got)
	}
	if got := renderPointer(t, r, 0x1001, Target{Kind: TargetScalar, Elem: Bool}); got != "0x1001 (false)" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestScalar_Sizes(t *testing.T) {
	cases := []struct {
		s    Scalar
		want uint64
	}{
		{I8, 1}, {U8, 1}, {I16, 2}, {U16, 2},
		{I32, 4}, {U32, 4}, {I64, 8}, {U64, 8},
		{F32, 4}, {F64, 8}, {Bool, 1}, {Size, 8}, {Ptr, 8}, {Char, 1},
	}
	for _, c := range cases {
		if got := c.s.ByteSize(); got != c.want {
			t.Errorf("%s: size %d, want %d", c.s, got, c.want)
		}
	}
}
