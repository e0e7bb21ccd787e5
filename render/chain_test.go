package render

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/unifiedrt/urprint/memory"
)

var testRecords = &RecordSet{
	Name: "test_structure_type_t",
	Records: map[uint32]*RecordDef{
		1: {
			Name:     "node_a_t",
			TypeName: "NODE_A",
			Size:     24,
			Fields: []Field{
				{Name: "value", Offset: 16, Rule: ScalarRule(U32)},
			},
		},
		2: {
			Name:     "node_b_t",
			TypeName: "NODE_B",
			Size:     24,
			Fields: []Field{
				{Name: "flags", Offset: 16, Rule: BitmaskRule(testFlags)},
			},
		},
	},
}

func node(stype uint32, next uint64, payload []byte) []byte {
	b := make([]byte, recordHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(b[0:], stype)
	binary.LittleEndian.PutUint64(b[8:], next)
	copy(b[recordHeaderSize:], payload)
	return b
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func chainString(t *testing.T, r *Renderer, addr uint64) string {
	t.Helper()
	var b strings.Builder
	if err := r.Chain(&b, testRecords, addr); err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	return b.String()
}

func TestChain_Null(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, make([]byte, 8)))
	if got := chainString(t, r, 0); got != "nullptr" {
		t.Errorf("expected nullptr, got %q", got)
	}
}

func TestChain_ThreeRecords(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x100, node(1, 0x200, u32le(7)))
	mem.Add(0x200, node(2, 0x300, u32le(1)))
	mem.Add(0x300, node(1, 0, u32le(9)))

	got := chainString(t, New(mem), 0x100)
	want := "(node_a_t){ .stype = NODE_A, .pNext = " +
		"(node_b_t){ .stype = NODE_B, .pNext = " +
		"(node_a_t){ .stype = NODE_A, .pNext = nullptr, .value = 9 }" +
		", .flags = F_ALPHA }" +
		", .value = 7 }"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if n := strings.Count(got, "){ .stype"); n != 3 {
		t.Errorf("expected 3 record blocks, got %d", n)
	}
}

// An unrecognized kind renders address-only and absorbs traversal; its
// fields are never interpreted.
func TestChain_UnknownKindAbsorbs(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x100, node(1, 0x200, u32le(7)))
	// Unknown tag with a poisoned next pointer that must never be followed.
	mem.Add(0x200, node(99, 0xdeadbeef, u32le(1)))

	got := chainString(t, New(mem), 0x100)
	want := "(node_a_t){ .stype = NODE_A, .pNext = 0x200, .value = 7 }"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestChain_UnreadableHead(t *testing.T) {
	r := New(memory.NewBuffer(0x1000, make([]byte, 4)))
	if got := chainString(t, r, 0x9000); got != "0x9000" {
		t.Errorf("expected address-only fallback, got %q", got)
	}
}

// A record whose payload extends past the captured bytes still closes its
// braces; the missing field substitutes its own diagnostic.
func TestChain_TruncatedPayloadStillCloses(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x100, node(1, 0, nil)[:recordHeaderSize])

	got := chainString(t, New(mem), 0x100)
	want := "(node_a_t){ .stype = NODE_A, .pNext = nullptr, .value = unreadable }"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// A self-referential chain terminates at the depth cap instead of hanging.
func TestChain_CycleTerminates(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x100, node(1, 0x100, u32le(5)))

	got := chainString(t, New(mem), 0x100)
	if !strings.HasSuffix(got, strings.Repeat(", .value = 5 }", maxChainDepth)) {
		t.Fatalf("cycle did not terminate cleanly: ...%q", got[len(got)-40:])
	}
	if !strings.Contains(got, ".pNext = 0x100, .value = 5 }") {
		t.Errorf("innermost record should fall back to the bare address: %q", got[len(got)-60:])
	}
	if n := strings.Count(got, "(node_a_t){"); n != maxChainDepth {
		t.Errorf("expected %d blocks, got %d", maxChainDepth, n)
	}
}
