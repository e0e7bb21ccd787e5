package urinfo

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/unifiedrt/urprint/memory"
	"github.com/unifiedrt/urprint/render"
)

func TestDomainByName(t *testing.T) {
	d, ok := DomainByName("ur_device_info_t")
	if !ok {
		t.Fatal("ur_device_info_t not registered")
	}
	if d != DeviceInfo {
		t.Error("lookup returned a different domain")
	}

	if _, ok := DomainByName("ur_bogus_info_t"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestDomainNames(t *testing.T) {
	names := DomainNames()
	if len(names) != len(domains) {
		t.Fatalf("DomainNames returned %d of %d", len(names), len(domains))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"ur_queue_info_t", "ur_platform_info_t", "ur_usm_alloc_info_t"} {
		if !seen[want] {
			t.Errorf("missing domain %s", want)
		}
	}
}

// Every discriminator with a rendering rule must also have a name, and the
// other way round; a mismatch means a table was edited on one side only.
func TestDomainTablesAligned(t *testing.T) {
	for name, d := range domains {
		for disc := range d.Rules {
			if _, ok := d.Names[disc]; !ok {
				t.Errorf("%s: rule %d has no name", name, disc)
			}
		}
		for disc := range d.Names {
			if _, ok := d.Rules[disc]; !ok {
				t.Errorf("%s: name %s has no rule", name, d.Names[disc])
			}
		}
	}
}

func decode(t *testing.T, mem *memory.Map, d *render.Domain, disc uint32, addr, size uint64) string {
	t.Helper()
	var b strings.Builder
	if err := render.New(mem).Decode(&b, d, disc, addr, size); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return b.String()
}

func TestDeviceInfo_VendorID(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x1000, []byte{0x86, 0x80, 0x00, 0x00})

	got := decode(t, mem, DeviceInfo, DeviceInfoVendorID, 0x1000, 4)
	if got != "0x1000 (32902)" {
		t.Errorf("got %q", got)
	}
}

func TestDeviceInfo_Name(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x2000, []byte("Intel(R) Graphics\x00"))

	got := decode(t, mem, DeviceInfo, DeviceInfoName, 0x2000, 18)
	if got != "0x2000 (Intel(R) Graphics)" {
		t.Errorf("got %q", got)
	}
}

func TestDeviceInfo_MaxWorkItemSizes(t *testing.T) {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf[0:], 256)
	binary.LittleEndian.PutUint64(buf[8:], 256)
	binary.LittleEndian.PutUint64(buf[16:], 64)
	mem := memory.NewMap()
	mem.Add(0x3000, buf)

	got := decode(t, mem, DeviceInfo, DeviceInfoMaxWorkItemSizes, 0x3000, 24)
	if got != "[256, 256, 64]" {
		t.Errorf("got %q", got)
	}
}

func TestDeviceInfo_UndersizedValue(t *testing.T) {
	mem := memory.NewMap()
	mem.Add(0x1000, []byte{0x86, 0x80})

	got := decode(t, mem, DeviceInfo, DeviceInfoVendorID, 0x1000, 2)
	if got != "invalid size (is: 2, expected: >=4)" {
		t.Errorf("got %q", got)
	}
}

func TestQueueInfo_Flags(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, 1<<1|1<<31)
	mem := memory.NewMap()
	mem.Add(0x4000, buf)

	got := decode(t, mem, QueueInfo, QueueInfoFlags, 0x4000, 4)
	want := "0x4000 (UR_QUEUE_FLAG_PROFILING_ENABLE | unknown bit flags " +
		"10000000000000000000000000000000)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStructures_QueueProperties(t *testing.T) {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:], StructureTypeQueueProperties)
	binary.LittleEndian.PutUint32(buf[16:], 1<<1)
	mem := memory.NewMap()
	mem.Add(0x5000, buf)

	var b strings.Builder
	if err := render.New(mem).Chain(&b, Structures, 0x5000); err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	want := "(ur_queue_properties_t){ .stype = UR_STRUCTURE_TYPE_QUEUE_PROPERTIES, " +
		".pNext = nullptr, .flags = UR_QUEUE_FLAG_PROFILING_ENABLE }"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStructures_USMDescChain(t *testing.T) {
	desc := make([]byte, 24)
	binary.LittleEndian.PutUint32(desc[0:], StructureTypeUSMDesc)
	binary.LittleEndian.PutUint64(desc[8:], 0x6100)
	binary.LittleEndian.PutUint32(desc[16:], 0)
	binary.LittleEndian.PutUint32(desc[20:], 64)

	host := make([]byte, 24)
	binary.LittleEndian.PutUint32(host[0:], StructureTypeUSMHostDesc)

	mem := memory.NewMap()
	mem.Add(0x6000, desc)
	mem.Add(0x6100, host)

	var b strings.Builder
	if err := render.New(mem).Chain(&b, Structures, 0x6000); err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "(ur_usm_desc_t){ .stype = UR_STRUCTURE_TYPE_USM_DESC, .pNext = (ur_usm_host_desc_t){") {
		t.Errorf("chain head wrong: %q", got)
	}
	if !strings.Contains(got, ".align = 64 }") {
		t.Errorf("payload fields wrong: %q", got)
	}
}
