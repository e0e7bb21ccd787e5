package trace

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/unifiedrt/urprint/errors"
	"github.com/unifiedrt/urprint/memory"
	"github.com/unifiedrt/urprint/render"
	"github.com/unifiedrt/urprint/urinfo"
)

// ItemKind distinguishes the two renderable item forms in a capture.
type ItemKind uint8

const (
	ItemProp ItemKind = iota
	ItemChain
)

// Item is one renderable snapshot within a call: either a property buffer
// (domain, discriminator, address, declared size) or a chain head address.
type Item struct {
	Kind   ItemKind
	Domain *render.Domain // ItemProp only
	Disc   uint32         // ItemProp only
	Addr   uint64
	Size   uint64 // ItemProp only
}

// Entry is one traced API call: its name, the memory segments observed
// around it, and the items to render.
type Entry struct {
	Call  string
	Mem   *memory.Map
	Items []Item
}

// Capture is a parsed capture file.
type Capture struct {
	Entries []*Entry
}

// ParseCapture reads the line-oriented capture format:
//
//	# comment
//	call urDeviceGetInfo
//	mem 0x1000 86800000
//	prop ur_device_info_t 1 0x1000 4
//	chain 0x2000
//
// mem registers a captured segment (base address, hex bytes) for the current
// call; prop and chain queue items against the segments seen so far. Every
// directive must follow a call line.
func ParseCapture(r io.Reader) (*Capture, error) {
	c := &Capture{}
	var cur *Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "call":
			if len(fields) != 2 {
				return nil, errors.ParseFailed(line, "call wants one name")
			}
			cur = &Entry{Call: fields[1], Mem: memory.NewMap()}
			c.Entries = append(c.Entries, cur)

		case "mem":
			if cur == nil {
				return nil, errors.ParseFailed(line, "mem before any call")
			}
			if len(fields) != 3 {
				return nil, errors.ParseFailed(line, "mem wants base and hex bytes")
			}
			base, err := parseAddr(fields[1])
			if err != nil {
				return nil, errors.ParseFailed(line, err.Error())
			}
			data, err := hex.DecodeString(fields[2])
			if err != nil {
				return nil, errors.ParseFailed(line, "bad hex bytes: "+err.Error())
			}
			cur.Mem.Add(base, data)

		case "prop":
			if cur == nil {
				return nil, errors.ParseFailed(line, "prop before any call")
			}
			if len(fields) != 5 {
				return nil, errors.ParseFailed(line, "prop wants domain, discriminator, addr, size")
			}
			dom, ok := urinfo.DomainByName(fields[1])
			if !ok {
				return nil, errors.ParseFailed(line, fmt.Sprintf("unknown domain %q", fields[1]))
			}
			disc, err := strconv.ParseUint(fields[2], 0, 32)
			if err != nil {
				return nil, errors.ParseFailed(line, "bad discriminator: "+err.Error())
			}
			addr, err := parseAddr(fields[3])
			if err != nil {
				return nil, errors.ParseFailed(line, err.Error())
			}
			size, err := strconv.ParseUint(fields[4], 0, 64)
			if err != nil {
				return nil, errors.ParseFailed(line, "bad size: "+err.Error())
			}
			cur.Items = append(cur.Items, Item{
				Kind:   ItemProp,
				Domain: dom,
				Disc:   uint32(disc),
				Addr:   addr,
				Size:   size,
			})

		case "chain":
			if cur == nil {
				return nil, errors.ParseFailed(line, "chain before any call")
			}
			if len(fields) != 2 {
				return nil, errors.ParseFailed(line, "chain wants one address")
			}
			addr, err := parseAddr(fields[1])
			if err != nil {
				return nil, errors.ParseFailed(line, err.Error())
			}
			cur.Items = append(cur.Items, Item{Kind: ItemChain, Addr: addr})

		default:
			return nil, errors.ParseFailed(line, fmt.Sprintf("unknown directive %q", fields[0]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseCapture, errors.KindInvalidData, err, "read capture")
	}
	return c, nil
}

func parseAddr(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", s)
	}
	return v, nil
}

// RenderEntry renders one entry's items, one line per item.
func RenderEntry(w io.Writer, e *Entry) error {
	r := render.New(e.Mem)
	for _, it := range e.Items {
		switch it.Kind {
		case ItemProp:
			if _, err := fmt.Fprintf(w, "  %s(%s) => ", it.Domain.NameOf(it.Disc), it.Domain.Name); err != nil {
				return err
			}
			if err := r.Decode(w, it.Domain, it.Disc, it.Addr, it.Size); err != nil {
				return err
			}
			Logger().Debug("rendered property",
				zap.String("call", e.Call),
				zap.String("domain", it.Domain.Name),
				zap.Uint32("discriminator", it.Disc))
		case ItemChain:
			if _, err := fmt.Fprintf(w, "  chain 0x%x => ", it.Addr); err != nil {
				return err
			}
			if err := r.Chain(w, urinfo.Structures, it.Addr); err != nil {
				return err
			}
			Logger().Debug("rendered chain",
				zap.String("call", e.Call),
				zap.Uint64("addr", it.Addr))
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render renders the whole capture, one block per call.
func (c *Capture) Render(w io.Writer) error {
	for _, e := range c.Entries {
		if _, err := fmt.Fprintf(w, "%s:\n", e.Call); err != nil {
			return err
		}
		if err := RenderEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
