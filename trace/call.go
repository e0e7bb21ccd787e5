package trace

import (
	"strconv"
	"strings"

	"github.com/unifiedrt/urprint"
	"github.com/unifiedrt/urprint/render"
)

// Call builds the one-line argument snapshot a tracing wrapper emits for a
// single API call:
//
//	urQueueCreate(.hContext = 0x7f31a0, .hDevice = 0x7f32b8, .pProperties = (ur_queue_properties_t){ ... })
//
// Each argument is rendered through the engine as it is appended; String
// closes the line. A Call is single-use and not safe for concurrent use.
type Call struct {
	r      *render.Renderer
	b      strings.Builder
	args   int
	closed bool
}

// NewCall starts the snapshot line for the named API entry point.
func NewCall(r *render.Renderer, name string) *Call {
	c := &Call{r: r}
	c.b.WriteString(name)
	c.b.WriteByte('(')
	return c
}

func (c *Call) sep(name string) {
	if c.args > 0 {
		c.b.WriteString(", ")
	}
	c.b.WriteByte('.')
	c.b.WriteString(name)
	c.b.WriteString(" = ")
	c.args++
}

// Handle appends an opaque handle argument.
func (c *Call) Handle(name string, v uint64) *Call {
	c.sep(name)
	if v == 0 {
		c.b.WriteString(urprint.NullLiteral)
	} else {
		c.b.WriteString("0x")
		c.b.WriteString(strconv.FormatUint(v, 16))
	}
	return c
}

// Scalar appends an integer argument passed by value.
func (c *Call) Scalar(name string, v uint64) *Call {
	c.sep(name)
	c.b.WriteString(strconv.FormatUint(v, 10))
	return c
}

// Flags appends a bitmask argument passed by value.
func (c *Call) Flags(name string, v uint64, fs *render.FlagSet) *Call {
	c.sep(name)
	render.Flags(&c.b, v, fs)
	return c
}

// Pointer appends a pointer argument, dereferenced per the declared target.
func (c *Call) Pointer(name string, addr uint64, t render.Target) *Call {
	c.sep(name)
	c.r.Pointer(&c.b, addr, t)
	return c
}

// Prop appends a (discriminator, address, size) property-buffer argument.
func (c *Call) Prop(name string, d *render.Domain, disc uint32, addr, size uint64) *Call {
	c.sep(name)
	c.r.Decode(&c.b, d, disc, addr, size)
	return c
}

// Chain appends an extension-record chain argument.
func (c *Call) Chain(name string, rs *render.RecordSet, addr uint64) *Call {
	c.sep(name)
	c.r.Chain(&c.b, rs, addr)
	return c
}

// String closes and returns the snapshot line.
func (c *Call) String() string {
	if !c.closed {
		c.b.WriteByte(')')
		c.closed = true
	}
	return c.b.String()
}
