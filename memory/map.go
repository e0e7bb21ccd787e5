package memory

import (
	"encoding/binary"

	"github.com/unifiedrt/urprint/errors"
)

// Map is a sparse collection of captured segments. Chain nodes and property
// buffers rarely sit in one contiguous block; a Map lets a capture resolve
// scattered addresses through a single Memory view.
type Map struct {
	segs []*Buffer
}

func NewMap() *Map {
	return &Map{}
}

// Add registers a segment. Later additions win on overlap; captures append
// segments in observation order.
func (m *Map) Add(base uint64, data []byte) {
	m.segs = append(m.segs, NewBuffer(base, data))
}

// Segments returns the number of registered segments.
func (m *Map) Segments() int { return len(m.segs) }

func (m *Map) find(addr, length uint64) *Buffer {
	for i := len(m.segs) - 1; i >= 0; i-- {
		if m.segs[i].contains(addr, length) {
			return m.segs[i]
		}
	}
	return nil
}

func (m *Map) Read(addr uint64, length uint64) ([]byte, error) {
	if addr == 0 {
		return nil, errors.NullRead()
	}
	if addr+length < addr {
		return nil, errors.Overflow(addr, length)
	}
	seg := m.find(addr, length)
	if seg == nil {
		return nil, errors.OutOfBounds(addr, length)
	}
	return seg.Read(addr, length)
}

func (m *Map) ReadU8(addr uint64) (uint8, error) {
	d, err := m.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

func (m *Map) ReadU16(addr uint64) (uint16, error) {
	d, err := m.Read(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d), nil
}

func (m *Map) ReadU32(addr uint64) (uint32, error) {
	d, err := m.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d), nil
}

func (m *Map) ReadU64(addr uint64) (uint64, error) {
	d, err := m.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d), nil
}
