// Package urprint renders opaque, fixed-layout binary values produced by a
// C-ABI compute-runtime API into stable, human-readable diagnostic text.
//
// Tracing and validation layers that wrap every API call hand this library a
// (discriminator, address, declared size) triple, or the head address of an
// extension-record chain, and get back formatted text describing the bytes.
// The library never mutates the memory it reads and keeps no state between
// calls.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	urprint/         Root package with the Memory interface and address conventions
//	├── render/      Generic decoding-and-rendering engine
//	├── urinfo/      Per-discriminator rule tables for the runtime's query domains
//	├── memory/      Memory implementations over captured byte segments
//	├── trace/       Call-snapshot formatting and capture file handling
//	├── errors/      Structured error types for debugging
//	└── cmd/urtrace/ CLI for rendering and browsing capture files
//
// # Quick Start
//
// Render a property buffer from a captured segment:
//
//	mem := memory.NewBuffer(0x1000, data)
//	r := render.New(mem)
//	var b strings.Builder
//	r.Decode(&b, urinfo.DeviceInfo, urinfo.DeviceInfoVendorID, 0x1000, 4)
//
// The output grammar is fixed: `(kind){ .field = value, ... }` for records,
// `[e0, e1, ...]` for arrays, and `NAME_A | NAME_B` for bit flags. Failures
// are rendered inline as diagnostic text; nothing in the engine panics or
// aborts the host.
package urprint
