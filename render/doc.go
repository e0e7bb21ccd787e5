// Package render is the generic decoding-and-rendering engine.
//
// The engine turns (discriminator, address, declared size) triples and
// extension-record chains into diagnostic text. It has four layers, composed
// bottom-up:
//
//	Pointer   - primitives, raw pointers, C strings, one extra indirection
//	Flags     - ordered bitmask decomposition into symbolic names
//	Decode    - tagged-buffer dispatch through a declarative Domain table
//	Chain     - stype/pNext extension-record traversal through a RecordSet
//
// # Safety Invariant
//
// For every fixed-width rule the declared size is checked against the size
// the rule requires before any memory is read. A failing check renders
//
//	invalid size (is: X, expected: >=Y)
//
// and touches no memory. Variable-count rules derive their element count from
// the declared size; C strings are the single exception and read through to
// their terminator, as their discriminators never carry a usable length.
//
// # Output Grammar
//
// Fixed-width values render as `<address> (<value>)` so the raw address stays
// visible alongside the interpretation. Arrays render as `[e0, e1, ...]`,
// records as `(kind){ .field = value, ... }`, and bitmasks as
// `NAME_A | NAME_B | unknown bit flags <binary>`.
//
// # Failure Model
//
// Decode failures never surface as Go errors: the engine substitutes inline
// diagnostic text (`unknown enumerator`, `invalid size (...)`, `unreadable`)
// and every call emits a complete, self-closing fragment. The only error a
// render method returns is the output sink's own write error.
//
// All tables are injected: Decode receives its Domain and Chain its
// RecordSet explicitly. The Renderer holds nothing but the Memory view and
// is safe for concurrent use over memory that is not concurrently mutated.
package render
