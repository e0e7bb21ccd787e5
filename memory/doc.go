// Package memory provides Memory implementations over captured byte
// segments.
//
// Buffer covers a single contiguous capture; Map resolves addresses across
// scattered segments, which is what extension-record chains need. All reads
// are bounds-checked and return structured errors from the errors package;
// address zero is never readable.
//
// Both types satisfy the root urprint.Memory interface.
package memory
