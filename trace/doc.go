// Package trace is the caller-facing layer over the render engine.
//
// It provides two things a tracing wrapper needs: the Call builder, which
// assembles the one-line argument snapshot emitted per API call, and capture
// files, a line-oriented text format that records (discriminator, address,
// size) triples together with the memory segments they reference so traces
// can be re-rendered offline.
//
// Capture directives:
//
//	call <apiName>                       start a new call block
//	mem <base> <hexBytes>                register a captured segment
//	prop <domain> <disc> <addr> <size>   queue a property buffer
//	chain <addr>                         queue an extension-record chain
//
// Logging goes through a package-level zap logger that defaults to no-op;
// hosts opt in with SetLogger.
package trace
