// Package urinfo holds the per-discriminator rule tables for the runtime's
// query families.
//
// Everything here is data: property domains (discriminator -> decode rule),
// flag sets (bit pattern -> symbolic name), and extension-record layouts
// (structure-type tag -> field list). The render package supplies the only
// logic that consumes these tables.
//
// Domains are never mixed; a caller querying device properties passes
// DeviceInfo, a caller formatting a queue-creation call passes QueueInfo,
// and so on. Registry lookups by C type name exist for capture files, which
// reference domains textually.
package urinfo
