// Package section defines the fixed binary preamble of a Saleae Logic 2
// capture export.
//
// Every export begins with the same little-endian preamble, followed by a
// channel-type specific payload handled by the trace package:
//
//	┌───────────────────────────────────────────────┐
//	│ magic        8 bytes   "<SALEAE>"             │
//	│ version      4 bytes   uint32                 │
//	│ channel_type 4 bytes   uint32 (0=dig, 1=ana)  │
//	└───────────────────────────────────────────────┘
//
// The preamble is validated before any type-specific parsing proceeds:
// unrecognized magic bytes, versions, or channel tags are hard parse
// failures, never silently ignored. Serialization mirrors parsing exactly,
// so header round-trips are bit-exact.
package section
