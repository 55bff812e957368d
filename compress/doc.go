// Package compress provides the container codecs used to store capture
// exports compressed on disk.
//
// Saleae exports are raw binary and compress extremely well: digital traces
// are mostly float64 timestamps with shared high bytes, and analog traces
// are low-entropy waveforms. Tooling therefore often archives captures as
// zstd, lz4, s2, or gzip files. This package compresses and decompresses
// whole capture files in those self-describing frame formats, and Detect
// identifies the container from the frame magic so Open can decompress
// transparently before parsing.
//
// Container formats were chosen over block formats deliberately: a frame
// carries its own magic, so a compressed capture remains recognizable
// without extending the capture format itself.
//
// # Zstd implementations
//
// Two Zstandard implementations are provided, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings, fastest)
//   - pure-Go builds (or -tags purego) use klauspost/compress/zstd
//
// Both produce standard zstd frames and interoperate freely.
package compress
