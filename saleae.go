// Package saleae decodes and encodes Saleae Logic 2 binary capture exports.
//
// A capture export stores one channel: either a digital channel's state
// transitions or an analog channel's sampled waveform, alongside timing
// metadata. The codec validates the fixed preamble, dispatches on the
// channel type, and translates the on-disk transition-timestamp encoding
// into a consumable per-edge (state, duration) sequence for digital data, or
// a flat sample buffer with sample-rate metadata for analog data.
//
// # Basic Usage
//
// Reading a digital capture:
//
//	import "github.com/arloliu/saleae"
//
//	export, err := saleae.OpenFile("digital_0.bin")
//	if err != nil {
//	    return err
//	}
//
//	digital, err := export.AssumeDigital()
//	if err != nil {
//	    return err
//	}
//	for edge := range digital.Edges() {
//	    fmt.Printf("bit state: %v | time: %v\n", edge.High, edge.Duration)
//	}
//
// Reading an analog capture:
//
//	analog, err := export.AssumeAnalog()
//	if err != nil {
//	    return err
//	}
//	for i, v := range analog.All() {
//	    fmt.Printf("t=%v v=%v\n", analog.SampleTime(i), v)
//	}
//
// Writing a capture back out, compressed:
//
//	data, err := saleae.Write(export,
//	    trace.WithCompression(format.CompressionZstd),
//	)
//
// # Compressed captures
//
// Open transparently recognizes zstd, lz4, s2, and gzip containers by their
// frame magic and decompresses before parsing, so archived captures open
// the same way as raw ones.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the trace
// package. For fine-grained control (custom encoders, direct access to the
// header codec), use the trace, section, and compress packages directly.
package saleae

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/saleae/compress"
	"github.com/arloliu/saleae/internal/hash"
	"github.com/arloliu/saleae/trace"
)

// Open parses a capture export from an in-memory buffer. If the buffer is a
// recognized compression container it is decompressed first.
//
// The returned Export owns its data exclusively and does not alias data;
// once parsed it is immutable and safe for concurrent readers.
func Open(data []byte) (*trace.Export, error) {
	if compression, ok := compress.Detect(data); ok {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return nil, err
		}

		raw, err := codec.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s capture: %w", compression, err)
		}
		data = raw
	}

	return trace.Decode(data)
}

// OpenFile reads and parses a capture export from disk.
func OpenFile(path string) (*trace.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Open(data)
}

// ReadFrom reads a capture export from r until EOF and parses it. Byte
// acquisition is one-shot; buffering, if any, is the caller's concern.
func ReadFrom(r io.Reader) (*trace.Export, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Open(data)
}

// Write serializes the export back to capture bytes. The output re-parses
// to an equal value via Open.
func Write(e *trace.Export, opts ...trace.EncoderOption) ([]byte, error) {
	enc, err := trace.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(e)
}

// WriteFile serializes the export and writes it to disk.
func WriteFile(path string, e *trace.Export, opts ...trace.EncoderOption) error {
	data, err := Write(e, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Fingerprint returns the xxHash64 of the uncompressed capture bytes,
// decompressing a recognized container first. Identical captures share a
// fingerprint regardless of how they were archived.
func Fingerprint(data []byte) (uint64, error) {
	if compression, ok := compress.Detect(data); ok {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return 0, err
		}

		raw, err := codec.Decompress(data)
		if err != nil {
			return 0, fmt.Errorf("failed to decompress %s capture: %w", compression, err)
		}
		data = raw
	}

	return hash.Sum(data), nil
}
