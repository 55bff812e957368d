// Package errs defines the sentinel error values returned by the capture
// codec. Callers match them with errors.Is; most call sites wrap them with
// additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Parse errors. Parsing stops at the first structural error and discards
// partial results.
var (
	// ErrInvalidMagic is returned when the file does not start with the
	// export magic marker.
	ErrInvalidMagic = errors.New("invalid capture magic")

	// ErrUnsupportedVersion is returned when the header declares a format
	// version this codec does not recognize.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnknownChannelType is returned when the header's channel type tag
	// is neither digital nor analog.
	ErrUnknownChannelType = errors.New("unknown channel type")

	// ErrTruncatedData is returned when a declared length exceeds the bytes
	// remaining in the buffer.
	ErrTruncatedData = errors.New("truncated capture data")

	// ErrUnknownCompression is returned when a compression container type
	// is not recognized.
	ErrUnknownCompression = errors.New("unknown compression type")
)

// Access errors.
var (
	// ErrTypeMismatch is returned by narrowing accessors called against the
	// wrong trace variant.
	ErrTypeMismatch = errors.New("channel type mismatch")
)

// Write errors. The encoder fails fast on caller-supplied invariant
// violations rather than producing a corrupt file.
var (
	// ErrInvalidSampleRate is returned when an analog trace declares a zero
	// sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrInvalidDownsampleFactor is returned when an analog trace declares a
	// zero downsample factor.
	ErrInvalidDownsampleFactor = errors.New("downsample factor must be positive")

	// ErrNonMonotonicTransitions is returned when a digital trace's
	// transition timestamps decrease or fall outside the capture window.
	ErrNonMonotonicTransitions = errors.New("transition timestamps are not non-decreasing")

	// ErrInvalidTimeRange is returned when a trace's end time precedes its
	// begin time.
	ErrInvalidTimeRange = errors.New("end time precedes begin time")
)
