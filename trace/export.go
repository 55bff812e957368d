package trace

import (
	"fmt"

	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/format"
	"github.com/arloliu/saleae/internal/hash"
	"github.com/arloliu/saleae/section"
)

// Export wraps exactly one decoded channel trace, selected by the header's
// channel type tag. It owns its trace data exclusively and is immutable once
// parsed, so it is safe for concurrent read access without locking.
type Export struct {
	header  section.CaptureHeader
	digital *DigitalTrace
	analog  *AnalogTrace
}

// NewDigitalExport wraps a digital trace in an export envelope at the
// current format version.
func NewDigitalExport(t *DigitalTrace) *Export {
	return &Export{
		header:  section.NewCaptureHeader(format.ChannelDigital),
		digital: t,
	}
}

// NewAnalogExport wraps an analog trace in an export envelope at the current
// format version.
func NewAnalogExport(t *AnalogTrace) *Export {
	return &Export{
		header: section.NewCaptureHeader(format.ChannelAnalog),
		analog: t,
	}
}

// Header returns the capture preamble.
func (e *Export) Header() section.CaptureHeader {
	return e.header
}

// Type returns the channel type of the wrapped trace.
func (e *Export) Type() format.ChannelType {
	return e.header.ChannelType
}

// AssumeDigital narrows the envelope to its digital trace. It returns
// ErrTypeMismatch when the export wraps an analog trace; it never panics.
func (e *Export) AssumeDigital() (*DigitalTrace, error) {
	if e.digital == nil {
		return nil, fmt.Errorf("%w: expected Digital, found %s", errs.ErrTypeMismatch, e.Type())
	}

	return e.digital, nil
}

// AssumeAnalog narrows the envelope to its analog trace. It returns
// ErrTypeMismatch when the export wraps a digital trace; it never panics.
func (e *Export) AssumeAnalog() (*AnalogTrace, error) {
	if e.analog == nil {
		return nil, fmt.Errorf("%w: expected Analog, found %s", errs.ErrTypeMismatch, e.Type())
	}

	return e.analog, nil
}

// Validate checks the header and the wrapped trace's write-side invariants.
func (e *Export) Validate() error {
	if err := e.header.Validate(); err != nil {
		return err
	}

	switch {
	case e.header.ChannelType == format.ChannelDigital && e.digital != nil:
		return e.digital.Validate()
	case e.header.ChannelType == format.ChannelAnalog && e.analog != nil:
		return e.analog.Validate()
	default:
		return fmt.Errorf("%w: header declares %s but envelope holds no such trace",
			errs.ErrTypeMismatch, e.Type())
	}
}

// Fingerprint returns the xxHash64 of the export's uncompressed
// serialization. Logically identical captures share a fingerprint regardless
// of the container compression they were stored with.
func (e *Export) Fingerprint() (uint64, error) {
	raw, err := Encode(e)
	if err != nil {
		return 0, err
	}

	return hash.Sum(raw), nil
}
