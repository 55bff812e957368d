package trace

import (
	"fmt"

	"github.com/arloliu/saleae/compress"
	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/format"
	"github.com/arloliu/saleae/internal/options"
	"github.com/arloliu/saleae/internal/pool"
	"github.com/arloliu/saleae/section"
)

// Encoder serializes Export values back to capture bytes. It is configured
// once through functional options and is safe for reuse across captures.
type Encoder struct {
	compression format.CompressionType
	version     *uint32
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression wraps the serialized capture in the given container
// format. The default is CompressionNone, the raw layout Logic 2 reads.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	})
}

// WithVersion overrides the header version on output instead of keeping the
// version the export was parsed with.
func WithVersion(version uint32) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !format.IsSupportedVersion(version) {
			return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, version)
		}
		e.version = &version

		return nil
	})
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{compression: format.CompressionNone}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode serializes the export as the structural inverse of Decode: preamble
// fields followed by the matching trace payload, so the output re-parses to
// an equal value.
//
// Caller-supplied invariant violations (zero sample rate, non-monotonic
// transitions, inverted time range) fail fast here rather than producing a
// corrupt file.
func (enc *Encoder) Encode(e *Export) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	header := e.header
	if enc.version != nil {
		header.Version = *enc.version
	}

	bb := pool.GetCaptureBuffer()
	defer pool.PutCaptureBuffer(bb)

	switch header.ChannelType {
	case format.ChannelDigital:
		bb.Grow(section.HeaderSize + e.digital.payloadSize())
		bb.B = header.AppendTo(bb.B)
		bb.B = e.digital.appendTo(bb.B)
	case format.ChannelAnalog:
		bb.Grow(section.HeaderSize + e.analog.payloadSize())
		bb.B = header.AppendTo(bb.B)
		bb.B = e.analog.appendTo(bb.B)
	}

	if enc.compression == format.CompressionNone {
		return bb.CopyBytes(), nil
	}

	codec, err := compress.GetCodec(enc.compression)
	if err != nil {
		return nil, err
	}

	out, err := codec.Compress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress capture: %w", err)
	}

	return out, nil
}

// Encode serializes the export with default encoder settings: no container
// compression, header version preserved.
func Encode(e *Export) ([]byte, error) {
	enc, err := NewEncoder()
	if err != nil {
		return nil, err
	}

	return enc.Encode(e)
}
