package trace

import (
	"github.com/arloliu/saleae/format"
	"github.com/arloliu/saleae/internal/cursor"
	"github.com/arloliu/saleae/section"
)

// Decode parses a complete capture export from data: the fixed preamble
// first, then the payload codec selected by the channel type tag. Any codec
// failure propagates unchanged and no partial result is returned.
//
// Decoding is a pure single pass over the buffer. The returned Export copies
// what it needs and does not alias data, so callers may reuse the input
// buffer afterward. Bytes trailing the declared payload are ignored.
func Decode(data []byte) (*Export, error) {
	cur := cursor.New(data)

	header, err := section.ParseCaptureHeader(cur)
	if err != nil {
		return nil, err
	}

	export := &Export{header: header}

	switch header.ChannelType {
	case format.ChannelDigital:
		export.digital, err = parseDigital(cur)
	case format.ChannelAnalog:
		export.analog, err = parseAnalog(cur)
	}
	if err != nil {
		return nil, err
	}

	return export, nil
}
