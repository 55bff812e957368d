package compress

import (
	"bytes"

	"github.com/arloliu/saleae/format"
)

// Container frame magics. An uncompressed capture starts with '<' of the
// "<SALEAE>" marker, which collides with none of these.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	gzipMagic = []byte{0x1F, 0x8B}
	// Stream identifier chunk header shared by the s2 and snappy framed
	// formats (chunk type 0xFF, length 6).
	s2Magic = []byte{0xFF, 0x06, 0x00, 0x00}
)

// Detect identifies the compression container wrapping data from its frame
// magic. It returns (CompressionNone, false) for anything that is not a
// recognized container, including raw capture bytes.
func Detect(data []byte) (format.CompressionType, bool) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd, true
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4, true
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2, true
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip, true
	default:
		return format.CompressionNone, false
	}
}
