package format

type (
	ChannelType     uint32
	CompressionType uint8
)

const (
	// ChannelDigital identifies a digital (logic transition) capture export.
	ChannelDigital ChannelType = 0
	// ChannelAnalog identifies an analog (sampled waveform) capture export.
	ChannelAnalog ChannelType = 1
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no container compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame container.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 framed stream container.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame container.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents a gzip container.
)

const (
	// VersionLegacy is the format version written by Saleae Logic 2.
	VersionLegacy uint32 = 0
	// VersionCurrent is the newest recognized format version. It shares the
	// binary layout of VersionLegacy.
	VersionCurrent uint32 = 1
)

// IsSupportedVersion reports whether v is a recognized export format version.
func IsSupportedVersion(v uint32) bool {
	return v == VersionLegacy || v == VersionCurrent
}

func (c ChannelType) String() string {
	switch c {
	case ChannelDigital:
		return "Digital"
	case ChannelAnalog:
		return "Analog"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known channel type tag.
func (c ChannelType) Valid() bool {
	return c == ChannelDigital || c == ChannelAnalog
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
