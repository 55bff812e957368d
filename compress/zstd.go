package compress

// ZstdCompressor provides Zstandard frame compression for capture files.
//
// Zstd offers the best compression ratio of the supported containers and is
// the recommended choice for archival of large analog captures. The
// implementation is selected at build time; see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
