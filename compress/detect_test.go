package compress

import (
	"testing"

	"github.com/arloliu/saleae/format"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	payload := testPayload()

	t.Run("Identifies each container", func(t *testing.T) {
		for _, compression := range []format.CompressionType{
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
			format.CompressionGzip,
		} {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			detected, ok := Detect(compressed)
			require.True(t, ok, compression.String())
			require.Equal(t, compression, detected)
		}
	})

	t.Run("Raw capture bytes are not a container", func(t *testing.T) {
		_, ok := Detect([]byte("<SALEAE>anything"))
		require.False(t, ok)
	})

	t.Run("Empty and short inputs", func(t *testing.T) {
		_, ok := Detect(nil)
		require.False(t, ok)

		_, ok = Detect([]byte{0x28})
		require.False(t, ok)
	})
}
