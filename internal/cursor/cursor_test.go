package cursor

import (
	"math"
	"testing"

	"github.com/arloliu/saleae/errs"
	"github.com/stretchr/testify/require"
)

func TestCursor_Scalars(t *testing.T) {
	data := []byte{
		0x01, 0x02, 0x03, 0x04, // uint32 0x04030201
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // uint64 0x0102030405060708
	}

	cur := New(data)
	require.Equal(t, 0, cur.Pos())
	require.Equal(t, len(data), cur.Remaining())

	u32, err := cur.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), u32)
	require.Equal(t, 4, cur.Pos())

	u64, err := cur.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)
	require.Equal(t, 0, cur.Remaining())
}

func TestCursor_Floats(t *testing.T) {
	var data []byte
	data = append(data, 0x00, 0x00, 0x80, 0x3F) // float32 1.0
	bits := math.Float64bits(0.25)
	for i := range 8 {
		data = append(data, byte(bits>>(8*i)))
	}

	cur := New(data)

	f32, err := cur.Float32()
	require.NoError(t, err)
	require.Equal(t, float32(1.0), f32)

	f64, err := cur.Float64()
	require.NoError(t, err)
	require.Equal(t, 0.25, f64)
}

func TestCursor_Bytes(t *testing.T) {
	cur := New([]byte{'a', 'b', 'c', 'd'})

	b, err := cur.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)
	require.Equal(t, 1, cur.Remaining())
}

func TestCursor_Truncated(t *testing.T) {
	t.Run("Short buffer", func(t *testing.T) {
		cur := New([]byte{0x01, 0x02})

		_, err := cur.Uint32()
		require.ErrorIs(t, err, errs.ErrTruncatedData)

		// failed read does not advance
		require.Equal(t, 0, cur.Pos())
	})

	t.Run("Exhausted buffer", func(t *testing.T) {
		cur := New([]byte{0x01, 0x02, 0x03, 0x04})

		_, err := cur.Uint32()
		require.NoError(t, err)

		_, err = cur.Float64()
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})

	t.Run("Negative length", func(t *testing.T) {
		cur := New([]byte{0x01})

		_, err := cur.Bytes(-1)
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})
}
