package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	a := Sum([]byte("<SALEAE>"))
	b := Sum([]byte("<SALEAE>"))
	c := Sum([]byte("<SALEAE!"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.NotZero(t, a)
}
