// Package cursor implements a sequential little-endian reader over an
// in-memory byte buffer. Every read validates the remaining length and
// returns errs.ErrTruncatedData on a shortfall, so callers never index out
// of bounds on adversarial inputs.
package cursor

import (
	"fmt"
	"math"

	"github.com/arloliu/saleae/endian"
	"github.com/arloliu/saleae/errs"
)

// Cursor reads scalar values sequentially from a byte slice. The zero value
// is not usable; create instances with New. Cursor does not copy or mutate
// the underlying buffer.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// New creates a Cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Pos returns the current byte offset from the start of the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Bytes consumes and returns the next n bytes. The returned slice aliases
// the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Uint32 consumes and returns the next little-endian uint32.
func (c *Cursor) Uint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}

	v := c.engine.Uint32(c.data[c.pos:])
	c.pos += 4

	return v, nil
}

// Uint64 consumes and returns the next little-endian uint64.
func (c *Cursor) Uint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}

	v := c.engine.Uint64(c.data[c.pos:])
	c.pos += 8

	return v, nil
}

// Float32 consumes and returns the next little-endian IEEE 754 float32.
func (c *Cursor) Float32() (float32, error) {
	bits, err := c.Uint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// Float64 consumes and returns the next little-endian IEEE 754 float64.
func (c *Cursor) Float64() (float64, error) {
	bits, err := c.Uint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// require reports ErrTruncatedData unless at least n more bytes remain.
func (c *Cursor) require(n int) error {
	if n < 0 || c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedData, n, c.pos, c.Remaining())
	}

	return nil
}
