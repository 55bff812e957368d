// Package pool provides pooled byte buffers for the capture encoder.
package pool

import "sync"

const (
	// CaptureBufferDefaultSize is the initial capacity of pooled buffers,
	// sized for a typical digital export (a few thousand transitions).
	CaptureBufferDefaultSize = 1024 * 32 // 32KiB

	// CaptureBufferMaxThreshold is the capacity above which a buffer is not
	// returned to the pool, so one huge analog export does not pin memory.
	CaptureBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a reusable append-oriented byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating on subsequent appends.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+requiredBytes)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// CopyBytes returns a freshly allocated copy of the buffer contents, safe to
// hold after the buffer is returned to the pool.
func (bb *ByteBuffer) CopyBytes() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

var captureBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(CaptureBufferDefaultSize)
	},
}

// GetCaptureBuffer obtains a reset ByteBuffer from the pool.
func GetCaptureBuffer() *ByteBuffer {
	bb, _ := captureBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutCaptureBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped instead of pooled.
func PutCaptureBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > CaptureBufferMaxThreshold {
		return
	}

	captureBufferPool.Put(bb)
}
