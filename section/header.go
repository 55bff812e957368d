package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/saleae/endian"
	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/format"
	"github.com/arloliu/saleae/internal/cursor"
)

// CaptureHeader represents the fixed preamble at the start of a capture
// export file.
type CaptureHeader struct {
	// Version is the export format version. byte offset 8-11
	Version uint32
	// ChannelType selects the payload that follows the preamble. byte offset 12-15
	ChannelType format.ChannelType
}

// NewCaptureHeader creates a CaptureHeader for the given channel type at the
// current format version.
func NewCaptureHeader(channelType format.ChannelType) CaptureHeader {
	return CaptureHeader{
		Version:     format.VersionLegacy,
		ChannelType: channelType,
	}
}

// Parse reads and validates the preamble from cur, leaving the cursor
// positioned at the start of the channel-type specific payload.
//
// Returns:
//   - errs.ErrInvalidMagic if the magic marker does not match byte-exact
//   - errs.ErrUnsupportedVersion for an unrecognized version
//   - errs.ErrUnknownChannelType for an unrecognized channel tag
//   - errs.ErrTruncatedData if fewer than HeaderSize bytes remain
func (h *CaptureHeader) Parse(cur *cursor.Cursor) error {
	magic, err := cur.Bytes(MagicSize)
	if err != nil {
		return err
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, magic)
	}

	version, err := cur.Uint32()
	if err != nil {
		return err
	}
	if !format.IsSupportedVersion(version) {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, version)
	}

	tag, err := cur.Uint32()
	if err != nil {
		return err
	}
	channelType := format.ChannelType(tag)
	if !channelType.Valid() {
		return fmt.Errorf("%w: tag %d", errs.ErrUnknownChannelType, tag)
	}

	h.Version = version
	h.ChannelType = channelType

	return nil
}

// Validate checks that the header fields are serializable.
func (h CaptureHeader) Validate() error {
	if !format.IsSupportedVersion(h.Version) {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.ChannelType.Valid() {
		return fmt.Errorf("%w: tag %d", errs.ErrUnknownChannelType, uint32(h.ChannelType))
	}

	return nil
}

// AppendTo serializes the preamble onto buf and returns the extended slice.
// The output is the bit-exact mirror of Parse.
func (h CaptureHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = append(buf, Magic...)
	buf = engine.AppendUint32(buf, h.Version)
	buf = engine.AppendUint32(buf, uint32(h.ChannelType))

	return buf
}

// Bytes serializes the preamble into a new HeaderSize byte slice.
func (h CaptureHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseCaptureHeader parses a CaptureHeader from cur.
func ParseCaptureHeader(cur *cursor.Cursor) (CaptureHeader, error) {
	h := CaptureHeader{}
	if err := h.Parse(cur); err != nil {
		return CaptureHeader{}, err
	}

	return h, nil
}
