package section

// Magic is the fixed marker at the start of every capture export.
const Magic = "<SALEAE>"

const (
	// MagicSize is the byte length of the magic marker.
	MagicSize = len(Magic)

	// HeaderSize is the total byte length of the fixed preamble:
	// magic (8) + version (4) + channel type (4).
	HeaderSize = MagicSize + 4 + 4
)
