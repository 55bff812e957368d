// Package trace implements the channel payload codecs and the export
// envelope for Saleae Logic 2 binary captures.
//
// A capture file holds exactly one channel. Digital channels are stored as a
// run-length encoding of level durations: an initial logic state, the
// capture window, and the ordered timestamps at which the signal flipped.
// Analog channels are stored as a flat buffer of float32 samples with
// sample-rate and downsample metadata.
//
// Decoding produces an immutable Export that owns its data exclusively; a
// parsed Export is safe for concurrent readers without locking. Encoding is
// the structural inverse of decoding: for every valid Export e,
// Decode(Encode(e)) yields an equal value.
package trace
