package trace

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/saleae/endian"
	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/internal/cursor"
)

// DigitalTrace is the decoded representation of one digital channel export.
//
// The signal is run-length encoded: Transitions holds the moments the logic
// level flipped, and InitialState is the level immediately before the first
// transition. The file format never stores one sample per clock tick.
type DigitalTrace struct {
	// InitialState is the logic level before the first transition.
	InitialState bool
	// BeginTime is the capture start in seconds.
	BeginTime float64
	// EndTime is the capture end in seconds.
	EndTime float64
	// Transitions holds the non-decreasing timestamps, in seconds, at which
	// the signal changed level.
	Transitions []float64
}

// Edge is one level segment of a digital trace: the logic level and how long
// the signal held it. Edges are derived by the iterator and never persisted.
type Edge struct {
	// High is true when the signal is at the high logic level.
	High bool
	// Duration is the segment length in seconds. Durations can be negative
	// when a corrupt file carries non-monotonic transition timestamps.
	Duration float64
}

// parseDigital reads a digital payload from cur. The declared transition
// count is validated against the remaining bytes before any allocation, so
// an adversarial count fails with ErrTruncatedData instead of exhausting
// memory. Monotonicity is not validated here; corrupt timestamps pass
// through and surface as negative durations in Edges.
func parseDigital(cur *cursor.Cursor) (*DigitalTrace, error) {
	state, err := cur.Uint32()
	if err != nil {
		return nil, err
	}

	beginTime, err := cur.Float64()
	if err != nil {
		return nil, err
	}

	endTime, err := cur.Float64()
	if err != nil {
		return nil, err
	}

	count, err := cur.Uint64()
	if err != nil {
		return nil, err
	}
	if count > uint64(cur.Remaining())/8 {
		return nil, fmt.Errorf("%w: %d transitions declared, %d bytes remain",
			errs.ErrTruncatedData, count, cur.Remaining())
	}

	var transitions []float64
	if count > 0 {
		transitions = make([]float64, count)
		for i := range transitions {
			transitions[i], err = cur.Float64()
			if err != nil {
				return nil, err
			}
		}
	}

	return &DigitalTrace{
		// Logic 2 writes 0 or 1, but any nonzero value decodes as high.
		InitialState: state != 0,
		BeginTime:    beginTime,
		EndTime:      endTime,
		Transitions:  transitions,
	}, nil
}

// Edges returns a lazy iterator over the level segments of the trace.
//
// Starting from InitialState at BeginTime, each transition timestamp t emits
// the segment held since the previous boundary and flips the level. One
// final segment covers the tail from the last transition to EndTime, so a
// trace with zero transitions yields exactly one segment spanning the whole
// capture.
//
// The sequence is finite and restartable: every call starts a fresh pass,
// and iteration state lives in the closure, keeping memory O(1) over the
// transition count.
func (t *DigitalTrace) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		state := t.InitialState
		prev := t.BeginTime

		for _, ts := range t.Transitions {
			if !yield(Edge{High: state, Duration: ts - prev}) {
				return
			}
			state = !state
			prev = ts
		}

		yield(Edge{High: state, Duration: t.EndTime - prev})
	}
}

// Samples returns the segments of Edges as (level, duration) pairs.
func (t *DigitalTrace) Samples() iter.Seq2[bool, float64] {
	return func(yield func(bool, float64) bool) {
		for edge := range t.Edges() {
			if !yield(edge.High, edge.Duration) {
				return
			}
		}
	}
}

// EdgeCount returns the number of segments Edges will emit.
func (t *DigitalTrace) EdgeCount() int {
	return len(t.Transitions) + 1
}

// Duration returns the capture window length in seconds.
func (t *DigitalTrace) Duration() float64 {
	return t.EndTime - t.BeginTime
}

// FinalState returns the logic level after the last transition.
func (t *DigitalTrace) FinalState() bool {
	return t.InitialState != (len(t.Transitions)%2 == 1)
}

// Validate checks the invariants the encoder must preserve on write:
// EndTime must not precede BeginTime, and Transitions must be non-decreasing
// and contained in [BeginTime, EndTime].
func (t *DigitalTrace) Validate() error {
	if t.EndTime < t.BeginTime {
		return fmt.Errorf("%w: begin %v, end %v", errs.ErrInvalidTimeRange, t.BeginTime, t.EndTime)
	}

	prev := t.BeginTime
	for i, ts := range t.Transitions {
		if ts < prev {
			return fmt.Errorf("%w: transition %d at %v precedes %v",
				errs.ErrNonMonotonicTransitions, i, ts, prev)
		}
		prev = ts
	}
	if prev > t.EndTime {
		return fmt.Errorf("%w: last transition %v exceeds end time %v",
			errs.ErrNonMonotonicTransitions, prev, t.EndTime)
	}

	return nil
}

// payloadSize returns the serialized payload length in bytes.
func (t *DigitalTrace) payloadSize() int {
	return 4 + 8 + 8 + 8 + 8*len(t.Transitions)
}

// appendTo serializes the digital payload onto buf, mirroring parseDigital.
func (t *DigitalTrace) appendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	var state uint32
	if t.InitialState {
		state = 1
	}
	buf = engine.AppendUint32(buf, state)
	buf = engine.AppendUint64(buf, math.Float64bits(t.BeginTime))
	buf = engine.AppendUint64(buf, math.Float64bits(t.EndTime))
	buf = engine.AppendUint64(buf, uint64(len(t.Transitions)))
	for _, ts := range t.Transitions {
		buf = engine.AppendUint64(buf, math.Float64bits(ts))
	}

	return buf
}
