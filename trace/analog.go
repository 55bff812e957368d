package trace

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/saleae/endian"
	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/internal/cursor"
)

// AnalogTrace is the decoded representation of one analog channel export: a
// flat waveform buffer plus the timing metadata needed to place each sample.
type AnalogTrace struct {
	// BeginTime is the capture start in seconds.
	BeginTime float64
	// SampleRate is the native capture rate in Hz.
	SampleRate uint32
	// DownsampleFactor is the integer divisor applied to SampleRate when the
	// capture was exported at reduced resolution. 1 means full resolution.
	DownsampleFactor uint32
	// Samples holds the raw waveform values.
	Samples []float32
}

// parseAnalog reads an analog payload from cur. Like parseDigital, the
// declared sample count is checked against the remaining bytes before
// allocation. A zero sample rate or downsample factor parses through and is
// rejected by Validate on the write path instead.
func parseAnalog(cur *cursor.Cursor) (*AnalogTrace, error) {
	beginTime, err := cur.Float64()
	if err != nil {
		return nil, err
	}

	sampleRate, err := cur.Uint32()
	if err != nil {
		return nil, err
	}

	downsample, err := cur.Uint32()
	if err != nil {
		return nil, err
	}

	count, err := cur.Uint64()
	if err != nil {
		return nil, err
	}
	if count > uint64(cur.Remaining())/4 {
		return nil, fmt.Errorf("%w: %d samples declared, %d bytes remain",
			errs.ErrTruncatedData, count, cur.Remaining())
	}

	var samples []float32
	if count > 0 {
		samples = make([]float32, count)
		for i := range samples {
			samples[i], err = cur.Float32()
			if err != nil {
				return nil, err
			}
		}
	}

	return &AnalogTrace{
		BeginTime:        beginTime,
		SampleRate:       sampleRate,
		DownsampleFactor: downsample,
		Samples:          samples,
	}, nil
}

// SampleCount returns the number of samples in the trace.
func (t *AnalogTrace) SampleCount() int {
	return len(t.Samples)
}

// SampleTime returns the capture time of sample i in seconds:
// BeginTime + i * DownsampleFactor / SampleRate.
func (t *AnalogTrace) SampleTime(i int) float64 {
	return t.BeginTime + float64(i)*float64(t.DownsampleFactor)/float64(t.SampleRate)
}

// EffectiveRate returns the exported sample rate in Hz after downsampling.
func (t *AnalogTrace) EffectiveRate() float64 {
	return float64(t.SampleRate) / float64(t.DownsampleFactor)
}

// Duration returns the time span covered by the sample buffer in seconds.
func (t *AnalogTrace) Duration() float64 {
	if len(t.Samples) == 0 {
		return 0
	}

	return t.SampleTime(len(t.Samples)-1) - t.BeginTime
}

// All returns an iterator over (index, value) for every sample in order.
func (t *AnalogTrace) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i, v := range t.Samples {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Validate checks the invariants the encoder must preserve on write: sample
// rate and downsample factor are strictly positive.
func (t *AnalogTrace) Validate() error {
	if t.SampleRate == 0 {
		return errs.ErrInvalidSampleRate
	}
	if t.DownsampleFactor == 0 {
		return errs.ErrInvalidDownsampleFactor
	}

	return nil
}

// payloadSize returns the serialized payload length in bytes.
func (t *AnalogTrace) payloadSize() int {
	return 8 + 4 + 4 + 8 + 4*len(t.Samples)
}

// appendTo serializes the analog payload onto buf, mirroring parseAnalog.
func (t *AnalogTrace) appendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint64(buf, math.Float64bits(t.BeginTime))
	buf = engine.AppendUint32(buf, t.SampleRate)
	buf = engine.AppendUint32(buf, t.DownsampleFactor)
	buf = engine.AppendUint64(buf, uint64(len(t.Samples)))
	for _, v := range t.Samples {
		buf = engine.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}
