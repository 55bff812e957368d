package trace

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/format"
	"github.com/arloliu/saleae/section"
	"github.com/stretchr/testify/require"
)

// analogBytes builds a complete analog export by hand: preamble, begin time,
// sample rate, downsample factor, declared count, then samples.
func analogBytes(t *testing.T, begin float64, rate, downsample uint32, count uint64, samples []float32) []byte {
	t.Helper()

	buf := section.NewCaptureHeader(format.ChannelAnalog).AppendTo(nil)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(begin))
	buf = binary.LittleEndian.AppendUint32(buf, rate)
	buf = binary.LittleEndian.AppendUint32(buf, downsample)
	buf = binary.LittleEndian.AppendUint64(buf, count)
	for _, v := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}

func TestAnalogTrace_Decode(t *testing.T) {
	t.Run("Parses fields in order", func(t *testing.T) {
		data := analogBytes(t, 0.5, 48000, 4, 3, []float32{0.0, 1.0, 0.5})

		export, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, format.ChannelAnalog, export.Type())

		analog, err := export.AssumeAnalog()
		require.NoError(t, err)
		require.Equal(t, 0.5, analog.BeginTime)
		require.Equal(t, uint32(48000), analog.SampleRate)
		require.Equal(t, uint32(4), analog.DownsampleFactor)
		require.Equal(t, []float32{0.0, 1.0, 0.5}, analog.Samples)
	})

	t.Run("Sample buffer length matches declared count", func(t *testing.T) {
		samples := make([]float32, 257)
		data := analogBytes(t, 0, 1000, 1, uint64(len(samples)), samples)

		export, err := Decode(data)
		require.NoError(t, err)

		analog, err := export.AssumeAnalog()
		require.NoError(t, err)
		require.Equal(t, len(samples), analog.SampleCount())
	})

	t.Run("Empty sample buffer", func(t *testing.T) {
		data := analogBytes(t, 0, 1000, 1, 0, nil)

		export, err := Decode(data)
		require.NoError(t, err)

		analog, err := export.AssumeAnalog()
		require.NoError(t, err)
		require.Equal(t, 0, analog.SampleCount())
		require.Equal(t, 0.0, analog.Duration())
	})

	t.Run("Declared count exceeds remaining bytes", func(t *testing.T) {
		data := analogBytes(t, 0, 1000, 1, 5, []float32{1, 2, 3})

		_, err := Decode(data)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})

	t.Run("Adversarial count fails before allocation", func(t *testing.T) {
		data := analogBytes(t, 0, 1000, 1, math.MaxUint64, nil)

		_, err := Decode(data)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})

	t.Run("Zero sample rate passes through on read", func(t *testing.T) {
		data := analogBytes(t, 0, 0, 0, 1, []float32{1.0})

		export, err := Decode(data)
		require.NoError(t, err)

		analog, err := export.AssumeAnalog()
		require.NoError(t, err)
		require.ErrorIs(t, analog.Validate(), errs.ErrInvalidSampleRate)
	})
}

func TestAnalogTrace_SampleTime(t *testing.T) {
	t.Run("Full resolution", func(t *testing.T) {
		analog := &AnalogTrace{
			BeginTime:        0.0,
			SampleRate:       1000,
			DownsampleFactor: 1,
			Samples:          []float32{0.0, 1.0, 0.5},
		}

		require.InDelta(t, 0.0, analog.SampleTime(0), 1e-12)
		require.InDelta(t, 0.002, analog.SampleTime(2), 1e-12)
	})

	t.Run("Downsampled", func(t *testing.T) {
		analog := &AnalogTrace{
			BeginTime:        1.0,
			SampleRate:       1000,
			DownsampleFactor: 10,
			Samples:          make([]float32, 5),
		}

		require.InDelta(t, 1.04, analog.SampleTime(4), 1e-12)
		require.InDelta(t, 100.0, analog.EffectiveRate(), 1e-12)
		require.InDelta(t, 0.04, analog.Duration(), 1e-12)
	})
}

func TestAnalogTrace_All(t *testing.T) {
	analog := &AnalogTrace{
		SampleRate:       1,
		DownsampleFactor: 1,
		Samples:          []float32{0.5, -0.5, 2.0},
	}

	var got []float32
	for i, v := range analog.All() {
		require.Equal(t, len(got), i)
		got = append(got, v)
	}

	require.Equal(t, analog.Samples, got)
}

func TestAnalogTrace_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		analog := &AnalogTrace{SampleRate: 1000, DownsampleFactor: 1}
		require.NoError(t, analog.Validate())
	})

	t.Run("Zero sample rate", func(t *testing.T) {
		analog := &AnalogTrace{SampleRate: 0, DownsampleFactor: 1}
		require.ErrorIs(t, analog.Validate(), errs.ErrInvalidSampleRate)
	})

	t.Run("Zero downsample factor", func(t *testing.T) {
		analog := &AnalogTrace{SampleRate: 1000, DownsampleFactor: 0}
		require.ErrorIs(t, analog.Validate(), errs.ErrInvalidDownsampleFactor)
	})
}
