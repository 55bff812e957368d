package trace

import (
	"testing"

	"github.com/arloliu/saleae/errs"
	"github.com/arloliu/saleae/format"
	"github.com/stretchr/testify/require"
)

func TestExport_Narrowing(t *testing.T) {
	digital := NewDigitalExport(&DigitalTrace{BeginTime: 0, EndTime: 1})
	analog := NewAnalogExport(&AnalogTrace{SampleRate: 1000, DownsampleFactor: 1})

	t.Run("Matching variant", func(t *testing.T) {
		d, err := digital.AssumeDigital()
		require.NoError(t, err)
		require.NotNil(t, d)

		a, err := analog.AssumeAnalog()
		require.NoError(t, err)
		require.NotNil(t, a)
	})

	t.Run("Wrong variant returns TypeMismatch", func(t *testing.T) {
		a, err := digital.AssumeAnalog()
		require.Nil(t, a)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)

		d, err := analog.AssumeDigital()
		require.Nil(t, d)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("Parsed digital export rejects analog accessor", func(t *testing.T) {
		data := digitalBytes(t, 0, 0, 1, 0, nil)

		export, err := Decode(data)
		require.NoError(t, err)

		_, err = export.AssumeAnalog()
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})
}

func TestExport_Type(t *testing.T) {
	require.Equal(t, format.ChannelDigital, NewDigitalExport(&DigitalTrace{}).Type())
	require.Equal(t, format.ChannelAnalog, NewAnalogExport(&AnalogTrace{}).Type())
}

func TestExport_Validate(t *testing.T) {
	t.Run("Header mismatch with payload", func(t *testing.T) {
		export := &Export{header: NewDigitalExport(&DigitalTrace{}).header}

		require.ErrorIs(t, export.Validate(), errs.ErrTypeMismatch)
	})

	t.Run("Delegates to trace invariants", func(t *testing.T) {
		export := NewAnalogExport(&AnalogTrace{SampleRate: 0, DownsampleFactor: 1})

		require.ErrorIs(t, export.Validate(), errs.ErrInvalidSampleRate)
	})
}

func TestExport_Fingerprint(t *testing.T) {
	a := NewDigitalExport(&DigitalTrace{BeginTime: 0, EndTime: 1, Transitions: []float64{0.5}})
	b := NewDigitalExport(&DigitalTrace{BeginTime: 0, EndTime: 1, Transitions: []float64{0.5}})
	c := NewDigitalExport(&DigitalTrace{BeginTime: 0, EndTime: 1, Transitions: []float64{0.6}})

	fpA, err := a.Fingerprint()
	require.NoError(t, err)
	fpB, err := b.Fingerprint()
	require.NoError(t, err)
	fpC, err := c.Fingerprint()
	require.NoError(t, err)

	require.Equal(t, fpA, fpB)
	require.NotEqual(t, fpA, fpC)
}
