package bigval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigval"
)

func TestUint64(t *testing.T) {
	t.Run("scale applied", func(t *testing.T) {
		// 0x1234 held with two fractional bytes.
		v := bigval.FromBytes([]byte{0x00, 0x00, 0x34, 0x12}, false, 2)

		u, err := v.Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(0x1234), u)
	})

	t.Run("negative scale shifts up", func(t *testing.T) {
		v := bigval.FromBytes([]byte{0x01}, false, -1)

		u, err := v.Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(0x100), u)
	})

	t.Run("sign discarded", func(t *testing.T) {
		u, err := bigval.FromInt64(-42).Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(42), u)
	})

	t.Run("truncates to low 64 bits", func(t *testing.T) {
		v := bigval.FromBytes([]byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0xFF}, false, 0)

		u, err := v.Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(1), u)
	})

	t.Run("fraction form unsupported", func(t *testing.T) {
		v := bigval.FromFraction([]byte{0, 0, 0, 0x80}, false, 0, true)

		_, err := v.Uint64()
		require.ErrorIs(t, err, bigval.ErrUnsupported)
	})
}

func TestInt64(t *testing.T) {
	type TC struct {
		name  string
		value bigval.Value
		want  int64
		err   error
	}

	tcs := []TC{
		{
			name:  "positive",
			value: bigval.FromInt64(12345),
			want:  12345,
		},
		{
			name:  "negative",
			value: bigval.FromInt64(-12345),
			want:  -12345,
		},
		{
			name:  "min round trips",
			value: bigval.FromInt64(math.MinInt64),
			want:  math.MinInt64,
		},
		{
			name:  "positive 2^63 out of range",
			value: bigval.FromBytes([]byte{0, 0, 0, 0, 0, 0, 0, 0x80}, false, 0),
			err:   bigval.ErrRange,
		},
		{
			name:  "wide magnitude out of range",
			value: bigval.FromBytes([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0x01}, false, 0),
			err:   bigval.ErrRange,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.Int64()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFloat64(t *testing.T) {
	type TC struct {
		name  string
		value bigval.Value
		want  float64
	}

	tcs := []TC{
		{
			name:  "integer",
			value: bigval.FromInt64(-42),
			want:  -42,
		},
		{
			name:  "integer with fractional byte",
			value: bigval.FromBytes([]byte{0x80}, false, 1),
			want:  0.5,
		},
		{
			name:  "integer with negative scale",
			value: bigval.FromBytes([]byte{0x01}, false, -1),
			want:  256,
		},
		{
			name:  "fraction with unit",
			value: bigval.FromFraction([]byte{0, 0, 0, 0x80}, false, 0, true),
			want:  1.5,
		},
		{
			name:  "fraction scaled",
			value: bigval.FromFraction([]byte{0, 0, 0, 0x40}, true, 1, true),
			want:  -2.5,
		},
		{
			name:  "mantissa",
			value: bigval.FromFraction([]byte{0, 0, 0, 0x80}, false, 1, false),
			want:  1,
		},
		{
			name:  "zero",
			value: bigval.Zero(8),
			want:  0,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.Float64()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
