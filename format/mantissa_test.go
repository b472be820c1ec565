package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFraction(t *testing.T) {
	type TC struct {
		name  string
		field []byte
		bits  uint
		want  []byte
	}

	tcs := []TC{
		{
			// Double: 4 exponent tail bits above a 52-bit field.
			name:  "52-bit masks and aligns",
			field: []byte{0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			bits:  52,
			want:  []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			// Single: one exponent bit above a 23-bit field.
			name:  "23-bit masks and aligns",
			field: []byte{0xC0, 0x00, 0x00},
			bits:  23,
			want:  []byte{0x80, 0x00, 0x00},
		},
		{
			// Extended: the explicit unit bit above a 63-bit field.
			name:  "63-bit strips the unit bit",
			field: []byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
			bits:  63,
			want:  []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02},
		},
		{
			name:  "byte-aligned passes through",
			field: []byte{0x80, 0x01, 0xFF},
			bits:  24,
			want:  []byte{0x80, 0x01, 0xFF},
		},
		{
			name:  "low bits survive the shift",
			field: []byte{0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			bits:  52,
			want:  []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF0},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, fraction(tc.field, tc.bits))
		})
	}
}

func TestFractionDoesNotAlias(t *testing.T) {
	field := []byte{0xFF, 0xFF, 0xFF}

	out := fraction(field, 24)
	out[0] = 0

	require.Equal(t, byte(0xFF), field[0])
}

func TestShiftLeft(t *testing.T) {
	b := []byte{0x01, 0x80}
	shiftLeft(b, 1)
	require.Equal(t, []byte{0x03, 0x00}, b)

	b = []byte{0x12, 0x34}
	shiftLeft(b, 0)
	require.Equal(t, []byte{0x12, 0x34}, b)

	b = []byte{0x0F, 0xF0}
	shiftLeft(b, 4)
	require.Equal(t, []byte{0xFF, 0x00}, b)
}

func TestPlace(t *testing.T) {
	// The big-endian fraction lands reversed at the most significant
	// end; unfilled low bytes stay zero.
	mag := place([]byte{0xAA, 0xBB, 0xCC}, 5)
	require.Equal(t, []byte{0x00, 0x00, 0xCC, 0xBB, 0xAA}, mag)
}
