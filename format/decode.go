package format

import (
	"encoding/binary"
	"math"

	"github.com/calebcase/bigval"
)

// Decode decodes a big-endian buffer of exactly l.Size bytes into a
// bigval value.
//
// Normalized IEEE inputs produce a fraction-form value whose scale is the
// unbiased exponent. Denormals produce a mantissa-form value at the
// layout's minimum exponent. Zero decodes to positive zero (including
// negative zero inputs). FFP inputs produce a mantissa-form value with the
// excess-64 bias removed.
func (l Layout) Decode(data []byte) (bigval.Value, error) {
	if len(data) != l.Size {
		return bigval.Value{}, ErrInvalidLength
	}

	if l.Leading == Plain {
		return l.decodeFFP(data)
	}

	neg := data[0]&0x80 != 0

	// The exponent field follows the sign bit; pull the top two bytes
	// and shift the field down into place.
	hi := uint32(data[0]&0x7F)<<8 | uint32(data[1])
	exp := hi >> (15 - l.ExpBits)

	if exp == uint32(1)<<l.ExpBits-1 {
		// Infinities and NaNs have no finite value.
		return bigval.Value{}, ErrUnsupported
	}

	if l.Leading == Explicit {
		unit := data[l.MantOff]&0x80 != 0
		if unit == (exp == 0) {
			// Unnormals and pseudo-denormals.
			return bigval.Value{}, ErrUnsupported
		}
	}

	frac := fraction(data[l.MantOff:], l.FracBits)

	if exp == 0 {
		if allZero(frac) {
			return bigval.Zero(l.Buffer), nil
		}

		// Denormal: no implicit unit, minimum exponent.
		return bigval.FromFraction(place(frac, l.Buffer), neg, 1-l.Bias, false), nil
	}

	return bigval.FromFraction(place(frac, l.Buffer), neg, int32(exp)-l.Bias, true), nil
}

// decodeFFP decodes the fast floating point layout: 24-bit normalized
// mantissa in bytes 0-2, sign in bit 7 of byte 3, excess-64 power-of-two
// exponent in its low 7 bits.
func (l Layout) decodeFFP(data []byte) (bigval.Value, error) {
	// All-zero input is positive zero by definition.
	if allZero(data) {
		return bigval.Zero(l.Buffer), nil
	}

	neg := data[3]&0x80 != 0
	exp := int32(data[3] & 0x7F)

	frac := fraction(data[:3], l.FracBits)

	return bigval.FromFraction(place(frac, l.Buffer), neg, exp-l.Bias, false), nil
}

// FromFloat32 decomposes a native single precision value.
func FromFloat32(f float32) (bigval.Value, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(f))

	return Single.Decode(buf[:])
}

// FromFloat64 decomposes a native double precision value.
func FromFloat64(f float64) (bigval.Value, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))

	return Double.Decode(buf[:])
}

// DecodeFFP64 would decode the 8-byte fast floating point variant. The
// 64-bit FFP layout is intentionally undesigned; this always returns
// ErrUnsupported rather than a silently wrong zero value.
func DecodeFFP64(data []byte) (bigval.Value, error) {
	return bigval.Value{}, ErrUnsupported
}
