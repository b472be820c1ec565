package bigval

import "math"

// scaled returns the magnitude with the integer-form scale applied: a
// positive scale drops that many low-order (fractional) bytes, truncating
// toward zero; a negative scale shifts the magnitude up by zero bytes.
func (v Value) scaled() []byte {
	switch {
	case v.scale > 0:
		drop := int(v.scale)
		if drop > len(v.mag) {
			drop = len(v.mag)
		}

		return v.mag[drop:]
	case v.scale < 0:
		pad := int(-v.scale)

		out := make([]byte, len(v.mag)+pad)
		copy(out[pad:], v.mag)

		return out
	}

	return v.mag
}

// Uint64 returns the absolute value truncated to its low 64 bits. The
// scale is applied first; the sign is discarded (an unsigned readout
// cannot carry it; use Int64 or Float64 for a signed result). Integer form
// only: fraction-form extraction is undesigned and returns ErrUnsupported.
func (v Value) Uint64() (uint64, error) {
	if v.form != FormInteger {
		return 0, ErrUnsupported
	}

	mag := v.scaled()

	var out uint64
	for i := 0; i < len(mag) && i < 8; i++ {
		out |= uint64(mag[i]) << (8 * i)
	}

	return out, nil
}

// Int64 returns the value with sign and scale applied, or ErrRange when
// the scaled magnitude does not fit a signed 64-bit integer.
func (v Value) Int64() (int64, error) {
	if v.form != FormInteger {
		return 0, ErrUnsupported
	}

	mag := v.scaled()
	for i := 8; i < len(mag); i++ {
		if mag[i] != 0 {
			return 0, ErrRange
		}
	}

	var u uint64
	for i := 0; i < len(mag) && i < 8; i++ {
		u |= uint64(mag[i]) << (8 * i)
	}

	const minMag = uint64(1) << 63

	if v.neg {
		switch {
		case u == minMag:
			return math.MinInt64, nil
		case u > minMag:
			return 0, ErrRange
		}

		return -int64(u), nil
	}

	if u > math.MaxInt64 {
		return 0, ErrRange
	}

	return int64(u), nil
}

// Float64 returns the nearest float64 with sign and scale applied. All
// forms are supported. Magnitudes wider than the float64 significand
// round to nearest.
func (v Value) Float64() (float64, error) {
	// f accumulates magnitude / 256^len, low byte first so byte i ends
	// up weighted 256^(i-len): every divisor is a power of two, so only
	// the additions can round.
	f := 0.0
	for i := 0; i < len(v.mag); i++ {
		f = (f + float64(v.mag[i])) / 256
	}

	switch v.form {
	case FormFraction:
		f = math.Ldexp(1+f, int(v.scale))
	case FormMantissa:
		f = math.Ldexp(f, int(v.scale))
	default:
		f = math.Ldexp(f, 8*(len(v.mag)-int(v.scale)))
	}

	if v.neg {
		f = -f
	}

	return f, nil
}
