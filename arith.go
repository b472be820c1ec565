package bigval

// Cmp compares magnitudes, ignoring sign and scale. It returns -1, 0, or
// +1. Buffers of unequal size compare with the shorter one zero-extended.
func (v Value) Cmp(other Value) int {
	size := len(v.mag)
	if len(other.mag) > size {
		size = len(other.mag)
	}

	for i := size - 1; i >= 0; i-- {
		a := byteAt(v.mag, i)
		b := byteAt(other.mag, i)

		switch {
		case a > b:
			return 1
		case a < b:
			return -1
		}
	}

	return 0
}

// Add returns v + other.
//
// Operands must be integer form (ErrUnsupported otherwise: raw-fraction
// addition under an implicit unit is not magnitude addition) and share a
// scale (ErrUnscaledOperands otherwise; align with ScaleTo first).
//
// Equal signs add magnitudes byte-wise with the carry propagated into a
// result one byte larger than the larger operand. Mixed signs subtract the
// smaller magnitude from the larger and take the larger operand's sign. An
// exact zero result is positive.
func (v Value) Add(other Value) (Value, error) {
	if v.form != FormInteger || other.form != FormInteger {
		return Value{}, ErrUnsupported
	}
	if v.scale != other.scale {
		return Value{}, ErrUnscaledOperands
	}

	if v.neg == other.neg {
		out := Value{
			mag:   addMag(v.mag, other.mag),
			neg:   v.neg,
			scale: v.scale,
		}
		if out.IsZero() {
			out.neg = false
		}

		return out, nil
	}

	size := len(v.mag)
	if len(other.mag) > size {
		size = len(other.mag)
	}

	out := Value{scale: v.scale}

	switch v.Cmp(other) {
	case 1:
		out.mag = subMag(grown(v.mag, size), other.mag)
		out.neg = v.neg
	case -1:
		out.mag = subMag(grown(other.mag, size), v.mag)
		out.neg = other.neg
	default:
		out.mag = make([]byte, size)
	}

	return out, nil
}

// Sub returns v - other under the same rules as Add.
func (v Value) Sub(other Value) (Value, error) {
	return v.Add(other.Neg())
}

// addMag adds two little-endian magnitudes byte-wise. The result is one
// byte larger than the larger input; the final byte holds the carry out
// (possibly zero). Positions beyond a shorter input read as zero.
func addMag(a, b []byte) []byte {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}

	out := make([]byte, size+1)

	carry := uint16(0)
	for i := 0; i < size; i++ {
		carry += uint16(byteAt(a, i)) + uint16(byteAt(b, i))
		out[i] = byte(carry)
		carry >>= 8
	}
	out[size] = byte(carry)

	return out
}

// subMag subtracts b from a byte-wise with borrow propagation. a must be
// the larger or equal magnitude and at least as long as b's nonzero span.
func subMag(a, b []byte) []byte {
	out := make([]byte, len(a))

	borrow := uint16(0)
	for i := range out {
		d := uint16(a[i]) - uint16(byteAt(b, i)) - borrow
		out[i] = byte(d)
		borrow = (d >> 8) & 1
	}

	return out
}

func byteAt(mag []byte, i int) byte {
	if i < len(mag) {
		return mag[i]
	}

	return 0
}
