package bigval

// Form selects how a value's magnitude and scale combine into a number.
type Form uint8

const (
	// FormInteger values read as magnitude * 256^-scale.
	FormInteger Form = iota

	// FormFraction values hold a left-aligned binary fraction with an
	// implicit leading unit: (1 + fraction) * 2^scale.
	FormFraction

	// FormMantissa values hold a left-aligned binary fraction with no
	// implicit unit: fraction * 2^scale. FFP mantissas and IEEE
	// denormals.
	FormMantissa
)

// Value is a sign-magnitude number of arbitrary byte width.
//
// The magnitude buffer is little-endian and holds a pure magnitude; the
// sign lives only in the flag. The zero Value is integer-form positive
// zero with an empty buffer.
type Value struct {
	mag   []byte
	neg   bool
	scale int32
	form  Form
}

// FromInt64 constructs an integer-form value from a signed 64-bit input.
//
// The sign is recorded from the top bit. Negative inputs are converted
// from two's complement to a pure magnitude by a byte-wise complement with
// the carry propagated across the whole buffer, so the minimum int64 (whose
// magnitude exceeds the signed range) still yields a correct 8-byte
// magnitude.
func FromInt64(value int64) Value {
	u := uint64(value)

	v := Value{mag: make([]byte, 8)}
	v.neg = u&(1<<63) != 0

	for i := range v.mag {
		v.mag[i] = byte(u >> (8 * i))
	}

	if v.neg {
		complement(v.mag)
	}

	return v
}

// FromUint64 constructs an integer-form value from an unsigned 64-bit
// input. The sign is always positive and the scale zero.
func FromUint64(value uint64) Value {
	v := Value{mag: make([]byte, 8)}

	for i := range v.mag {
		v.mag[i] = byte(value >> (8 * i))
	}

	return v
}

// FromBytes constructs an integer-form value from a little-endian
// magnitude. The buffer is deep-copied; the caller's slice is never
// aliased.
func FromBytes(mag []byte, negative bool, scale int32) Value {
	v := Value{
		mag:   make([]byte, len(mag)),
		neg:   negative,
		scale: scale,
	}
	copy(v.mag, mag)

	return v
}

// FromFraction constructs a fraction-form value from a little-endian,
// left-aligned fraction buffer. With unit set the number reads as
// (1 + fraction) * 2^scale, otherwise fraction * 2^scale.
func FromFraction(mag []byte, negative bool, scale int32, unit bool) Value {
	v := Value{
		mag:   make([]byte, len(mag)),
		neg:   negative,
		scale: scale,
		form:  FormMantissa,
	}
	if unit {
		v.form = FormFraction
	}
	copy(v.mag, mag)

	return v
}

// Zero returns positive integer zero with an all-zero buffer of the given
// byte size.
func Zero(size int) Value {
	return Value{mag: make([]byte, size)}
}

// Bytes returns a copy of the little-endian magnitude buffer.
func (v Value) Bytes() []byte {
	out := make([]byte, len(v.mag))
	copy(out, v.mag)

	return out
}

// Len returns the magnitude buffer size in bytes.
func (v Value) Len() int {
	return len(v.mag)
}

// Negative reports the sign flag.
func (v Value) Negative() bool {
	return v.neg
}

// Scale returns the scale. For integer form it counts fractional base-256
// digits; for fraction and mantissa forms it is the power-of-two exponent.
func (v Value) Scale() int32 {
	return v.scale
}

// Form returns the value's form.
func (v Value) Form() Form {
	return v.form
}

// IsZero reports whether the value is numerically zero. Fraction-form
// values are never zero: the implicit unit keeps them at 2^scale or above.
func (v Value) IsZero() bool {
	if v.form == FormFraction {
		return false
	}

	for _, b := range v.mag {
		if b != 0 {
			return false
		}
	}

	return true
}

// Sign returns -1, 0, or +1.
func (v Value) Sign() int {
	switch {
	case v.IsZero():
		return 0
	case v.neg:
		return -1
	}

	return 1
}

// Clone returns a deep copy. The copy owns its own buffer.
func (v Value) Clone() Value {
	out := v
	out.mag = make([]byte, len(v.mag))
	copy(out.mag, v.mag)

	return out
}

// Neg returns a copy with the sign flipped. Zero stays positive.
func (v Value) Neg() Value {
	out := v.Clone()
	if !out.IsZero() {
		out.neg = !out.neg
	}

	return out
}

// Abs returns a positive copy.
func (v Value) Abs() Value {
	out := v.Clone()
	out.neg = false

	return out
}

// complement converts a little-endian two's-complement pattern in place to
// its absolute value: bitwise complement plus one, carry propagated across
// the whole buffer. It works for any width, not just 8 bytes.
func complement(mag []byte) {
	carry := uint16(1)
	for i := range mag {
		carry += uint16(^mag[i])
		mag[i] = byte(carry)
		carry >>= 8
	}
}

// grown returns a copy of mag widened to size bytes. Existing bytes keep
// their offsets and the added high bytes are zero. A size not larger than
// the current buffer returns an unwidened copy; growing never truncates.
func grown(mag []byte, size int) []byte {
	if size < len(mag) {
		size = len(mag)
	}

	out := make([]byte, size)
	copy(out, mag)

	return out
}
