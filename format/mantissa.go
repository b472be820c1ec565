package format

// fraction extracts a mantissa field of the given bit width from a
// big-endian byte span and returns it left-aligned: the field's most
// significant bit ends up at bit 7 of the first output byte.
//
// For widths that are not a multiple of 8 the leading byte holds foreign
// bits above the field (exponent tail bits, or an explicit unit bit); it
// is masked down to the field's low bits and the whole span is shifted
// left to align. Byte-aligned widths pass through unmodified.
func fraction(field []byte, bits uint) []byte {
	count := int((bits + 7) / 8)

	out := make([]byte, count)
	copy(out, field[:count])

	if rem := bits % 8; rem != 0 {
		out[0] &= byte(1<<rem) - 1
		shiftLeft(out, 8-rem)
	}

	return out
}

// shiftLeft shifts a big-endian byte span left by n bits, 0 <= n < 8.
// Bits shifted out of the leading byte are discarded.
func shiftLeft(b []byte, n uint) {
	if n == 0 {
		return
	}

	for i := range b {
		b[i] <<= n
		if i+1 < len(b) {
			b[i] |= b[i+1] >> (8 - n)
		}
	}
}

// place reverses a big-endian fraction into the most significant end of a
// little-endian magnitude buffer of the given size. Unfilled low bytes
// stay zero.
func place(frac []byte, size int) []byte {
	mag := make([]byte, size)
	for i, b := range frac {
		mag[size-1-i] = b
	}

	return mag
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}
