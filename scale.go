package bigval

// ScaleTo returns a copy of v adjusted to the given scale. Integer form
// only (ErrUnsupported otherwise).
//
// Decreasing the scale drops that many low-order bytes. This is a lossy,
// caller-accepted truncation: when a dropped byte is nonzero the truncated
// value is returned together with ErrPrecisionLoss as a signal, never
// silently. Increasing the scale extends the buffer with zero bytes at the
// low end without touching the existing magnitude. Equal scale is a no-op
// copy.
func (v Value) ScaleTo(scale int32) (Value, error) {
	if v.form != FormInteger {
		return Value{}, ErrUnsupported
	}

	if scale == v.scale {
		return v.Clone(), nil
	}

	if scale < v.scale {
		drop := int(v.scale - scale)
		if drop > len(v.mag) {
			drop = len(v.mag)
		}

		out := Value{
			mag:   make([]byte, len(v.mag)-drop),
			neg:   v.neg,
			scale: scale,
		}
		copy(out.mag, v.mag[drop:])

		if out.IsZero() {
			out.neg = false
		}

		for _, b := range v.mag[:drop] {
			if b != 0 {
				return out, ErrPrecisionLoss
			}
		}

		return out, nil
	}

	pad := int(scale - v.scale)

	out := Value{
		mag:   make([]byte, len(v.mag)+pad),
		neg:   v.neg,
		scale: scale,
	}
	copy(out.mag[pad:], v.mag)

	return out, nil
}
