// Package format decodes fixed-size floating point layouts into bigval
// values.
//
// Every layout is described by a Layout table entry and decoded from a
// big-endian buffer of exactly Layout.Size bytes. The decoder extracts the
// sign, removes the excess-N exponent bias, and left-aligns the mantissa
// fraction into a little-endian magnitude, so the 1/2-place bit is always
// bit 7 of the most significant buffer byte regardless of the source
// fraction width.
//
// IEEE Layouts
//
// The IEEE style layouts place the sign in bit 7 of the first byte,
// followed by the exponent field and the fraction:
//
//  | Layout    | Size | Exponent | Bias  | Fraction | Leading bit        |
//  |-----------|------|----------|-------|----------|--------------------|
//  | Single    | 4    | 8        | 127   | 23       | hidden             |
//  | Double    | 8    | 11       | 1023  | 52       | hidden             |
//  | Extended  | 10   | 15       | 16383 | 63       | explicit, stripped |
//  | Quadruple | 16   | 15       | 16383 | 112      | hidden             |
//
// Single and double keep their unit bit hidden and their fraction fields
// are not byte aligned, so the leading fraction byte is masked down to its
// low bits and the field is shifted left to align. The 80-bit extended
// layout stores its unit bit explicitly at the top of the mantissa; decode
// strips it and re-implies the unit, putting extended in the same form as
// the other IEEE layouts. Quadruple's 112-bit fraction is byte aligned and
// passes through untouched.
//
// A zero exponent with a zero fraction decodes to positive zero. A zero
// exponent with a nonzero fraction is a denormal and decodes without the
// implicit unit at the layout's minimum exponent. An all-ones exponent
// (infinities, NaNs) and extended unnormals (explicit unit bit clear with a
// nonzero exponent) have no finite value and return ErrUnsupported.
//
// Fast Floating Point
//
// FFP32 is the non-IEEE 32-bit "fast floating point" layout: a 24-bit
// normalized mantissa with no hidden bit in bytes 0-2, then the sign in
// bit 7 of byte 3 and a power-of-two excess-64 exponent in its low 7 bits:
//
//  | byte 0 .. byte 2 | byte 3                   |
//  |------------------|--------------------------|
//  | mantissa (24)    | sign (1) | exponent (7)  |
//
// An all-zero input is positive zero by definition and short-circuits
// before any field is decoded.
package format
