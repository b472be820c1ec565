// Package bigval provides sign-magnitude numbers of arbitrary byte width.
//
// A Value holds a little-endian magnitude buffer, a sign flag, and a scale.
// The sign is never encoded inside the buffer: two's-complement inputs are
// converted to a pure magnitude at construction. How the magnitude and scale
// combine into a number depends on the value's form.
//
// Integer form values read as:
//
//  number = ±magnitude * 256^-scale
//
// Where scale counts fractional base-256 digits, exactly one magnitude byte
// each. ScaleTo moves between scales by shifting whole bytes, so decreasing
// the scale over zero low bytes is loss-free and over nonzero low bytes is a
// signalled truncation.
//
// Fraction form values hold a binary fraction left-aligned to the top of the
// buffer (the 1/2 place is bit 7 of the most significant byte) and read as:
//
//  number = ±(1 + fraction) * 2^scale
//
// with an implicit leading unit, or without the unit for mantissa form:
//
//  number = ±fraction * 2^scale
//
// Fraction and mantissa form values are produced by the format subpackage,
// which decodes IEEE 754 single/double/quadruple precision, 80-bit extended
// precision, and the non-IEEE 32-bit fast floating point layouts into this
// uniform shape.
//
// Values are immutable: every constructor and operation deep-copies its
// inputs and returns a fresh Value, so instances never share a buffer.
package bigval
