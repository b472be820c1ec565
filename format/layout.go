package format

// LeadingBit is the disposition of the most significant mantissa bit.
type LeadingBit uint8

const (
	// Hidden: the unit bit is implied and never stored.
	Hidden LeadingBit = iota

	// Explicit: the unit bit is stored at the top of the mantissa and
	// stripped during decode.
	Explicit

	// Plain: the leading bit is an ordinary mantissa bit and is kept.
	Plain
)

// Layout describes the bit layout of one source encoding.
type Layout struct {
	Name string
	Abbr string

	// Size is the encoded size in bytes.
	Size int

	// ExpBits and Bias describe the excess-N exponent field.
	ExpBits uint
	Bias    int32

	// FracBits is the fraction width in bits, excluding any implied or
	// explicit unit bit. MantOff is the byte offset of the mantissa
	// field.
	FracBits uint
	MantOff  int

	Leading LeadingBit

	// Buffer is the decoded magnitude buffer size in bytes.
	Buffer int
}

// Layouts
var (
	Single    = Layout{Name: "single", Abbr: "f32", Size: 4, ExpBits: 8, Bias: 127, FracBits: 23, MantOff: 1, Leading: Hidden, Buffer: 4}
	Double    = Layout{Name: "double", Abbr: "f64", Size: 8, ExpBits: 11, Bias: 1023, FracBits: 52, MantOff: 1, Leading: Hidden, Buffer: 8}
	Extended  = Layout{Name: "extended", Abbr: "f80", Size: 10, ExpBits: 15, Bias: 16383, FracBits: 63, MantOff: 2, Leading: Explicit, Buffer: 8}
	Quadruple = Layout{Name: "quadruple", Abbr: "f128", Size: 16, ExpBits: 15, Bias: 16383, FracBits: 112, MantOff: 2, Leading: Hidden, Buffer: 16}
	FFP32     = Layout{Name: "ffp32", Abbr: "ffp", Size: 4, ExpBits: 7, Bias: 64, FracBits: 24, MantOff: 0, Leading: Plain, Buffer: 4}

	Layouts = []Layout{Single, Double, Extended, Quadruple, FFP32}
)
