package format

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("format")

var (
	// ErrInvalidLength is returned when an input buffer does not match
	// the layout's expected size.
	ErrInvalidLength = Error.New("invalid length")

	// ErrUnsupported is returned for encodings with no finite value
	// (infinities, NaNs, unnormals) and for layouts intentionally left
	// undesigned.
	ErrUnsupported = Error.New("unsupported encoding")
)
