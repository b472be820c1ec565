package bigval

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("bigval")

var (
	// ErrUnscaledOperands is returned when arithmetic is requested
	// between operands of differing scale without an explicit
	// scale-alignment step.
	ErrUnscaledOperands = Error.New("unscaled operands")

	// ErrPrecisionLoss signals that an operation truncated nonzero
	// low-order bytes. The returned value is still usable; the error is
	// a caller-visible warning, not a failure.
	ErrPrecisionLoss = Error.New("precision loss")

	// ErrUnsupported is returned by operations that are intentionally
	// undesigned for the value's form.
	ErrUnsupported = Error.New("unsupported operation")

	// ErrRange is returned when a magnitude does not fit the requested
	// native type.
	ErrRange = Error.New("out of range")
)
