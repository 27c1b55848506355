package mherr

import (
	"errors"
	"fmt"
)

// UnsupportedCodeError reports a multihash code that is absent from the
// registry. It is recoverable: unknown codes are an expected condition when
// decoding foreign data.
type UnsupportedCodeError struct {
	Code uint64
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("unsupported multihash code 0x%x", e.Code)
}

// InvalidSizeError reports a decoded size varint that disagrees with the
// statically declared digest length for the decoded code.
type InvalidSizeError struct {
	Declared uint64
	Expected int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid multihash size %d, expected %d", e.Declared, e.Expected)
}

// UnsupportedCode returns the canonical error for a code lookup miss.
func UnsupportedCode(code uint64) error {
	return Wrap(KindCode, "MH-CODE-001",
		fmt.Sprintf("unsupported multihash code 0x%x", code),
		&UnsupportedCodeError{Code: code})
}

// InvalidSize returns the canonical error for a size mismatch during decode.
func InvalidSize(declared uint64, expected int) error {
	return Wrap(KindSize, "MH-SIZE-001",
		fmt.Sprintf("invalid multihash size %d, expected %d", declared, expected),
		&InvalidSizeError{Declared: declared, Expected: expected})
}

// CodeOf extracts the offending code from an UnsupportedCode error.
func CodeOf(err error) (uint64, bool) {
	var e *UnsupportedCodeError
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Code, true
}

// DeclaredSizeOf extracts the declared size from an InvalidSize error.
func DeclaredSizeOf(err error) (uint64, bool) {
	var e *InvalidSizeError
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Declared, true
}
