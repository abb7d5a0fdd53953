package nbt

import "fmt"

// FormatError reports a structural or type problem in an NBT document: an
// unrecognized tag id, truncated payload, or an accessor applied to the wrong
// tag kind.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "nbt: " + e.Reason }

func formatErrf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// CompressionError reports malformed gzip framing around an NBT document.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string { return "nbt: gzip: " + e.Err.Error() }
func (e *CompressionError) Unwrap() error { return e.Err }
