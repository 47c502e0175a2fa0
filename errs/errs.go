// Package errs defines the error kinds returned by compkey.
//
// Every failure is one of four kinds, matched with errors.Is:
//
//   - ErrValidation: a non-empty buffer whose header magic or version is wrong
//   - ErrDecode: an unknown tag or a payload running past the end of the buffer
//   - ErrUnsupportedValue: a builder was handed a value with no registered encoding
//   - ErrOversizeValue: a variable-length payload does not fit the 16-bit length field
//
// Failures that point at a specific buffer are returned as *DataError, which keeps
// the buffer and offset for diagnostics and unwraps to the kind.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("compkey: validation failed")
	ErrDecode           = errors.New("compkey: decode failed")
	ErrUnsupportedValue = errors.New("compkey: unsupported value")
	ErrOversizeValue    = errors.New("compkey: value exceeds maximum length")

	ErrFrozen = errors.New("compkey: builder already frozen")
)

// DataError describes a malformed buffer.
type DataError struct {
	Kind error
	Data []byte
	Off  int
	Msg  string
}

// Dataf returns a *DataError of the given kind.
func Dataf(kind error, data []byte, off int, format string, args ...any) error {
	return &DataError{Kind: kind, Data: data, Off: off, Msg: fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Kind
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		return fmt.Sprintf("%v: %s at offset %d: (%d) %x", e.Kind, e.Msg, e.Off, n, e.Data)
	}
	p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]

	return fmt.Sprintf("%v: %s at offset %d: (%d) %x...%x", e.Kind, e.Msg, e.Off, n, p, s)
}
