package imei

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned (wrapped in a *FormatError) by every
// parse-or-fail entry point, whatever the source encoding.
var ErrInvalidFormat = errors.New("invalid IMEI format")

// Reasons reported in FormatError.Reason.
const (
	ReasonEmpty    = "empty input"
	ReasonLength   = "wrong length"
	ReasonNonDigit = "non-digit character"
	ReasonRange    = "out of range"
	ReasonChecksum = "checksum mismatch"
)

// FormatError describes a rejected input. It matches ErrInvalidFormat
// through errors.Is.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q is not a valid IMEI: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

func formatError(input, reason string) error {
	return &FormatError{Input: input, Reason: reason}
}
