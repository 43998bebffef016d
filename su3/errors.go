package su3

import (
	"errors"
	"fmt"
)

var (
	// ErrMagicMismatch is returned when the input does not start with "I2Psu3".
	ErrMagicMismatch = errors.New("su3: magic bytes mismatch")
	// ErrInsufficientData is returned when a field runs past the end of the input.
	ErrInsufficientData = errors.New("su3: insufficient data")
	// ErrUnknownEnumCode is returned for signature, file or content type codes outside their closed set.
	ErrUnknownEnumCode = errors.New("su3: unknown enum code")
	// ErrInvalidVersionLength is returned when encoding a version shorter than MinVersionLength.
	ErrInvalidVersionLength = errors.New("su3: invalid version length")
	// ErrOutputTooSmall is returned when a caller-supplied encode buffer cannot hold the file.
	ErrOutputTooSmall = errors.New("su3: output buffer too small")
	// ErrTextDecode is returned by the text accessors for non UTF-8 version or signer id bytes.
	ErrTextDecode = errors.New("su3: invalid text")
	// ErrTrailingData is returned by UnmarshalBinary when bytes remain after the signature.
	ErrTrailingData = errors.New("su3: trailing data after signature")
)

// InsufficientDataError reports a field that needs more bytes than remain in the input.
type InsufficientDataError struct {
	Field     string
	Required  uint64
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("su3: insufficient data for %s: need %d bytes, have %d", e.Field, e.Required, e.Available)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }

// UnknownEnumCodeError reports an enum code outside its closed set.
type UnknownEnumCodeError struct {
	Field string
	Code  uint64
}

func (e *UnknownEnumCodeError) Error() string {
	return fmt.Sprintf("su3: unknown %s code %d", e.Field, e.Code)
}

func (e *UnknownEnumCodeError) Unwrap() error { return ErrUnknownEnumCode }

// InvalidVersionLengthError reports a version field shorter than MinVersionLength.
type InvalidVersionLengthError struct {
	Actual int
}

func (e *InvalidVersionLengthError) Error() string {
	return fmt.Sprintf("su3: version is %d bytes, need at least %d", e.Actual, MinVersionLength)
}

func (e *InvalidVersionLengthError) Unwrap() error { return ErrInvalidVersionLength }

// OutputTooSmallError reports an encode buffer that cannot hold the encoded file.
type OutputTooSmallError struct {
	Required  int
	Available int
}

func (e *OutputTooSmallError) Error() string {
	return fmt.Sprintf("su3: output buffer too small: need %d bytes, have %d", e.Required, e.Available)
}

func (e *OutputTooSmallError) Unwrap() error { return ErrOutputTooSmall }

// TextDecodeError reports the first invalid UTF-8 byte of a text field.
type TextDecodeError struct {
	Field  string
	Offset int
	Err    error
}

func (e *TextDecodeError) Error() string {
	return fmt.Sprintf("su3: %s is not valid UTF-8 at byte %d: %v", e.Field, e.Offset, e.Err)
}

func (e *TextDecodeError) Unwrap() []error { return []error{ErrTextDecode, e.Err} }

// TrailingDataError reports bytes left over after a complete file.
type TrailingDataError struct {
	Remaining int
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("su3: %d bytes of trailing data after signature", e.Remaining)
}

func (e *TrailingDataError) Unwrap() error { return ErrTrailingData }
