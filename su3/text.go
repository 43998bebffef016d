package su3

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// VersionText returns the version with its trailing zero padding removed.
// Only trailing NULs are trimmed; leading and inner NULs are kept as part of the text.
// A version that is not valid UTF-8 yields a *TextDecodeError.
func (s *File) VersionText() (string, error) {
	return decodeText("version", bytes.TrimRight(s.Version, "\x00"))
}

// SignerIDText returns the signer id as a string, e.g. "meeh@mail.i2p".
// A signer id that is not valid UTF-8 yields a *TextDecodeError.
func (s *File) SignerIDText() (string, error) {
	return decodeText("signer_id", s.SignerID)
}

func decodeText(field string, b []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", &TextDecodeError{Field: field, Offset: n, Err: err}
	}
	return string(out), nil
}
