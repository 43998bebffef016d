package su3

import (
	"bytes"
	"encoding/binary"
)

// cursor walks an input buffer front to back, handing out sub-slices of it.
type cursor struct {
	buf []byte
}

func (c *cursor) take(field string, n uint64) ([]byte, error) {
	if n > uint64(len(c.buf)) {
		return nil, &InsufficientDataError{Field: field, Required: n, Available: len(c.buf)}
	}
	b := c.buf[:n:n]
	c.buf = c.buf[n:]
	return b, nil
}

func (c *cursor) skip(field string, n uint64) error {
	_, err := c.take(field, n)
	return err
}

func (c *cursor) uint8(field string) (uint8, error) {
	b, err := c.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) uint16(field string) (uint16, error) {
	b, err := c.take(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) uint64(field string) (uint64, error) {
	b, err := c.take(field, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// header holds the fixed header values that are consumed while decoding.
type header struct {
	signatureType   uint16
	signatureLength uint16
	versionLength   uint8
	signerIDLength  uint8
	contentLength   uint64
	fileType        uint8
	contentType     uint8
}

func (c *cursor) header() (h header, err error) {
	magic, err := c.take("magic", uint64(len(magicBytes)))
	if err != nil {
		return h, err
	}
	if !bytes.Equal(magic, []byte(magicBytes)) {
		return h, ErrMagicMismatch
	}
	if err = c.skip("unused", 1); err != nil {
		return h, err
	}
	// file format version, always 0 and not kept
	if err = c.skip("format", 1); err != nil {
		return h, err
	}
	if h.signatureType, err = c.uint16("signature_type"); err != nil {
		return h, err
	}
	if h.signatureLength, err = c.uint16("signature_length"); err != nil {
		return h, err
	}
	if err = c.skip("unused", 1); err != nil {
		return h, err
	}
	if h.versionLength, err = c.uint8("version_length"); err != nil {
		return h, err
	}
	if err = c.skip("unused", 1); err != nil {
		return h, err
	}
	if h.signerIDLength, err = c.uint8("signer_id_length"); err != nil {
		return h, err
	}
	if h.contentLength, err = c.uint64("content_length"); err != nil {
		return h, err
	}
	if err = c.skip("unused", 1); err != nil {
		return h, err
	}
	if h.fileType, err = c.uint8("file_type"); err != nil {
		return h, err
	}
	if err = c.skip("unused", 1); err != nil {
		return h, err
	}
	if h.contentType, err = c.uint8("content_type"); err != nil {
		return h, err
	}
	if err = c.skip("unused", 12); err != nil {
		return h, err
	}
	return h, nil
}

// Decode parses one SU3 file from the front of data and returns it together with
// any bytes that follow the signature. Checking that nothing is left over is up to
// the caller.
//
// The returned File's slices alias data; they are not copied. A version shorter
// than MinVersionLength is accepted here even though Encode will refuse it.
func Decode(data []byte) (*File, []byte, error) {
	f, rest, err := decode(data)
	if err != nil {
		lgr.WithError(err).WithField("input_size", len(data)).Debug("Rejected su3 input")
		return nil, nil, err
	}
	return f, rest, nil
}

func decode(data []byte) (*File, []byte, error) {
	c := &cursor{buf: data}

	h, err := c.header()
	if err != nil {
		return nil, nil, err
	}

	version, err := c.take("version", uint64(h.versionLength))
	if err != nil {
		return nil, nil, err
	}
	signerID, err := c.take("signer_id", uint64(h.signerIDLength))
	if err != nil {
		return nil, nil, err
	}
	content, err := c.take("content", h.contentLength)
	if err != nil {
		return nil, nil, err
	}
	signature, err := c.take("signature", uint64(h.signatureLength))
	if err != nil {
		return nil, nil, err
	}

	sigType, err := ParseSignatureType(h.signatureType)
	if err != nil {
		return nil, nil, err
	}
	fileType, err := ParseFileType(h.fileType)
	if err != nil {
		return nil, nil, err
	}
	contentType, err := ParseContentType(h.contentType)
	if err != nil {
		return nil, nil, err
	}

	return &File{
		SignatureType: sigType,
		FileType:      fileType,
		ContentType:   contentType,
		Version:       version,
		SignerID:      signerID,
		Content:       content,
		Signature:     signature,
	}, c.buf, nil
}

// UnmarshalBinary deserializes a complete SU3 file into s.
// Unlike Decode, the regions are copied out of data, and bytes left after the
// signature are rejected with a *TrailingDataError. s is left untouched on error.
func (s *File) UnmarshalBinary(data []byte) error {
	f, rest, err := Decode(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		err := &TrailingDataError{Remaining: len(rest)}
		lgr.WithError(err).Debug("Rejected su3 input")
		return err
	}

	*s = File{
		SignatureType: f.SignatureType,
		FileType:      f.FileType,
		ContentType:   f.ContentType,
		Version:       bytes.Clone(f.Version),
		SignerID:      bytes.Clone(f.SignerID),
		Content:       bytes.Clone(f.Content),
		Signature:     bytes.Clone(f.Signature),
	}
	return nil
}
