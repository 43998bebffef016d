package su3

import (
	"encoding/binary"
)

// validate checks everything Encode relies on before a single byte is written.
func (s *File) validate() error {
	if len(s.Version) < MinVersionLength {
		return &InvalidVersionLengthError{Actual: len(s.Version)}
	}
	if _, err := ParseSignatureType(uint16(s.SignatureType)); err != nil {
		return err
	}
	if _, err := ParseFileType(uint8(s.FileType)); err != nil {
		return err
	}
	if _, err := ParseContentType(uint8(s.ContentType)); err != nil {
		return err
	}
	return nil
}

// bodyLen is the encoded size without the signature region.
func (s *File) bodyLen() int {
	return HeaderLength + len(s.Version) + len(s.SignerID) + len(s.Content)
}

// EncodedLen returns the number of bytes MarshalBinary produces for s.
func (s *File) EncodedLen() int {
	return s.bodyLen() + len(s.Signature)
}

// appendBody appends the header, version, signer id and content to buf.
//
// The signature length field is always SignatureType.Length(), whatever the actual
// length of s.Signature. Version and signer id lengths are written as a single byte
// and wrap above 255.
func (s *File) appendBody(buf []byte) []byte {
	var (
		skip    [1]byte
		bigSkip [12]byte
	)

	buf = append(buf, magicBytes...)
	buf = append(buf, skip[:]...)
	// file format version
	buf = append(buf, 0)
	buf = binary.BigEndian.AppendUint16(buf, uint16(s.SignatureType))
	buf = binary.BigEndian.AppendUint16(buf, s.SignatureType.Length())
	buf = append(buf, skip[:]...)
	buf = append(buf, uint8(len(s.Version)))
	buf = append(buf, skip[:]...)
	buf = append(buf, uint8(len(s.SignerID)))
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(s.Content)))
	buf = append(buf, skip[:]...)
	buf = append(buf, uint8(s.FileType))
	buf = append(buf, skip[:]...)
	buf = append(buf, uint8(s.ContentType))
	buf = append(buf, bigSkip[:]...)
	buf = append(buf, s.Version...)
	buf = append(buf, s.SignerID...)
	buf = append(buf, s.Content...)
	return buf
}

// BodyBytes returns the signed portion of the file: the header, version, signer id
// and content, without the signature. Hand this to a signer or verifier.
func (s *File) BodyBytes() ([]byte, error) {
	if err := s.validate(); err != nil {
		lgr.WithError(err).Debug("Refusing to encode su3 body")
		return nil, err
	}
	return s.appendBody(make([]byte, 0, s.bodyLen())), nil
}

// Encode serializes f, signature included.
func Encode(f *File) ([]byte, error) {
	if err := f.validate(); err != nil {
		lgr.WithError(err).Debug("Refusing to encode su3 file")
		return nil, err
	}
	buf := f.appendBody(make([]byte, 0, f.EncodedLen()))
	return append(buf, f.Signature...), nil
}

// MarshalBinary serializes the complete SU3 file including signature to binary format.
func (s *File) MarshalBinary() ([]byte, error) {
	return Encode(s)
}

// EncodeTo writes the encoded file into dst and returns the number of bytes written.
// If dst is too short an *OutputTooSmallError is returned and dst is not modified.
func (s *File) EncodeTo(dst []byte) (int, error) {
	if err := s.validate(); err != nil {
		lgr.WithError(err).Debug("Refusing to encode su3 file")
		return 0, err
	}
	n := s.EncodedLen()
	if len(dst) < n {
		err := &OutputTooSmallError{Required: n, Available: len(dst)}
		lgr.WithError(err).Debug("Refusing to encode su3 file")
		return 0, err
	}
	buf := s.appendBody(dst[:0])
	buf = append(buf, s.Signature...)
	return len(buf), nil
}
