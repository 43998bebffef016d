// Package su3 decodes and encodes SU3 files, the signed container format I2P uses to
// distribute router updates, plugins, reseed bundles, news and blocklist feeds.
//
// The codec works on in-memory buffers only. Signatures are carried as opaque bytes;
// checking them against BodyBytes is left to the caller.
package su3

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-i2p/logger"
)

var lgr = logger.GetGoI2PLogger()

// File represents a complete SU3 file structure for I2P software distribution.
// The zero value is a DSA-SHA1 signed ZIP file of unknown content type with every
// region empty; it needs a Version of at least MinVersionLength bytes before it encodes.
//
// Header length fields are not stored. They are derived from the slices when encoding
// and discarded after decoding.
type File struct {
	// SignatureType indicates the cryptographic signature algorithm used
	SignatureType SignatureType

	// FileType specifies the format of the contained data
	FileType FileType

	// ContentType categorizes the purpose of the contained data
	ContentType ContentType

	// Version contains version text, zero-padded to at least MinVersionLength bytes
	Version []byte

	// SignerID contains the identity of the entity that signed this file, e.g. "zzz@mail.i2p"
	SignerID []byte

	// Content holds the payload, possibly compressed according to FileType
	Content []byte

	// Signature covers every encoded byte preceding it
	Signature []byte
}

// New creates a new SU3 file whose version is the current Unix timestamp.
// The remaining fields keep their zero values and must be set before encoding.
func New() *File {
	return &File{
		Version: PadVersion(strconv.FormatInt(time.Now().Unix(), 10)),
	}
}

// PadVersion returns version as bytes, zero-padded to MinVersionLength.
// Longer versions are returned unpadded.
func PadVersion(version string) []byte {
	if len(version) >= MinVersionLength {
		return []byte(version)
	}
	padded := make([]byte, MinVersionLength)
	copy(padded, version)
	return padded
}

// String returns a human-readable representation of the SU3 file metadata.
// Content and signature are summarised by length only.
func (s *File) String() string {
	var b bytes.Buffer

	fmt.Fprintln(&b, "---------------------------")
	fmt.Fprintf(&b, "SignatureType: %s\n", s.SignatureType)
	fmt.Fprintf(&b, "FileType: %s\n", s.FileType)
	fmt.Fprintf(&b, "ContentType: %s\n", s.ContentType)
	fmt.Fprintf(&b, "Version: %q\n", bytes.TrimRight(s.Version, "\x00"))
	fmt.Fprintf(&b, "SignerId: %q\n", s.SignerID)
	fmt.Fprintf(&b, "Content: %d bytes\n", len(s.Content))
	fmt.Fprintf(&b, "Signature: %d bytes\n", len(s.Signature))
	fmt.Fprintf(&b, "---------------------------")

	return b.String()
}
