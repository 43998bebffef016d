package su3

import (
	"strconv"
	"strings"
)

// SU3 File format constants
const (
	// MinVersionLength specifies the minimum required length for version fields in SU3 files.
	// Version fields shorter than this must be zero-padded before encoding.
	MinVersionLength = 16

	// HeaderLength is the size of the fixed header preceding the variable-length regions.
	HeaderLength = 40

	// magicBytes defines the magic number identifier for SU3 file format.
	// All valid SU3 files must begin with this exact byte sequence.
	magicBytes = "I2Psu3"
)

// SignatureType identifies the algorithm that produced the signature region.
type SignatureType uint16

const (
	// SigTypeDSA represents DSA signature algorithm with SHA1 hash.
	// This is the legacy signature type for backward compatibility.
	SigTypeDSA SignatureType = 0

	// SigTypeECDSAWithSHA256 represents ECDSA over P-256 with SHA256 hash.
	SigTypeECDSAWithSHA256 SignatureType = 1

	// SigTypeECDSAWithSHA384 represents ECDSA over P-384 with SHA384 hash.
	SigTypeECDSAWithSHA384 SignatureType = 2

	// SigTypeECDSAWithSHA512 represents ECDSA over P-521 with SHA512 hash.
	SigTypeECDSAWithSHA512 SignatureType = 3

	// SigTypeRSAWithSHA256 represents 2048-bit RSA with SHA256 hash.
	SigTypeRSAWithSHA256 SignatureType = 4

	// SigTypeRSAWithSHA384 represents 3072-bit RSA with SHA384 hash.
	SigTypeRSAWithSHA384 SignatureType = 5

	// SigTypeRSAWithSHA512 represents 4096-bit RSA with SHA512 hash.
	// This is what reseed servers sign with.
	SigTypeRSAWithSHA512 SignatureType = 6

	// SigTypeEdDSAWithSHA512 represents Ed25519ph with SHA512 hash.
	// Code 7 is not assigned.
	SigTypeEdDSAWithSHA512 SignatureType = 8
)

// ContentType categorizes the purpose of the contained data.
type ContentType uint8

const (
	// ContentTypeUnknown indicates SU3 file contains unspecified content type.
	ContentTypeUnknown ContentType = 0

	// ContentTypeRouter indicates SU3 file contains an I2P router update.
	ContentTypeRouter ContentType = 1

	// ContentTypePlugin indicates SU3 file contains I2P plugin data.
	ContentTypePlugin ContentType = 2

	// ContentTypeReseed indicates SU3 file contains reseed bundle data.
	// Contains bootstrap router information for new I2P nodes to join the network.
	ContentTypeReseed ContentType = 3

	// ContentTypeNews indicates SU3 file contains a news feed.
	ContentTypeNews ContentType = 4

	// ContentTypeBlocklist indicates SU3 file contains a blocklist feed.
	ContentTypeBlocklist ContentType = 5
)

// FileType specifies the format of the contained data.
type FileType uint8

const (
	// FileTypeZIP indicates SU3 file content is compressed in ZIP format.
	FileTypeZIP FileType = 0

	// FileTypeXML indicates SU3 file content is in XML format.
	FileTypeXML FileType = 1

	// FileTypeHTML indicates SU3 file content is in HTML format.
	FileTypeHTML FileType = 2

	// FileTypeXMLGZ indicates SU3 file content is gzip-compressed XML.
	FileTypeXMLGZ FileType = 3

	// FileTypeTXTGZ indicates SU3 file content is gzip-compressed text.
	FileTypeTXTGZ FileType = 4

	// FileTypeDMG indicates SU3 file content is in Apple DMG format.
	FileTypeDMG FileType = 5

	// FileTypeEXE indicates SU3 file content is a Windows executable.
	FileTypeEXE FileType = 6
)

var signatureTypeNames = map[SignatureType]string{
	SigTypeDSA:             "DSA_SHA1",
	SigTypeECDSAWithSHA256: "ECDSA_SHA256_P256",
	SigTypeECDSAWithSHA384: "ECDSA_SHA384_P384",
	SigTypeECDSAWithSHA512: "ECDSA_SHA512_P521",
	SigTypeRSAWithSHA256:   "RSA_SHA256_2048",
	SigTypeRSAWithSHA384:   "RSA_SHA384_3072",
	SigTypeRSAWithSHA512:   "RSA_SHA512_4096",
	SigTypeEdDSAWithSHA512: "EdDSA_SHA512_Ed25519ph",
}

var contentTypeNames = map[ContentType]string{
	ContentTypeUnknown:   "UNKNOWN",
	ContentTypeRouter:    "ROUTER_UPDATE",
	ContentTypePlugin:    "PLUGIN",
	ContentTypeReseed:    "RESEED",
	ContentTypeNews:      "NEWS",
	ContentTypeBlocklist: "BLOCKLIST",
}

var fileTypeNames = map[FileType]string{
	FileTypeZIP:   "ZIP",
	FileTypeXML:   "XML",
	FileTypeHTML:  "HTML",
	FileTypeXMLGZ: "XML_GZ",
	FileTypeTXTGZ: "TXT_GZ",
	FileTypeDMG:   "DMG",
	FileTypeEXE:   "EXE",
}

// ParseSignatureType converts an on-wire code into a SignatureType.
// Codes outside the closed set yield an *UnknownEnumCodeError.
func ParseSignatureType(code uint16) (SignatureType, error) {
	t := SignatureType(code)
	if !t.Valid() {
		return 0, &UnknownEnumCodeError{Field: "signature_type", Code: uint64(code)}
	}
	return t, nil
}

// ParseFileType converts an on-wire code into a FileType.
func ParseFileType(code uint8) (FileType, error) {
	t := FileType(code)
	if !t.Valid() {
		return 0, &UnknownEnumCodeError{Field: "file_type", Code: uint64(code)}
	}
	return t, nil
}

// ParseContentType converts an on-wire code into a ContentType.
func ParseContentType(code uint8) (ContentType, error) {
	t := ContentType(code)
	if !t.Valid() {
		return 0, &UnknownEnumCodeError{Field: "content_type", Code: uint64(code)}
	}
	return t, nil
}

// Valid reports whether t is an assigned signature type code.
func (t SignatureType) Valid() bool {
	_, ok := signatureTypeNames[t]
	return ok
}

// Length returns the size in bytes of a signature of this type.
// Unassigned codes have no defined length and return 0.
func (t SignatureType) Length() uint16 {
	switch t {
	case SigTypeDSA:
		return 40
	case SigTypeECDSAWithSHA256, SigTypeEdDSAWithSHA512:
		return 64
	case SigTypeECDSAWithSHA384:
		return 96
	case SigTypeECDSAWithSHA512:
		return 132
	case SigTypeRSAWithSHA256:
		return 256
	case SigTypeRSAWithSHA384:
		return 384
	case SigTypeRSAWithSHA512:
		return 512
	}
	return 0
}

func (t SignatureType) String() string {
	if name, ok := signatureTypeNames[t]; ok {
		return name
	}
	return unknownName(uint64(t))
}

// Valid reports whether t is an assigned content type code.
func (t ContentType) Valid() bool {
	_, ok := contentTypeNames[t]
	return ok
}

func (t ContentType) String() string {
	if name, ok := contentTypeNames[t]; ok {
		return name
	}
	return unknownName(uint64(t))
}

// Valid reports whether t is an assigned file type code.
func (t FileType) Valid() bool {
	_, ok := fileTypeNames[t]
	return ok
}

// Compressed reports whether content of this type is gzip-compressed.
func (t FileType) Compressed() bool {
	return t == FileTypeXMLGZ || t == FileTypeTXTGZ
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return unknownName(uint64(t))
}

// SignatureTypeByName looks up a signature type by its display name, ignoring case.
func SignatureTypeByName(name string) (SignatureType, bool) {
	for t, n := range signatureTypeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

// ContentTypeByName looks up a content type by its display name, ignoring case.
func ContentTypeByName(name string) (ContentType, bool) {
	for t, n := range contentTypeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

// FileTypeByName looks up a file type by its display name, ignoring case.
func FileTypeByName(name string) (FileType, bool) {
	for t, n := range fileTypeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

func unknownName(code uint64) string {
	return "UNKNOWN(" + strconv.FormatUint(code, 10) + ")"
}
