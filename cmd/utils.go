// Package cmd provides command-line interface implementations for su3-tools.
// Each command decodes, builds or unpacks SU3 files held entirely in memory.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-i2p/logger"
	"i2pgit.org/go-i2p/su3-tools/su3"
)

var lgr = logger.GetGoI2PLogger()

func getDefaultSigner() string {
	intentionalsigner := os.Getenv("RESEED_EMAIL")
	if intentionalsigner == "" {
		adminsigner := os.Getenv("MAILTO")
		if adminsigner != "" {
			return strings.Replace(adminsigner, "\n", "", -1)
		}
		return ""
	}
	return strings.Replace(intentionalsigner, "\n", "", -1)
}

// readSu3File reads and decodes the SU3 file at path, returning any bytes left
// after the signature alongside it.
func readSu3File(path string) (*su3.File, []byte, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("no su3 file given")
	}
	data, err := os.ReadFile(path)
	if nil != err {
		lgr.WithError(err).WithField("path", path).Error("Failed to read su3 file")
		return nil, nil, err
	}
	f, rest, err := su3.Decode(data)
	if err != nil {
		lgr.WithError(err).WithField("path", path).Error("Failed to decode su3 file")
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, rest, nil
}

func parseSignatureType(name string) (su3.SignatureType, error) {
	t, ok := su3.SignatureTypeByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown signature type %q", name)
	}
	return t, nil
}

func parseFileType(name string) (su3.FileType, error) {
	t, ok := su3.FileTypeByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown file type %q", name)
	}
	return t, nil
}

func parseContentType(name string) (su3.ContentType, error) {
	t, ok := su3.ContentTypeByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown content type %q", name)
	}
	return t, nil
}

// fileExtension picks the extension for extracted content of the given type.
func fileExtension(ft su3.FileType) string {
	switch ft {
	case su3.FileTypeZIP:
		return ".zip"
	case su3.FileTypeXML, su3.FileTypeXMLGZ:
		return ".xml"
	case su3.FileTypeHTML:
		return ".html"
	case su3.FileTypeTXTGZ:
		return ".txt"
	case su3.FileTypeDMG:
		return ".dmg"
	case su3.FileTypeEXE:
		return ".exe"
	}
	return ".bin"
}
