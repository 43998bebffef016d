package su3

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Decompressor expands raw content according to its file type.
type Decompressor func(raw []byte, fileType FileType) ([]byte, error)

// GzipDecompressor gunzips XML_GZ and TXT_GZ content and returns any other content unchanged.
func GzipDecompressor(raw []byte, fileType FileType) ([]byte, error) {
	if !fileType.Compressed() {
		return raw, nil
	}

	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		lgr.WithError(err).WithField("file_type", fileType.String()).Error("Failed to open gzip content")
		return nil, err
	}
	defer gz.Close()

	out := bytes.NewBuffer(make([]byte, 0, len(raw)))
	if _, err := io.Copy(out, gz); err != nil {
		lgr.WithError(err).WithField("file_type", fileType.String()).Error("Failed to decompress gzip content")
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressContent returns the content run through decompress, or through
// GzipDecompressor when decompress is nil. ZIP archives are returned as they are.
func (s *File) DecompressContent(decompress Decompressor) ([]byte, error) {
	if decompress == nil {
		decompress = GzipDecompressor
	}
	return decompress(s.Content, s.FileType)
}
