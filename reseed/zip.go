package reseed

import (
	"archive/zip"
	"bytes"
	"io"
	"time"
)

// RouterInfo is one entry of a reseed bundle: a router info file as it appears
// in a netDb directory.
type RouterInfo struct {
	Name    string
	ModTime time.Time
	Data    []byte
}

// ZipSeeds packs router infos into the ZIP archive carried by a reseed SU3 file.
func ZipSeeds(seeds []RouterInfo) ([]byte, error) {
	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)

	for _, file := range seeds {
		fileHeader := &zip.FileHeader{Name: file.Name, Method: zip.Deflate}
		fileHeader.Modified = file.ModTime
		zipFile, err := zipWriter.CreateHeader(fileHeader)
		if err != nil {
			lgr.WithError(err).WithField("file_name", file.Name).Error("Failed to create zip file header")
			return nil, err
		}

		_, err = zipFile.Write(file.Data)
		if err != nil {
			lgr.WithError(err).WithField("file_name", file.Name).Error("Failed to write file data to zip")
			return nil, err
		}
	}

	if err := zipWriter.Close(); err != nil {
		lgr.WithError(err).Error("Failed to close zip writer")
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnzipSeeds unpacks the ZIP archive of a reseed SU3 file.
func UnzipSeeds(c []byte) ([]RouterInfo, error) {
	input := bytes.NewReader(c)
	zipReader, err := zip.NewReader(input, int64(len(c)))
	if nil != err {
		lgr.WithError(err).WithField("zip_size", len(c)).Error("Failed to create zip reader")
		return nil, err
	}

	var seeds []RouterInfo
	for _, f := range zipReader.File {
		rc, err := f.Open()
		if err != nil {
			lgr.WithError(err).WithField("file_name", f.Name).Error("Failed to open file from zip")
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if nil != err {
			lgr.WithError(err).WithField("file_name", f.Name).Error("Failed to read file data from zip")
			return nil, err
		}

		seeds = append(seeds, RouterInfo{Name: f.Name, ModTime: f.Modified, Data: data})
	}

	return seeds, nil
}
