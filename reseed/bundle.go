package reseed

import (
	"fmt"

	"i2pgit.org/go-i2p/su3-tools/su3"
)

// NewBundle builds an unsigned reseed SU3 file around the zipped seeds.
// The signature region is left empty; sign BodyBytes() and set Signature before encoding.
func NewBundle(signerID []byte, seeds []RouterInfo) (*su3.File, error) {
	zipped, err := ZipSeeds(seeds)
	if nil != err {
		return nil, err
	}

	su3File := su3.New()
	su3File.SignatureType = su3.SigTypeRSAWithSHA512
	su3File.FileType = su3.FileTypeZIP
	su3File.ContentType = su3.ContentTypeReseed
	su3File.SignerID = signerID
	su3File.Content = zipped

	lgr.WithField("routerinfos", len(seeds)).WithField("content_size", len(zipped)).Debug("Built reseed bundle")
	return su3File, nil
}

// ReadBundle returns the router infos packed in a reseed SU3 file.
func ReadBundle(f *su3.File) ([]RouterInfo, error) {
	if f.ContentType != su3.ContentTypeReseed {
		return nil, fmt.Errorf("not a reseed bundle: content type %s", f.ContentType)
	}
	if f.FileType != su3.FileTypeZIP {
		return nil, fmt.Errorf("reseed bundle is %s, expected ZIP", f.FileType)
	}
	return UnzipSeeds(f.Content)
}
