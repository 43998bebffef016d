package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"i2pgit.org/go-i2p/su3-tools/reseed"
	"i2pgit.org/go-i2p/su3-tools/su3"
)

// NewPackCommand creates a new CLI command that builds an SU3 file from a content file
// or from the routerInfos of a netDb directory.
//
// Signing happens outside this tool: write the signed region with --body-only, sign it,
// then run pack again with --signature.
func NewPackCommand() *cli.Command {
	return &cli.Command{
		Name:   "pack",
		Usage:  "Build a su3 file",
		Action: packAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "content",
				Usage: "Path to the content to wrap",
			},
			&cli.StringFlag{
				Name:  "netdb",
				Usage: "Build a reseed bundle from the routerInfos in this netDb directory instead of --content",
			},
			&cli.DurationFlag{
				Name:  "max-age",
				Value: 72 * time.Hour,
				Usage: "Maximum age of routerInfos taken from --netdb (0 for no limit)",
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "Parse routerInfos from --netdb and skip unusable ones",
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Where to write the su3 file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "signer",
				Value: getDefaultSigner(),
				Usage: "Your su3 signing ID (ex. something@mail.i2p)",
			},
			&cli.StringFlag{
				Name:  "file-version",
				Usage: "Version text (default: current Unix time)",
			},
			&cli.StringFlag{
				Name:  "sigtype",
				Value: su3.SigTypeRSAWithSHA512.String(),
				Usage: "Signature type",
			},
			&cli.StringFlag{
				Name:  "filetype",
				Value: su3.FileTypeZIP.String(),
				Usage: "File type of the content",
			},
			&cli.StringFlag{
				Name:  "contenttype",
				Value: su3.ContentTypeUnknown.String(),
				Usage: "Content type",
			},
			&cli.StringFlag{
				Name:  "signature",
				Usage: "Path to the raw signature bytes (default: zero-filled placeholder)",
			},
			&cli.BoolFlag{
				Name:  "body-only",
				Usage: "Write only the signed region, for an external signer",
			},
		},
	}
}

// packOptions collects everything pack needs, independent of the cli plumbing.
type packOptions struct {
	ContentPath   string
	NetDbPath     string
	MaxAge        time.Duration
	Validate      bool
	Out           string
	Signer        string
	Version       string
	SignatureType string
	FileType      string
	ContentType   string
	SignaturePath string
	BodyOnly      bool
}

func packAction(c *cli.Context) error {
	opts := packOptions{
		ContentPath:   c.String("content"),
		NetDbPath:     c.String("netdb"),
		MaxAge:        c.Duration("max-age"),
		Validate:      c.Bool("validate"),
		Out:           c.String("out"),
		Signer:        c.String("signer"),
		Version:       c.String("file-version"),
		SignatureType: c.String("sigtype"),
		FileType:      c.String("filetype"),
		ContentType:   c.String("contenttype"),
		SignaturePath: c.String("signature"),
		BodyOnly:      c.Bool("body-only"),
	}

	n, err := pack(opts)
	if err != nil {
		lgr.WithError(err).WithField("out", opts.Out).Error("Failed to build su3 file")
		return err
	}
	fmt.Printf("Wrote %d bytes to %s\n", n, opts.Out)
	return nil
}

func pack(opts packOptions) (int, error) {
	f, err := buildFile(opts)
	if err != nil {
		return 0, err
	}

	var data []byte
	if opts.BodyOnly {
		data, err = f.BodyBytes()
	} else {
		data, err = f.MarshalBinary()
	}
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func buildFile(opts packOptions) (*su3.File, error) {
	if (opts.ContentPath == "") == (opts.NetDbPath == "") {
		return nil, fmt.Errorf("exactly one of --content or --netdb is required")
	}

	sigType, err := parseSignatureType(opts.SignatureType)
	if err != nil {
		return nil, err
	}

	var f *su3.File
	if opts.NetDbPath != "" {
		netdb := reseed.NewLocalNetDb(opts.NetDbPath, opts.MaxAge)
		netdb.Validate = opts.Validate
		seeds, err := netdb.RouterInfos()
		if err != nil {
			return nil, err
		}
		if len(seeds) == 0 {
			return nil, fmt.Errorf("no usable routerInfos in %s", opts.NetDbPath)
		}
		if f, err = reseed.NewBundle([]byte(opts.Signer), seeds); err != nil {
			return nil, err
		}
	} else {
		fileType, err := parseFileType(opts.FileType)
		if err != nil {
			return nil, err
		}
		contentType, err := parseContentType(opts.ContentType)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(opts.ContentPath)
		if err != nil {
			return nil, err
		}

		f = su3.New()
		f.FileType = fileType
		f.ContentType = contentType
		f.SignerID = []byte(opts.Signer)
		f.Content = content
	}
	f.SignatureType = sigType

	if opts.Version != "" {
		f.Version = su3.PadVersion(opts.Version)
	}

	if opts.SignaturePath != "" {
		if f.Signature, err = os.ReadFile(opts.SignaturePath); err != nil {
			return nil, err
		}
		if want := int(sigType.Length()); len(f.Signature) != want {
			return nil, fmt.Errorf("signature is %d bytes, %s signatures are %d", len(f.Signature), sigType, want)
		}
	} else {
		f.Signature = make([]byte, sigType.Length())
	}

	return f, nil
}
