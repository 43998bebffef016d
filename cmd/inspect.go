package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"i2pgit.org/go-i2p/su3-tools/su3"
)

// NewInspectCommand creates a new CLI command that decodes an SU3 file and prints its
// header metadata. It does not check the signature.
func NewInspectCommand() *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Usage:       "Print the metadata of a su3 file",
		Description: "Decode a su3 file and print its header, version and signer",
		Action:      inspectAction,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail if bytes follow the signature",
			},
		},
	}
}

func inspectAction(c *cli.Context) error {
	return inspectFile(os.Stdout, c.Args().Get(0), c.Bool("strict"))
}

func inspectFile(w io.Writer, path string, strict bool) error {
	f, rest, err := readSu3File(path)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		if strict {
			return fmt.Errorf("%s: %w", path, &su3.TrailingDataError{Remaining: len(rest)})
		}
		lgr.WithField("path", path).WithField("trailing_bytes", len(rest)).Warn("Bytes follow the su3 signature")
	}

	fmt.Fprintln(w, f.String())

	if version, err := f.VersionText(); err != nil {
		fmt.Fprintf(w, "Version text: %v\n", err)
	} else {
		fmt.Fprintf(w, "Version text: %s\n", version)
	}
	if signer, err := f.SignerIDText(); err != nil {
		fmt.Fprintf(w, "Signer text: %v\n", err)
	} else {
		fmt.Fprintf(w, "Signer text: %s\n", signer)
	}
	if want := int(f.SignatureType.Length()); len(f.Signature) != want {
		fmt.Fprintf(w, "Warning: signature is %d bytes, %s signatures are %d\n", len(f.Signature), f.SignatureType, want)
	}
	if len(f.Version) < su3.MinVersionLength {
		fmt.Fprintf(w, "Warning: version is %d bytes, shorter than %d\n", len(f.Version), su3.MinVersionLength)
	}
	fmt.Fprintf(w, "Signed bytes: %d\n", f.EncodedLen()-len(f.Signature))
	return nil
}
