package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"i2pgit.org/go-i2p/su3-tools/reseed"
	"i2pgit.org/go-i2p/su3-tools/su3"
)

// NewExtractCommand creates a new CLI command that writes the content of an SU3 file
// to disk, gunzipping XML_GZ and TXT_GZ payloads on the way.
func NewExtractCommand() *cli.Command {
	return &cli.Command{
		Name:   "extract",
		Usage:  "Extract the content of a su3 file",
		Action: extractAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Where to write the content (default: <signer>-<version> with an extension for the file type)",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List the routerInfos of a reseed bundle instead of extracting",
			},
		},
	}
}

func extractAction(c *cli.Context) error {
	path := c.Args().Get(0)
	f, _, err := readSu3File(path)
	if err != nil {
		return err
	}

	if c.Bool("list") {
		return listBundle(os.Stdout, f)
	}

	out, err := extractContent(f, c.String("out"))
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %s content to %s\n", f.FileType, out)
	return nil
}

// extractContent writes the decompressed content of f to out, or to a name derived
// from the signer and version when out is empty. It returns the path written.
func extractContent(f *su3.File, out string) (string, error) {
	if out == "" {
		out = defaultExtractName(f)
	}

	content, err := f.DecompressContent(nil)
	if err != nil {
		return "", fmt.Errorf("decompressing %s content: %w", f.FileType, err)
	}

	if err := os.WriteFile(out, content, 0o644); err != nil {
		lgr.WithError(err).WithField("path", out).Error("Failed to write extracted content")
		return "", err
	}
	lgr.WithField("path", out).WithField("size", len(content)).Debug("Extracted su3 content")
	return out, nil
}

func defaultExtractName(f *su3.File) string {
	signer, err := f.SignerIDText()
	if err != nil || signer == "" {
		signer = "unsigned"
	}
	version, err := f.VersionText()
	if err != nil || version == "" {
		version = "0"
	}
	return reseed.SignerFilenameFromID(signer) + "-" + version + fileExtension(f.FileType)
}

func listBundle(w io.Writer, f *su3.File) error {
	seeds, err := reseed.ReadBundle(f)
	if err != nil {
		return err
	}
	for _, seed := range seeds {
		fmt.Fprintf(w, "%s\t%d\t%s\n", seed.Name, len(seed.Data), seed.ModTime.UTC().Format("2006-01-02T15:04:05Z"))
	}
	fmt.Fprintf(w, "%d routerInfos\n", len(seeds))
	return nil
}
