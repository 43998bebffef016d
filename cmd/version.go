package cmd

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"i2pgit.org/go-i2p/su3-tools/reseed"
)

// NewVersionCommand creates a new CLI command for displaying the su3-tools version.
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version number of su3-tools",
		Action: func(c *cli.Context) error {
			fmt.Printf("%s\n", reseed.Version)
			return nil
		},
	}
}
