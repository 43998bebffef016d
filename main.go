package main

import (
	"os"

	"github.com/go-i2p/logger"
	"github.com/urfave/cli/v3"
	"i2pgit.org/go-i2p/su3-tools/cmd"
	"i2pgit.org/go-i2p/su3-tools/reseed"
)

var lgr = logger.GetGoI2PLogger()

func main() {
	app := cli.NewApp()
	app.Name = "su3-tools"
	app.Version = reseed.Version
	app.Usage = "Inspect, extract and build I2P su3 files"
	auth := &cli.Author{
		Name:  "go-i2p",
		Email: "hankhill19580@gmail.com",
	}
	app.Authors = append(app.Authors, auth)
	app.Flags = []cli.Flag{}
	app.Commands = []*cli.Command{
		cmd.NewInspectCommand(),
		cmd.NewExtractCommand(),
		cmd.NewPackCommand(),
		cmd.NewVersionCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		lgr.WithError(err).Error("Application execution failed")
		os.Exit(1)
	}
}
