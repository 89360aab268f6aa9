package main

import (
	"fmt"
	"os"

	"cryptonyan/pipeline"

	"github.com/btcsuite/btclog/v2"
	"github.com/urfave/cli"
)

const (
	defaultKey       = "jorlng82n5y9hr62"
	defaultFirstKey  = "4,2,1,5,3"
	defaultSecondKey = "2,5,3,4,1"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[cryptonyan] %v\n", err)
	os.Exit(1)
}

// setupLogging wires the pipeline logger to stderr.
func setupLogging(ctx *cli.Context) error {
	logger := btclog.NewSLogger(btclog.NewDefaultHandler(os.Stderr))
	if ctx.Bool("debug") {
		logger.SetLevel(btclog.LevelDebug)
	}
	pipeline.UseLogger(logger)

	return nil
}

// newApp builds the command line application, output goes to app.Writer.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cryptonyan"
	app.Version = "0.1.0"
	app.Usage = "shuffle and Feistel-encrypt text files"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "key",
			Value: defaultKey,
			Usage: "the 16 bytes Feistel key",
		},
		cli.StringFlag{
			Name: "passphrase",
			Usage: "derive the Feistel key from a passphrase " +
				"instead of --key",
		},
		cli.StringFlag{
			Name:  "first",
			Value: defaultFirstKey,
			Usage: "comma separated column permutation of 1..N",
		},
		cli.StringFlag{
			Name:  "second",
			Value: defaultSecondKey,
			Usage: "comma separated row permutation of 1..N",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		encryptCommand,
		decryptCommand,
		keygenCommand,
		scheduleCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
