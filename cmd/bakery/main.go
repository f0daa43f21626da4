package main

import (
	"io"
	"log"
	"os"

	bakery "github.com/clayne/binary-bakery"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newBakery(c *cli.Context) (*bakery.Bakery, func(), error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var db *bakery.AssetDB
	closer := func() {}
	if file := c.String("db"); file != "" {
		var err error
		if db, err = bakery.NewAssetDB(file); err != nil {
			return nil, nil, err
		}
		closer = func() { db.Close() }
	}

	return bakery.New(db, logger, bakery.Options{
		Package:  c.String("package"),
		Compress: c.Bool("compress"),
		TwoColor: c.Bool("two-color"),
	}), closer, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bakery"
	app.Usage = "embed binary assets as Go source"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BAKERY_DB"},
			Usage:   "path to asset catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	packFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "directory to write generated source to",
		},
		&cli.StringFlag{
			Name:  "package",
			Value: "assets",
			Usage: "package clause for generated source",
		},
		&cli.BoolFlag{
			Name:  "compress",
			Usage: "embed zstd-compressed payloads",
		},
		&cli.BoolFlag{
			Name:  "two-color",
			Usage: "quantize images to a two-color palette",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "pack",
			Usage:     "Pack one or more assets into Go source",
			ArgsUsage: "FILE...",
			Flags:     packFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, closer, err := newBakery(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				for _, file := range c.Args().Slice() {
					a, err := b.PackFile(file)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if err := b.Emit(a, c.String("out")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan a directory tree and pack every supported asset",
			ArgsUsage: "DIRECTORY",
			Flags:     packFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, closer, err := newBakery(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := b.Scan(c.Args().First(), c.String("out")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
