// Command elftvalidate runs an ELFT implementation over the validation
// images: it creates templates, builds a reference database and searches
// every latent.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jtejido/elft/config"
	"github.com/jtejido/elft/logging"
	_ "github.com/jtejido/elft/sample"
)

const (
	flagConfig         = "config"
	flagImplementation = "implementation"
	flagImages         = "images"
	flagOutput         = "output"
	flagWorkers        = "workers"
	flagDebug          = "debug"
	flagType           = "type"
	flagID             = "id"
	flagDestination    = "destination"
)

// env is what Before prepares for every command.
type env struct {
	cfg *config.Settings
	log *logging.StdLogger
}

func main() {
	if err := newApp(&env{}).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "elftvalidate:", err)
		os.Exit(1)
	}
}

func newApp(e *env) *cli.App {
	typeFlag := &cli.StringFlag{
		Name:    flagType,
		Aliases: []string{"t"},
		Usage:   "template type, `probe` or reference",
	}
	return &cli.App{
		Name:  "elftvalidate",
		Usage: "validate an ELFT implementation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
				EnvVars: []string{"ELFT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  flagImplementation,
				Usage: "registered implementation `NAME`",
			},
			&cli.StringFlag{
				Name:  flagImages,
				Usage: "validation image `DIR`",
			},
			&cli.StringFlag{
				Name:  flagOutput,
				Usage: "output `DIR` for templates and logs",
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Usage: "concurrent template creations",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			return e.setup(c)
		},
		After: func(c *cli.Context) error {
			if e.log != nil {
				return e.log.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "create templates, build the reference database and search",
				Action: e.run,
			},
			{
				Name:   "templates",
				Usage:  "create probe or reference templates",
				Flags:  []cli.Flag{typeFlag},
				Action: e.templates,
			},
			{
				Name:   "database",
				Usage:  "build the reference database from reference templates",
				Action: e.database,
			},
			{
				Name:   "search",
				Usage:  "search every probe template",
				Action: e.search,
			},
			{
				Name:  "fixtures",
				Usage: "inspect the validation image table",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list image sets",
						Flags:  []cli.Flag{typeFlag},
						Action: e.listFixtures,
					},
					{
						Name:   "check",
						Usage:  "check the table for inconsistencies",
						Action: e.checkFixtures,
					},
				},
			},
			{
				Name:  "export",
				Usage: "write the images of one set as PGM files",
				Flags: []cli.Flag{
					typeFlag,
					&cli.StringFlag{Name: flagID, Usage: "image set `IDENTIFIER`", Required: true},
					&cli.StringFlag{Name: flagDestination, Usage: "destination `DIR`", Value: "."},
				},
				Action: e.export,
			},
			{
				Name:   "implementations",
				Usage:  "list registered implementations",
				Action: e.implementations,
			},
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	if path := c.String(flagConfig); path != "" {
		if err := config.LoadConfig(path); err != nil {
			return err
		}
	} else {
		config.LoadDefaultConfig()
	}
	e.cfg = config.Config

	if c.IsSet(flagImplementation) {
		e.cfg.Implementation = c.String(flagImplementation)
	}
	if c.IsSet(flagImages) {
		e.cfg.ImageDir = c.String(flagImages)
	}
	if c.IsSet(flagOutput) {
		if e.cfg.DatabaseDir == config.Default().DatabaseDir {
			e.cfg.DatabaseDir = filepath.Join(c.String(flagOutput), "database")
		}
		e.cfg.OutputDir = c.String(flagOutput)
	}
	if c.IsSet(flagWorkers) {
		e.cfg.Workers = c.Int(flagWorkers)
	}
	if c.Bool(flagDebug) {
		e.cfg.Log.Level = "debug"
	}
	e.cfg.ApplyComputed()
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.NewFromSettings(e.cfg.Log)
	if err != nil {
		return err
	}
	e.log = l
	return nil
}
