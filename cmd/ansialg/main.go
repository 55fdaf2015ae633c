// Command ansialg runs the fixed-capacity byte string algorithms from
// the command line: search, count, trim, remove, insert, and compare
// over argument data.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/maxdz-gmbh/mdz-ansi-alg/license"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// The library's default version flag also claims -v, which collides
	// with the verbose alias below and panics at parse time.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
	return &cli.App{
		Name:    "ansialg",
		Usage:   "in-place algorithms over fixed-capacity byte strings",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "buffer capacity in bytes (0 = sized to fit)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.Uint64Flag{
				Name:    "first-name-hash",
				Value:   1,
				EnvVars: []string{"ANSIALG_FIRST_NAME_HASH"},
				Usage:   "license identity hash",
			},
			&cli.Uint64Flag{
				Name:    "last-name-hash",
				Value:   1,
				EnvVars: []string{"ANSIALG_LAST_NAME_HASH"},
				Usage:   "license identity hash",
			},
			&cli.Uint64Flag{
				Name:    "email-hash",
				Value:   1,
				EnvVars: []string{"ANSIALG_EMAIL_HASH"},
				Usage:   "license identity hash",
			},
			&cli.Uint64Flag{
				Name:    "license-hash",
				Value:   1,
				EnvVars: []string{"ANSIALG_LICENSE_HASH"},
				Usage:   "license key hash",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			findCommand,
			countCommand,
			trimCommand,
			removeCommand,
			insertCommand,
			compareCommand,
		},
	}
}

func setup(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ok := license.Init(
		c.Uint64("first-name-hash"),
		c.Uint64("last-name-hash"),
		c.Uint64("email-hash"),
		c.Uint64("license-hash"),
	)
	if !ok {
		log.Warn().Msg("license gate not satisfied, operations will fail")
	}
	log.Debug().Bool("authorized", ok).Msg("gate initialized")
	return nil
}
