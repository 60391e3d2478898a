package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands.
type cli struct {
	logLevel string
	logger   zerolog.Logger
	logOut   io.Writer
}

// newRootCmd builds the command tree with logs going to stderr.
func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cli{logOut: os.Stderr})
}

func newRootCmdWith(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "meetpoint",
		Short:         "Best meeting point on a grid of houses, lots and obstacles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := parseLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger = zerolog.New(zerolog.ConsoleWriter{Out: c.logOut, TimeFormat: time.Kitchen}).
				Level(lvl).
				With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	root.AddCommand(newSolveCmd(c), newBenchCmd(c))
	return root
}

func parseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error", "err":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
