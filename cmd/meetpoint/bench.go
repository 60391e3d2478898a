package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/meetgrid/internal/bench"
	"github.com/spf13/cobra"
)

func newBenchCmd(c *cli) *cobra.Command {
	var (
		runs   int
		seed   int64
		format string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the strategies on the default suite of generated grids",
		Example: "  meetpoint bench\n" +
			"  meetpoint bench --runs 10 --format yaml --log-level info",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text|yaml)", format)
			}
			runner, err := bench.NewRunner(runs, seed, c.logger)
			if err != nil {
				return err
			}
			rep, err := runner.Run(cmd.Context(), bench.DefaultSuite())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				err = rep.WriteYAML(out)
			} else {
				err = rep.WriteText(out)
			}
			if err != nil {
				return err
			}
			if bad := rep.Mismatches(); len(bad) > 0 {
				return fmt.Errorf("strategies disagree on: %s", strings.Join(bad, ", "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 5, "Timed runs per strategy and case")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for grid generation")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|yaml")
	return cmd
}
