package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/meetgrid/meetpoint"
	"github.com/spf13/cobra"
)

func newSolveCmd(c *cli) *cobra.Command {
	var (
		strategy  string
		noTransit bool
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "solve ROW...",
		Short: "Solve one grid given as comma-separated rows",
		Long: "Each ROW is a comma-separated list of integers: 0 = empty lot, 1 = house,\n" +
			"anything else = obstacle. Prints the minimal total distance, or -1.",
		Example: "  meetpoint solve 1,0,2,0,1 0,0,0,0,0 0,0,1,0,0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseRows(args)
			if err != nil {
				return err
			}
			s, err := meetpoint.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			res, err := meetpoint.Compute(values,
				meetpoint.WithStrategy(s),
				meetpoint.WithHouseTransit(!noTransit),
				meetpoint.WithLogger(c.logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !verbose {
				_, err = fmt.Fprintln(out, res.Distance)
				return err
			}
			_, err = fmt.Fprintf(out, "distance: %d\nmeeting: %v\nstrategy: %v\nhouses: %d\n",
				res.Distance, res.Meeting, res.Strategy, res.Houses)
			return err
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "auto", "Algorithm: auto|separable|reachability")
	cmd.Flags().BoolVar(&noTransit, "no-house-transit", false, "Forbid walking through other houses")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print meeting cell and strategy too")
	return cmd
}

// parseRows turns "1,0,2" style arguments into a grid. Row lengths are not
// checked here; the solver rejects ragged grids.
func parseRows(args []string) ([][]int, error) {
	values := make([][]int, len(args))
	for r, arg := range args {
		fields := strings.Split(arg, ",")
		row := make([]int, len(fields))
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			row[c] = v
		}
		values[r] = row
	}
	return values, nil
}
