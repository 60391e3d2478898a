package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteText renders the report as an aligned summary table.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CASE\tSIZE\tHOUSES\tOBSTACLES\tAUTO (s)\tRESULT\tSPEEDUP\tCHECK\n")
	for _, c := range r.Cases {
		check, speedup := "-", "-"
		if c.Agree != nil {
			check = "ok"
			if !*c.Agree {
				check = "MISMATCH"
			}
			speedup = fmt.Sprintf("%.2fx", c.Speedup)
		}
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%d\t%.4f±%.4f\t%d\t%s\t%s\n",
			c.Case.Name, c.Case.Rows, c.Case.Cols, c.Houses, c.Obstacles,
			c.Auto.MeanSeconds, c.Auto.StdDevSeconds, c.Auto.Result, speedup, check)
	}
	return tw.Flush()
}
