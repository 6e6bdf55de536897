package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"incomelens/internal/format"
	"incomelens/internal/income"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the model parameters and summary statistics",
		Long: `Display the distribution parameters along with its central values
(median, mean, mode) and selected income quantiles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			m, _, err := loadModel(cmd)
			if err != nil {
				return err
			}

			s := m.Summary()
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(struct {
					Params income.Params `json:"params"`
					income.Summary
				}{m.Params(), s})
			}
			fmt.Print(renderSummary(m.Params(), s))
			return nil
		},
	}
}

func renderSummary(p income.Params, s income.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model parameters:\n")
	fmt.Fprintf(&b, "  mu (log-income mean):     %.2f\n", p.Mu)
	fmt.Fprintf(&b, "  sigma (log-income sd):    %.2f\n", p.Sigma)
	fmt.Fprintf(&b, "  reference population:     %s\n", format.Count(float64(p.Population)))
	fmt.Fprintf(&b, "\nDistribution:\n")
	fmt.Fprintf(&b, "  mode:    %s\n", format.Dollars(s.Mode))
	fmt.Fprintf(&b, "  median:  %s\n", format.Dollars(s.Median))
	fmt.Fprintf(&b, "  mean:    %s\n", format.Dollars(s.Mean))
	fmt.Fprintf(&b, "\nQuantiles:\n")
	for _, q := range s.Quantiles {
		fmt.Fprintf(&b, "  p%-4.0f %14s\n", q.P*100, format.Dollars(q.Income))
	}
	return b.String()
}
