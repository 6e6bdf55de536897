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

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the stock income bands at a glance",
		Long: `Evaluate the stock income bands (low income, middle class, upper
middle, high income) against the model and print them as a table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			m, _, err := loadModel(cmd)
			if err != nil {
				return err
			}

			results := m.EvaluatePresets()
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(results)
			}
			fmt.Print(renderTable(results))
			return nil
		},
	}
}

func renderTable(results []income.PresetResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %-22s %14s %8s\n", "BAND", "RANGE", "PEOPLE", "SHARE")
	for _, r := range results {
		bandRange := fmt.Sprintf("%s - %s", format.Dollars(r.BandResult.Low), format.Dollars(r.BandResult.High))
		fmt.Fprintf(&b, "%-14s %-22s %14s %8s\n",
			r.Name, bandRange, format.Count(r.People), format.Percent(r.Percent))
	}
	return b.String()
}
