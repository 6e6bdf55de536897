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

func newBandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "band",
		Short: "Report the population inside an income band",
		Long: `Compute the share of the population earning between two bounds.

The probability mass between the bounds comes from the model's
cumulative distribution; the head count scales it to the reference
population.

Examples:
  incomelens band --min 40000 --max 100000
  incomelens band --min 0 --max 30000 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			low, _ := cmd.Flags().GetFloat64("min")
			high, _ := cmd.Flags().GetFloat64("max")

			m, _, err := loadModel(cmd)
			if err != nil {
				return err
			}

			res, err := m.Band(low, high)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(res)
			}
			fmt.Print(renderBand(res))
			return nil
		},
	}

	cmd.Flags().Float64("min", 0, "Lower income bound ($)")
	cmd.Flags().Float64("max", income.DefaultGridMax, "Upper income bound ($)")
	return cmd
}

func renderBand(res income.BandResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income band:  %s - %s\n", format.Dollars(res.Low), format.Dollars(res.High))
	fmt.Fprintf(&b, "People:       %s\n", format.Count(res.People))
	fmt.Fprintf(&b, "Share:        %s\n", format.Percent(res.Percent))
	fmt.Fprintf(&b, "Probability:  %.4f\n", res.Probability)
	return b.String()
}
