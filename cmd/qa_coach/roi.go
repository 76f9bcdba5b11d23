package main

import (
	"os"

	"github.com/jonathan/qa-coach/internal/observability"
	"github.com/jonathan/qa-coach/internal/roi"
	"github.com/spf13/cobra"
)

var (
	roiManagers   int
	roiHoursSaved int
	roiHourlyCost int
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Estimate weekly hours and cost savings",
	Long:  `Pure arithmetic on three bounded inputs; out-of-range values are clamped.`,
	RunE:  runROI,
}

func init() {
	roiCmd.Flags().IntVar(&roiManagers, "managers", 10, "Managers doing QA (1-500)")
	roiCmd.Flags().IntVar(&roiHoursSaved, "hours-saved", 4, "Hours saved per manager per week (1-20)")
	roiCmd.Flags().IntVar(&roiHourlyCost, "hourly-cost", 70, "Fully-loaded hourly cost in dollars (20-300)")
	rootCmd.AddCommand(roiCmd)
}

func runROI(_ *cobra.Command, _ []string) error {
	in := roi.Clamp(roi.Inputs{
		Managers:   roiManagers,
		HoursSaved: roiHoursSaved,
		HourlyCost: roiHourlyCost,
	})
	observability.NewPrinter(os.Stdout).PrintEstimate(in, in.Estimate())
	return nil
}
