package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/venture-insight/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Derive key metrics, SWOT, and a financial model from a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		if from == "" {
			return fmt.Errorf("--from <report.json> is required")
		}
		rec, err := loadRecord(from)
		if err != nil {
			return err
		}

		metrics := insights.FromRecord(rec)
		model := insights.GenerateFinancialModel(metrics)
		report := insights.Report{
			Metrics:        metrics,
			SWOT:           insights.GenerateSWOT(insights.RecordText(rec)),
			FinancialModel: model,
			Competitors:    insights.CreateCompetitorAnalysis(time.Now()),
			ActionPlan:     insights.CreateActionPlan(),
			Charts:         insights.CreateMarketCharts(model),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	insightsCmd.Flags().String("from", "", "exported JSON report to analyze")

	rootCmd.AddCommand(insightsCmd)
}
