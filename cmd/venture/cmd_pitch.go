package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

var pitchCmd = &cobra.Command{
	Use:   "pitch",
	Short: "Generate a pitch deck outline from an analysis",
	Long: `Generates a ten-section pitch deck outline from an analysis record.
Reads the record from the in-process history (populated by a preceding analyze
in interactive mode) or from a previously exported JSON report via --from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		var rec *domain.Record
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			rec, err = loadRecord(from)
			if err != nil {
				return err
			}
		} else {
			rec, _, err = svc.History().Latest()
			if err != nil {
				return fmt.Errorf("no analysis history found; run 'analyze' first or pass --from <report.json>")
			}
		}

		fmt.Fprintln(os.Stderr, "Generating pitch deck...")
		deck, err := svc.GeneratePitchDeck(cmd.Context(), rec)
		if err != nil {
			return err
		}

		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("PITCH DECK")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(deck.Content)
		return nil
	},
}

func init() {
	pitchCmd.Flags().String("from", "", "exported JSON report to build the pitch deck from")

	rootCmd.AddCommand(pitchCmd)
}

// loadRecord reads a record back from an exported JSON report.
func loadRecord(path string) (*domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &rec, nil
}
