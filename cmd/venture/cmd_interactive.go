package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	"github.com/bryanwahyu/venture-insight/internal/middleware"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive session: chain analyze, pitch, export, and history",
	Long: `Starts an interactive session. Because analysis history lives in memory,
this is the mode where pitch, export, and history operate on analyses run
earlier in the same session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		fmt.Println("Welcome to Venture Insight interactive mode.")
		for {
			var choice string
			prompt := &survey.Select{
				Message: "What next?",
				Options: []string{"analyze", "pitch", "history", "export", "quit"},
			}
			if err := survey.AskOne(prompt, &choice); err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					fmt.Println("Goodbye!")
					return nil
				}
				return err
			}

			switch choice {
			case "analyze":
				err = interactiveAnalyze(cmd, svc)
			case "pitch":
				err = interactivePitch(cmd, svc)
			case "history":
				printHistory(svc)
			case "export":
				err = interactiveExport(svc)
			case "quit":
				fmt.Println("Goodbye!")
				return nil
			}
			if err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					fmt.Println("Goodbye!")
					return nil
				}
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func interactiveAnalyze(cmd *cobra.Command, svc *appanalysis.Service) error {
	var idea string
	if err := survey.AskOne(&survey.Multiline{Message: "Describe your startup idea:"}, &idea,
		survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return middleware.ValidateIdea(s)
		})); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Running analysis...")
	rec, _, err := svc.Analyze(cmd.Context(), idea)
	if err != nil {
		return err
	}
	printRecord(rec)
	return nil
}

func interactivePitch(cmd *cobra.Command, svc *appanalysis.Service) error {
	rec, id, err := svc.History().Latest()
	if err != nil {
		return fmt.Errorf("no analysis history found; run 'analyze' first")
	}
	fmt.Fprintf(os.Stderr, "Generating pitch deck for analysis %d...\n", id)
	deck, err := svc.GeneratePitchDeck(cmd.Context(), rec)
	if err != nil {
		return err
	}
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("PITCH DECK")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println(deck.Content)
	return nil
}

func interactiveExport(svc *appanalysis.Service) error {
	rec, _, err := svc.History().Latest()
	if err != nil {
		return fmt.Errorf("no analysis history found; run 'analyze' first")
	}

	var format string
	if err := survey.AskOne(&survey.Select{
		Message: "Export format:",
		Options: exportFormats,
	}, &format); err != nil {
		return err
	}

	content, err := svc.Export(rec, format)
	if err != nil {
		return err
	}
	fmt.Println(content)
	return nil
}

func printHistory(svc *appanalysis.Service) {
	records := svc.History().All()
	if len(records) == 0 {
		fmt.Println("No analysis history found.")
		return
	}
	fmt.Printf("Analysis History (%d entries):\n", len(records))
	fmt.Println(strings.Repeat("-", 50))
	for i, rec := range records {
		fmt.Printf("%d: %s  %s\n", i, rec.CreatedAt.Format("2006-01-02 15:04:05"), truncate(rec.Idea, 60))
	}
}
