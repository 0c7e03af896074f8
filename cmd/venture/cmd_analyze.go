package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [idea]",
	Short: "Analyze a startup idea across all eight dimensions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idea := ""
		if len(args) > 0 {
			idea = args[0]
		}
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read idea file: %w", err)
			}
			idea = strings.TrimSpace(string(data))
		}
		if strings.TrimSpace(idea) == "" {
			return fmt.Errorf("provide a startup idea as an argument or via --file")
		}

		svc, _, err := newService()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Analyzing startup idea: %s\n", truncate(idea, 100))
		rec, _, err := svc.Analyze(cmd.Context(), idea)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		content, err := svc.Export(rec, format)
		if err != nil {
			return err
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Analysis saved to %s\n", output)
			return nil
		}

		printRecord(rec)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("file", "", "file containing the startup idea")
	analyzeCmd.Flags().String("output", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().String("format", "json", "report format when writing to a file: json or markdown")

	rootCmd.AddCommand(analyzeCmd)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func printRecord(rec *domain.Record) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("STARTUP ANALYSIS RESULTS")
	fmt.Println(strings.Repeat("=", 50))

	for _, name := range domain.SectionOrder {
		if name == domain.SectionRecommendations {
			continue
		}
		sec, _ := rec.Section(name)
		fmt.Printf("\n%s:\n", sectionTitle(name))
		if sec.OK() {
			fmt.Println(sec.Analysis)
		} else {
			fmt.Printf("error (%s): %s\n", sec.Source, sec.Err)
		}
	}

	fmt.Println("\nRecommendations:")
	for i, r := range rec.Recommendations {
		fmt.Printf("%d. %s\n", i+1, r)
	}
}

func sectionTitle(name domain.SectionName) string {
	words := strings.Split(string(name), "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// exportFormats are accepted by --format flags.
var exportFormats = []string{string(appanalysis.FormatJSON), string(appanalysis.FormatMarkdown)}
