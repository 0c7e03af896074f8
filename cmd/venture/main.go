// Package main is the entry point for the venture CLI: startup-idea analysis
// driven by a text-generation API, with pitch-deck generation, business-model
// validation, and report export on top.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	"github.com/bryanwahyu/venture-insight/internal/config"
	aiopenai "github.com/bryanwahyu/venture-insight/internal/infra/ai/openai"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "venture",
	Short: "AI-assisted startup idea analysis",
	Long: `venture analyzes a startup idea across eight fixed dimensions (market
research, customer analysis, business model, technical feasibility, financial
projections, go-to-market, risk assessment, recommendations) using a
text-generation API, and derives pitch decks, business-model validations, and
exportable reports from the result.

Analysis history lives in memory for the lifetime of the process; use
'venture interactive' to chain analyze, pitch, and export in one session.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: ./config.yaml or CONFIG_PATH)")
}

// loadConfig resolves the config path from flag, env, then default.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}
	return config.Load(path)
}

// newService builds the orchestrator with an explicitly injected
// text-generation client.
func newService() (*appanalysis.Service, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, nil, fmt.Errorf("openai api key is required (config openai.apiKey or OPENAI_API_KEY)")
	}
	gen := aiopenai.NewClientWithBaseURL(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	svc := appanalysis.NewService(gen)
	svc.Timeout = cfg.SectionTimeout()
	svc.MaxConcurrent = cfg.Analysis.MaxConcurrent
	return svc, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
