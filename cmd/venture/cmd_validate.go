package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a business model from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("business-model")

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read business model file: %w", err)
		}
		var model map[string]any
		if err := json.Unmarshal(data, &model); err != nil {
			return fmt.Errorf("parse business model %s: %w", path, err)
		}

		svc, _, err := newService()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Validating business model...")
		res, err := svc.ValidateBusinessModel(cmd.Context(), model)
		if err != nil {
			return err
		}

		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("BUSINESS MODEL VALIDATION")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(res.Validation)
		return nil
	},
}

func init() {
	validateCmd.Flags().String("business-model", "", "business model JSON file")
	cobra.CheckErr(validateCmd.MarkFlagRequired("business-model"))

	rootCmd.AddCommand(validateCmd)
}
