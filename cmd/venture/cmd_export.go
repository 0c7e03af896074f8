package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
	"github.com/bryanwahyu/venture-insight/internal/infra/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an analysis as json or markdown",
	Long: `Exports an analysis record. Reads from the in-process history (interactive
mode) or re-exports a previously saved JSON report via --from, e.g. to convert
it to markdown or upload it to the configured report bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := newService()
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

		format, _ := cmd.Flags().GetString("format")
		content, err := svc.Export(rec, format)
		if err != nil {
			return err
		}

		if upload, _ := cmd.Flags().GetBool("upload"); upload {
			if !cfg.Storage.Enabled {
				return fmt.Errorf("report storage is not configured (storage.enabled)")
			}
			store, err := storage.New(cmd.Context(),
				cfg.Storage.Endpoint,
				cfg.Storage.Region,
				cfg.Storage.BucketName,
				cfg.Storage.AccessKey,
				cfg.Storage.SecretKey,
				cfg.Storage.UseSSL,
			)
			if err != nil {
				return err
			}
			f, _ := appanalysis.ParseFormat(format)
			key := fmt.Sprintf("reports/%s%s", rec.ID, f.Extension())
			url, err := store.UploadReport(cmd.Context(), key, []byte(content), f.ContentType())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Report uploaded: %s\n", url)
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Analysis exported to %s\n", output)
			return nil
		}

		fmt.Println(content)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("from", "", "previously exported JSON report to re-export")
	exportCmd.Flags().String("format", "json", "export format: json or markdown")
	exportCmd.Flags().String("output", "", "output file")
	exportCmd.Flags().Bool("upload", false, "upload the report to the configured bucket")

	rootCmd.AddCommand(exportCmd)
}
