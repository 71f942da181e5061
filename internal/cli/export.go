package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plannerview/internal/export"
)

var (
	exportFormat string
	exportOutput string
	exportView   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered tasks",
	Long: `Export the tasks that pass the current view config.

Supported formats:
  - csv: Comma-separated values for spreadsheets (default)
  - json: Structured JSON with the plan header
  - markdown: Checklist grouped by progress

Examples:
  plannerview export --output tasks.csv
  plannerview export --format json --output plan.json
  plannerview export --format markdown --view "this week"`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatCSV), "Export format (csv, json, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportView, "view", "V", "", "Use a saved view instead of the view config")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}
	if err := s.applyNamedView(context.Background(), exportView); err != nil {
		return err
	}

	if exportOutput == "" {
		return writeExport(os.Stdout, format, s)
	}

	if err := writeExportFile(exportOutput, format, s); err != nil {
		return err
	}
	fmt.Println(s.styles.Success.Render(fmt.Sprintf("✓ Exported %d task(s) to %s", len(s.displayed()), exportOutput)))
	return nil
}

func writeExport(w io.Writer, format export.ExportFormat, s *session) error {
	req := export.Request{
		Plan:     s.plan,
		Tasks:    s.displayed(),
		View:     s.view,
		LinkBase: settings.LinkBase,
	}
	if err := export.Write(w, format, req); err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}
	return nil
}

func writeExportFile(path string, format export.ExportFormat, s *session) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return writeExport(f, format, s)
}
