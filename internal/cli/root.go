package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plannerview/internal/config"
)

var (
	// persistent flags
	planFlag       string
	viewConfigFlag string

	// loaded once per invocation
	settings *config.Config
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:   "plannerview",
	Short: "Browse a planner task export in the terminal",
	Long: `plannerview reads a planner spreadsheet export and shows its tasks in an
interactive table with per-column filters, sorting and saved views.

Run without a subcommand to start the viewer.

Keys in the table:
  ↑/k ↓/j   Move
  enter     Task details
  f         Filter and sort panel
  F         Clear filters
  o / y     Open / copy the task link
  r         Reload the plan
  v / w     Saved views / save current view
  ctrl+s    Save the view config
  e         Dismiss a message
  q         Quit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&planFlag, "plan", "", "Path of the plan export (overrides plan_path)")
	rootCmd.PersistentFlags().StringVar(&viewConfigFlag, "view-config", "", "Path of the view config (overrides view_config_path)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings reads the settings file, applies flags and starts logging.
func loadSettings() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg, planFlag, viewConfigFlag)
	settings = cfg

	logFile, err = setupLogging(config.LogFile(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	return nil
}

func applyFlags(cfg *config.Config, plan, viewConfig string) {
	if plan != "" {
		cfg.PlanPath = plan
	}
	if viewConfig != "" {
		cfg.ViewConfigPath = viewConfig
	}
}
