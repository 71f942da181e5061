package cli

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"plannerview/internal/config"
	"plannerview/internal/opener"
	"plannerview/internal/planner"
	"plannerview/internal/repository"
	"plannerview/internal/theme"
	"plannerview/internal/tui"
	"plannerview/internal/watch"
)

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	// saved views are optional, the viewer works without the store
	var views repository.ViewRepository
	db, repo, err := openViews()
	if err != nil {
		slog.Warn("saved views unavailable", "error", err)
	} else {
		defer db.Close()
		views = repo
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var events <-chan watch.Event
	if settings.ScanPath != "" {
		w := watch.New(settings.ScanPath, settings.PlanPath, settings.PollInterval)
		events = w.Events()
		go w.Run(ctx)
		slog.Info("watching for new exports", "scan_path", settings.ScanPath)
	}

	model := tui.NewModel(tui.Options{
		Plan:           s.plan,
		Config:         s.view,
		PlanPath:       settings.PlanPath,
		ViewConfigPath: settings.ViewConfigPath,
		LinkBase:       settings.LinkBase,
		Load:           planner.Load,
		Opener:         opener.System{},
		Views:          views,
		Watch:          events,
		Theme:          theme.Resolve(settings.ThemeName),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	// the view config survives the session
	if m, ok := final.(tui.Model); ok {
		if err := config.SaveViewConfig(settings.ViewConfigPath, m.ViewConfig()); err != nil {
			return fmt.Errorf("failed to save view config: %w", err)
		}
	}
	return nil
}
