package cli

import (
	"context"
	"errors"
	"fmt"

	"plannerview/internal/config"
	"plannerview/internal/domain"
	"plannerview/internal/planner"
	"plannerview/internal/repository"
	"plannerview/internal/repository/sqlite"
	"plannerview/internal/theme"
)

// session is what every command that shows tasks starts from.
type session struct {
	plan   *domain.Plan
	view   domain.ViewConfig
	styles *theme.Styles
}

// loadSession loads the plan and the view config named in settings.
// A missing view config is created, a malformed one is fatal.
func loadSession() (*session, error) {
	plan, err := planner.Load(settings.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	view, err := config.LoadOrInitViewConfig(settings.ViewConfigPath)
	if err != nil {
		if errors.Is(err, config.ErrMalformedConfig) {
			return nil, fmt.Errorf("%s: %w", settings.ViewConfigPath, err)
		}
		return nil, fmt.Errorf("failed to load view config: %w", err)
	}

	return &session{
		plan:   plan,
		view:   view,
		styles: theme.NewStyles(theme.Resolve(settings.ThemeName)),
	}, nil
}

func (s *session) displayed() []*domain.Task {
	return domain.ProjectTasks(s.plan.Tasks, s.view)
}

// openViews opens the saved view store. Callers close the returned DB.
func openViews() (*sqlite.DB, *sqlite.ViewRepository, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: settings.DBPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, sqlite.NewViewRepository(db), nil
}

// useSavedView replaces the session view with the saved view called name.
func (s *session) useSavedView(ctx context.Context, repo repository.ViewRepository, name string) error {
	view, err := repo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load view '%s': %w", name, err)
	}
	if err := repo.RecordViewAccess(ctx, view.ID); err != nil {
		return fmt.Errorf("failed to record view access: %w", err)
	}
	s.view = view.Config
	return nil
}

// applyNamedView switches to a saved view when name is set.
func (s *session) applyNamedView(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	db, repo, err := openViews()
	if err != nil {
		return err
	}
	defer db.Close()
	return s.useSavedView(ctx, repo, name)
}
