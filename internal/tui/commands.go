package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"plannerview/internal/config"
	"plannerview/internal/domain"
	"plannerview/internal/opener"
	"plannerview/internal/repository"
	"plannerview/internal/watch"
)

// Message types for async operations

// planLoadedMsg carries the result of a reload
type planLoadedMsg struct {
	plan *domain.Plan
	err  error
}

// planDroppedMsg is sent by the watcher after a new export was moved into place
type planDroppedMsg struct {
	event watch.Event
}

// watcherClosedMsg is sent once the watcher channel is closed
type watcherClosedMsg struct{}

type configSavedMsg struct {
	path string
	err  error
}

type linkMsg struct {
	url    string
	copied bool
	err    error
}

type (
	viewsLoadedMsg struct {
		views []*domain.SavedView
		err   error
	}

	viewSavedMsg struct {
		view *domain.SavedView
		err  error
	}

	viewDeletedMsg struct {
		name string
		err  error
	}

	viewAppliedMsg struct {
		view *domain.SavedView
		err  error
	}
)

// LoadFunc reads a plan from path.
type LoadFunc func(path string) (*domain.Plan, error)

func loadPlanCmd(load LoadFunc, path string) tea.Cmd {
	return func() tea.Msg {
		plan, err := load(path)
		return planLoadedMsg{plan: plan, err: err}
	}
}

// waitForDropCmd blocks on the watcher and re-arms after every event.
func waitForDropCmd(events <-chan watch.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return watcherClosedMsg{}
		}
		return planDroppedMsg{event: evt}
	}
}

func saveConfigCmd(path string, cfg domain.ViewConfig) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{path: path, err: config.SaveViewConfig(path, cfg)}
	}
}

func openLinkCmd(o opener.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkMsg{url: url, err: o.Open(url)}
	}
}

func copyLinkCmd(o opener.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkMsg{url: url, copied: true, err: o.Copy(url)}
	}
}

func fetchViewsCmd(ctx context.Context, repo repository.ViewRepository) tea.Cmd {
	return func() tea.Msg {
		views, err := repo.List(ctx, repository.ViewFilter{})
		return viewsLoadedMsg{views: views, err: err}
	}
}

func saveViewCmd(ctx context.Context, repo repository.ViewRepository, view *domain.SavedView) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Save(ctx, view); err != nil {
			return viewSavedMsg{err: err}
		}
		return viewSavedMsg{view: view}
	}
}

func deleteViewCmd(ctx context.Context, repo repository.ViewRepository, name string) tea.Cmd {
	return func() tea.Msg {
		return viewDeletedMsg{name: name, err: repo.Delete(ctx, name)}
	}
}

func applyViewCmd(ctx context.Context, repo repository.ViewRepository, name string) tea.Cmd {
	return func() tea.Msg {
		view, err := repo.GetByName(ctx, name)
		if err != nil {
			return viewAppliedMsg{err: err}
		}

		_ = repo.RecordViewAccess(ctx, view.ID)

		return viewAppliedMsg{view: view}
	}
}
