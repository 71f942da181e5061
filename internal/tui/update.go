package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"plannerview/internal/domain"
)

var errNoViewStore = errors.New("saved views are not available")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// the popup swallows its dismiss key before any mode sees it
		if len(m.popup) > 0 && key.Matches(msg, m.keys.DismissPopup) {
			m.popup = nil
			return m, nil
		}
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateTableRows()
		if m.viewMode == detailView {
			m.refreshDetail()
		}
		return m, nil

	case planLoadedMsg:
		if msg.err != nil {
			slog.Error("reload failed", "path", m.planPath, "error", msg.err)
			m.pushPopup("Failed to reload %s: %v", m.planPath, msg.err)
			return m, nil
		}
		slog.Info("plan reloaded", "path", m.planPath, "tasks", len(msg.plan.Tasks))
		m.setPlan(msg.plan)
		m.message = fmt.Sprintf("Loaded %d tasks", len(msg.plan.Tasks))
		return m, nil

	case planDroppedMsg:
		if msg.event.Err != nil {
			m.pushPopup("Failed to pick up new export: %v", msg.event.Err)
			return m, waitForDropCmd(m.watch)
		}
		m.message = "New export found, reloading"
		return m, tea.Batch(m.reloadCmd(), waitForDropCmd(m.watch))

	case watcherClosedMsg:
		m.watch = nil
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			m.pushPopup("Failed to save config: %v", msg.err)
			return m, nil
		}
		m.message = "Saved config to " + msg.path
		return m, nil

	case linkMsg:
		switch {
		case msg.err != nil:
			m.pushPopup("Failed to open %s: %v", msg.url, msg.err)
		case msg.copied:
			m.message = "Copied link to clipboard"
		default:
			m.message = "Opened " + msg.url
		}
		return m, nil

	case viewsLoadedMsg:
		m.viewPicker.loading = false
		if msg.err != nil {
			m.pushPopup("Failed to load saved views: %v", msg.err)
			return m, nil
		}
		m.viewPicker.views = msg.views
		m.viewPicker.cursor = clampCursor(m.viewPicker.cursor, len(msg.views))
		return m, nil

	case viewSavedMsg:
		if msg.err != nil {
			m.pushPopup("Failed to save view: %v", msg.err)
			return m, nil
		}
		m.message = fmt.Sprintf("Saved view '%s'", msg.view.Name)
		return m, nil

	case viewDeletedMsg:
		if msg.err != nil {
			m.pushPopup("Failed to delete view '%s': %v", msg.name, msg.err)
			return m, nil
		}
		m.message = fmt.Sprintf("Deleted view '%s'", msg.name)
		return m, fetchViewsCmd(m.ctx, m.views)

	case viewAppliedMsg:
		if msg.err != nil {
			m.pushPopup("Failed to apply view: %v", msg.err)
			return m, nil
		}
		m.cfg = msg.view.Config
		m.viewMode = tableView
		m.recompute()
		m.message = fmt.Sprintf("Applied view '%s'", msg.view.Name)
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case detailView:
		return m.updateDetailMode(msg)
	case filterView:
		return m.updateFilterMode(msg)
	case viewPickerView:
		return m.updateViewPicker(msg)
	case saveViewView:
		return m.updateSaveView(msg)
	}
	return m.updateTableMode(msg)
}

func (m Model) updateTableMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Enter):
		if m.selectedTask() != nil {
			m.viewMode = detailView
			m.detail.GotoTop()
			m.refreshDetail()
		}

	case key.Matches(msg, m.keys.Filter):
		m.viewMode = filterView
		m.filter.stage = columnsStage
		m.resize()
		m.updateTableRows()

	case key.Matches(msg, m.keys.ClearFilters):
		m.cfg.Filter.Clear()
		m.recompute()
		m.message = "Cleared filters"

	case key.Matches(msg, m.keys.OpenLink):
		return m, m.linkCmd(false)

	case key.Matches(msg, m.keys.CopyLink):
		return m, m.linkCmd(true)

	case key.Matches(msg, m.keys.Reload):
		m.message = "Reloading..."
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Save):
		return m, saveConfigCmd(m.viewConfigPath, m.cfg)

	case key.Matches(msg, m.keys.ViewPicker):
		if m.views == nil {
			m.pushPopup("%v", errNoViewStore)
			return m, nil
		}
		m.viewMode = viewPickerView
		m.viewPicker.loading = true
		return m, fetchViewsCmd(m.ctx, m.views)

	case key.Matches(msg, m.keys.SaveView):
		if m.views == nil {
			m.pushPopup("%v", errNoViewStore)
			return m, nil
		}
		m.viewMode = saveViewView
		m.nameInput.SetValue("")
		m.nameInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) updateDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.viewMode = tableView
		return m, nil
	case key.Matches(msg, m.keys.OpenLink):
		return m, m.linkCmd(false)
	case key.Matches(msg, m.keys.CopyLink):
		return m, m.linkCmd(true)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) updateViewPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave), key.Matches(msg, m.keys.Back):
		m.viewMode = tableView

	case key.Matches(msg, m.keys.Up):
		if m.viewPicker.cursor > 0 {
			m.viewPicker.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.viewPicker.cursor < len(m.viewPicker.views)-1 {
			m.viewPicker.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if v := m.pickedView(); v != nil {
			return m, applyViewCmd(m.ctx, m.views, v.Name)
		}

	case key.Matches(msg, m.keys.DeleteView):
		if v := m.pickedView(); v != nil {
			return m, deleteViewCmd(m.ctx, m.views, v.Name)
		}
	}
	return m, nil
}

func (m *Model) pickedView() *domain.SavedView {
	if m.viewPicker.cursor < 0 || m.viewPicker.cursor >= len(m.viewPicker.views) {
		return nil
	}
	return m.viewPicker.views[m.viewPicker.cursor]
}

func (m Model) updateSaveView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.viewMode = tableView
		return m, nil

	case "enter":
		view := domain.NewSavedView(m.nameInput.Value(), m.cfg)
		if err := view.Validate(); err != nil {
			m.pushPopup("Cannot save view: %v", err)
			return m, nil
		}
		m.nameInput.Blur()
		m.viewMode = tableView
		return m, saveViewCmd(m.ctx, m.views, view)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) reloadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return loadPlanCmd(m.load, m.planPath)
}

func (m *Model) linkCmd(copyOnly bool) tea.Cmd {
	task := m.selectedTask()
	if task == nil {
		return nil
	}
	url := task.URL(m.linkBase, m.plan.ID)
	if copyOnly {
		return copyLinkCmd(m.opener, url)
	}
	return openLinkCmd(m.opener, url)
}
