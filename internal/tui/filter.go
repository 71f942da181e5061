package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"plannerview/internal/domain"
	"plannerview/internal/tagfilter"
)

func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.filter.stage {
	case tagStage:
		return m.updateTagStage(msg)
	case textStage:
		return m.updateTextStage(msg)
	}
	return m.updateColumnsStage(msg)
}

func (m Model) updateColumnsStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := domain.Columns()

	switch {
	case key.Matches(msg, m.keys.Leave):
		m.viewMode = tableView
		m.resize()
		m.updateTableRows()

	case key.Matches(msg, m.keys.Up):
		if m.filter.cursor > 0 {
			m.filter.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.filter.cursor < len(columns)-1 {
			m.filter.cursor++
		}

	case key.Matches(msg, m.keys.Sort):
		m.cfg.Sort = m.cfg.Sort.Toggle(columns[m.filter.cursor])
		m.recompute()

	case key.Matches(msg, m.keys.ClearSort):
		m.cfg.Sort = domain.DefaultTaskSort()
		m.recompute()

	case key.Matches(msg, m.keys.Edit):
		m.filter.column = columns[m.filter.cursor]
		cmd := m.openEditor()
		return m, cmd
	}
	return m, nil
}

// openEditor switches to the editor matching the kind of m.filter.column.
// Columns without a filter keep the picker open.
func (m *Model) openEditor() tea.Cmd {
	col := m.filter.column
	switch col.FilterKind() {
	case domain.FilterTag, domain.FilterMultiTag:
		tags, err := tagfilter.FromColumn(col, m.cfg.Filter, m.uniques)
		if err != nil {
			panic(err)
		}
		m.filter.tags = tags
		m.filter.tagCursor = clampCursor(m.filter.tagCursor, tags.Len())
		m.filter.jumping = false
		m.filter.stage = tagStage
		return nil

	case domain.FilterText:
		rule := m.textRule(col)
		m.filter.textInput.SetValue(*rule)
		m.filter.textInput.CursorEnd()
		m.filter.textInput.Placeholder = "filter " + col.Title()
		m.filter.stage = textStage
		return m.filter.textInput.Focus()
	}

	m.filter.stage = columnsStage
	return nil
}

func (m Model) updateTagStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.jumping {
		return m.updateJump(msg)
	}

	tags := m.filter.tags
	switch {
	case key.Matches(msg, m.keys.Leave):
		m.filter.tags = nil
		m.filter.tagCursor = 0
		m.filter.stage = columnsStage

	case key.Matches(msg, m.keys.Up):
		if m.filter.tagCursor > 0 {
			m.filter.tagCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.filter.tagCursor < tags.Len()-1 {
			m.filter.tagCursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if tags.Len() == 0 {
			return m, nil
		}
		tags.Next(m.filter.tagCursor)
		if err := tagfilter.Apply(m.filter.column, tags, &m.cfg.Filter); err != nil {
			panic(fmt.Sprintf("tag editor out of sync with %s filter: %v", m.filter.column.Title(), err))
		}
		m.recompute()

	case key.Matches(msg, m.keys.Jump):
		m.filter.jumping = true
		m.filter.jumpInput.SetValue("")
		cmd := m.filter.jumpInput.Focus()
		return m, cmd
	}
	return m, nil
}

// updateJump moves the tag cursor to the best fuzzy match while typing.
func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filter.jumping = false
		m.filter.jumpInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter.jumpInput, cmd = m.filter.jumpInput.Update(msg)
	if i := tagfilter.Find(m.filter.tags, m.filter.jumpInput.Value()); i >= 0 {
		m.filter.tagCursor = i
	}
	return m, cmd
}

func (m Model) updateTextStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filter.textInput.Blur()
		m.filter.stage = columnsStage
		return m, nil
	}

	var cmd tea.Cmd
	m.filter.textInput, cmd = m.filter.textInput.Update(msg)
	if rule := m.textRule(m.filter.column); *rule != m.filter.textInput.Value() {
		*rule = m.filter.textInput.Value()
		m.recompute()
	}
	return m, cmd
}

func (m *Model) textRule(col domain.Column) *string {
	rule, err := m.cfg.Filter.TextRule(col)
	if err != nil {
		panic(err)
	}
	return rule
}
