package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"plannerview/internal/domain"
)

func (m Model) View() string {
	var b strings.Builder

	title := m.styles.TUITitle.Render("  " + m.planTitle() + "  ")
	b.WriteString(title)
	b.WriteString("\n")

	if len(m.popup) > 0 {
		b.WriteString(m.renderPopup())
		b.WriteString("\n")
		b.WriteString(m.styles.TUIHelp.Render("e: dismiss"))
		return b.String()
	}

	switch m.viewMode {
	case detailView:
		b.WriteString(m.styles.DetailContainer.Render(m.detail.View()))
	case filterView:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderFilterPanel(),
			" ",
			m.renderTable(),
		))
	case viewPickerView:
		b.WriteString(m.renderViewPicker())
	case saveViewView:
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		b.WriteString(m.styles.TUISubtitle.Render("Save view as: "))
		b.WriteString(m.nameInput.View())
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) planTitle() string {
	if m.plan.Name == "" {
		return "plannerview"
	}
	return m.plan.Name
}

func (m Model) renderPopup() string {
	box := m.styles.Popup.Render(strings.Join(m.popup, "\n"))
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderTable() string {
	if len(m.displayed) == 0 {
		if m.cfg.Filter.HasFilter() {
			return m.styles.Info.Render("No tasks match the current filters.")
		}
		return m.styles.Info.Render("No tasks.")
	}
	return m.table.View()
}

func (m Model) renderFilterPanel() string {
	var b strings.Builder

	switch m.filter.stage {
	case tagStage:
		b.WriteString(m.styles.TUISubtitle.Render("Filter " + m.filter.column.Title()))
		b.WriteString("\n\n")
		tags := m.filter.tags
		if tags.Len() == 0 {
			b.WriteString(m.styles.Info.Render("no values"))
			b.WriteString("\n")
		}
		for i := 0; i < tags.Len(); i++ {
			b.WriteString(m.renderPanelLine(tags.Label(i), i == m.filter.tagCursor))
		}
		if m.filter.jumping {
			b.WriteString("\n")
			b.WriteString(m.filter.jumpInput.View())
		}

	case textStage:
		b.WriteString(m.styles.TUISubtitle.Render("Filter " + m.filter.column.Title()))
		b.WriteString("\n\n")
		b.WriteString(m.filter.textInput.View())

	default:
		b.WriteString(m.styles.TUISubtitle.Render("Columns"))
		b.WriteString("\n\n")
		for i, col := range domain.Columns() {
			b.WriteString(m.renderPanelLine(m.columnLabel(col), i == m.filter.cursor))
		}
	}

	return lipgloss.NewStyle().Width(m.panelWidth()).Render(b.String())
}

// columnLabel marks the sort column and columns with an active rule.
func (m Model) columnLabel(col domain.Column) string {
	marks := "  "
	if order, ok := m.cfg.Sort.OrderFor(col); ok {
		if order.Ascending() {
			marks = "▲ "
		} else {
			marks = "▼ "
		}
	}
	label := marks + col.Title()
	if m.cfg.Filter.Active(col) {
		label += m.styles.Marker.Render(" *")
	}
	return label
}

func (m Model) renderPanelLine(label string, selected bool) string {
	if selected {
		return m.styles.Cursor.Render(" "+label+" ") + "\n"
	}
	return " " + label + "\n"
}

func (m Model) renderViewPicker() string {
	var b strings.Builder

	b.WriteString(m.styles.TUISubtitle.Render("Saved views"))
	b.WriteString("\n\n")

	switch {
	case m.viewPicker.loading:
		b.WriteString(m.styles.Info.Render("Loading..."))
	case len(m.viewPicker.views) == 0:
		b.WriteString(m.styles.Info.Render("No saved views. Press w in the table to save one."))
	default:
		for i, v := range m.viewPicker.views {
			line := fmt.Sprintf("%-24s %s", v.Name, v.GetFilterSummary())
			b.WriteString(m.renderPanelLine(line, i == m.viewPicker.cursor))
		}
	}

	return b.String()
}

func (m Model) renderStatusBar() string {
	stats := domain.NewStatistics(m.plan.Tasks, m.displayed)
	parts := []string{stats.Summary()}

	if order, ok := m.cfg.Sort.OrderFor(m.cfg.Sort.Column); ok {
		parts = append(parts, fmt.Sprintf("sort: %s %s", m.cfg.Sort.Column.Title(), order))
	}
	if m.message != "" {
		parts = append(parts, m.message)
	}

	return m.styles.TUISubtitle.Render(strings.Join(parts, " │ "))
}

func (m Model) renderHelp() string {
	var bindings []key.Binding
	switch m.viewMode {
	case detailView:
		bindings = m.keys.detailHelp()
	case filterView:
		switch m.filter.stage {
		case columnsStage:
			bindings = m.keys.columnsHelp()
		case tagStage:
			bindings = m.keys.tagHelp()
		default:
			return m.styles.TUIHelp.Render("type to filter • enter/esc: back")
		}
	case viewPickerView:
		bindings = m.keys.pickerHelp()
	case saveViewView:
		return m.styles.TUIHelp.Render("enter: save • esc: cancel")
	default:
		bindings = m.keys.tableHelp()
	}

	if m.showHelp {
		return m.help.FullHelpView([][]key.Binding{bindings})
	}
	return m.help.ShortHelpView(bindings)
}
