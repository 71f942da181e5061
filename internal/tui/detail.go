package tui

import (
	"fmt"
	"strings"
	"time"

	"plannerview/internal/display"
	"plannerview/internal/domain"
)

// refreshDetail renders the selected task into the detail viewport.
func (m *Model) refreshDetail() {
	task := m.selectedTask()
	if task == nil {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.renderTaskDetail(task, time.Now()))
}

func (m *Model) renderTaskDetail(task *domain.Task, now time.Time) string {
	var b strings.Builder

	name := task.Name
	if m.cfg.Filter.Pinned(task) {
		name = m.styles.Pinned.Render(name)
	}
	b.WriteString(m.styles.TUITitle.Render(name))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.styles.DetailLabel.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(" ")
		b.WriteString(m.styles.DetailValue.Render(value))
		b.WriteString("\n")
	}

	row("Bucket:", task.Bucket)
	row("Progress:", m.styles.ProgressStyle(task.Progress).Render(
		display.GetProgressIcon(task.Progress)+" "+string(task.Progress)))
	row("Priority:", m.styles.PriorityStyle(task.Priority).Render(
		display.GetPriorityIcon(task.Priority)+" "+string(task.Priority)))
	row("Labels:", display.FormatList(task.Labels))
	row("Assigned:", display.FormatList(task.AssignedTo))
	row("Created by:", task.CreatedBy)
	row("Created:", task.CreateDate.Format(domain.DateLayout))
	row("Start:", display.FormatDate(task.StartDate))

	deadline := display.FormatDeadline(task, now)
	if task.Late {
		deadline = m.styles.Late.Render(deadline + " (late)")
	}
	row("Deadline:", deadline)
	if task.CompleteDate != nil {
		row("Completed:", fmt.Sprintf("%s by %s", display.FormatDate(task.CompleteDate), task.CompletedBy))
	}
	if task.Recurring != "" {
		row("Recurring:", task.Recurring)
	}

	if len(task.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.DetailLabel.Render("Items " + display.FormatItems(task.ItemsCompleted)))
		b.WriteString("\n")
		mark := itemMark(task.ItemsCompleted)
		for _, item := range task.Items {
			fmt.Fprintf(&b, "  [%s] %s\n", mark, item)
		}
	}

	if strings.TrimSpace(task.Description) != "" {
		b.WriteString("\n")
		rendered, err := renderMarkdown(task.Description, m.detail.Width-2)
		if err != nil {
			rendered = task.Description
		}
		b.WriteString(rendered)
	}

	return b.String()
}

// the export only carries a done count, so single items can't be told apart
// unless the checklist is complete or untouched
func itemMark(p *domain.ItemProgress) string {
	switch {
	case p == nil || p.Total == 0:
		return "?"
	case p.Complete():
		return "✓"
	case p.Done == 0:
		return "x"
	}
	return "?"
}
