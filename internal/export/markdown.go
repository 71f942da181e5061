package export

import (
	"fmt"
	"io"
	"strings"

	"plannerview/internal/display"
	"plannerview/internal/domain"
)

// WriteMarkdown groups tasks by progress, keeping the displayed order inside a group.
func WriteMarkdown(w io.Writer, req Request) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", req.Plan.Name)
	fmt.Fprintf(&b, "Exported %s · view: %s\n\n", formatDate(req.Plan.ExportDate), BuildPlanExport(req).View)

	byProgress := make(map[domain.Progress][]*domain.Task)
	for _, task := range req.Tasks {
		byProgress[task.Progress] = append(byProgress[task.Progress], task)
	}

	for _, progress := range domain.Progresses() {
		tasks := byProgress[progress]
		if len(tasks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s %s (%d)\n\n", display.GetProgressIcon(progress), progress, len(tasks))
		for _, task := range tasks {
			writeTask(&b, task, req)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func writeTask(b *strings.Builder, task *domain.Task, req Request) {
	check := " "
	if task.Progress == domain.ProgressDone {
		check = "x"
	}
	fmt.Fprintf(b, "- [%s] [%s](%s) %s", check, task.Name, task.URL(req.LinkBase, req.Plan.ID), display.GetPriorityIcon(task.Priority))

	var meta []string
	if task.Bucket != "" {
		meta = append(meta, "bucket: "+task.Bucket)
	}
	if task.Deadline != nil {
		meta = append(meta, "due: "+display.FormatDate(task.Deadline))
	}
	if len(task.AssignedTo) > 0 {
		meta = append(meta, "@"+strings.Join(task.AssignedTo, " @"))
	}
	for _, label := range task.Labels {
		meta = append(meta, "#"+label)
	}
	if task.Late {
		meta = append(meta, "**late**")
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(meta, ", "))
	}
	b.WriteString("\n")
}
