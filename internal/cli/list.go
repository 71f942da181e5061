package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"plannerview/internal/display"
	"plannerview/internal/domain"
	"plannerview/internal/theme"
)

var listView string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered tasks",
	Long: `Print the tasks that pass the current view config, in its sort order,
followed by a short summary.

Examples:
  plannerview list
  plannerview list --view "my urgent"
  plannerview list --plan export.xlsx --view-config team.toml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listView, "view", "V", "", "Use a saved view instead of the view config")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if err := s.applyNamedView(context.Background(), listView); err != nil {
		return err
	}

	printTasks(os.Stdout, s.styles, s.plan, s.displayed(), time.Now())
	return nil
}

func printTasks(w io.Writer, styles *theme.Styles, plan *domain.Plan, tasks []*domain.Task, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render(plan.Name))

	if len(tasks) == 0 {
		fmt.Fprintln(w, styles.Info.Render("No tasks found."))
		fmt.Fprintln(w)
		return
	}

	headers := []string{
		styles.Header.Render(fmt.Sprintf("%-40s", "Name")),
		styles.Header.Render(fmt.Sprintf("%-16s", "Bucket")),
		styles.Header.Render(fmt.Sprintf("%-14s", "Progress")),
		styles.Header.Render(fmt.Sprintf("%-13s", "Priority")),
		styles.Header.Render(fmt.Sprintf("%-5s", "Items")),
		styles.Header.Render(fmt.Sprintf("%-10s", "Deadline")),
	}
	fmt.Fprintln(w, strings.Join(headers, " "))
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 110)))

	for _, task := range tasks {
		printTaskRow(w, styles, task, now)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Subtitle.Render(domain.NewStatistics(plan.Tasks, tasks).Summary()))
	fmt.Fprintln(w)
}

func printTaskRow(w io.Writer, styles *theme.Styles, task *domain.Task, now time.Time) {
	cell := func(style lipgloss.Style, width int, value string) string {
		return styles.Cell.Render(style.Render(fmt.Sprintf("%-*s", width, display.Truncate(value, width))))
	}

	deadline := display.FormatDeadline(task, now)
	deadlineStyle := styles.DetailValue
	if task.Late {
		deadlineStyle = styles.Late
	}

	cells := []string{
		cell(styles.DetailValue, 40, task.Name),
		cell(styles.DetailValue, 16, task.Bucket),
		cell(styles.ProgressStyle(task.Progress), 14, display.GetProgressIcon(task.Progress)+" "+string(task.Progress)),
		cell(styles.PriorityStyle(task.Priority), 13, display.GetPriorityIcon(task.Priority)+" "+string(task.Priority)),
		cell(styles.DetailValue, 5, display.FormatItems(task.ItemsCompleted)),
		cell(deadlineStyle, 10, deadline),
	}
	fmt.Fprintln(w, strings.Join(cells, ""))
}
