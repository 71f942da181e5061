package display

import (
	"fmt"
	"strings"
	"time"

	"plannerview/internal/domain"
)

func GetProgressIcon(progress domain.Progress) string {
	switch progress {
	case domain.ProgressDone:
		return "✓"
	case domain.ProgressOngoing:
		return "⚡"
	case domain.ProgressNotStarted:
		return "○"
	default:
		return "?"
	}
}

func GetPriorityIcon(priority domain.Priority) string {
	switch priority {
	case domain.PriorityUrgent:
		return "🔥"
	case domain.PriorityImportant:
		return "⬆"
	case domain.PriorityMid:
		return "➡"
	case domain.PriorityLow:
		return "⬇"
	default:
		return "?"
	}
}

// export layout, "-" when absent
func FormatDate(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format(domain.DateLayout)
}

// FormatDeadline shows a deadline relative to now; done tasks show the plain date.
func FormatDeadline(t *domain.Task, now time.Time) string {
	if t.Deadline == nil {
		return "-"
	}
	if t.Progress == domain.ProgressDone {
		return FormatDate(t.Deadline)
	}

	today := now.Truncate(24 * time.Hour)
	days := int(t.Deadline.Truncate(24*time.Hour).Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return fmt.Sprintf("-%dd", -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	}
	return FormatDate(t.Deadline)
}

func FormatItems(p *domain.ItemProgress) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func FormatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
