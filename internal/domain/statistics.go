package domain

import (
	"fmt"
	"strings"
)

// Statistics summarises the displayed tasks against the whole plan.
type Statistics struct {
	TotalTasks     int `json:"total_tasks"`
	DisplayedTasks int `json:"displayed_tasks"`

	NotStartedTasks int `json:"not_started_tasks"`
	OngoingTasks    int `json:"ongoing_tasks"`
	DoneTasks       int `json:"done_tasks"`

	UrgentTasks    int `json:"urgent_tasks"`
	ImportantTasks int `json:"important_tasks"`
	MidTasks       int `json:"mid_tasks"`
	LowTasks       int `json:"low_tasks"`

	LateTasks int `json:"late_tasks"`
}

func NewStatistics(all, displayed []*Task) Statistics {
	s := Statistics{
		TotalTasks:     len(all),
		DisplayedTasks: len(displayed),
	}
	for _, t := range displayed {
		switch t.Progress {
		case ProgressNotStarted:
			s.NotStartedTasks++
		case ProgressOngoing:
			s.OngoingTasks++
		case ProgressDone:
			s.DoneTasks++
		}
		switch t.Priority {
		case PriorityUrgent:
			s.UrgentTasks++
		case PriorityImportant:
			s.ImportantTasks++
		case PriorityMid:
			s.MidTasks++
		case PriorityLow:
			s.LowTasks++
		}
		if t.Late {
			s.LateTasks++
		}
	}
	return s
}

// percentage of displayed tasks that are done
func (s Statistics) CompletionRate() float64 {
	if s.DisplayedTasks == 0 {
		return 0.0
	}
	return float64(s.DoneTasks) / float64(s.DisplayedTasks) * 100
}

func (s Statistics) Summary() string {
	parts := []string{
		fmt.Sprintf("%d/%d tasks", s.DisplayedTasks, s.TotalTasks),
		fmt.Sprintf("%d not started", s.NotStartedTasks),
		fmt.Sprintf("%d ongoing", s.OngoingTasks),
		fmt.Sprintf("%d done (%.0f%%)", s.DoneTasks, s.CompletionRate()),
	}
	if s.LateTasks > 0 {
		parts = append(parts, fmt.Sprintf("%d late", s.LateTasks))
	}
	return strings.Join(parts, " · ")
}
