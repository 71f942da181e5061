package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultLinkBase is the planner web ui root used to build task links.
const DefaultLinkBase = "https://planner.cloud.microsoft/webui"

// export date layout
const DateLayout = "02-01-2006"

// task priority
type Priority string

const (
	PriorityLow       Priority = "Low"
	PriorityMid       Priority = "Mid"
	PriorityImportant Priority = "Important"
	PriorityUrgent    Priority = "Urgent"
)

// Dutch labels as they appear in the planner export.
const (
	labelPriorityLow       = "Laag"
	labelPriorityMid       = "Gemiddeld"
	labelPriorityUrgent    = "Belangrijk"
	labelPriorityImportant = "Dringend"

	labelProgressNotStarted = "Niet gestart"
	labelProgressOngoing    = "Wordt uitgevoerd"
	labelProgressDone       = "Voltooid"
)

// task progress
type Progress string

const (
	ProgressNotStarted Progress = "NotStarted"
	ProgressOngoing    Progress = "Ongoing"
	ProgressDone       Progress = "Done"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidProgress = errors.New("invalid progress")
)

// Priorities returns every priority, most pressing first.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityImportant, PriorityMid, PriorityLow}
}

// Rank orders priorities Low < Mid < Important < Urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMid:
		return 1
	case PriorityImportant:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return -1
	}
}

func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// ParsePriority accepts canonical names and export labels.
func ParsePriority(s string) (Priority, error) {
	switch strings.TrimSpace(s) {
	case string(PriorityLow), labelPriorityLow:
		return PriorityLow, nil
	case string(PriorityMid), labelPriorityMid:
		return PriorityMid, nil
	case string(PriorityImportant), labelPriorityImportant:
		return PriorityImportant, nil
	case string(PriorityUrgent), labelPriorityUrgent:
		return PriorityUrgent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Progresses returns every progress value in workflow order.
func Progresses() []Progress {
	return []Progress{ProgressNotStarted, ProgressOngoing, ProgressDone}
}

// Rank orders progress NotStarted < Ongoing < Done.
func (p Progress) Rank() int {
	switch p {
	case ProgressNotStarted:
		return 0
	case ProgressOngoing:
		return 1
	case ProgressDone:
		return 2
	default:
		return -1
	}
}

func (p Progress) Valid() bool {
	return p.Rank() >= 0
}

func ParseProgress(s string) (Progress, error) {
	switch strings.TrimSpace(s) {
	case string(ProgressNotStarted), labelProgressNotStarted:
		return ProgressNotStarted, nil
	case string(ProgressOngoing), labelProgressOngoing:
		return ProgressOngoing, nil
	case string(ProgressDone), labelProgressDone:
		return ProgressDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProgress, s)
}

// checklist progress, e.g. 2/5
type ItemProgress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

func (p ItemProgress) String() string {
	return fmt.Sprintf("%d/%d", p.Done, p.Total)
}

func (p ItemProgress) Complete() bool {
	return p.Done == p.Total
}

type Task struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Bucket         string        `json:"bucket"`
	Progress       Progress      `json:"progress"`
	Priority       Priority      `json:"priority"`
	AssignedTo     []string      `json:"assigned_to"`
	CreatedBy      string        `json:"created_by"`
	CreateDate     time.Time     `json:"create_date"`
	StartDate      *time.Time    `json:"start_date,omitempty"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	Recurring      string        `json:"recurring,omitempty"`
	Late           bool          `json:"late"`
	CompleteDate   *time.Time    `json:"complete_date,omitempty"`
	CompletedBy    string        `json:"completed_by,omitempty"`
	ItemsCompleted *ItemProgress `json:"items_completed,omitempty"`
	Items          []string      `json:"items"`
	Labels         []string      `json:"labels"`
	Description    string        `json:"description"`
}

// URL builds the planner web link for the task inside the given plan.
func (t *Task) URL(base, planID string) string {
	if base == "" {
		base = DefaultLinkBase
	}
	return fmt.Sprintf("%s/plan/%s/view/grid/task/%s", strings.TrimRight(base, "/"), planID, t.ID)
}

// parses a dd-mm-yyyy export date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}
	return t, nil
}

// empty input means no date
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
