// Package export writes the displayed tasks of a plan as csv, json or markdown.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"plannerview/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown export format")

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return ExportFormat(s), nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q (use csv, json or markdown)", ErrUnknownFormat, s)
}

type PlanExport struct {
	Version    string      `json:"version"`
	PlanID     string      `json:"plan_id"`
	PlanName   string      `json:"plan_name"`
	ExportDate string      `json:"export_date"`
	View       string      `json:"view"`
	Tasks      []*TaskData `json:"tasks"`
}

type TaskData struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Bucket         string   `json:"bucket"`
	Progress       string   `json:"progress"`
	Priority       string   `json:"priority"`
	AssignedTo     []string `json:"assigned_to,omitempty"`
	CreatedBy      string   `json:"created_by"`
	CreateDate     string   `json:"create_date"`
	StartDate      *string  `json:"start_date,omitempty"`
	Deadline       *string  `json:"deadline,omitempty"`
	CompleteDate   *string  `json:"complete_date,omitempty"`
	Late           bool     `json:"late"`
	ItemsCompleted string   `json:"items_completed,omitempty"`
	Labels         []string `json:"labels,omitempty"`
	Description    string   `json:"description,omitempty"`
	URL            string   `json:"url"`
}

// Request is one export of already projected tasks.
type Request struct {
	Plan     *domain.Plan
	Tasks    []*domain.Task
	View     domain.ViewConfig
	LinkBase string
}

// Write renders req in the given format.
func Write(w io.Writer, format ExportFormat, req Request) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, req)
	case FormatJSON:
		return WriteJSON(w, req)
	case FormatMarkdown:
		return WriteMarkdown(w, req)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func convertTask(t *domain.Task, req Request) *TaskData {
	data := &TaskData{
		ID:           t.ID,
		Name:         t.Name,
		Bucket:       t.Bucket,
		Progress:     string(t.Progress),
		Priority:     string(t.Priority),
		AssignedTo:   t.AssignedTo,
		CreatedBy:    t.CreatedBy,
		CreateDate:   formatDate(t.CreateDate),
		StartDate:    optionalDate(t.StartDate),
		Deadline:     optionalDate(t.Deadline),
		CompleteDate: optionalDate(t.CompleteDate),
		Late:         t.Late,
		Labels:       t.Labels,
		Description:  t.Description,
		URL:          t.URL(req.LinkBase, req.Plan.ID),
	}
	if t.ItemsCompleted != nil {
		data.ItemsCompleted = t.ItemsCompleted.String()
	}
	return data
}

func formatDate(d time.Time) string {
	return d.Format(domain.DateLayout)
}

func optionalDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := formatDate(*d)
	return &s
}
