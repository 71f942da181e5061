package domain

import (
	"fmt"
	"slices"
	"strings"
)

// TagFilter restricts a single-valued column.
// A value passes when it is not denied and, if Or is set, is allowed.
type TagFilter[T ~string] struct {
	Or  []T `toml:"or,omitempty" json:"or,omitempty"`
	Not []T `toml:"not,omitempty" json:"not,omitempty"`
}

func (f TagFilter[T]) Matches(value T) bool {
	if slices.Contains(f.Not, value) {
		return false
	}
	if len(f.Or) > 0 && !slices.Contains(f.Or, value) {
		return false
	}
	return true
}

func (f TagFilter[T]) HasFilter() bool {
	return len(f.Or) > 0 || len(f.Not) > 0
}

// MultiTagFilter restricts a set-valued column.
type MultiTagFilter struct {
	And []string `toml:"and,omitempty" json:"and,omitempty"`
	Or  []string `toml:"or,omitempty" json:"or,omitempty"`
	Not []string `toml:"not,omitempty" json:"not,omitempty"`
}

func (f MultiTagFilter) Matches(tags []string) bool {
	for _, n := range f.Not {
		if slices.Contains(tags, n) {
			return false
		}
	}
	if len(f.Or) > 0 && !slices.ContainsFunc(f.Or, func(o string) bool { return slices.Contains(tags, o) }) {
		return false
	}
	for _, a := range f.And {
		if !slices.Contains(tags, a) {
			return false
		}
	}
	return true
}

func (f MultiTagFilter) HasFilter() bool {
	return len(f.And) > 0 || len(f.Or) > 0 || len(f.Not) > 0
}

// TaskFilter is the persisted per-column filter configuration.
type TaskFilter struct {
	Name        string              `toml:"name" json:"name,omitempty"`
	Bucket      TagFilter[string]   `toml:"bucket" json:"bucket"`
	Progress    TagFilter[Progress] `toml:"progress" json:"progress"`
	Priority    TagFilter[Priority] `toml:"priority" json:"priority"`
	Labels      MultiTagFilter      `toml:"labels" json:"labels"`
	AssignedTo  MultiTagFilter      `toml:"assigned_to" json:"assigned_to"`
	CreatedBy   TagFilter[string]   `toml:"created_by" json:"created_by"`
	Description string              `toml:"description" json:"description,omitempty"`

	// IDs pins tasks for highlighting, it never hides anything.
	IDs []string `toml:"ids,omitempty" json:"ids,omitempty"`
	// FilterIDs, when set, is an allow-list of task ids.
	FilterIDs []string `toml:"filter_ids,omitempty" json:"filter_ids,omitempty"`
}

// Passes reports whether the task satisfies every rule.
func (f TaskFilter) Passes(t *Task) bool {
	return f.Bucket.Matches(t.Bucket) &&
		f.Progress.Matches(t.Progress) &&
		f.Priority.Matches(t.Priority) &&
		f.Labels.Matches(t.Labels) &&
		f.AssignedTo.Matches(t.AssignedTo) &&
		f.CreatedBy.Matches(t.CreatedBy) &&
		ContainsFold(f.Name, t.Name) &&
		ContainsFold(f.Description, t.Description) &&
		(len(f.FilterIDs) == 0 || slices.Contains(f.FilterIDs, t.ID))
}

func (f TaskFilter) Pinned(t *Task) bool {
	return slices.Contains(f.IDs, t.ID)
}

// Active reports whether the column currently restricts anything.
func (f TaskFilter) Active(col Column) bool {
	switch col {
	case ColumnName:
		return f.Name != ""
	case ColumnDescription:
		return f.Description != ""
	case ColumnBucket:
		return f.Bucket.HasFilter()
	case ColumnProgress:
		return f.Progress.HasFilter()
	case ColumnPriority:
		return f.Priority.HasFilter()
	case ColumnLabels:
		return f.Labels.HasFilter()
	case ColumnAssignedTo:
		return f.AssignedTo.HasFilter()
	}
	return false
}

// HasFilter reports whether any rule is set.
func (f TaskFilter) HasFilter() bool {
	for _, col := range Columns() {
		if f.Active(col) {
			return true
		}
	}
	return f.CreatedBy.HasFilter() || len(f.FilterIDs) > 0
}

// Clear drops every rule but keeps pinned ids.
func (f *TaskFilter) Clear() {
	*f = TaskFilter{IDs: f.IDs}
}

// TextRule returns a pointer to the free-text rule of a text column.
func (f *TaskFilter) TextRule(col Column) (*string, error) {
	switch col {
	case ColumnName:
		return &f.Name, nil
	case ColumnDescription:
		return &f.Description, nil
	}
	return nil, fmt.Errorf("column %s has no text filter", col.Title())
}

func (f TaskFilter) Validate() error {
	for _, p := range append(slices.Clone(f.Priority.Or), f.Priority.Not...) {
		if !p.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPriority, p)
		}
	}
	for _, p := range append(slices.Clone(f.Progress.Or), f.Progress.Not...) {
		if !p.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidProgress, p)
		}
	}
	return nil
}

// ContainsFold is a case-insensitive substring test; an empty pattern always matches.
func ContainsFold(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(pattern))
}
