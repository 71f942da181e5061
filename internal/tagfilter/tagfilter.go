// Package tagfilter projects a persisted tag rule onto an editable list of
// values, one toggleable state per value.
package tagfilter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"

	"plannerview/internal/domain"
)

var (
	ErrShapeMismatch = errors.New("tag filter shape mismatch")
	ErrNotTagColumn  = errors.New("column has no tag filter")
)

// UiTagFilter is either *Single or *Multi.
type UiTagFilter interface {
	Len() int
	Value(i int) string
	Label(i int) string
	// Next advances the state of the value at i.
	Next(i int)
	values() []string
}

type Entry struct {
	Value string
	State State
}

type Single struct {
	Entries []Entry
}

type MultiEntry struct {
	Value string
	State MultiState
}

type Multi struct {
	Entries []MultiEntry
}

func (s *Single) Len() int           { return len(s.Entries) }
func (s *Single) Value(i int) string { return s.Entries[i].Value }
func (s *Single) Label(i int) string {
	return s.Entries[i].State.Symbol() + " " + s.Entries[i].Value
}

func (s *Single) Next(i int) {
	if i < 0 || i >= len(s.Entries) {
		return
	}
	s.Entries[i].State = s.Entries[i].State.Next()
}

func (s *Single) values() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Value
	}
	return out
}

func (m *Multi) Len() int           { return len(m.Entries) }
func (m *Multi) Value(i int) string { return m.Entries[i].Value }
func (m *Multi) Label(i int) string {
	return m.Entries[i].State.Symbol() + " " + m.Entries[i].Value
}

func (m *Multi) Next(i int) {
	if i < 0 || i >= len(m.Entries) {
		return
	}
	m.Entries[i].State = m.Entries[i].State.Next()
}

func (m *Multi) values() []string {
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Value
	}
	return out
}

// FromTagFilter classifies every unique value against a single-valued rule.
func FromTagFilter[T ~string](tf domain.TagFilter[T], uniques []string) *Single {
	entries := make([]Entry, len(uniques))
	for i, u := range uniques {
		state := StateNil
		switch {
		case slices.Contains(tf.Or, T(u)):
			state = StateOr
		case slices.Contains(tf.Not, T(u)):
			state = StateNot
		}
		entries[i] = Entry{Value: u, State: state}
	}
	return &Single{Entries: entries}
}

// FromMultiTagFilter classifies every unique value against a multi-valued rule.
func FromMultiTagFilter(tf domain.MultiTagFilter, uniques []string) *Multi {
	entries := make([]MultiEntry, len(uniques))
	for i, u := range uniques {
		state := MultiNil
		switch {
		case slices.Contains(tf.Or, u):
			state = MultiOr
		case slices.Contains(tf.And, u):
			state = MultiAnd
		case slices.Contains(tf.Not, u):
			state = MultiNot
		}
		entries[i] = MultiEntry{Value: u, State: state}
	}
	return &Multi{Entries: entries}
}

// ToTagFilter converts a *Single back into a rule, dropping Nil entries.
func ToTagFilter[T ~string](u UiTagFilter) (domain.TagFilter[T], error) {
	s, ok := u.(*Single)
	if !ok {
		return domain.TagFilter[T]{}, fmt.Errorf("%w: %T to TagFilter", ErrShapeMismatch, u)
	}
	var tf domain.TagFilter[T]
	for _, e := range s.Entries {
		switch e.State {
		case StateOr:
			tf.Or = append(tf.Or, T(e.Value))
		case StateNot:
			tf.Not = append(tf.Not, T(e.Value))
		}
	}
	return tf, nil
}

// ToMultiTagFilter converts a *Multi back into a rule, dropping Nil entries.
func ToMultiTagFilter(u UiTagFilter) (domain.MultiTagFilter, error) {
	m, ok := u.(*Multi)
	if !ok {
		return domain.MultiTagFilter{}, fmt.Errorf("%w: %T to MultiTagFilter", ErrShapeMismatch, u)
	}
	var tf domain.MultiTagFilter
	for _, e := range m.Entries {
		switch e.State {
		case MultiOr:
			tf.Or = append(tf.Or, e.Value)
		case MultiAnd:
			tf.And = append(tf.And, e.Value)
		case MultiNot:
			tf.Not = append(tf.Not, e.Value)
		}
	}
	return tf, nil
}

// FromColumn builds the editor for col from the current filter.
func FromColumn(col domain.Column, f domain.TaskFilter, uniques domain.UniqueTaskKeys) (UiTagFilter, error) {
	values := uniques.Values(col)
	switch col {
	case domain.ColumnBucket:
		return FromTagFilter(f.Bucket, values), nil
	case domain.ColumnProgress:
		return FromTagFilter(f.Progress, values), nil
	case domain.ColumnPriority:
		return FromTagFilter(f.Priority, values), nil
	case domain.ColumnLabels:
		return FromMultiTagFilter(f.Labels, values), nil
	case domain.ColumnAssignedTo:
		return FromMultiTagFilter(f.AssignedTo, values), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotTagColumn, col.Title())
}

// Apply writes the editor state into the rule of col.
func Apply(col domain.Column, u UiTagFilter, f *domain.TaskFilter) error {
	var err error
	switch col {
	case domain.ColumnBucket:
		f.Bucket, err = ToTagFilter[string](u)
	case domain.ColumnProgress:
		f.Progress, err = ToTagFilter[domain.Progress](u)
	case domain.ColumnPriority:
		f.Priority, err = ToTagFilter[domain.Priority](u)
	case domain.ColumnLabels:
		f.Labels, err = ToMultiTagFilter(u)
	case domain.ColumnAssignedTo:
		f.AssignedTo, err = ToMultiTagFilter(u)
	default:
		return fmt.Errorf("%w: %s", ErrNotTagColumn, col.Title())
	}
	return err
}

// Find returns the index of the value best matching query, or -1.
func Find(u UiTagFilter, query string) int {
	if query == "" {
		return -1
	}
	matches := fuzzy.Find(query, u.values())
	if len(matches) == 0 {
		return -1
	}
	return matches[0].Index
}
