package domain

import (
	"sort"
	"time"
)

// Plan is one loaded export. It is replaced as a whole on reload.
type Plan struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExportDate time.Time `json:"export_date"`
	Tasks      []*Task   `json:"tasks"`
}

// UniqueTaskKeys holds the value universe of every set-like column.
type UniqueTaskKeys struct {
	Buckets []string
	Labels  []string
	People  []string
}

func NewUniqueTaskKeys(tasks []*Task) UniqueTaskKeys {
	var buckets, labels, people []string
	for _, t := range tasks {
		buckets = append(buckets, t.Bucket)
		labels = append(labels, t.Labels...)
		people = append(people, t.AssignedTo...)
	}
	return UniqueTaskKeys{
		Buckets: uniqueStrings(buckets),
		Labels:  uniqueStrings(labels),
		People:  uniqueStrings(people),
	}
}

// Values returns the universe for a tag column, nil for other columns.
func (u UniqueTaskKeys) Values(col Column) []string {
	switch col {
	case ColumnBucket:
		return u.Buckets
	case ColumnLabels:
		return u.Labels
	case ColumnAssignedTo:
		return u.People
	case ColumnPriority:
		items := Priorities()
		values := make([]string, len(items))
		for i, p := range items {
			values[i] = string(p)
		}
		return values
	case ColumnProgress:
		items := Progresses()
		values := make([]string, len(items))
		for i, p := range items {
			values[i] = string(p)
		}
		return values
	}
	return nil
}

// sorted, de-duplicated copy
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
