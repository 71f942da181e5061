package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

// the zero value counts as descending
func (o Order) Ascending() bool {
	return o == OrderAscending
}

func (o Order) Flip() Order {
	if o.Ascending() {
		return OrderDescending
	}
	return OrderAscending
}

// TaskSort selects at most one column to order the displayed tasks by.
type TaskSort struct {
	Column Column `toml:"column" json:"column,omitempty"`
	Order  Order  `toml:"order" json:"order,omitempty"`
}

func DefaultTaskSort() TaskSort {
	return TaskSort{Column: ColumnNone, Order: OrderDescending}
}

// Toggle selects col at the default order, or flips the order when col is already selected.
func (s TaskSort) Toggle(col Column) TaskSort {
	if !col.Sortable() {
		return s
	}
	if s.Column == col {
		return TaskSort{Column: col, Order: s.Order.Flip()}
	}
	return TaskSort{Column: col, Order: OrderDescending}
}

// OrderFor reports the order of col, or false when col is not the sort column.
func (s TaskSort) OrderFor(col Column) (Order, bool) {
	if col == ColumnNone || s.Column != col {
		return "", false
	}
	if s.Order == "" {
		return OrderDescending, true
	}
	return s.Order, true
}

// SortTasks orders tasks in place. Tasks are always stable-sorted by
// descending key first; ascending order is the full reverse of that result,
// so ties flip their relative order too.
func SortTasks(tasks []*Task, s TaskSort) {
	cmpKey := keyComparator(s.Column)
	if cmpKey == nil {
		return
	}
	slices.SortStableFunc(tasks, func(a, b *Task) int {
		return cmpKey(b, a)
	})
	if s.Order.Ascending() {
		slices.Reverse(tasks)
	}
}

func keyComparator(col Column) func(a, b *Task) int {
	switch col {
	case ColumnName:
		return func(a, b *Task) int { return strings.Compare(a.Name, b.Name) }
	case ColumnBucket:
		return func(a, b *Task) int { return strings.Compare(a.Bucket, b.Bucket) }
	case ColumnDescription:
		return func(a, b *Task) int { return strings.Compare(a.Description, b.Description) }
	case ColumnPriority:
		return func(a, b *Task) int { return cmp.Compare(a.Priority.Rank(), b.Priority.Rank()) }
	case ColumnProgress:
		return func(a, b *Task) int { return cmp.Compare(a.Progress.Rank(), b.Progress.Rank()) }
	case ColumnCreateDate:
		return func(a, b *Task) int { return a.CreateDate.Compare(b.CreateDate) }
	case ColumnStartDate:
		return func(a, b *Task) int { return compareOptionalDate(a.StartDate, b.StartDate) }
	case ColumnDeadline:
		return func(a, b *Task) int { return compareOptionalDate(a.Deadline, b.Deadline) }
	case ColumnCompleteDate:
		return func(a, b *Task) int { return compareOptionalDate(a.CompleteDate, b.CompleteDate) }
	}
	return nil
}

// an absent date is smaller than any date
func compareOptionalDate(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
