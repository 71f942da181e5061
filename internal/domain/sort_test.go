package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func ids(tasks []*Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

// A, B, C as used throughout the projection scenarios
func scenarioTasks() []*Task {
	return []*Task{
		{ID: "A", Name: "alpha", Bucket: "X", Priority: PriorityUrgent, Progress: ProgressOngoing, CreateDate: date(2025, 1, 3)},
		{ID: "B", Name: "bravo", Bucket: "Y", Priority: PriorityLow, Progress: ProgressDone, CreateDate: date(2025, 1, 1)},
		{ID: "C", Name: "charlie", Bucket: "X", Priority: PriorityMid, Progress: ProgressNotStarted, CreateDate: date(2025, 1, 2)},
	}
}

func sampleTasks() []*Task {
	return []*Task{
		{ID: "A", Name: "alpha", Bucket: "X", Priority: PriorityUrgent, Progress: ProgressNotStarted, Labels: []string{"p1", "p2"}, AssignedTo: []string{"alice"}, Deadline: datePtr(2025, 3, 1)},
		{ID: "B", Name: "bravo", Bucket: "Y", Priority: PriorityLow, Progress: ProgressNotStarted, Labels: []string{"p1"}, AssignedTo: []string{"bob"}},
		{ID: "C", Name: "charlie", Bucket: "X", Priority: PriorityMid, Progress: ProgressDone, Deadline: datePtr(2025, 2, 1)},
		{ID: "D", Name: "delta", Bucket: "Z", Priority: PriorityMid, Progress: ProgressNotStarted, Labels: []string{"p2"}, AssignedTo: []string{"alice", "bob"}},
		{ID: "E", Name: "echo", Bucket: "Y", Priority: PriorityImportant, Progress: ProgressOngoing, Deadline: datePtr(2025, 2, 1)},
	}
}

func TestSortTasks_NoColumnKeepsOrder(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, TaskSort{Column: ColumnNone, Order: OrderAscending})
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(tasks))

	SortTasks(tasks, DefaultTaskSort())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(tasks))
}

func TestSortTasks_Descending(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want []string
	}{
		{"priority", ColumnPriority, []string{"A", "E", "C", "D", "B"}},
		{"name", ColumnName, []string{"E", "D", "C", "B", "A"}},
		{"bucket keeps tie order", ColumnBucket, []string{"D", "B", "E", "A", "C"}},
		{"progress", ColumnProgress, []string{"C", "E", "A", "B", "D"}},
		{"deadline absent last", ColumnDeadline, []string{"A", "C", "E", "B", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := sampleTasks()
			SortTasks(tasks, TaskSort{Column: tt.col, Order: OrderDescending})
			assert.Equal(t, tt.want, ids(tasks))
		})
	}
}

func TestSortTasks_ZeroOrderIsDescending(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, TaskSort{Column: ColumnPriority})
	assert.Equal(t, []string{"A", "E", "C", "D", "B"}, ids(tasks))
}

func TestSortTasks_AscendingIsReverseOfDescending(t *testing.T) {
	for _, col := range Columns() {
		if !col.Sortable() {
			continue
		}
		t.Run(string(col), func(t *testing.T) {
			desc := sampleTasks()
			SortTasks(desc, TaskSort{Column: col, Order: OrderDescending})

			asc := sampleTasks()
			SortTasks(asc, TaskSort{Column: col, Order: OrderAscending})

			reversed := slices.Clone(desc)
			slices.Reverse(reversed)
			assert.Equal(t, ids(reversed), ids(asc))
		})
	}
}

func TestSortTasks_AscendingFlipsTies(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, TaskSort{Column: ColumnPriority, Order: OrderAscending})

	// C and D share Mid; descending keeps C before D, ascending reverses them
	assert.Equal(t, []string{"B", "D", "C", "E", "A"}, ids(tasks))
}

func TestSortTasks_AbsentDatesFirstWhenAscending(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, TaskSort{Column: ColumnDeadline, Order: OrderAscending})
	assert.Equal(t, []string{"D", "B", "E", "C", "A"}, ids(tasks))
}

func TestSortTasks_ResortingSortedListIsNoop(t *testing.T) {
	for _, col := range Columns() {
		if !col.Sortable() {
			continue
		}
		t.Run(string(col), func(t *testing.T) {
			s := TaskSort{Column: col, Order: OrderDescending}
			tasks := sampleTasks()
			SortTasks(tasks, s)
			once := ids(tasks)

			SortTasks(tasks, s)
			assert.Equal(t, once, ids(tasks))
		})
	}
}

func TestTaskSortToggle(t *testing.T) {
	s := DefaultTaskSort()

	s = s.Toggle(ColumnPriority)
	assert.Equal(t, TaskSort{Column: ColumnPriority, Order: OrderDescending}, s)

	s = s.Toggle(ColumnPriority)
	assert.Equal(t, TaskSort{Column: ColumnPriority, Order: OrderAscending}, s)

	s = s.Toggle(ColumnPriority)
	assert.Equal(t, TaskSort{Column: ColumnPriority, Order: OrderDescending}, s)

	s = s.Toggle(ColumnPriority).Toggle(ColumnName)
	assert.Equal(t, TaskSort{Column: ColumnName, Order: OrderDescending}, s)

	assert.Equal(t, s, s.Toggle(ColumnLabels))
}

func TestTaskSortOrderFor(t *testing.T) {
	s := TaskSort{Column: ColumnDeadline}

	order, ok := s.OrderFor(ColumnDeadline)
	assert.True(t, ok)
	assert.Equal(t, OrderDescending, order)

	_, ok = s.OrderFor(ColumnName)
	assert.False(t, ok)

	_, ok = DefaultTaskSort().OrderFor(ColumnNone)
	assert.False(t, ok)
}
