package domain

import "fmt"

// Column identifies a filterable or sortable task field.
type Column string

const (
	ColumnNone         Column = ""
	ColumnName         Column = "Name"
	ColumnPriority     Column = "Priority"
	ColumnCreateDate   Column = "CreateDate"
	ColumnStartDate    Column = "StartDate"
	ColumnDeadline     Column = "Deadline"
	ColumnCompleteDate Column = "CompleteDate"
	ColumnProgress     Column = "Progress"
	ColumnBucket       Column = "Bucket"
	ColumnLabels       Column = "Labels"
	ColumnAssignedTo   Column = "AssignedTo"
	ColumnDescription  Column = "Description"
)

// kind of rule a column is filtered by
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterText
	FilterTag
	FilterMultiTag
)

// Columns is the fixed order of the column picker.
func Columns() []Column {
	return []Column{
		ColumnName,
		ColumnDescription,
		ColumnBucket,
		ColumnProgress,
		ColumnPriority,
		ColumnLabels,
		ColumnAssignedTo,
		ColumnCreateDate,
		ColumnStartDate,
		ColumnDeadline,
		ColumnCompleteDate,
	}
}

func (c Column) FilterKind() FilterKind {
	switch c {
	case ColumnName, ColumnDescription:
		return FilterText
	case ColumnBucket, ColumnProgress, ColumnPriority:
		return FilterTag
	case ColumnLabels, ColumnAssignedTo:
		return FilterMultiTag
	default:
		return FilterNone
	}
}

// set-valued columns have no natural sort key
func (c Column) Sortable() bool {
	switch c {
	case ColumnNone, ColumnLabels, ColumnAssignedTo:
		return false
	}
	return c.Valid()
}

func (c Column) Valid() bool {
	if c == ColumnNone {
		return true
	}
	for _, col := range Columns() {
		if col == c {
			return true
		}
	}
	return false
}

// Title is the label shown in headers and the column picker.
func (c Column) Title() string {
	switch c {
	case ColumnNone:
		return "none"
	case ColumnName:
		return "name"
	case ColumnPriority:
		return "priority"
	case ColumnCreateDate:
		return "created"
	case ColumnStartDate:
		return "start date"
	case ColumnDeadline:
		return "deadline"
	case ColumnCompleteDate:
		return "completed"
	case ColumnProgress:
		return "progress"
	case ColumnBucket:
		return "bucket"
	case ColumnLabels:
		return "labels"
	case ColumnAssignedTo:
		return "assigned to"
	case ColumnDescription:
		return "description"
	}
	return fmt.Sprintf("unknown(%s)", string(c))
}
