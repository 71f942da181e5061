// Package planner reads a planner spreadsheet export into a domain.Plan.
package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"plannerview/internal/domain"
)

const (
	// the trailing space is part of the sheet name in the export
	InfoSheet  = "Plannaam "
	TasksSheet = "Taken"

	taskColumns = 18
)

var (
	ErrSheetMissing = errors.New("sheet missing from workbook")
	ErrBadRow       = errors.New("malformed task row")
)

// Load opens the workbook at path and parses the plan header and every task row.
func Load(path string) (*domain.Plan, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	plan, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Info("plan loaded", "path", path, "plan", plan.Name, "tasks", len(plan.Tasks))
	return plan, nil
}

func parse(f *excelize.File) (*domain.Plan, error) {
	if idx, _ := f.GetSheetIndex(InfoSheet); idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetMissing, InfoSheet)
	}
	if idx, _ := f.GetSheetIndex(TasksSheet); idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetMissing, TasksSheet)
	}

	name, err := f.GetCellValue(InfoSheet, "B1")
	if err != nil {
		return nil, fmt.Errorf("failed to read plan name: %w", err)
	}
	id, err := f.GetCellValue(InfoSheet, "B2")
	if err != nil {
		return nil, fmt.Errorf("failed to read plan id: %w", err)
	}
	exported, err := f.GetCellValue(InfoSheet, "B3")
	if err != nil {
		return nil, fmt.Errorf("failed to read export date: %w", err)
	}
	exportDate, err := domain.ParseDate(exported)
	if err != nil {
		return nil, fmt.Errorf("invalid export date: %w", err)
	}

	rows, err := f.GetRows(TasksSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	plan := &domain.Plan{
		ID:         strings.TrimSpace(id),
		Name:       strings.TrimSpace(name),
		ExportDate: exportDate,
		Tasks:      make([]*domain.Task, 0, len(rows)),
	}

	// first row is the header
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		task, err := ParseTask(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		plan.Tasks = append(plan.Tasks, task)
	}

	return plan, nil
}

// ParseTask converts one row of the tasks sheet. Short rows are padded, trailing
// empty cells are not stored by the workbook.
func ParseTask(row []string) (*domain.Task, error) {
	cells := make([]string, taskColumns)
	copy(cells, row)

	if cells[0] == "" {
		return nil, fmt.Errorf("%w: empty task id", ErrBadRow)
	}

	progress, err := domain.ParseProgress(cells[3])
	if err != nil {
		return nil, err
	}
	priority, err := domain.ParsePriority(cells[4])
	if err != nil {
		return nil, err
	}

	created, err := domain.ParseDate(cells[7])
	if err != nil {
		return nil, fmt.Errorf("create date: %w", err)
	}
	start, err := domain.ParseOptionalDate(cells[8])
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	deadline, err := domain.ParseOptionalDate(cells[9])
	if err != nil {
		return nil, fmt.Errorf("deadline: %w", err)
	}
	completed, err := domain.ParseOptionalDate(cells[12])
	if err != nil {
		return nil, fmt.Errorf("complete date: %w", err)
	}
	items, err := parseItemProgress(cells[14])
	if err != nil {
		return nil, err
	}

	recurring := cells[10]
	if recurring == "false" {
		recurring = ""
	}

	return &domain.Task{
		ID:             cells[0],
		Name:           cells[1],
		Bucket:         cells[2],
		Progress:       progress,
		Priority:       priority,
		AssignedTo:     splitList(cells[5]),
		CreatedBy:      cells[6],
		CreateDate:     created,
		StartDate:      start,
		Deadline:       deadline,
		Recurring:      recurring,
		Late:           cells[11] == "true",
		CompleteDate:   completed,
		CompletedBy:    cells[13],
		ItemsCompleted: items,
		Items:          splitList(cells[15]),
		Labels:         splitList(cells[16]),
		Description:    cells[17],
	}, nil
}

// items_completed is "done/total"
func parseItemProgress(s string) (*domain.ItemProgress, error) {
	if s == "" {
		return nil, nil
	}
	doneStr, totalStr, ok := strings.Cut(s, "/")
	if !ok {
		return nil, fmt.Errorf("%w: items completed %q", ErrBadRow, s)
	}
	done, err := strconv.Atoi(strings.TrimSpace(doneStr))
	if err != nil {
		return nil, fmt.Errorf("%w: items completed %q", ErrBadRow, s)
	}
	total, err := strconv.Atoi(strings.TrimSpace(totalStr))
	if err != nil {
		return nil, fmt.Errorf("%w: items completed %q", ErrBadRow, s)
	}
	return &domain.ItemProgress{Done: done, Total: total}, nil
}

// lists are ';' separated, an empty cell is an empty list
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
