package planner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"plannerview/internal/domain"
)

var header = []any{
	"Taak-id", "Taaknaam", "Bucketnaam", "Voortgang", "Prioriteit", "Toegewezen aan",
	"Gemaakt door", "Gemaakt op", "Begindatum", "Vervaldatum", "Is terugkerend",
	"Te laat", "Voltooid op", "Voltooid door", "Voltooide controlelijstitems",
	"Controlelijstitems", "Labels", "Beschrijving",
}

// writeWorkbook builds an export-shaped workbook and returns its path.
func writeWorkbook(t *testing.T, info [][]any, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if info != nil {
		_, err := f.NewSheet(InfoSheet)
		require.NoError(t, err)
		for i, r := range info {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(InfoSheet, cell, &r))
		}
	}
	if rows != nil {
		_, err := f.NewSheet(TasksSheet)
		require.NoError(t, err)
		all := append([][]any{header}, rows...)
		for i, r := range all {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(TasksSheet, cell, &r))
		}
	}

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var planInfo = [][]any{
	{"Plannaam", "Website relaunch"},
	{"Plan-id", "plan-42"},
	{"Datum van export", "14-03-2025"},
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, planInfo, [][]any{
		{
			"t1", "Write copy", "Content", "Wordt uitgevoerd", "Belangrijk", "Ann;Bob",
			"Carol", "01-03-2025", "02-03-2025", "20-03-2025", "false",
			"true", "", "", "1/3", "draft;review;publish", "copy;ux", "First **draft**",
		},
		{
			"t2", "Pick fonts", "Design", "Voltooid", "Laag", "",
			"Carol", "28-02-2025", "", "", "Wekelijks",
			"false", "05-03-2025", "Ann",
		},
	})

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Website relaunch", plan.Name)
	assert.Equal(t, "plan-42", plan.ID)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), plan.ExportDate)
	require.Len(t, plan.Tasks, 2)

	t1 := plan.Tasks[0]
	assert.Equal(t, "t1", t1.ID)
	assert.Equal(t, "Write copy", t1.Name)
	assert.Equal(t, "Content", t1.Bucket)
	assert.Equal(t, domain.ProgressOngoing, t1.Progress)
	assert.Equal(t, domain.PriorityUrgent, t1.Priority)
	assert.Equal(t, []string{"Ann", "Bob"}, t1.AssignedTo)
	assert.Equal(t, "Carol", t1.CreatedBy)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), t1.CreateDate)
	require.NotNil(t, t1.StartDate)
	require.NotNil(t, t1.Deadline)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), *t1.Deadline)
	assert.Empty(t, t1.Recurring)
	assert.True(t, t1.Late)
	assert.Nil(t, t1.CompleteDate)
	assert.Equal(t, &domain.ItemProgress{Done: 1, Total: 3}, t1.ItemsCompleted)
	assert.Equal(t, []string{"draft", "review", "publish"}, t1.Items)
	assert.Equal(t, []string{"copy", "ux"}, t1.Labels)
	assert.Equal(t, "First **draft**", t1.Description)

	// trailing cells missing entirely
	t2 := plan.Tasks[1]
	assert.Equal(t, domain.ProgressDone, t2.Progress)
	assert.Equal(t, domain.PriorityLow, t2.Priority)
	assert.Nil(t, t2.AssignedTo)
	assert.Nil(t, t2.StartDate)
	assert.Equal(t, "Wekelijks", t2.Recurring)
	assert.False(t, t2.Late)
	require.NotNil(t, t2.CompleteDate)
	assert.Equal(t, "Ann", t2.CompletedBy)
	assert.Nil(t, t2.ItemsCompleted)
	assert.Nil(t, t2.Labels)
	assert.Empty(t, t2.Description)
}

func TestLoadEmptyTaskSheet(t *testing.T) {
	path := writeWorkbook(t, planInfo, [][]any{})

	plan, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, plan.Tasks)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
		assert.Error(t, err)
	})

	t.Run("missing info sheet", func(t *testing.T) {
		path := writeWorkbook(t, nil, [][]any{})
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrSheetMissing)
	})

	t.Run("missing tasks sheet", func(t *testing.T) {
		path := writeWorkbook(t, planInfo, nil)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrSheetMissing)
	})

	t.Run("bad export date", func(t *testing.T) {
		info := [][]any{{"Plannaam", "x"}, {"Plan-id", "y"}, {"Datum", "2025-03-14"}}
		path := writeWorkbook(t, info, [][]any{})
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad priority", func(t *testing.T) {
		path := writeWorkbook(t, planInfo, [][]any{
			{"t1", "x", "b", "Voltooid", "Soms", "", "c", "01-03-2025"},
		})
		_, err := Load(path)
		assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	})
}

func TestParseTask(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		anyErr  bool
		wantErr error
	}{
		{"minimal", []string{"id", "n", "b", "NotStarted", "Mid", "", "c", "01-01-2025"}, false, nil},
		{"empty id", []string{"", "n", "b", "NotStarted", "Mid", "", "c", "01-01-2025"}, true, ErrBadRow},
		{"bad progress", []string{"id", "n", "b", "Maybe", "Mid", "", "c", "01-01-2025"}, true, domain.ErrInvalidProgress},
		{"missing create date", []string{"id", "n", "b", "NotStarted", "Mid"}, true, nil},
		{"bad items", []string{"id", "n", "b", "NotStarted", "Mid", "", "c", "01-01-2025", "", "", "", "", "", "", "three"}, true, ErrBadRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ParseTask(tt.row)
			if !tt.anyErr {
				require.NoError(t, err)
				assert.Equal(t, "id", task.ID)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseItemProgress(t *testing.T) {
	got, err := parseItemProgress("2/5")
	require.NoError(t, err)
	assert.Equal(t, &domain.ItemProgress{Done: 2, Total: 5}, got)

	got, err = parseItemProgress("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseItemProgress("2-5")
	assert.ErrorIs(t, err, ErrBadRow)
	_, err = parseItemProgress("a/5")
	assert.ErrorIs(t, err, ErrBadRow)
}
