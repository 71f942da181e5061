package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plannerview/internal/config"
	"plannerview/internal/domain"
	"plannerview/internal/export"
	"plannerview/internal/repository"
	"plannerview/internal/repository/sqlite"
	"plannerview/internal/theme"
)

func testSession() *session {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		ID:   "plan-1",
		Name: "Relaunch",
		Tasks: []*domain.Task{
			{ID: "a", Name: "Write copy", Bucket: "Content", Progress: domain.ProgressOngoing, Priority: domain.PriorityUrgent, CreateDate: created},
			{ID: "b", Name: "Pick fonts", Bucket: "Design", Progress: domain.ProgressDone, Priority: domain.PriorityLow, CreateDate: created},
		},
	}
	return &session{
		plan:   plan,
		view:   domain.DefaultViewConfig(),
		styles: theme.NewStyles(theme.GetDefaultTheme()),
	}
}

func withSettings(t *testing.T) {
	t.Helper()
	old := settings
	cfg := config.GetDefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "views.db")
	settings = cfg
	t.Cleanup(func() { settings = old })
}

func TestApplyFlags(t *testing.T) {
	cfg := config.GetDefaultConfig()

	applyFlags(cfg, "", "")
	assert.Equal(t, config.DefaultPlanPath, cfg.PlanPath)
	assert.Equal(t, config.DefaultViewConfigPath, cfg.ViewConfigPath)

	applyFlags(cfg, "other.xlsx", "team.toml")
	assert.Equal(t, "other.xlsx", cfg.PlanPath)
	assert.Equal(t, "team.toml", cfg.ViewConfigPath)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogging(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	path := filepath.Join(t.TempDir(), "logs", "plannerview.log")
	f, err := setupLogging(path, "info")
	require.NoError(t, err)

	slog.Debug("hidden")
	slog.Info("plan loaded", "tasks", 2)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "plan loaded")
	assert.Contains(t, string(data), "tasks=2")
	assert.NotContains(t, string(data), "hidden")
}

func TestPrintTasks(t *testing.T) {
	s := testSession()
	s.view.Filter.Bucket.Or = []string{"Design"}

	var buf bytes.Buffer
	printTasks(&buf, s.styles, s.plan, s.displayed(), time.Now())

	out := buf.String()
	assert.Contains(t, out, "Relaunch")
	assert.Contains(t, out, "Pick fonts")
	assert.NotContains(t, out, "Write copy")
	assert.Contains(t, out, "1/2 tasks")
}

func TestPrintTasksEmpty(t *testing.T) {
	s := testSession()
	s.view.Filter.Name = "nothing"

	var buf bytes.Buffer
	printTasks(&buf, s.styles, s.plan, s.displayed(), time.Now())
	assert.Contains(t, buf.String(), "No tasks found.")
}

func TestWriteExportFile(t *testing.T) {
	withSettings(t)
	s := testSession()
	s.view.Sort = domain.TaskSort{Column: domain.ColumnPriority, Order: domain.OrderAscending}

	path := filepath.Join(t.TempDir(), "out", "plan.json")
	require.NoError(t, writeExportFile(path, export.FormatJSON, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got export.PlanExport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "plan-1", got.PlanID)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "b", got.Tasks[0].ID)
	assert.Equal(t, "a", got.Tasks[1].ID)
}

func openTestViews(t *testing.T) *sqlite.ViewRepository {
	t.Helper()
	withSettings(t)
	db, repo, err := openViews()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repo
}

func TestUseSavedView(t *testing.T) {
	repo := openTestViews(t)
	ctx := context.Background()

	cfg := domain.DefaultViewConfig()
	cfg.Filter.Progress.Or = []domain.Progress{domain.ProgressDone}
	require.NoError(t, repo.Save(ctx, domain.NewSavedView("done", cfg)))

	s := testSession()
	require.NoError(t, s.useSavedView(ctx, repo, "done"))
	assert.Equal(t, []string{"b"}, []string{s.displayed()[0].ID})
	assert.Len(t, s.displayed(), 1)

	view, err := repo.GetByName(ctx, "done")
	require.NoError(t, err)
	assert.NotNil(t, view.LastAccessed)

	err = s.useSavedView(ctx, repo, "missing")
	assert.ErrorIs(t, err, repository.ErrViewNotFound)
}

func TestListViews(t *testing.T) {
	repo := openTestViews(t)
	ctx := context.Background()
	styles := theme.NewStyles(theme.GetDefaultTheme())

	var buf bytes.Buffer
	require.NoError(t, listViews(ctx, &buf, styles, repo))
	assert.Contains(t, buf.String(), "No saved views.")

	cfg := domain.DefaultViewConfig()
	cfg.Filter.Bucket.Or = []string{"Design"}
	require.NoError(t, repo.Save(ctx, domain.NewSavedView("design", cfg)))

	buf.Reset()
	require.NoError(t, listViews(ctx, &buf, styles, repo))
	assert.Contains(t, buf.String(), "design")
	assert.Contains(t, buf.String(), "bucket")
	assert.Contains(t, buf.String(), "never")
}
