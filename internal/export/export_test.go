package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plannerview/internal/domain"
)

func sampleRequest() Request {
	deadline := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		ID:         "plan-1",
		Name:       "Relaunch",
		ExportDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Tasks: []*domain.Task{
			{
				ID: "a", Name: "Write copy", Bucket: "Content",
				Progress: domain.ProgressOngoing, Priority: domain.PriorityUrgent,
				AssignedTo: []string{"Ann", "Bob"}, CreatedBy: "Carol",
				CreateDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				Deadline:   &deadline, Late: true,
				ItemsCompleted: &domain.ItemProgress{Done: 1, Total: 3},
				Labels:         []string{"copy"},
			},
			{
				ID: "b", Name: "Pick fonts", Bucket: "Design",
				Progress: domain.ProgressDone, Priority: domain.PriorityLow,
				CreateDate: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	cfg := domain.DefaultViewConfig()
	cfg.Sort = domain.TaskSort{Column: domain.ColumnPriority, Order: domain.OrderDescending}
	return Request{
		Plan:  plan,
		Tasks: domain.ProjectTasks(plan.Tasks, cfg),
		View:  cfg,
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "json", "markdown"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, ExportFormat(s), f)
	}
	f, err := ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRequest()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "a", first[0])
	assert.Equal(t, "Ann;Bob", first[5])
	assert.Equal(t, "01-03-2025", first[7])
	assert.Equal(t, "", first[8])
	assert.Equal(t, "20-03-2025", first[9])
	assert.Equal(t, "true", first[11])
	assert.Equal(t, "1/3", first[12])
	assert.Equal(t, domain.DefaultLinkBase+"/plan/plan-1/view/grid/task/a", first[14])

	assert.Equal(t, "b", records[2][0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRequest()))

	var out PlanExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "plan-1", out.PlanID)
	assert.Equal(t, "14-03-2025", out.ExportDate)
	assert.Equal(t, "sort:priority desc", out.View)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "a", out.Tasks[0].ID)
	require.NotNil(t, out.Tasks[0].Deadline)
	assert.Equal(t, "20-03-2025", *out.Tasks[0].Deadline)
	assert.Nil(t, out.Tasks[1].Deadline)
	assert.Empty(t, out.Tasks[1].ItemsCompleted)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, sampleRequest()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Relaunch\n"))
	assert.Contains(t, out, "## ⚡ Ongoing (1)")
	assert.Contains(t, out, "## ✓ Done (1)")
	assert.NotContains(t, out, "NotStarted")
	assert.Contains(t, out, "- [ ] [Write copy]("+domain.DefaultLinkBase+"/plan/plan-1/view/grid/task/a)")
	assert.Contains(t, out, "@Ann @Bob")
	assert.Contains(t, out, "#copy")
	assert.Contains(t, out, "**late**")
	assert.Contains(t, out, "- [x] [Pick fonts]")
	assert.Less(t, strings.Index(out, "Ongoing"), strings.Index(out, "Done"))
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "xml", sampleRequest())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
