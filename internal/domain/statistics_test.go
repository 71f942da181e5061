package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatistics(t *testing.T) {
	all := scenarioTasks()
	all[1].Late = true
	displayed := all[:2]

	stats := NewStatistics(all, displayed)

	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 2, stats.DisplayedTasks)
	assert.Equal(t, 1, stats.OngoingTasks)
	assert.Equal(t, 1, stats.DoneTasks)
	assert.Equal(t, 0, stats.NotStartedTasks)
	assert.Equal(t, 1, stats.UrgentTasks)
	assert.Equal(t, 1, stats.LowTasks)
	assert.Equal(t, 0, stats.MidTasks)
	assert.Equal(t, 1, stats.LateTasks)
	assert.InDelta(t, 50.0, stats.CompletionRate(), 0.001)
}

func TestStatisticsSummary(t *testing.T) {
	stats := NewStatistics(scenarioTasks(), scenarioTasks())
	summary := stats.Summary()

	assert.Contains(t, summary, "3/3 tasks")
	assert.Contains(t, summary, "1 done (33%)")
	assert.NotContains(t, summary, "late")
}

func TestStatistics_EmptyCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, NewStatistics(nil, nil).CompletionRate())
}
