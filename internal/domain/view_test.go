package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSavedView(t *testing.T) {
	cfg := DefaultViewConfig()
	view := NewSavedView("  Urgent work ", cfg)

	assert.Equal(t, "Urgent work", view.Name)
	assert.Equal(t, cfg, view.Config)
	assert.Nil(t, view.LastAccessed)
	assert.True(t, view.CreatedAt.Before(time.Now().Add(time.Second)))
	assert.Equal(t, view.CreatedAt, view.UpdatedAt)
}

func TestSavedViewValidate(t *testing.T) {
	tests := []struct {
		name    string
		view    *SavedView
		wantErr string
	}{
		{"valid", NewSavedView("Mine", DefaultViewConfig()), ""},
		{"empty name", NewSavedView("", DefaultViewConfig()), "view name cannot be empty"},
		{"name too long", NewSavedView(strings.Repeat("a", 101), DefaultViewConfig()), "cannot exceed 100 characters"},
		{"bad config", NewSavedView("x", ViewConfig{Sort: TaskSort{Order: "up"}}), "invalid sort.order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSavedViewGetFilterSummary(t *testing.T) {
	view := NewSavedView("x", DefaultViewConfig())
	assert.Equal(t, "no filters", view.GetFilterSummary())

	view.Config.Filter.Bucket.Or = []string{"X"}
	view.Config.Filter.Name = "report"
	view.Config.Sort = TaskSort{Column: ColumnPriority, Order: OrderAscending}

	assert.Equal(t, "name, bucket, sort:priority asc", view.GetFilterSummary())
}
