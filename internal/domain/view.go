package domain

import (
	"errors"
	"strings"
	"time"
)

// SavedView is a named ViewConfig preset.
type SavedView struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Config       ViewConfig `db:"view_config" json:"view_config"`
	LastAccessed *time.Time `db:"last_accessed" json:"last_accessed,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

func (v *SavedView) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return errors.New("view name cannot be empty")
	}

	if len(v.Name) > 100 {
		return errors.New("view name cannot exceed 100 characters")
	}

	return v.Config.Validate()
}

func NewSavedView(name string, cfg ViewConfig) *SavedView {
	now := time.Now()
	return &SavedView{
		Name:      strings.TrimSpace(name),
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetFilterSummary lists the columns the view restricts.
func (v *SavedView) GetFilterSummary() string {
	var parts []string
	for _, col := range Columns() {
		if v.Config.Filter.Active(col) {
			parts = append(parts, col.Title())
		}
	}
	if order, ok := v.Config.Sort.OrderFor(v.Config.Sort.Column); ok {
		parts = append(parts, "sort:"+v.Config.Sort.Column.Title()+" "+string(order))
	}

	if len(parts) == 0 {
		return "no filters"
	}

	return strings.Join(parts, ", ")
}
