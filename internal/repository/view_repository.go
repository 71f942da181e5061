package repository

import (
	"context"
	"errors"

	"plannerview/internal/domain"
)

var ErrViewNotFound = errors.New("view not found")

// ViewRepository stores named view presets.
type ViewRepository interface {
	// Save inserts the view or replaces the config of the view with the same name.
	Save(ctx context.Context, view *domain.SavedView) error
	GetByName(ctx context.Context, name string) (*domain.SavedView, error)
	Delete(ctx context.Context, name string) error

	List(ctx context.Context, filter ViewFilter) ([]*domain.SavedView, error)
	RecordViewAccess(ctx context.Context, viewID int64) error
}

type ViewFilter struct {
	SearchQuery string
	SortBy      string
	SortOrder   string
	Limit       int
}
