package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plannerview/internal/domain"
	"plannerview/internal/repository"
)

type ViewRepository struct {
	db *DB
}

func NewViewRepository(db *DB) *ViewRepository {
	return &ViewRepository{db: db}
}

type dbView struct {
	ID           int64        `db:"id"`
	Name         string       `db:"name"`
	ViewConfig   string       `db:"view_config"`
	LastAccessed sql.NullTime `db:"last_accessed"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (dv *dbView) toView() (*domain.SavedView, error) {
	view := &domain.SavedView{
		ID:        dv.ID,
		Name:      dv.Name,
		CreatedAt: dv.CreatedAt,
		UpdatedAt: dv.UpdatedAt,
	}

	if dv.LastAccessed.Valid {
		view.LastAccessed = &dv.LastAccessed.Time
	}

	if err := json.Unmarshal([]byte(dv.ViewConfig), &view.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view config: %w", err)
	}

	return view, nil
}

const viewColumns = `id, name, view_config, last_accessed, created_at, updated_at`

func (r *ViewRepository) Save(ctx context.Context, view *domain.SavedView) error {
	if err := view.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	configJSON, err := json.Marshal(view.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal view config: %w", err)
	}

	now := time.Now()
	if view.CreatedAt.IsZero() {
		view.CreatedAt = now
	}
	view.UpdatedAt = now

	query := `
		INSERT INTO saved_views (name, view_config, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			view_config = excluded.view_config,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, view.Name, string(configJSON), view.CreatedAt, view.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}

	// an existing row keeps its id and creation time
	var saved struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &saved, `SELECT id, created_at FROM saved_views WHERE name = ?`, view.Name); err != nil {
		return fmt.Errorf("failed to read saved view: %w", err)
	}

	view.ID = saved.ID
	view.CreatedAt = saved.CreatedAt
	return nil
}

func (r *ViewRepository) GetByName(ctx context.Context, name string) (*domain.SavedView, error) {
	query := `SELECT ` + viewColumns + ` FROM saved_views WHERE name = ?`

	var dv dbView
	err := r.db.GetContext(ctx, &dv, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", repository.ErrViewNotFound, name)
		}
		return nil, fmt.Errorf("failed to get view: %w", err)
	}

	return dv.toView()
}

func (r *ViewRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM saved_views WHERE name = ?`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %q", repository.ErrViewNotFound, name)
	}

	return nil
}

// List returns views, most recently used first unless filter.SortBy says otherwise.
func (r *ViewRepository) List(ctx context.Context, filter repository.ViewFilter) ([]*domain.SavedView, error) {
	query := `SELECT ` + viewColumns + ` FROM saved_views`
	var args []interface{}

	if filter.SearchQuery != "" {
		query += " WHERE name LIKE ?"
		args = append(args, "%"+filter.SearchQuery+"%")
	}

	orderBy := "COALESCE(last_accessed, updated_at) DESC, name ASC"
	switch filter.SortBy {
	case "name", "created_at", "updated_at", "last_accessed":
		orderBy = filter.SortBy
		if filter.SortOrder == "asc" || filter.SortOrder == "desc" {
			orderBy += " " + filter.SortOrder
		} else {
			orderBy += " DESC"
		}
	}
	query += " ORDER BY " + orderBy

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var dbViews []dbView
	if err := r.db.SelectContext(ctx, &dbViews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}

	views := make([]*domain.SavedView, 0, len(dbViews))
	for _, dv := range dbViews {
		view, err := dv.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (r *ViewRepository) RecordViewAccess(ctx context.Context, viewID int64) error {
	query := `UPDATE saved_views SET last_accessed = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, time.Now(), viewID)
	if err != nil {
		return fmt.Errorf("failed to record view access: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", repository.ErrViewNotFound, viewID)
	}

	return nil
}

var _ repository.ViewRepository = (*ViewRepository)(nil)
