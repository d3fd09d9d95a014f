package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const modelColumns = "id, short_id, name, model_url, bg_url, info, views, likes, qty, sold, created_at"

// PostgresRepository implements Repository on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository with the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert persists a new record. Short-ID uniqueness is enforced by the
// database's unique index, not by a prior existence check, so two concurrent
// inserts of the same ID cannot both succeed.
func (r *PostgresRepository) Insert(ctx context.Context, m *Model) (*Model, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO models (short_id, name, model_url, bg_url, info, qty, sold)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+modelColumns,
		m.ShortID, m.Name, m.URL, m.BgURL, m.Info, m.Qty, m.Sold,
	)
	out, err := scanModel(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("insert model: %w", err)
	}
	return out, nil
}

// GetByShortID fetches a record by its public short ID.
func (r *PostgresRepository) GetByShortID(ctx context.Context, shortID string) (*Model, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+modelColumns+` FROM models WHERE short_id = $1`, shortID)
	out, err := scanModel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get model by short id: %w", err)
	}
	return out, nil
}

// List returns all records, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Model, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+modelColumns+` FROM models ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	models := make([]*Model, 0)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return models, nil
}

// UpdateFields applies the non-nil fields of p and returns the updated record.
// With nothing to change it degenerates to a plain read.
func (r *PostgresRepository) UpdateFields(ctx context.Context, shortID string, p UpdateParams) (*Model, error) {
	set := make([]string, 0, 4)
	args := []any{shortID}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil && *p.Name != "" {
		add("name", *p.Name)
	}
	if p.Qty != nil {
		add("qty", *p.Qty)
	}
	if p.Sold != nil {
		add("sold", *p.Sold)
	}
	if p.Info != nil {
		add("info", *p.Info)
	}

	if len(set) == 0 {
		return r.GetByShortID(ctx, shortID)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE models SET `+strings.Join(set, ", ")+` WHERE short_id = $1 RETURNING `+modelColumns,
		args...,
	)
	out, err := scanModel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update model: %w", err)
	}
	return out, nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// readers of the same record never lose increments.
func (r *PostgresRepository) IncrementViews(ctx context.Context, shortID string) (*Model, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE models SET views = views + 1 WHERE short_id = $1 RETURNING `+modelColumns,
		shortID,
	)
	out, err := scanModel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	return out, nil
}

// AddLikes adjusts the like counter by delta in a single UPDATE, clamped at
// zero, and returns the stored value after the adjustment.
func (r *PostgresRepository) AddLikes(ctx context.Context, shortID string, delta int64) (int64, error) {
	var likes int64
	err := r.db.QueryRow(ctx,
		`UPDATE models SET likes = GREATEST(0, likes + $2) WHERE short_id = $1 RETURNING likes`,
		shortID, delta,
	).Scan(&likes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("add likes: %w", err)
	}
	return likes, nil
}

// Delete removes a record and returns the removed row.
func (r *PostgresRepository) Delete(ctx context.Context, shortID string) (*Model, error) {
	row := r.db.QueryRow(ctx,
		`DELETE FROM models WHERE short_id = $1 RETURNING `+modelColumns, shortID)
	out, err := scanModel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete model: %w", err)
	}
	return out, nil
}

func scanModel(row pgx.Row) (*Model, error) {
	m := &Model{}
	err := row.Scan(&m.ID, &m.ShortID, &m.Name, &m.URL, &m.BgURL, &m.Info,
		&m.Views, &m.Likes, &m.Qty, &m.Sold, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
