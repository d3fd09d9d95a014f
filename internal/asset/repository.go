package asset

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for a given short ID.
var ErrNotFound = errors.New("model not found")

// ErrConflict is returned when an insert collides with an existing short ID.
var ErrConflict = errors.New("short id already exists")

// UpdateParams carries a partial update. Nil pointers mean "leave untouched";
// a non-nil pointer applies the value even when it is the zero value, except
// Name, where an explicit empty string is ignored (a record always keeps a
// display name).
type UpdateParams struct {
	Name *string
	Qty  *int64
	Sold *int64
	Info *Info
}

// Repository is the persistence contract for model records. Counter methods
// are atomic read-modify-writes: concurrent callers against the same record
// must all be reflected in the stored value.
type Repository interface {
	// Insert persists a new record and returns it with its assigned identity
	// and timestamp. Returns ErrConflict if the short ID is already taken.
	Insert(ctx context.Context, m *Model) (*Model, error)
	// GetByShortID returns a record without touching any counters.
	GetByShortID(ctx context.Context, shortID string) (*Model, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]*Model, error)
	// UpdateFields applies a partial update and returns the updated record.
	UpdateFields(ctx context.Context, shortID string, p UpdateParams) (*Model, error)
	// IncrementViews atomically bumps the view counter and returns the record
	// as of after the increment.
	IncrementViews(ctx context.Context, shortID string) (*Model, error)
	// AddLikes atomically adjusts the like counter by delta, clamped at a
	// floor of zero, and returns the new value.
	AddLikes(ctx context.Context, shortID string, delta int64) (int64, error)
	// Delete removes a record and returns it, so callers can clean up
	// externally stored files.
	Delete(ctx context.Context, shortID string) (*Model, error)
}
