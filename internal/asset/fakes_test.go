package asset

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"
)

// memRepo is an in-memory Repository with the same atomicity and clamping
// semantics as the Postgres implementation. All methods take the lock for the
// whole read-modify-write, so concurrent counter updates are never lost.
type memRepo struct {
	mu          sync.Mutex
	records     map[string]*Model
	nextID      int64
	insertCalls int

	// failInserts makes the next N inserts fail with ErrConflict.
	failInserts int
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string]*Model{}}
}

func (r *memRepo) Insert(_ context.Context, m *Model) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertCalls++
	if r.failInserts > 0 {
		r.failInserts--
		return nil, ErrConflict
	}
	if _, exists := r.records[m.ShortID]; exists {
		return nil, ErrConflict
	}

	r.nextID++
	stored := *m
	stored.ID = r.nextID
	stored.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(r.nextID) * time.Second)
	r.records[m.ShortID] = &stored

	out := stored
	return &out, nil
}

func (r *memRepo) GetByShortID(_ context.Context, shortID string) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[shortID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *m
	return &out, nil
}

func (r *memRepo) List(_ context.Context) ([]*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	models := make([]*Model, 0, len(r.records))
	for _, m := range r.records {
		out := *m
		models = append(models, &out)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID > models[j].ID })
	return models, nil
}

func (r *memRepo) UpdateFields(_ context.Context, shortID string, p UpdateParams) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[shortID]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Name != nil && *p.Name != "" {
		m.Name = *p.Name
	}
	if p.Qty != nil {
		m.Qty = *p.Qty
	}
	if p.Sold != nil {
		m.Sold = *p.Sold
	}
	if p.Info != nil {
		m.Info = *p.Info
	}
	out := *m
	return &out, nil
}

func (r *memRepo) IncrementViews(_ context.Context, shortID string) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[shortID]
	if !ok {
		return nil, ErrNotFound
	}
	m.Views++
	out := *m
	return &out, nil
}

func (r *memRepo) AddLikes(_ context.Context, shortID string, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[shortID]
	if !ok {
		return 0, ErrNotFound
	}
	m.Likes += delta
	if m.Likes < 0 {
		m.Likes = 0
	}
	return m.Likes, nil
}

func (r *memRepo) Delete(_ context.Context, shortID string) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[shortID]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.records, shortID)
	out := *m
	return &out, nil
}

const fakeStorageBase = "https://cdn.test/models"

// fakeStore records uploads and deletions instead of talking to MinIO.
type fakeStore struct {
	mu       sync.Mutex
	uploads  []string
	deletes  []string
	failNext bool
}

func (s *fakeStore) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return errors.New("storage unavailable")
	}
	s.uploads = append(s.uploads, key)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes = append(s.deletes, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return fakeStorageBase + "/" + key
}

func (s *fakeStore) KeyFromURL(url string) (string, bool) {
	const prefix = fakeStorageBase + "/"
	if len(url) <= len(prefix) || url[:len(prefix)] != prefix {
		return "", false
	}
	return url[len(prefix):], true
}

func (s *fakeStore) uploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}
