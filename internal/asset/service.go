package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/showcase3d/service/internal/shortid"
	"github.com/showcase3d/service/internal/storage"
)

// ErrModelFileRequired is returned when an ingest is attempted without a model file.
var ErrModelFileRequired = errors.New("model file is required")

// ErrUpload is returned when the object-storage provider rejects an upload.
// The ingest is aborted whole; no record is created with a missing model URL.
var ErrUpload = errors.New("upload failed")

// ErrNegativeValue is returned when an edit tries to set qty or sold below zero.
var ErrNegativeValue = errors.New("qty and sold must be non-negative")

// insertAttempts bounds the short-ID regeneration loop on insert conflicts.
// Collisions are astronomically rare; the loop is a safety margin, not the
// primary defense.
const insertAttempts = 3

// defaultQty is the initial supply for a record when the upload omits one.
const defaultQty = 100

// FileUpload is one incoming multipart file.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// IngestInput carries everything needed to create a record from an upload.
// ModelFile is required; everything else is optional.
type IngestInput struct {
	ModelFile *FileUpload
	BgFile    *FileUpload
	Name      string
	Qty       *int64
	Sold      *int64
	Info      Info
}

// Service contains business logic for model records: ingestion, counters,
// edits, and deletion.
type Service struct {
	repo          Repository
	store         storage.Storage
	publicBaseURL string
}

// NewService creates a model Service.
func NewService(repo Repository, store storage.Storage, publicBaseURL string) *Service {
	return &Service{
		repo:          repo,
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Ingest uploads the files to object storage, creates exactly one record, and
// returns it together with the public share link. Uploads happen before any
// store mutation, so a storage failure leaves no partial record behind.
func (s *Service) Ingest(ctx context.Context, in IngestInput) (*Model, string, error) {
	if in.ModelFile == nil {
		return nil, "", ErrModelFileRequired
	}

	modelURL, err := s.uploadFile(ctx, storage.ModelFolder, in.ModelFile)
	if err != nil {
		return nil, "", err
	}

	bgURL := ""
	if in.BgFile != nil {
		bgURL, err = s.uploadFile(ctx, storage.BackgroundFolder, in.BgFile)
		if err != nil {
			return nil, "", err
		}
	}

	name := in.Name
	if name == "" {
		name = in.ModelFile.Filename
	}
	qty := int64(defaultQty)
	if in.Qty != nil {
		qty = *in.Qty
	}
	sold := int64(0)
	if in.Sold != nil {
		sold = *in.Sold
	}
	if qty < 0 || sold < 0 {
		return nil, "", ErrNegativeValue
	}

	record := &Model{
		Name:  name,
		URL:   modelURL,
		BgURL: bgURL,
		Info:  in.Info,
		Qty:   qty,
		Sold:  sold,
	}

	var created *Model
	for attempt := 0; attempt < insertAttempts; attempt++ {
		id, err := shortid.New()
		if err != nil {
			return nil, "", fmt.Errorf("generate short id: %w", err)
		}
		record.ShortID = id

		created, err = s.repo.Insert(ctx, record)
		if errors.Is(err, ErrConflict) {
			log.Printf("asset: short id collision on %q, retrying", id)
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return created, s.ViewLink(created.ShortID), nil
	}
	return nil, "", ErrConflict
}

// ViewLink builds the public share link for a short ID.
func (s *Service) ViewLink(shortID string) string {
	return s.publicBaseURL + "/view/" + shortID
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]*Model, error) {
	return s.repo.List(ctx)
}

// View fetches a record by short ID and counts the view. The fetch and the
// increment are one atomic store operation, so every successful read is
// reflected in the counter.
func (s *Service) View(ctx context.Context, shortID string) (*Model, error) {
	return s.repo.IncrementViews(ctx, shortID)
}

// Like adjusts the like counter by change and returns the new value. Anything
// other than an explicit -1 counts as a like; the stored value never drops
// below zero.
func (s *Service) Like(ctx context.Context, shortID string, change int64) (int64, error) {
	if change != 1 && change != -1 {
		change = 1
	}
	return s.repo.AddLikes(ctx, shortID, change)
}

// Update applies a partial edit and returns the updated record.
func (s *Service) Update(ctx context.Context, shortID string, p UpdateParams) (*Model, error) {
	if p.Qty != nil && *p.Qty < 0 {
		return nil, ErrNegativeValue
	}
	if p.Sold != nil && *p.Sold < 0 {
		return nil, ErrNegativeValue
	}
	return s.repo.UpdateFields(ctx, shortID, p)
}

// Delete removes a record and, best effort, the stored files behind it.
// Failure to delete the file bytes is logged and otherwise ignored: the
// record is gone either way, and orphaned objects are an accepted gap.
func (s *Service) Delete(ctx context.Context, shortID string) error {
	removed, err := s.repo.Delete(ctx, shortID)
	if err != nil {
		return err
	}

	for _, u := range []string{removed.URL, removed.BgURL} {
		if u == "" {
			continue
		}
		key, ok := s.store.KeyFromURL(u)
		if !ok {
			continue
		}
		if err := s.store.Delete(ctx, key); err != nil {
			log.Printf("asset: best-effort object delete failed for %q: %v", key, err)
		}
	}
	return nil
}

func (s *Service) uploadFile(ctx context.Context, folder string, f *FileUpload) (string, error) {
	key := storage.ObjectKey(folder, f.Filename)
	if err := s.store.Upload(ctx, key, f.Reader, f.Size, f.ContentType); err != nil {
		log.Printf("asset: upload of %q failed: %v", key, err)
		return "", ErrUpload
	}
	return s.store.PublicURL(key), nil
}
