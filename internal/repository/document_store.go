package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// Outcomes reported for document loads and writes.
const (
	OutcomeHit     = "hit"
	OutcomeSeeded  = "seeded"
	OutcomeCorrupt = "corrupt"
	OutcomeError   = "error"
	OutcomeOK      = "ok"
)

// ErrNoChange may be returned from an Update callback to skip the write.
var ErrNoChange = errors.New("document unchanged")

// Backend stores the encoded document under a single key.
type Backend interface {
	// Read returns the stored bytes; found is false when nothing was written yet.
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// StoreObserver receives timing for document store operations.
type StoreObserver interface {
	ObserveDocumentOp(op, outcome string, duration time.Duration)
}

// SeedFunc builds a fresh seed document.
type SeedFunc func() *models.Document

// DocumentStore loads and persists the whole institutional document. Every
// mutation runs load, mutate and persist under one lock.
type DocumentStore struct {
	backend  Backend
	seed     SeedFunc
	logger   *zap.Logger
	observer StoreObserver
	mu       sync.Mutex
}

// NewDocumentStore wires a store over backend. seed is required.
func NewDocumentStore(backend Backend, seed SeedFunc, logger *zap.Logger, observer StoreObserver) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentStore{backend: backend, seed: seed, logger: logger, observer: observer}
}

// Load returns the persisted document, falling back to the seed when nothing is
// stored, the stored bytes cannot be decoded, or the backend fails.
func (s *DocumentStore) Load(ctx context.Context) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, _ := s.load(ctx)
	return doc
}

// Persist writes doc as the whole stored document.
func (s *DocumentStore) Persist(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, doc)
}

// Reset clears the stored document and writes a fresh seed.
func (s *DocumentStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear document: %w", err)
	}
	if err := s.persist(ctx, s.seed()); err != nil {
		return err
	}
	s.logger.Info("document store reset to seed")
	return nil
}

// Update loads the document, applies fn and persists the result. Nothing is
// written when fn returns an error or the backend read fails; ErrNoChange is
// swallowed. Missing and corrupt documents are replaced by the seed.
func (s *DocumentStore) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if err := fn(doc); err != nil {
		if errors.Is(err, ErrNoChange) {
			return nil
		}
		return err
	}
	return s.persist(ctx, doc)
}

// View loads the document and hands it to fn without persisting.
func (s *DocumentStore) View(ctx context.Context, fn func(doc *models.Document)) {
	s.mu.Lock()
	doc, _ := s.load(ctx)
	s.mu.Unlock()
	fn(doc)
}

// load always returns a usable document. The error is set only when the
// backend read failed, so writers can refuse to persist over data they never saw.
func (s *DocumentStore) load(ctx context.Context) (*models.Document, error) {
	start := time.Now()

	raw, found, err := s.backend.Read(ctx)
	switch {
	case err != nil:
		s.logger.Warn("read document failed, using seed", zap.Error(err))
		s.observe("load", OutcomeError, start)
		return s.seed(), err
	case !found:
		s.observe("load", OutcomeSeeded, start)
		return s.seed(), nil
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		s.logger.Warn("stored document unreadable, using seed", zap.Error(err))
		s.observe("load", OutcomeCorrupt, start)
		return s.seed(), nil
	}

	s.observe("load", OutcomeHit, start)
	return doc, nil
}

func (s *DocumentStore) persist(ctx context.Context, doc *models.Document) error {
	start := time.Now()

	doc.SchemaVersion = models.SchemaVersion
	raw, err := json.Marshal(doc)
	if err != nil {
		s.observe("persist", OutcomeError, start)
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.backend.Write(ctx, raw); err != nil {
		s.observe("persist", OutcomeError, start)
		return fmt.Errorf("write document: %w", err)
	}

	s.observe("persist", OutcomeOK, start)
	return nil
}

func (s *DocumentStore) observe(op, outcome string, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveDocumentOp(op, outcome, time.Since(start))
}

func decodeDocument(raw []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.SchemaVersion != models.SchemaVersion {
		return nil, fmt.Errorf("schema version %d, want %d", doc.SchemaVersion, models.SchemaVersion)
	}
	return &doc, nil
}
