// Package memory provides an in-memory ports.DocumentStore, used for tests
// and ephemeral sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Document),
	}
}

// Get retrieves a document by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}

	// Copy the envelope so callers can't swap the stored payload by pointer.
	ret := doc
	return &ret, nil
}

// Put creates or replaces a document.
func (s *Store) Put(ctx context.Context, doc domain.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[doc.ID] = doc
	return nil
}

// Delete removes the document. Missing IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns all documents sorted by ID.
func (s *Store) List(ctx context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, len(s.data))
	for _, doc := range s.data {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
