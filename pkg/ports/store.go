package ports

import (
	"context"

	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// DocumentStore defines the interface for persisting documents.
// Implementations must be safe for concurrent use.
type DocumentStore interface {
	// Get retrieves a document by ID.
	// Returns domain.ErrDocumentNotFound if the ID does not exist.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Put creates or replaces a document under its ID.
	Put(ctx context.Context, doc domain.Document) error

	// Delete removes the document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all documents, sorted by ID for deterministic output.
	List(ctx context.Context) ([]domain.Document, error)
}
