package memory_test

import (
	"context"
	"testing"

	"github.com/NeoVand/WhyBecause/pkg/adapters/memory"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports/storetest"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Contract(t *testing.T) {
	storetest.Run(t, memory.NewStore())
}

func TestMemoryStore_RejectsInvalidDocuments(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.Put(ctx, domain.Document{Type: domain.DocTypeFlow})
	assert.Error(t, err, "missing id should be rejected")

	err = store.Put(ctx, domain.Document{ID: "x", Type: "Widget"})
	assert.Error(t, err, "unknown type tag should be rejected")
}
