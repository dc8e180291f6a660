// Package store persists finished layouts for the HTTP API.
//
// [MemoryStore] keeps layouts in process memory; [MongoStore] keeps them in
// a MongoDB collection. Both assign a UUID to layouts saved without an ID
// and report missing IDs with [errors.ErrCodeNotFound].
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cloud"
)

// Store persists layouts. Implementations are safe for concurrent use.
type Store interface {
	// Save inserts or replaces l and returns its ID.
	Save(ctx context.Context, l cloud.Layout) (string, error)
	// Get returns the layout with the given ID.
	Get(ctx context.Context, id string) (cloud.Layout, error)
	// List returns up to limit layouts, oldest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]cloud.Layout, error)
	// Delete removes the layout with the given ID.
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// prepare fills in the ID and creation time of a layout about to be saved.
// Times are truncated to milliseconds, the resolution MongoDB stores.
func prepare(l cloud.Layout) cloud.Layout {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	return l
}
