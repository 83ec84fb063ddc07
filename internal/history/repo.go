package history

import "context"

// Repo persists generation records.
type Repo interface {
	// Upsert inserts or replaces a record keyed by ID.
	Upsert(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// ListRecent returns records ordered newest-first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
