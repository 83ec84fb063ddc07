package history

import "context"

// Service wraps the repo behind the interface the handlers consume.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save upserts a record. Callers on the generation path treat a failure here
// as non-fatal; the error is returned so the boundary can log it.
func (s *Service) Save(ctx context.Context, record Record) error {
	return s.Repo.Upsert(ctx, record)
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListRecent returns records ordered newest-first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	return s.Repo.ListRecent(ctx, limit)
}
