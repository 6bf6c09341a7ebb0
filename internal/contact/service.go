package contact

import (
	"context"
	"fmt"

	"github.com/rjreducation/vsdcentre/internal/contact/storage"
)

// Service validates and persists contact submissions through a Store.
type Service struct {
	store storage.Store
}

// NewService returns a Service backed by the provided store.
func NewService(store storage.Store) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	return &Service{store: store}, nil
}

// Submit validates input and persists it. A *ValidationError is returned for
// schema violations; any other error means the store failed.
func (s *Service) Submit(ctx context.Context, input Input) (storage.Submission, error) {
	validated, err := Validate(input)
	if err != nil {
		return storage.Submission{}, err
	}
	record, err := s.store.CreateContactSubmission(ctx, storage.NewSubmissionInput{
		Name:    validated.Name,
		Email:   validated.Email,
		Phone:   validated.Phone,
		Message: validated.Message,
	})
	if err != nil {
		return storage.Submission{}, fmt.Errorf("create contact submission: %w", err)
	}
	return record, nil
}

// List returns all persisted submissions. The result is never nil so callers
// can serialize it as an array directly.
func (s *Service) List(ctx context.Context) ([]storage.Submission, error) {
	records, err := s.store.ListContactSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	if records == nil {
		records = []storage.Submission{}
	}
	return records, nil
}
