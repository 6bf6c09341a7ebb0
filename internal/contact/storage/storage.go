// Package storage defines the persistence contract for contact submissions.
package storage

import (
	"context"
	"time"
)

// Submission is one persisted contact-form record. Records are immutable
// once created; there is no update or delete operation.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSubmissionInput carries the validated fields for a create call.
type NewSubmissionInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Store persists contact submissions. Created records must be visible to
// subsequent List calls.
type Store interface {
	// CreateContactSubmission assigns an identifier, persists the record and
	// returns it in full.
	CreateContactSubmission(ctx context.Context, input NewSubmissionInput) (Submission, error)
	// ListContactSubmissions returns all persisted submissions, newest first.
	ListContactSubmissions(ctx context.Context) ([]Submission, error)
}
