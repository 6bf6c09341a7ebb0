package site

import (
	"context"
	"errors"

	"github.com/rjreducation/vsdcentre/internal/contact"
)

// SubmitOutcome is the discriminated result of a contact form submission.
type SubmitOutcome struct {
	SubmissionID string
	Invalid      bool
	InvalidField string
	Failed       bool
}

// ContactGateway submits contact form input for validation and persistence.
type ContactGateway interface {
	SubmitContact(ctx context.Context, input contact.Input) SubmitOutcome
}

type serviceGateway struct {
	service *contact.Service
}

// NewServiceGateway adapts the contact service to the form gateway contract.
func NewServiceGateway(service *contact.Service) ContactGateway {
	return serviceGateway{service: service}
}

func (g serviceGateway) SubmitContact(ctx context.Context, input contact.Input) SubmitOutcome {
	if g.service == nil {
		return SubmitOutcome{Failed: true}
	}
	record, err := g.service.Submit(ctx, input)
	if err != nil {
		var validationErr *contact.ValidationError
		if errors.As(err, &validationErr) {
			return SubmitOutcome{Invalid: true, InvalidField: validationErr.Field}
		}
		return SubmitOutcome{Failed: true}
	}
	return SubmitOutcome{SubmissionID: record.ID}
}
