// Package contactapi exposes the JSON contact submission endpoints.
package contactapi

import (
	"context"
	"net/http"

	"github.com/rjreducation/vsdcentre/internal/contact"
	"github.com/rjreducation/vsdcentre/internal/contact/storage"
	module "github.com/rjreducation/vsdcentre/internal/web/module"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
)

// ContactService validates, persists and lists contact submissions.
type ContactService interface {
	Submit(ctx context.Context, input contact.Input) (storage.Submission, error)
	List(ctx context.Context) ([]storage.Submission, error)
}

// Module provides the /api/contact JSON routes.
type Module struct {
	service ContactService
}

// New returns a contact API module backed by the contact service.
func New(service ContactService) Module {
	return Module{service: service}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "contactapi"
}

// Mount wires the JSON endpoints under the API prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.service)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIContact, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIContactPrefix+"{$}", h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIContact, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIContactPrefix+"{$}", h.handleList)
	return module.Mount{Prefix: routepath.APIContactPrefix, Handler: mux}, nil
}
