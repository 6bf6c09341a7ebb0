// Package site serves the public marketing pages and the contact form flow.
package site

import (
	"net/http"

	"github.com/rjreducation/vsdcentre/internal/contact"
	module "github.com/rjreducation/vsdcentre/internal/web/module"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
)

// Module provides the public site routes.
type Module struct {
	gateway ContactGateway
}

// New returns a site module backed by the contact service.
func New(service *contact.Service) Module {
	return NewWithGateway(NewServiceGateway(service))
}

// NewWithGateway returns a site module with an explicit contact gateway.
func NewWithGateway(gateway ContactGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "site"
}

// Mount wires the public pages under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.gateway))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
