// Package web hosts the site HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rjreducation/vsdcentre/internal/contact"
	"github.com/rjreducation/vsdcentre/internal/contact/storage/sqlite"
	"github.com/rjreducation/vsdcentre/internal/platform/timeouts"
	"github.com/rjreducation/vsdcentre/internal/web/app"
	"github.com/rjreducation/vsdcentre/internal/web/i18nhttp"
	module "github.com/rjreducation/vsdcentre/internal/web/module"
	"github.com/rjreducation/vsdcentre/internal/web/modules/contactapi"
	"github.com/rjreducation/vsdcentre/internal/web/modules/site"
	"github.com/rjreducation/vsdcentre/internal/web/platform/httpx"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// Server hosts the site HTTP server and its SQLite-backed contact store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	dbPath := strings.TrimSpace(config.DBPath)
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open contact store: %w", err)
	}

	service, err := contact.NewService(store)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build contact service: %w", err)
	}

	root, err := app.Compose(app.ComposeInput{Modules: []module.Module{
		site.New(service),
		contactapi.New(service),
	}})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	handler := httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		i18nhttp.Middleware(),
	)

	return &Server{
		httpAddr: httpAddr,
		store:    store,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Handler returns the composed root handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.store.Close()
}
