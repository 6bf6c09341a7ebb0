package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/rjreducation/vsdcentre/internal/web/module"
)

type stubModule struct {
	id      string
	prefix  string
	handler http.Handler
	err     error
}

func (m stubModule) ID() string {
	return m.id
}

func (m stubModule) Mount() (module.Mount, error) {
	if m.err != nil {
		return module.Mount{}, m.err
	}
	handler := m.handler
	if handler == nil {
		handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	}
	return module.Mount{Prefix: m.prefix, Handler: handler}, nil
}

func TestComposeMountsModules(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "site", prefix: "/"},
		stubModule{id: "api", prefix: "/api/contact/"},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestComposeServesSlashlessAlias(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "api", prefix: "/api/contact/"},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, slashless alias not mounted", rec.Code)
	}
}

func TestComposeRejectsDuplicatePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "first", prefix: "/api/contact/"},
		stubModule{id: "second", prefix: "/api/contact/"},
	}})
	if err == nil {
		t.Fatal("expected duplicate prefix error")
	}
	if !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("error = %v", err)
	}
}

func TestComposeRejectsInvalidPrefix(t *testing.T) {
	t.Parallel()

	tests := []string{"", "api/", "/api"}
	for _, prefix := range tests {
		if _, err := Compose(ComposeInput{Modules: []module.Module{
			stubModule{id: "bad", prefix: prefix},
		}}); err == nil {
			t.Fatalf("expected error for prefix %q", prefix)
		}
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected error for nil module")
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "broken", prefix: "/", err: fmt.Errorf("boom")},
	}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error = %v", err)
	}
}
