package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChainAppliesDeclarationOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Join(order, ",") != "outer,inner,handler" {
		t.Fatalf("order = %v", order)
	}
}

func TestChainSkipsNilMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}), nil)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatal("handler was not invoked")
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("request id missing on inbound request")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id missing on response")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "provided-id")
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "provided-id" {
		t.Fatalf("request id = %q, want echoed id", rec.Header().Get("X-Request-ID"))
	}
}

func TestRecoverPanicWrites500(t *testing.T) {
	t.Parallel()

	handler := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if err := WriteJSON(rec, http.StatusCreated, map[string]any{"ok": true}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("payload = %v", payload)
	}
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if err := WriteHTML(rec, http.StatusOK, "<p>hello</p>"); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if rec.Body.String() != "<p>hello</p>" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}
