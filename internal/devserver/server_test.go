package devserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renderkit-go/renderkit/internal/snapshot"
)

func TestPostTraceIgnoresClientSuppliedID(t *testing.T) {
	store, err := snapshot.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	server := NewServer(store)

	req := httptest.NewRequest(http.MethodPost, "/traces", strings.NewReader(`{"id":"../../../tmp/evil","mutations":[]}`))
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "evil") {
		t.Fatalf("server echoed the client-supplied id back: %s", rec.Body.String())
	}
}

func TestGetTraceRejectsPathTraversalID(t *testing.T) {
	store, err := snapshot.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	server := NewServer(store)

	req := httptest.NewRequest(http.MethodGet, "/traces/..", nil)
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest && rec.Code != http.StatusNotFound {
		t.Fatalf("expected the traversal id to be rejected, got status %d", rec.Code)
	}
}

func TestHealthzReportsOK(t *testing.T) {
	store, err := snapshot.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	server := NewServer(store)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
}
