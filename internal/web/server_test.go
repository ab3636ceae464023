package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/open-pam/console/internal/config"
	"github.com/open-pam/console/internal/metrics"
)

func writeBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>console</html>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return dir
}

func TestResolveStaticPath(t *testing.T) {
	dir := writeBundle(t)
	index := filepath.Join(dir, "index.html")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "root", path: "/", want: index},
		{name: "existing asset", path: "/assets/app.js", want: filepath.Join(dir, "assets", "app.js")},
		{name: "spa route", path: "/users/42", want: index},
		{name: "directory", path: "/assets", want: index},
		{name: "traversal", path: "/../../etc/passwd", want: index},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveStaticPath(dir, tc.path); got != tc.want {
				t.Fatalf("resolveStaticPath(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestServer_SPAFallback(t *testing.T) {
	dir := writeBundle(t)
	es := NewEchoServer(config.Config{StaticDir: dir})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/sessions", nil)
	rec := httptest.NewRecorder()
	es.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "console") {
		t.Fatalf("body = %q, want index.html content", rec.Body.String())
	}
}

func TestServer_Healthz(t *testing.T) {
	es := NewEchoServer(config.Config{StaticDir: t.TempDir()})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/healthz", nil)
	rec := httptest.NewRecorder()
	es.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestStatusRecorder_CapturesWriteHeader(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)
	if rec.status != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.status, http.StatusTeapot)
	}
}

func TestStatusRecorder_DefaultsTo200(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	if _, err := rec.Write([]byte("ok")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if rec.status != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.status, http.StatusOK)
	}
}

func TestCountRequests_ObservesFinalStatus(t *testing.T) {
	counter := metrics.StaticRequestsTotal.WithLabelValues("418")
	before := testutil.ToFloat64(counter)

	h := countRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/teapot", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("static_requests_total{code=418} = %v, want %v", got, before+1)
	}
}

func TestShutdown_WithoutStartIsNoop(t *testing.T) {
	es := NewEchoServer(config.Config{StaticDir: t.TempDir()})
	if err := es.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
