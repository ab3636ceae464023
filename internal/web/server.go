// Package web hosts the built console bundle in production: static
// files with every unknown route falling back to index.html, which the
// client-side router owns.
package web

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/open-pam/console/internal/config"
	"github.com/open-pam/console/internal/metrics"
)

// EchoServer is the HTTP server wrapper for serve mode.
type EchoServer struct {
	e         *echo.Echo
	staticDir string
	srv       *http.Server
}

// NewEchoServer creates the static console host.
func NewEchoServer(cfg config.Config) *EchoServer {
	es := &EchoServer{e: echo.New(), staticDir: cfg.StaticDir}
	es.registerRoutes()
	return es
}

func (es *EchoServer) registerRoutes() {
	es.e.GET("/healthz", es.handleHealthz)
	es.e.GET("/*", es.handleStatic)
}

// Handler wraps the echo router with the request counter. echo sits
// below plain net/http here so the counter sees the final status code.
func (es *EchoServer) Handler() http.Handler {
	return countRequests(es.e)
}

func (es *EchoServer) handleHealthz(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatic serves the requested bundle file when it exists and
// falls back to index.html for anything else, so deep links into the
// single-page app survive a reload.
func (es *EchoServer) handleStatic(c *echo.Context) error {
	requested := resolveStaticPath(es.staticDir, c.Request().URL.Path)
	http.ServeFile(c.Response(), c.Request(), requested)
	return nil
}

// resolveStaticPath maps a URL path onto the bundle directory,
// rejecting traversal and directing misses to index.html.
func resolveStaticPath(staticDir, urlPath string) string {
	index := filepath.Join(staticDir, "index.html")

	cleaned := filepath.Clean("/" + strings.TrimSpace(urlPath))
	if cleaned == "/" {
		return index
	}
	candidate := filepath.Join(staticDir, cleaned)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return index
	}
	return candidate
}

// statusRecorder remembers the status code written to a response. A
// handler that never calls WriteHeader implies 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.StaticRequestsTotal.WithLabelValues(strconv.Itoa(rec.status)).Inc()
	})
}

// StartServer installs the wrapped handler on the given http.Server
// and blocks in ListenAndServe until the server stops.
func (es *EchoServer) StartServer(server *http.Server) error {
	server.Handler = es.Handler()
	es.srv = server
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down a server previously started with
// StartServer.
func (es *EchoServer) Shutdown(ctx context.Context) error {
	if es.srv == nil {
		return nil
	}
	return es.srv.Shutdown(ctx)
}
