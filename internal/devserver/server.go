// Package devserver serves the project root as static files with the
// cross-origin isolation headers the compute engine needs. Without COOP
// and COEP the browser withholds SharedArrayBuffer and the engine fails
// to initialize silently, so the header injection is correctness-critical,
// not cosmetic.
package devserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// IsolationHeaders are set on every response before the body is written.
var IsolationHeaders = map[string]string{
	"Cross-Origin-Opener-Policy":   "same-origin",
	"Cross-Origin-Embedder-Policy": "require-corp",
	"Cache-Control":                "no-cache",
}

// Server serves one project root over HTTP.
type Server struct {
	Root string
	Port int
	// Quiet suppresses per-request logging.
	Quiet bool
}

// Handler returns the static file handler with isolation headers applied.
// Header injection is stateless, so concurrent requests each get an
// independent injection path.
func (s *Server) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.Root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for key, value := range IsolationHeaders {
			w.Header().Set(key, value)
		}
		if !s.Quiet {
			_, _ = fmt.Fprintf(os.Stdout, "[serve] %s %s\n", r.Method, r.URL.Path)
		}
		files.ServeHTTP(w, r)
	})
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
