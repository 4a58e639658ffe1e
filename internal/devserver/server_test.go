package devserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbweb/internal/testkit"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	root := t.TempDir()
	testkit.WriteProject(t, root)
	srv := &Server{Root: root, Quiet: true}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func assertIsolationHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	want := map[string]string{
		"Cross-Origin-Opener-Policy":   "same-origin",
		"Cross-Origin-Embedder-Policy": "require-corp",
		"Cache-Control":                "no-cache",
	}
	for key, value := range want {
		if got := resp.Header.Get(key); got != value {
			t.Fatalf("header %s = %q, want %q", key, got, value)
		}
	}
}

func TestServeInjectsIsolationHeaders(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts.URL+"/index.html")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	assertIsolationHeaders(t, resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("empty index.html body")
	}
}

func TestServeInjectsHeadersOnEveryResponse(t *testing.T) {
	ts := newTestServer(t)

	// в том числе на 404 — у движка нет другого сигнала об изоляции
	for _, path := range []string{"/src/main.js", "/does-not-exist.js", "/"} {
		resp := get(t, ts.URL+path)
		assertIsolationHeaders(t, resp)
	}
}

func TestServeHandlesHead(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Head(ts.URL + "/index.html")
	if err != nil {
		t.Fatalf("HEAD: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	assertIsolationHeaders(t, resp)
}
