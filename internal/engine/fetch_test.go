package engine

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func initTestEngine(t *testing.T) {
	t.Helper()
	Init(Config{FetchTimeout: 5 * time.Second})
}

func TestFetchPage(t *testing.T) {
	initTestEngine(t)

	t.Run("plain body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("User-Agent") == "" {
				t.Error("fetch sent no User-Agent")
			}
			w.Write([]byte("<html>page</html>"))
		}))
		defer srv.Close()

		body, err := FetchPage(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("FetchPage: %v", err)
		}
		if string(body) != "<html>page</html>" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("gzip body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			gz.Write([]byte("compressed content"))
			gz.Close()
		}))
		defer srv.Close()

		body, err := FetchPage(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("FetchPage: %v", err)
		}
		if string(body) != "compressed content" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("retries transient status", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		body, err := FetchPage(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("FetchPage: %v", err)
		}
		if string(body) != "recovered" {
			t.Errorf("body = %q", body)
		}
		if calls.Load() != 2 {
			t.Errorf("calls = %d, want 2", calls.Load())
		}
	})

	t.Run("permanent on 404", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		if _, err := FetchPage(context.Background(), srv.URL); err == nil {
			t.Fatal("expected an error for 404")
		}
		if calls.Load() != 1 {
			t.Errorf("calls = %d, 404 must not be retried", calls.Load())
		}
	})
}

func TestPostJSON(t *testing.T) {
	initTestEngine(t)

	t.Run("posts payload with headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s", r.Method)
			}
			if r.Header.Get("X-YouTube-Client-Name") != "1" {
				t.Errorf("client name header = %q", r.Header.Get("X-YouTube-Client-Name"))
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		body, err := PostJSON(context.Background(), srv.URL,
			map[string]string{"X-YouTube-Client-Name": "1"}, []byte(`{"continuation":"tok"}`))
		if err != nil {
			t.Fatalf("PostJSON: %v", err)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("denied"))
		}))
		defer srv.Close()

		_, err := PostJSON(context.Background(), srv.URL, nil, []byte(`{}`))
		if err == nil {
			t.Fatal("expected an error for 403")
		}
		if !strings.Contains(err.Error(), "403") {
			t.Errorf("error = %v, want status in message", err)
		}
	})
}
