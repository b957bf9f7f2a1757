package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	resp, err := exec.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(strings.Repeat("a", 300)))
	}))
	defer srv.Close()

	exec := NewExecutor(WithMaxBodyBytes(256))

	res, err := exec.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Status != 200 {
		t.Fatalf("expected 200, got=%d", res.Status)
	}
	if !res.Truncated {
		t.Fatalf("expected truncated=true")
	}
	if len(res.BodyBytes) != 256 {
		t.Fatalf("expected body len=256, got=%d", len(res.BodyBytes))
	}
	if res.Headers.Get("X-Test") != "1" {
		t.Fatalf("expected header X-Test=1")
	}
}

func TestClientSetsUserAgentAndAccept(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.UserAgent = "railinfo-test"
	exec := NewExecutor(WithClient(New(cfg)))

	if _, err := exec.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotUA != "railinfo-test" {
		t.Fatalf("expected user agent railinfo-test, got %q", gotUA)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
}
