package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestTransport(t *testing.T, baseURL, token string, timeout time.Duration) *Transport {
	t.Helper()
	tr, err := New(baseURL, timeout, staticToken(token), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "tok-123", 0)
	var out struct {
		OK bool `json:"ok"`
	}
	if err := tr.Do(context.Background(), http.MethodGet, "/ping", nil, nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if !out.OK {
		t.Fatal("body not decoded")
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "", 0)
	if err := tr.Do(context.Background(), http.MethodPost, "/auth/login", nil, map[string]string{"username": "a"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if sawHeader {
		t.Fatal("anonymous request must not carry an Authorization header")
	}
}

func TestDo_UnauthorizedNotifiesAndPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "stale", 0)
	var fired atomic.Int32
	tr.OnUnauthorized(func() { fired.Add(1) })

	err := tr.Do(context.Background(), http.MethodGet, "/api/v1/profile", nil, nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if got := fired.Load(); got != 1 {
		t.Fatalf("unauthorized subscriber fired %d times, want 1", got)
	}

	// The original failure still reaches the caller with the server message.
	ae := err.(*APIError)
	if ae.Message != "invalid token" {
		t.Fatalf("Message = %q", ae.Message)
	}
}

func TestDo_ValidationAndServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"title is required"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "", 0)

	err := tr.Do(context.Background(), http.MethodPost, "/bad", nil, nil, nil)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if msg := err.(*APIError).Message; msg != "title is required" {
		t.Fatalf("server message lost: %q", msg)
	}

	err = tr.Do(context.Background(), http.MethodGet, "/boom", nil, nil, nil)
	if !IsServer(err) {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "", 20*time.Millisecond)
	err := tr.Do(context.Background(), http.MethodGet, "/slow", nil, nil, nil)
	if !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if !IsUnavailable(err) {
		t.Fatal("timeout must classify as unavailable")
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	tr := newTestTransport(t, "http://127.0.0.1:1", "", 500*time.Millisecond)
	err := tr.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	if !IsUnavailable(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if IsUnauthorized(err) || IsServer(err) {
		t.Fatal("transport failure must not classify as HTTP error")
	}
}

func TestDo_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "not-a-number"`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, "", 0)
	var out struct {
		ID int64 `json:"id"`
	}
	err := tr.Do(context.Background(), http.MethodGet, "/x", nil, nil, &out)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	if _, err := New("localhost:8080", 0, staticToken(""), zerolog.Nop()); err == nil {
		t.Fatal("expected error for base url without scheme")
	}
}
