// Package transport is the single point of outbound HTTP traffic for the
// SDK. It owns the base address, the request timeout, bearer-token
// attachment, and the one global policy the client has: any 401, from any
// endpoint, tears down the local session.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/metrics"
)

const (
	// DefaultTimeout bounds every request; a call past it fails as a
	// timeout instead of hanging.
	DefaultTimeout = 10 * time.Second

	contentTypeJSON = "application/json"

	// maxErrorBody caps how much of an error response is read when looking
	// for the {"error": ...} envelope.
	maxErrorBody = 64 << 10
)

// TokenReader supplies the current bearer token. An empty string means
// anonymous, which is not an error: login and register go out bare.
type TokenReader interface {
	Token() string
}

// Transport issues JSON requests against a fixed base address.
type Transport struct {
	base   *url.URL
	client *http.Client
	tokens TokenReader
	log    zerolog.Logger

	mu             sync.Mutex
	onUnauthorized []func()
}

// New builds a Transport. All configuration is fixed at construction; a zero
// timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, tokens TokenReader, log zerolog.Logger) (*Transport, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q missing scheme or host", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transport{
		base:   base,
		client: &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}, nil
}

// OnUnauthorized registers fn to run whenever any response comes back 401.
// The session manager subscribes here; tests inject fakes.
func (t *Transport) OnUnauthorized(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUnauthorized = append(t.onUnauthorized, fn)
}

// Do issues one request and decodes the 2xx body into out (skipped when out
// is nil). body, when non-nil, is JSON-encoded. query, when non-nil, is
// appended to the path. Errors follow the package taxonomy; nothing is
// retried.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *t.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if token := t.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		reqErr := &RequestError{Timeout: isTimeout(err), Err: err}
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeTransportError).Inc()
		t.log.Warn().Err(err).Str("method", method).Str("path", path).Bool("timeout", reqErr.Timeout).Msg("request failed")
		return reqErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return t.handleErrorResponse(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeOK).Inc()
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeDecodeError).Inc()
		return &DecodeError{Entity: "response", Err: err}
	}
	metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeOK).Inc()
	return nil
}

// handleErrorResponse maps a non-2xx response to an APIError and applies the
// global unauthorized policy before returning.
func (t *Transport) handleErrorResponse(method, path string, resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeUnauthorized).Inc()
		metrics.SessionInvalidationsTotal.Inc()
		t.log.Info().Str("method", method).Str("path", path).Msg("unauthorized response, invalidating session")
		t.notifyUnauthorized()
	case resp.StatusCode >= 500:
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeServerError).Inc()
		t.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("server error")
	default:
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeClientError).Inc()
		t.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("message", apiErr.Message).Msg("request rejected")
	}

	return apiErr
}

func (t *Transport) notifyUnauthorized() {
	t.mu.Lock()
	subs := append(([]func())(nil), t.onUnauthorized...)
	t.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// errorMessage extracts the canonical {"error": "..."} envelope, returning ""
// when the body is empty or in some other shape.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &envelope) != nil {
		return ""
	}
	return envelope.Error
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
