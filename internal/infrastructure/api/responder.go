package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
)

// Responder-side operations: profile, request search, shortlist, matches.
// Routes live under /api/v1/csr and require the responder role server-side.

func (c *Client) CreateResponderProfile(ctx context.Context, in ports.ResponderProfileInput) (*domain.ResponderProfile, error) {
	return c.responderProfile(ctx, http.MethodPost, in)
}

func (c *Client) UpdateResponderProfile(ctx context.Context, in ports.ResponderProfileInput) (*domain.ResponderProfile, error) {
	return c.responderProfile(ctx, http.MethodPut, in)
}

func (c *Client) responderProfile(ctx context.Context, method string, in ports.ResponderProfileInput) (*domain.ResponderProfile, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var profile domain.ResponderProfile
	if err := c.t.Do(ctx, method, "/api/v1/csr/profile", nil, in, &profile); err != nil {
		return nil, err
	}
	if err := checkWire("responder profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetResponderProfile(ctx context.Context) (*domain.ResponderProfile, error) {
	var profile domain.ResponderProfile
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/csr/profile", nil, nil, &profile); err != nil {
		return nil, err
	}
	if err := checkWire("responder profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchRequests traverses the open request pool. Responses arrive with
// category and owner pre-joined; no secondary fetches happen here.
func (c *Client) SearchRequests(ctx context.Context, f ports.RequestFilter) (*ports.Page[domain.Request], error) {
	return decodePage[domain.Request](c, ctx, "request", "/api/v1/csr/requests", encodeRequestFilter(f))
}

func (c *Client) GetRequest(ctx context.Context, id int64) (*domain.Request, error) {
	var req domain.Request
	if err := c.t.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/csr/requests/%d", id), nil, nil, &req); err != nil {
		return nil, err
	}
	if err := checkWire("request", &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// AddToShortlist registers non-binding interest. The request itself is not
// mutated by this call; its shortlist counter is server-maintained and shows
// up on the next fetch.
func (c *Client) AddToShortlist(ctx context.Context, in ports.CreateShortlistInput) (*domain.ShortlistEntry, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var entry domain.ShortlistEntry
	if err := c.t.Do(ctx, http.MethodPost, "/api/v1/csr/shortlist", nil, in, &entry); err != nil {
		return nil, err
	}
	if err := checkWire("shortlist entry", &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) ListShortlist(ctx context.Context) ([]domain.ShortlistEntry, error) {
	var entries []domain.ShortlistEntry
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/csr/shortlist", nil, nil, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		if err := checkWire("shortlist entry", &entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (c *Client) RemoveFromShortlist(ctx context.Context, id int64) error {
	return c.t.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/csr/shortlist/%d", id), nil, nil, nil)
}

// CreateMatch commits the caller to a request. The server pairs the match
// with the request's owner and moves the request to in_progress; the client
// adopts both from the response rather than applying them locally.
func (c *Client) CreateMatch(ctx context.Context, in ports.CreateMatchInput) (*domain.Match, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var match domain.Match
	if err := c.t.Do(ctx, http.MethodPost, "/api/v1/csr/matches", nil, in, &match); err != nil {
		return nil, err
	}
	if err := checkWire("match", &match); err != nil {
		return nil, err
	}
	c.log.Debug().Int64("match_id", match.ID).Int64("request_id", match.RequestID).Msg("match created")
	return &match, nil
}

func (c *Client) ListMatches(ctx context.Context, f ports.MatchFilter) (*ports.Page[domain.Match], error) {
	return decodePage[domain.Match](c, ctx, "match", "/api/v1/csr/matches", encodeMatchFilter(f))
}

func (c *Client) GetMatch(ctx context.Context, id int64) (*domain.Match, error) {
	var match domain.Match
	if err := c.t.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/csr/matches/%d", id), nil, nil, &match); err != nil {
		return nil, err
	}
	if err := checkWire("match", &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) UpdateMatch(ctx context.Context, id int64, in ports.UpdateMatchInput) (*domain.Match, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var match domain.Match
	if err := c.t.Do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/csr/matches/%d", id), nil, in, &match); err != nil {
		return nil, err
	}
	if err := checkWire("match", &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) ResponderHistory(ctx context.Context, f ports.MatchFilter) (*ports.Page[domain.Match], error) {
	return decodePage[domain.Match](c, ctx, "match", "/api/v1/csr/history", encodeMatchFilter(f))
}
