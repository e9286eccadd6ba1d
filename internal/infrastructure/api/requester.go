package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
)

// Requester-side operations: profile, own requests, match history. Routes
// live under /api/v1/pin and require the requester role server-side.

func (c *Client) CreateRequesterProfile(ctx context.Context, in ports.RequesterProfileInput) (*domain.RequesterProfile, error) {
	return c.requesterProfile(ctx, http.MethodPost, in)
}

func (c *Client) UpdateRequesterProfile(ctx context.Context, in ports.RequesterProfileInput) (*domain.RequesterProfile, error) {
	return c.requesterProfile(ctx, http.MethodPut, in)
}

func (c *Client) requesterProfile(ctx context.Context, method string, in ports.RequesterProfileInput) (*domain.RequesterProfile, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var profile domain.RequesterProfile
	if err := c.t.Do(ctx, method, "/api/v1/pin/profile", nil, in, &profile); err != nil {
		return nil, err
	}
	if err := checkWire("requester profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetRequesterProfile(ctx context.Context) (*domain.RequesterProfile, error) {
	var profile domain.RequesterProfile
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/pin/profile", nil, nil, &profile); err != nil {
		return nil, err
	}
	if err := checkWire("requester profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CreateRequest(ctx context.Context, in ports.CreateRequestInput) (*domain.Request, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var req domain.Request
	if err := c.t.Do(ctx, http.MethodPost, "/api/v1/pin/requests", nil, in, &req); err != nil {
		return nil, err
	}
	if err := checkWire("request", &req); err != nil {
		return nil, err
	}
	c.log.Debug().Int64("request_id", req.ID).Str("status", string(req.Status)).Msg("request created")
	return &req, nil
}

func (c *Client) ListMyRequests(ctx context.Context) ([]domain.Request, error) {
	var requests []domain.Request
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/pin/requests", nil, nil, &requests); err != nil {
		return nil, err
	}
	for i := range requests {
		if err := checkWire("request", &requests[i]); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

func (c *Client) GetMyRequest(ctx context.Context, id int64) (*domain.Request, error) {
	var req domain.Request
	if err := c.t.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/pin/requests/%d", id), nil, nil, &req); err != nil {
		return nil, err
	}
	if err := checkWire("request", &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateMyRequest sends a partial update. The returned request carries the
// server's view of the record, including whatever status it actually applied;
// callers reconcile any optimistic display state against it.
func (c *Client) UpdateMyRequest(ctx context.Context, id int64, in ports.UpdateRequestInput) (*domain.Request, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var req domain.Request
	if err := c.t.Do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/pin/requests/%d", id), nil, in, &req); err != nil {
		return nil, err
	}
	if err := checkWire("request", &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) RequesterHistory(ctx context.Context, f ports.MatchFilter) (*ports.Page[domain.Match], error) {
	return decodePage[domain.Match](c, ctx, "match", "/api/v1/pin/history", encodeMatchFilter(f))
}
