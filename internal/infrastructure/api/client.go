// Package api implements the typed workflow surface over the platform's
// HTTP API. One method per operation; every method validates its input
// before the wire and the response shape after it reports success.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/transport"
)

const (
	catalogTTL   = 10 * time.Minute
	catalogSweep = 15 * time.Minute

	cacheKeyCategories = "categories"
	cacheKeyCompanies  = "companies"
)

// Client issues workflow operations through a Transport. It holds no session
// state of its own; the transport attaches whatever token is current.
type Client struct {
	t        *transport.Transport
	log      zerolog.Logger
	catalogs *cache.Cache
}

var _ ports.WorkflowAPI = (*Client)(nil)

func New(t *transport.Transport, log zerolog.Logger) *Client {
	return &Client{
		t:        t,
		log:      log,
		catalogs: cache.New(catalogTTL, catalogSweep),
	}
}

// wireEntity is satisfied by every domain entity that can police its own
// required fields after decoding.
type wireEntity interface{ Validate() error }

// checkWire converts an entity-level validation failure into a DecodeError,
// keeping "the server sent nonsense" distinct from HTTP failures.
func checkWire(entity string, v wireEntity) error {
	if err := v.Validate(); err != nil {
		return &transport.DecodeError{Entity: entity, Err: err}
	}
	return nil
}

// --- Auth & account profile ---

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := c.t.Do(ctx, http.MethodPost, "/auth/login", nil, in, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, &transport.DecodeError{Entity: "session", Err: fmt.Errorf("%w: login response missing token", domain.ErrMalformedEntity)}
	}
	if err := checkWire("user", &sess.User); err != nil {
		return nil, err
	}
	c.log.Debug().Str("username", sess.User.Username).Str("role", sess.User.Role).Msg("login accepted")
	return &sess, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var user domain.User
	if err := c.t.Do(ctx, http.MethodPost, "/auth/register", nil, in, &user); err != nil {
		return nil, err
	}
	if err := checkWire("user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout notifies the server that the session is ending. Callers treat
// failures as advisory; local teardown happens regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.t.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	if err := checkWire("user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var user domain.User
	if err := c.t.Do(ctx, http.MethodPut, "/api/v1/profile", nil, in, &user); err != nil {
		return nil, err
	}
	if err := checkWire("user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- Shared list decoding ---

// decodePage fetches a paginated envelope and validates each element. The
// pagination block passes through untouched; the caller owns has-more math.
func decodePage[T any, P interface {
	*T
	wireEntity
}](c *Client, ctx context.Context, entity, path string, query url.Values) (*ports.Page[T], error) {
	var page ports.Page[T]
	if err := c.t.Do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	for i := range page.Data {
		if err := checkWire(entity, P(&page.Data[i])); err != nil {
			return nil, err
		}
	}
	return &page, nil
}
