// Package client is the embeddable entry point for the matching platform.
// It wires the session cache, the HTTP transport, and the typed workflow
// surface into one handle a host application can hold for its lifetime.
package client

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/core/ports"
	"github.com/volunteerbridge/matching-client/internal/core/service"
	"github.com/volunteerbridge/matching-client/internal/core/session"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/api"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/config"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/store"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/transport"
	"github.com/volunteerbridge/matching-client/pkg/logger"
)

// Client owns one session and one workflow surface against the platform.
// All methods are safe for concurrent use.
type Client struct {
	log     zerolog.Logger
	state   *session.State
	api     *api.Client
	manager *service.SessionManager
	router  *service.RoleRouter

	// rdb is non-nil only for the redis session backend; Close releases it.
	rdb *redis.Client
}

// New builds a fully wired client. A nil cfg loads configuration from the
// environment.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg == nil {
		loaded, err := config.Load(ctx)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	state := session.NewState()

	tokens, rdb, err := newTokenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	tr, err := transport.New(cfg.BaseURL, cfg.Timeout, state, log)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	apiClient := api.New(tr, log)
	manager := service.NewSessionManager(state, tokens, apiClient, log)
	// Any 401 from any operation tears the session down before the caller
	// sees the error.
	tr.OnUnauthorized(manager.HandleUnauthorized)

	return &Client{
		log:     log,
		state:   state,
		api:     apiClient,
		manager: manager,
		router:  service.NewRoleRouter(state),
		rdb:     rdb,
	}, nil
}

func newTokenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TokenStore, *redis.Client, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return store.NewMemoryTokenStore(), nil, nil
	case config.BackendRedis:
		rdb, err := store.Dial(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		rcfg := store.RedisConfig{
			Addr: cfg.Redis.Addr, DB: cfg.Redis.DB,
			Key: cfg.Redis.Key, TTL: cfg.Redis.TTL,
		}
		return store.NewRedisTokenStore(rdb, rcfg, log), rdb, nil
	case config.BackendFile, "":
		return store.NewFileTokenStore(cfg.Session.File, log), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Initialize restores a persisted session, validating it against the server.
// It reports whether the client came up authenticated.
func (c *Client) Initialize(ctx context.Context) bool {
	return c.manager.Initialize(ctx)
}

// Login authenticates and persists the resulting session.
func (c *Client) Login(ctx context.Context, in LoginInput) (*User, error) {
	return c.manager.Login(ctx, in)
}

// Register creates an account. It does not log the new account in.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	return c.manager.Register(ctx, in)
}

// Logout ends the session locally and notifies the server best effort.
func (c *Client) Logout(ctx context.Context) {
	c.manager.Logout(ctx)
}

func (c *Client) IsAuthenticated() bool {
	return c.manager.IsAuthenticated()
}

func (c *Client) CurrentUser() (User, bool) {
	return c.manager.CurrentUser()
}

// Session returns a copy of the current session record, when one is active.
func (c *Client) Session() (Session, bool) {
	return c.state.Current()
}

// Surface reports which UI surface the current session should see.
func (c *Client) Surface() Surface {
	return c.router.Surface()
}

// OnSurfaceChange registers fn to run whenever login or logout moves the
// session to a different surface.
func (c *Client) OnSurfaceChange(fn func(Surface)) {
	c.router.OnChange(fn)
}

// API exposes the full typed workflow surface. Operations issued through it
// carry the current session's token automatically.
func (c *Client) API() WorkflowAPI {
	return c.api
}

// InvalidateCatalogs drops the cached category and company tables so the
// next lookup refetches them.
func (c *Client) InvalidateCatalogs() {
	c.api.InvalidateCatalogs()
}

// Close releases backend connections. The client is unusable afterwards.
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
