package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
	"github.com/volunteerbridge/matching-client/internal/core/session"
)

// clearTimeout bounds store teardown triggered from response handling, where
// no caller context is available.
const clearTimeout = 3 * time.Second

// SessionManager owns the authenticated-user projection. It is the only
// writer of the session state and the token store; everything else reads.
type SessionManager struct {
	state *session.State
	store ports.TokenStore
	api   ports.AuthAPI
	log   zerolog.Logger
}

func NewSessionManager(state *session.State, store ports.TokenStore, api ports.AuthAPI, log zerolog.Logger) *SessionManager {
	return &SessionManager{state: state, store: store, api: api, log: log}
}

// Initialize restores a persisted session, if any, and reports whether the
// process starts authenticated. It is the one blocking bootstrap step: role
// routing must not run before it returns. Failures degrade to anonymous;
// this call never fails its caller.
func (m *SessionManager) Initialize(ctx context.Context) bool {
	sess, ok := m.store.Load(ctx)
	if !ok {
		m.state.Clear()
		return false
	}

	if domain.TokenExpired(sess.Token, time.Now()) {
		m.log.Debug().Msg("persisted token already expired, discarding")
		m.discard(ctx)
		return false
	}

	// Install provisionally so the identity fetch goes out with the token,
	// then replace with the server's view of who we are.
	m.state.Set(sess)
	user, err := m.api.GetProfile(ctx)
	if err != nil {
		// Any failure (network, 401, decode) means we cannot trust the
		// cached session. A 401 will already have torn state down via the
		// transport subscription; discarding twice is harmless.
		m.log.Debug().Err(err).Msg("session restore failed, starting anonymous")
		m.discard(ctx)
		return false
	}

	fresh := domain.Session{Token: sess.Token, User: *user}
	if err := m.store.Save(ctx, fresh); err != nil {
		m.log.Warn().Err(err).Msg("could not re-persist refreshed session")
	}
	m.state.Set(fresh)
	m.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("session restored")
	return true
}

// Login authenticates and persists the resulting session. On failure the
// state is untouched and the error is returned for the caller to render.
func (m *SessionManager) Login(ctx context.Context, in ports.LoginInput) (*domain.User, error) {
	sess, err := m.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, *sess); err != nil {
		// A session that does not survive restart is still a session.
		m.log.Warn().Err(err).Msg("could not persist session")
	}
	m.state.Set(*sess)
	m.log.Info().Str("username", sess.User.Username).Str("role", sess.User.Role).Msg("logged in")
	return &sess.User, nil
}

// Register creates an account and returns it. It deliberately does not
// authenticate: a new account signs in explicitly.
func (m *SessionManager) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return m.api.Register(ctx, in)
}

// Logout ends the session. The server notification is best-effort; local
// teardown happens no matter what.
func (m *SessionManager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Debug().Err(err).Msg("server logout notification failed")
	}
	m.discard(ctx)
	m.log.Info().Msg("logged out")
}

// IsAuthenticated derives from the session state; it is never cached apart
// from it.
func (m *SessionManager) IsAuthenticated() bool {
	return m.state.Authenticated()
}

// CurrentUser returns a copy of the authenticated identity, if any.
func (m *SessionManager) CurrentUser() (domain.User, bool) {
	sess, ok := m.state.Current()
	return sess.User, ok
}

// HandleUnauthorized is the transport's 401 subscriber: any unauthorized
// response, from any endpoint, ends the session. Safe to run while other
// calls are in flight; those calls still resolve to their own callers.
func (m *SessionManager) HandleUnauthorized() {
	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()
	m.discard(ctx)
}

func (m *SessionManager) discard(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("could not clear token store")
	}
	m.state.Clear()
}
