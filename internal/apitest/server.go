// Package apitest runs an in-process imitation of the matching platform for
// client tests: the full route table, JWT bearer auth, role-gated route
// groups, and in-memory storage with pre-joined responses. It exists so the
// SDK's tests exercise real HTTP traffic instead of stubbed method calls.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// Server is the fake platform. All fields are guarded by mu; handlers are
// deliberately simple and hold the lock for their whole body.
type Server struct {
	srv    *httptest.Server
	secret string

	mu                sync.Mutex
	nextID            int64
	users             map[int64]*domain.User
	userByName        map[string]int64
	passwords         map[int64]string                   // user id -> bcrypt hash
	requesterProfiles map[int64]*domain.RequesterProfile // keyed by user id
	responderProfiles map[int64]*domain.ResponderProfile // keyed by user id
	requests          map[int64]*domain.Request
	shortlist         map[int64]*domain.ShortlistEntry
	matches           map[int64]*domain.Match
	categories        []domain.ServiceCategory
	companies         []domain.Company

	// CatalogHits counts GETs against the catalog routes, so cache tests can
	// see whether the client actually came back to the server.
	CatalogHits int
}

// New starts the fake platform with seeded catalogs and no users.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		secret:            "apitest-secret",
		nextID:            100,
		users:             make(map[int64]*domain.User),
		userByName:        make(map[string]int64),
		passwords:         make(map[int64]string),
		requesterProfiles: make(map[int64]*domain.RequesterProfile),
		responderProfiles: make(map[int64]*domain.ResponderProfile),
		requests:          make(map[int64]*domain.Request),
		shortlist:         make(map[int64]*domain.ShortlistEntry),
		matches:           make(map[int64]*domain.Match),
	}
	now := time.Now().UTC()
	s.categories = []domain.ServiceCategory{
		{ID: 1, Name: "Errands", Description: "Shopping and deliveries", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Transportation", Description: "Rides to appointments", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Companionship", Description: "Visits and calls", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	s.companies = []domain.Company{
		{ID: 1, Name: "Acme Corp", Industry: "Manufacturing", Email: "csr@acme.example", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Globex", Industry: "Technology", Email: "volunteer@globex.example", CreatedAt: now, UpdatedAt: now},
	}

	e := echo.New()
	e.HideBanner = true
	s.registerRoutes(e)

	s.srv = httptest.NewServer(e)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the base address tests hand to the transport.
func (s *Server) URL() string { return s.srv.URL }

func (s *Server) registerRoutes(e *echo.Echo) {
	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)
	e.POST("/auth/logout", s.handleLogout, s.auth)

	api := e.Group("/api/v1", s.auth)
	api.GET("/profile", s.handleGetProfile)
	api.PUT("/profile", s.handleUpdateProfile)

	pin := api.Group("/pin", s.requireRole(domain.RoleRequester))
	pin.POST("/profile", s.handleCreateRequesterProfile)
	pin.GET("/profile", s.handleGetRequesterProfile)
	pin.PUT("/profile", s.handleUpdateRequesterProfile)
	pin.POST("/requests", s.handleCreateRequest)
	pin.GET("/requests", s.handleListOwnRequests)
	pin.GET("/requests/:id", s.handleGetOwnRequest)
	pin.PUT("/requests/:id", s.handleUpdateOwnRequest)
	pin.GET("/history", s.handleRequesterHistory)

	csr := api.Group("/csr", s.requireRole(domain.RoleResponder))
	csr.POST("/profile", s.handleCreateResponderProfile)
	csr.GET("/profile", s.handleGetResponderProfile)
	csr.PUT("/profile", s.handleUpdateResponderProfile)
	csr.GET("/requests", s.handleSearchRequests)
	csr.GET("/requests/:id", s.handleGetRequest)
	csr.POST("/shortlist", s.handleAddToShortlist)
	csr.GET("/shortlist", s.handleListShortlist)
	csr.DELETE("/shortlist/:id", s.handleRemoveFromShortlist)
	csr.POST("/matches", s.handleCreateMatch)
	csr.GET("/matches", s.handleListMatches)
	csr.GET("/matches/:id", s.handleGetMatch)
	csr.PUT("/matches/:id", s.handleUpdateMatch)
	csr.GET("/history", s.handleResponderHistory)

	admin := api.Group("/admin", s.requireRole(domain.RoleAdmin))
	admin.GET("/categories", s.handleListCategories)
	admin.GET("/companies", s.handleListCompanies)
}

// auth validates the bearer token and stashes the user on the context.
func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		userID := int64(claims["user_id"].(float64))
		s.mu.Lock()
		user, ok := s.users[userID]
		s.mu.Unlock()
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		c.Set("user", user)
		return next(c)
	}
}

// requireRole gates a route group to one role.
func (s *Server) requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.Get("user").(*domain.User)
			if user.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *domain.User {
	return c.Get("user").(*domain.User)
}

func (s *Server) mintToken(userID int64, exp time.Time) string {
	claims := jwt.MapClaims{"user_id": userID, "exp": exp.Unix()}
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tkn.SignedString([]byte(s.secret))
	if err != nil {
		panic(err)
	}
	return signed
}

// --- Seeding helpers for tests ---

// SeedUser creates an account directly, bypassing the HTTP surface.
func (s *Server) SeedUser(t *testing.T, username, password, role string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	s.nextID++
	user := &domain.User{
		ID: s.nextID, Username: username, Email: username + "@example.com",
		Role: role, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.userByName[username] = user.ID
	s.passwords[user.ID] = string(hash)
	return *user
}

// TokenFor mints a valid bearer token for a seeded user.
func (s *Server) TokenFor(t *testing.T, username string) string {
	t.Helper()
	s.mu.Lock()
	id, ok := s.userByName[username]
	s.mu.Unlock()
	if !ok {
		t.Fatalf("no such user %q", username)
	}
	return s.mintToken(id, time.Now().Add(tokenTTL))
}

// ExpiredTokenFor mints a token the auth middleware will reject.
func (s *Server) ExpiredTokenFor(t *testing.T, username string) string {
	t.Helper()
	s.mu.Lock()
	id, ok := s.userByName[username]
	s.mu.Unlock()
	if !ok {
		t.Fatalf("no such user %q", username)
	}
	return s.mintToken(id, time.Now().Add(-time.Minute))
}

// Request returns a copy of a stored request, for asserting server-side
// state without going through the client.
func (s *Server) Request(t *testing.T, id int64) domain.Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		t.Fatalf("no such request %d", id)
	}
	return *req
}
