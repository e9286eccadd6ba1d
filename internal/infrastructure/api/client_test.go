package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/apitest"
	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/transport"
)

// tokenBox is a mutable TokenReader so a test can switch identities on one
// transport.
type tokenBox struct {
	mu sync.Mutex
	v  string
}

func (b *tokenBox) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.v
}

func (b *tokenBox) Set(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.v = v
}

func newTestClient(t *testing.T, srv *apitest.Server, token string) (*Client, *tokenBox) {
	t.Helper()
	box := &tokenBox{v: token}
	tr, err := transport.New(srv.URL(), 5*time.Second, box, zerolog.Nop())
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	return New(tr, zerolog.Nop()), box
}

func TestClient_RegisterAndLogin(t *testing.T) {
	srv := apitest.New(t)
	c, box := newTestClient(t, srv, "")
	ctx := context.Background()

	user, err := c.Register(ctx, ports.RegisterInput{
		Username: "maria", Email: "maria@example.com",
		Password: "secret1", Role: domain.RoleRequester,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 || user.Role != domain.RoleRequester {
		t.Fatalf("unexpected user %+v", user)
	}

	sess, err := c.Login(ctx, ports.LoginInput{Username: "maria", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token == "" || sess.User.Username != "maria" {
		t.Fatalf("unexpected session %+v", sess)
	}

	box.Set(sess.Token)
	got, err := c.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("profile id = %d, want %d", got.ID, user.ID)
	}
}

func TestClient_LoginBadCredentials(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "maria", "secret1", domain.RoleRequester)
	c, _ := newTestClient(t, srv, "")

	_, err := c.Login(context.Background(), ports.LoginInput{Username: "maria", Password: "wrong"})
	if !transport.IsUnauthorized(err) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Errorf("server message not preserved: %v", err)
	}
}

func TestClient_InputValidatedBeforeWire(t *testing.T) {
	// Closed port: any request that actually leaves would fail as transport,
	// not validation.
	box := &tokenBox{}
	tr, err := transport.New("http://127.0.0.1:1", time.Second, box, zerolog.Nop())
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	c := New(tr, zerolog.Nop())
	ctx := context.Background()

	if _, err := c.Login(ctx, ports.LoginInput{Username: "maria"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Login without password: err = %v, want ErrInvalidInput", err)
	}
	if _, err := c.Register(ctx, ports.RegisterInput{
		Username: "x", Email: "not-an-email", Password: "secret1", Role: "pin",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Register with bad email: err = %v, want ErrInvalidInput", err)
	}
	if _, err := c.AddToShortlist(ctx, ports.CreateShortlistInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddToShortlist without request: err = %v, want ErrInvalidInput", err)
	}
}

func TestClient_RequesterFlow(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "maria", "secret1", domain.RoleRequester)
	c, _ := newTestClient(t, srv, srv.TokenFor(t, "maria"))
	ctx := context.Background()

	if _, err := c.CreateRequesterProfile(ctx, ports.RequesterProfileInput{
		FirstName: "Maria", LastName: "Lopez", Phone: "555-0100",
	}); err != nil {
		t.Fatalf("CreateRequesterProfile: %v", err)
	}

	req, err := c.CreateRequest(ctx, ports.CreateRequestInput{
		Title: "Grocery run", Description: "Weekly shopping", CategoryID: 1,
		Urgency: "high", Location: "Springfield",
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if req.Status != domain.RequestOpen || req.Category.Name != "Errands" {
		t.Fatalf("unexpected request %+v", req)
	}

	list, err := c.ListMyRequests(ctx)
	if err != nil {
		t.Fatalf("ListMyRequests: %v", err)
	}
	if len(list) != 1 || list[0].ID != req.ID {
		t.Fatalf("ListMyRequests = %+v", list)
	}

	// open -> completed is not a legal transition.
	_, err = c.UpdateMyRequest(ctx, req.ID, ports.UpdateRequestInput{Status: "completed"})
	if !transport.IsValidation(err) {
		t.Fatalf("illegal transition: err = %v, want validation", err)
	}

	updated, err := c.UpdateMyRequest(ctx, req.ID, ports.UpdateRequestInput{Status: "cancelled"})
	if err != nil {
		t.Fatalf("UpdateMyRequest: %v", err)
	}
	if updated.Status != domain.RequestCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
}

// seedOpenRequest walks a requester account through profile and request
// creation, returning the request id.
func seedOpenRequest(t *testing.T, srv *apitest.Server, username, title string) int64 {
	t.Helper()
	srv.SeedUser(t, username, "secret1", domain.RoleRequester)
	c, _ := newTestClient(t, srv, srv.TokenFor(t, username))
	ctx := context.Background()

	if _, err := c.CreateRequesterProfile(ctx, ports.RequesterProfileInput{
		FirstName: "Pat", LastName: "Doe",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	req, err := c.CreateRequest(ctx, ports.CreateRequestInput{
		Title: title, Description: "seeded", CategoryID: 1, Location: "Springfield",
	})
	if err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return req.ID
}

func newResponderClient(t *testing.T, srv *apitest.Server, username string) *Client {
	t.Helper()
	srv.SeedUser(t, username, "secret1", domain.RoleResponder)
	c, _ := newTestClient(t, srv, srv.TokenFor(t, username))
	if _, err := c.CreateResponderProfile(context.Background(), ports.ResponderProfileInput{
		CompanyID: 1, FirstName: "Ana", LastName: "Silva",
	}); err != nil {
		t.Fatalf("seed responder profile: %v", err)
	}
	return c
}

func TestClient_ShortlistFlow(t *testing.T) {
	srv := apitest.New(t)
	reqID := seedOpenRequest(t, srv, "maria", "Grocery run")
	c := newResponderClient(t, srv, "ana")
	ctx := context.Background()

	entry, err := c.AddToShortlist(ctx, ports.CreateShortlistInput{
		RequestID: reqID, Notes: "close by", Priority: "high",
	})
	if err != nil {
		t.Fatalf("AddToShortlist: %v", err)
	}
	if entry.Priority != domain.PriorityHigh || entry.Request.ID != reqID {
		t.Fatalf("unexpected entry %+v", entry)
	}

	// Shortlisting touches the counter and nothing else.
	stored := srv.Request(t, reqID)
	if stored.ShortlistCount != 1 {
		t.Errorf("shortlist count = %d, want 1", stored.ShortlistCount)
	}
	if stored.Status != domain.RequestOpen {
		t.Errorf("status = %s, want open", stored.Status)
	}

	list, err := c.ListShortlist(ctx)
	if err != nil {
		t.Fatalf("ListShortlist: %v", err)
	}
	if len(list) != 1 || list[0].ID != entry.ID {
		t.Fatalf("ListShortlist = %+v", list)
	}

	if err := c.RemoveFromShortlist(ctx, entry.ID); err != nil {
		t.Fatalf("RemoveFromShortlist: %v", err)
	}
	if got := srv.Request(t, reqID).ShortlistCount; got != 0 {
		t.Errorf("shortlist count after removal = %d, want 0", got)
	}
}

func TestClient_MatchLifecycle(t *testing.T) {
	srv := apitest.New(t)
	reqID := seedOpenRequest(t, srv, "maria", "Grocery run")
	c := newResponderClient(t, srv, "ana")
	ctx := context.Background()

	match, err := c.CreateMatch(ctx, ports.CreateMatchInput{RequestID: reqID, StartDate: "2026-09-01"})
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if match.Status != domain.MatchPending {
		t.Fatalf("match status = %s, want pending", match.Status)
	}
	if got := srv.Request(t, reqID).Status; got != domain.RequestInProgress {
		t.Fatalf("request status = %s, want in_progress", got)
	}

	// A second match against the same request is refused.
	if _, err := c.CreateMatch(ctx, ports.CreateMatchInput{RequestID: reqID}); !transport.IsValidation(err) {
		t.Fatalf("double match: err = %v, want validation", err)
	}

	for _, status := range []string{"confirmed", "in_progress"} {
		if match, err = c.UpdateMatch(ctx, match.ID, ports.UpdateMatchInput{Status: status}); err != nil {
			t.Fatalf("UpdateMatch(%s): %v", status, err)
		}
	}

	rating := 5
	match, err = c.UpdateMatch(ctx, match.ID, ports.UpdateMatchInput{
		Status: "completed", Rating: &rating, Feedback: "great help",
	})
	if err != nil {
		t.Fatalf("UpdateMatch(completed): %v", err)
	}
	if match.CompletedAt == nil || match.Rating == nil || *match.Rating != 5 {
		t.Fatalf("completion not recorded: %+v", match)
	}
	if got := srv.Request(t, reqID).Status; got != domain.RequestCompleted {
		t.Errorf("request status = %s, want completed", got)
	}

	hist, err := c.ResponderHistory(ctx, ports.MatchFilter{})
	if err != nil {
		t.Fatalf("ResponderHistory: %v", err)
	}
	if len(hist.Data) != 1 || hist.Data[0].ID != match.ID {
		t.Fatalf("history = %+v", hist.Data)
	}
}

func TestClient_SearchFiltersAndPagination(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "maria", "secret1", domain.RoleRequester)
	rc, _ := newTestClient(t, srv, srv.TokenFor(t, "maria"))
	ctx := context.Background()
	if _, err := rc.CreateRequesterProfile(ctx, ports.RequesterProfileInput{
		FirstName: "Maria", LastName: "Lopez",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	for i := 0; i < 25; i++ {
		catID := int64(1 + i%2)
		if _, err := rc.CreateRequest(ctx, ports.CreateRequestInput{
			Title: fmt.Sprintf("task %02d", i), Description: "seeded",
			CategoryID: catID, Location: "Springfield",
		}); err != nil {
			t.Fatalf("seed request %d: %v", i, err)
		}
	}

	c := newResponderClient(t, srv, "ana")

	page, err := c.SearchRequests(ctx, ports.RequestFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("SearchRequests: %v", err)
	}
	if page.Pagination.Page != 2 || page.Pagination.PageSize != 10 || page.Pagination.Total != 25 {
		t.Fatalf("pagination = %+v", page.Pagination)
	}
	if len(page.Data) != 10 {
		t.Fatalf("len(data) = %d, want 10", len(page.Data))
	}
	if !page.Pagination.HasMore() {
		t.Error("page 2 of 25 should have more")
	}

	last, err := c.SearchRequests(ctx, ports.RequestFilter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("SearchRequests: %v", err)
	}
	if len(last.Data) != 5 || last.Pagination.HasMore() {
		t.Fatalf("final page: %d items, hasMore=%v", len(last.Data), last.Pagination.HasMore())
	}

	filtered, err := c.SearchRequests(ctx, ports.RequestFilter{CategoryID: 2, PageSize: 50})
	if err != nil {
		t.Fatalf("SearchRequests filtered: %v", err)
	}
	if filtered.Pagination.Total != 12 {
		t.Errorf("category filter total = %d, want 12", filtered.Pagination.Total)
	}
	for _, r := range filtered.Data {
		if r.CategoryID != 2 {
			t.Fatalf("filter leaked request %+v", r)
		}
	}
}

func TestClient_RoleGate(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "maria", "secret1", domain.RoleRequester)
	c, _ := newTestClient(t, srv, srv.TokenFor(t, "maria"))

	// A requester token on a responder route is a 403, not a 401; it must
	// not look like an expired session.
	_, err := c.SearchRequests(context.Background(), ports.RequestFilter{})
	if transport.IsUnauthorized(err) {
		t.Fatal("403 misclassified as unauthorized")
	}
	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 403 {
		t.Fatalf("err = %v, want 403", err)
	}
}

func TestClient_UnauthorizedAcrossSurfaces(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "maria", "secret1", domain.RoleRequester)
	c, _ := newTestClient(t, srv, srv.ExpiredTokenFor(t, "maria"))
	ctx := context.Background()

	calls := map[string]func() error{
		"GetProfile":     func() error { _, err := c.GetProfile(ctx); return err },
		"ListMyRequests": func() error { _, err := c.ListMyRequests(ctx); return err },
		"SearchRequests": func() error { _, err := c.SearchRequests(ctx, ports.RequestFilter{}); return err },
		"ListCategories": func() error { _, err := c.ListCategories(ctx); return err },
	}
	for name, call := range calls {
		if err := call(); !transport.IsUnauthorized(err) {
			t.Errorf("%s with expired token: err = %v, want unauthorized", name, err)
		}
	}
}

func TestClient_CatalogCache(t *testing.T) {
	srv := apitest.New(t)
	srv.SeedUser(t, "root", "secret1", domain.RoleAdmin)
	c, _ := newTestClient(t, srv, srv.TokenFor(t, "root"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cats, err := c.ListCategories(ctx)
		if err != nil {
			t.Fatalf("ListCategories #%d: %v", i, err)
		}
		if len(cats) != 3 {
			t.Fatalf("len(categories) = %d, want 3", len(cats))
		}
	}
	if srv.CatalogHits != 1 {
		t.Errorf("catalog hits = %d, want 1 (cached)", srv.CatalogHits)
	}

	c.InvalidateCatalogs()
	if _, err := c.ListCompanies(ctx); err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	if srv.CatalogHits != 2 {
		t.Errorf("catalog hits after invalidation = %d, want 2", srv.CatalogHits)
	}
}
