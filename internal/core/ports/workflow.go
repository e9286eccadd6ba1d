package ports

import (
	"context"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// LoginInput carries sign-in credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the fields for creating a new account. Registration
// does not authenticate; a new account signs in explicitly afterwards.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=pin csr_rep admin platform"`
}

// UpdateProfileInput mutates the account's own record.
type UpdateProfileInput struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// RequesterProfileInput creates or updates the caller's requester profile.
type RequesterProfileInput struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	MedicalInfo      string `json:"medical_info,omitempty"`
	SpecialNeeds     string `json:"special_needs,omitempty"`
}

// ResponderProfileInput creates or updates the caller's responder profile.
type ResponderProfileInput struct {
	CompanyID  int64  `json:"company_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}

// CreateRequestInput posts a new assistance request.
type CreateRequestInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	CategoryID    int64  `json:"category_id" validate:"required"`
	Urgency       string `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	PreferredDate string `json:"preferred_date,omitempty"`
	Location      string `json:"location,omitempty"`
	SpecialNotes  string `json:"special_notes,omitempty"`
}

// UpdateRequestInput is a partial update: empty fields are omitted from the
// payload and left untouched by the server. Status is an intent only; the
// server validates the transition and returns the authoritative state.
type UpdateRequestInput struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	CategoryID    int64  `json:"category_id,omitempty"`
	Urgency       string `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress completed cancelled"`
	PreferredDate string `json:"preferred_date,omitempty"`
	Location      string `json:"location,omitempty"`
	SpecialNotes  string `json:"special_notes,omitempty"`
}

// CreateShortlistInput registers interest in a request.
type CreateShortlistInput struct {
	RequestID int64  `json:"request_id" validate:"required"`
	Notes     string `json:"notes,omitempty"`
	Priority  string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// CreateMatchInput commits the caller to a request.
type CreateMatchInput struct {
	RequestID int64  `json:"request_id" validate:"required"`
	StartDate string `json:"start_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateMatchInput is a partial update of a match.
type UpdateMatchInput struct {
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Rating    *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback  string `json:"feedback,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// RequestFilter narrows a request search. Zero-valued fields are omitted from
// the query string entirely.
type RequestFilter struct {
	CategoryID int64
	Status     string
	Urgency    string
	StartDate  string
	EndDate    string
	Location   string
	Search     string
	Page       int
	PageSize   int
}

// MatchFilter narrows a match or history listing.
type MatchFilter struct {
	ResponderID int64
	RequesterID int64
	CategoryID  int64
	Status      string
	StartDate   string
	EndDate     string
	Page        int
	PageSize    int
}

// Pagination is the server's authoritative paging metadata. Pages are
// 1-based; Total is never recomputed client-side.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// HasMore reports whether pages remain beyond this one. Derived from Total
// only: a short page is not proof of the end, nor a full page of more.
func (p Pagination) HasMore() bool {
	if p.Page < 1 || p.PageSize < 1 {
		return false
	}
	return p.Page*p.PageSize < p.Total
}

// Page is the envelope every paginated list operation returns.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// AuthAPI is the slice of the workflow surface the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, in LoginInput) (*domain.Session, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*domain.User, error)
}

// WorkflowAPI is the full typed surface over the platform's HTTP API.
type WorkflowAPI interface {
	AuthAPI

	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)

	// Requester operations.
	CreateRequesterProfile(ctx context.Context, in RequesterProfileInput) (*domain.RequesterProfile, error)
	GetRequesterProfile(ctx context.Context) (*domain.RequesterProfile, error)
	UpdateRequesterProfile(ctx context.Context, in RequesterProfileInput) (*domain.RequesterProfile, error)
	CreateRequest(ctx context.Context, in CreateRequestInput) (*domain.Request, error)
	ListMyRequests(ctx context.Context) ([]domain.Request, error)
	GetMyRequest(ctx context.Context, id int64) (*domain.Request, error)
	UpdateMyRequest(ctx context.Context, id int64, in UpdateRequestInput) (*domain.Request, error)
	RequesterHistory(ctx context.Context, f MatchFilter) (*Page[domain.Match], error)

	// Responder operations.
	CreateResponderProfile(ctx context.Context, in ResponderProfileInput) (*domain.ResponderProfile, error)
	GetResponderProfile(ctx context.Context) (*domain.ResponderProfile, error)
	UpdateResponderProfile(ctx context.Context, in ResponderProfileInput) (*domain.ResponderProfile, error)
	SearchRequests(ctx context.Context, f RequestFilter) (*Page[domain.Request], error)
	GetRequest(ctx context.Context, id int64) (*domain.Request, error)
	AddToShortlist(ctx context.Context, in CreateShortlistInput) (*domain.ShortlistEntry, error)
	ListShortlist(ctx context.Context) ([]domain.ShortlistEntry, error)
	RemoveFromShortlist(ctx context.Context, id int64) error
	CreateMatch(ctx context.Context, in CreateMatchInput) (*domain.Match, error)
	ListMatches(ctx context.Context, f MatchFilter) (*Page[domain.Match], error)
	GetMatch(ctx context.Context, id int64) (*domain.Match, error)
	UpdateMatch(ctx context.Context, id int64, in UpdateMatchInput) (*domain.Match, error)
	ResponderHistory(ctx context.Context, f MatchFilter) (*Page[domain.Match], error)

	// Catalog lookups (read-only, cached).
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}
