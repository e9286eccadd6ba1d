package client

import (
	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
	"github.com/volunteerbridge/matching-client/internal/core/service"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/config"
	"github.com/volunteerbridge/matching-client/internal/infrastructure/transport"
)

// Domain entities, re-exported so hosts never import internal packages.
type (
	User             = domain.User
	Session          = domain.Session
	RequesterProfile = domain.RequesterProfile
	ResponderProfile = domain.ResponderProfile
	Company          = domain.Company
	ServiceCategory  = domain.ServiceCategory
	Request          = domain.Request
	ShortlistEntry   = domain.ShortlistEntry
	Match            = domain.Match
)

// Wire roles.
const (
	RoleRequester = domain.RoleRequester
	RoleResponder = domain.RoleResponder
	RoleAdmin     = domain.RoleAdmin
	RolePlatform  = domain.RolePlatform
)

// Operation inputs and the paginated envelope.
type (
	LoginInput            = ports.LoginInput
	RegisterInput         = ports.RegisterInput
	UpdateProfileInput    = ports.UpdateProfileInput
	RequesterProfileInput = ports.RequesterProfileInput
	ResponderProfileInput = ports.ResponderProfileInput
	CreateRequestInput    = ports.CreateRequestInput
	UpdateRequestInput    = ports.UpdateRequestInput
	CreateShortlistInput  = ports.CreateShortlistInput
	CreateMatchInput      = ports.CreateMatchInput
	UpdateMatchInput      = ports.UpdateMatchInput
	RequestFilter         = ports.RequestFilter
	MatchFilter           = ports.MatchFilter
	Pagination            = ports.Pagination
	Page[T any]           = ports.Page[T]
	WorkflowAPI           = ports.WorkflowAPI
)

// Config is loaded from the environment by default; hosts may build one by
// hand and pass it to New.
type Config = config.Config

// Surface routing.
type Surface = service.Surface

const (
	SurfaceNone      = service.SurfaceNone
	SurfaceRequester = service.SurfaceRequester
	SurfaceResponder = service.SurfaceResponder
	SurfaceAdmin     = service.SurfaceAdmin
)

// Error classification helpers. Hosts branch on these instead of inspecting
// transport error types directly.
var (
	IsUnauthorized = transport.IsUnauthorized
	IsValidation   = transport.IsValidation
	IsServer       = transport.IsServer
	IsUnavailable  = transport.IsUnavailable
	IsTimeout      = transport.IsTimeout
)
