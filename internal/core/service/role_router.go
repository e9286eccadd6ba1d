package service

import (
	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/session"
)

// Surface identifies which workflow surface a session is entitled to use.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceRequester
	SurfaceResponder
	SurfaceAdmin
)

func (s Surface) String() string {
	switch s {
	case SurfaceRequester:
		return "requester"
	case SurfaceResponder:
		return "responder"
	case SurfaceAdmin:
		return "admin"
	default:
		return "none"
	}
}

// SurfaceForRole maps a wire role to its surface. Platform accounts use the
// admin surface.
func SurfaceForRole(role string) Surface {
	switch role {
	case domain.RoleRequester:
		return SurfaceRequester
	case domain.RoleResponder:
		return SurfaceResponder
	case domain.RoleAdmin, domain.RolePlatform:
		return SurfaceAdmin
	default:
		return SurfaceNone
	}
}

// RoleRouter selects the workflow surface for the current session. It holds
// no state of its own; the session is the single source of truth.
type RoleRouter struct {
	state *session.State
}

func NewRoleRouter(state *session.State) *RoleRouter {
	return &RoleRouter{state: state}
}

// Surface returns the surface the current session may use. Anonymous
// sessions get none.
func (r *RoleRouter) Surface() Surface {
	sess, ok := r.state.Current()
	if !ok {
		return SurfaceNone
	}
	return SurfaceForRole(sess.User.Role)
}

// OnChange re-evaluates the surface whenever the session changes and hands
// the result to fn. fn must tolerate being called after its consumer is gone.
func (r *RoleRouter) OnChange(fn func(Surface)) {
	r.state.Subscribe(func(session.Event) {
		fn(r.Surface())
	})
}
