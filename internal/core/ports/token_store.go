package ports

import (
	"context"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// TokenStore persists the current session across process restarts. The token
// and its user snapshot are one record: Load never observes one without the
// other, and Save/Clear are atomic with respect to concurrent Loads.
//
// Load deliberately has no error return. Unavailable or corrupt storage is
// reported as absent (logged-out); losing a cached session must never take
// the application down.
type TokenStore interface {
	Save(ctx context.Context, sess domain.Session) error
	Load(ctx context.Context) (domain.Session, bool)
	Clear(ctx context.Context) error
}
