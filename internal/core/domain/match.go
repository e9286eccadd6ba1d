package domain

import (
	"fmt"
	"time"
)

// Priority grades a shortlist entry.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ShortlistEntry is a responder's non-binding interest in a request. Creating
// one never mutates the request itself; the server maintains the request's
// shortlist counter.
type ShortlistEntry struct {
	ID          int64            `json:"id"`
	ResponderID int64            `json:"csr_rep_id"`
	Responder   ResponderProfile `json:"csr_rep"`
	RequestID   int64            `json:"request_id"`
	Request     Request          `json:"request"`
	Notes       string           `json:"notes"`
	Priority    Priority         `json:"priority"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (s *ShortlistEntry) Validate() error {
	if s.ID == 0 {
		return fmt.Errorf("%w: shortlist entry missing id", ErrMalformedEntity)
	}
	if s.RequestID == 0 {
		return fmt.Errorf("%w: shortlist entry missing request_id", ErrMalformedEntity)
	}
	if !s.Priority.Valid() {
		return fmt.Errorf("%w: shortlist entry has unknown priority %q", ErrMalformedEntity, s.Priority)
	}
	return nil
}

// MatchStatus represents the lifecycle state of a committed pairing.
type MatchStatus string

const (
	MatchPending    MatchStatus = "pending"
	MatchConfirmed  MatchStatus = "confirmed"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchPending:    {MatchConfirmed, MatchCancelled},
	MatchConfirmed:  {MatchInProgress, MatchCancelled},
	MatchInProgress: {MatchCompleted, MatchCancelled},
}

// CanTransitionTo reports whether the server would accept a transition from
// the current status to next.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	for _, allowed := range matchTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s MatchStatus) Terminal() bool {
	return s == MatchCompleted || s == MatchCancelled
}

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchConfirmed, MatchInProgress, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// Match binds one responder to one request, with the request's owner
// denormalized onto it. The owner always equals the request's own owner at
// creation time; that is a server guarantee the client does not re-derive.
type Match struct {
	ID          int64            `json:"id"`
	ResponderID int64            `json:"csr_rep_id"`
	Responder   ResponderProfile `json:"csr_rep"`
	RequestID   int64            `json:"request_id"`
	Request     Request          `json:"request"`
	RequesterID int64            `json:"pin_id"`
	Requester   RequesterProfile `json:"pin"`
	Status      MatchStatus      `json:"status"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Rating      *int             `json:"rating,omitempty"`
	Feedback    string           `json:"feedback,omitempty"`
	Notes       string           `json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (m *Match) Validate() error {
	if m.ID == 0 {
		return fmt.Errorf("%w: match missing id", ErrMalformedEntity)
	}
	if m.RequestID == 0 {
		return fmt.Errorf("%w: match missing request_id", ErrMalformedEntity)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: match has unknown status %q", ErrMalformedEntity, m.Status)
	}
	if m.Rating != nil && (*m.Rating < 1 || *m.Rating > 5) {
		return fmt.Errorf("%w: match rating %d out of range", ErrMalformedEntity, *m.Rating)
	}
	return nil
}
