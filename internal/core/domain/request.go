package domain

import (
	"fmt"
	"time"
)

// RequestStatus represents the lifecycle state of an assistance request.
// Transitions are server-controlled: the client only asks for one and adopts
// whatever state comes back.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// requestTransitions mirrors the server's request state machine. Used for
// pre-flight checks only, never to apply a transition locally.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestOpen:       {RequestInProgress, RequestCancelled},
	RequestInProgress: {RequestCompleted, RequestCancelled},
}

// CanTransitionTo reports whether the server would accept a transition from
// the current status to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// Urgency grades how quickly a request needs attention.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Request is an assistance request posted by a requester, classified by one
// service category. List/detail payloads arrive with the owning profile and
// category pre-joined; a zero-valued embed means the relation was not sent.
type Request struct {
	ID             int64            `json:"id"`
	RequesterID    int64            `json:"pin_id"`
	Requester      RequesterProfile `json:"pin"`
	CategoryID     int64            `json:"category_id"`
	Category       ServiceCategory  `json:"category"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Urgency        Urgency          `json:"urgency"`
	Status         RequestStatus    `json:"status"`
	PreferredDate  string           `json:"preferred_date,omitempty"`
	Location       string           `json:"location"`
	SpecialNotes   string           `json:"special_notes"`
	ViewCount      int              `json:"view_count"`
	ShortlistCount int              `json:"shortlist_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Validate checks required fields and enum membership. Embedded relations are
// deliberately not required: an absent join is "unknown", not an error.
func (r *Request) Validate() error {
	if r.ID == 0 {
		return fmt.Errorf("%w: request missing id", ErrMalformedEntity)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: request missing title", ErrMalformedEntity)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: request has unknown status %q", ErrMalformedEntity, r.Status)
	}
	if !r.Urgency.Valid() {
		return fmt.Errorf("%w: request has unknown urgency %q", ErrMalformedEntity, r.Urgency)
	}
	return nil
}
