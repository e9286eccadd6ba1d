package domain

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestOpen, RequestInProgress, true},
		{RequestOpen, RequestCancelled, true},
		{RequestOpen, RequestCompleted, false},
		{RequestInProgress, RequestCompleted, true},
		{RequestInProgress, RequestCancelled, true},
		{RequestInProgress, RequestOpen, false},
		{RequestCompleted, RequestCancelled, false},
		{RequestCancelled, RequestOpen, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestRequestStatus_Terminal(t *testing.T) {
	if RequestOpen.Terminal() || RequestInProgress.Terminal() {
		t.Fatal("open/in_progress must not be terminal")
	}
	if !RequestCompleted.Terminal() || !RequestCancelled.Terminal() {
		t.Fatal("completed/cancelled must be terminal")
	}
}

func TestRequest_Validate(t *testing.T) {
	valid := Request{ID: 42, Title: "groceries", Status: RequestOpen, Urgency: UrgencyMedium}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Request)
	}{
		{"missing id", func(r *Request) { r.ID = 0 }},
		{"missing title", func(r *Request) { r.Title = "" }},
		{"bad status", func(r *Request) { r.Status = "paused" }},
		{"bad urgency", func(r *Request) { r.Urgency = "asap" }},
	}
	for _, c := range cases {
		r := valid
		c.mut(&r)
		if err := r.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestRequest_Validate_EmptyEmbedsAllowed(t *testing.T) {
	// Pre-joined relations may be absent; that is "unknown", not an error.
	r := Request{ID: 1, Title: "t", Status: RequestOpen, Urgency: UrgencyLow}
	if err := r.Validate(); err != nil {
		t.Fatalf("request with zero embeds rejected: %v", err)
	}
}
