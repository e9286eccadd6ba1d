package domain

import "testing"

func TestMatchStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to MatchStatus
		want     bool
	}{
		{MatchPending, MatchConfirmed, true},
		{MatchPending, MatchCancelled, true},
		{MatchPending, MatchInProgress, false},
		{MatchConfirmed, MatchInProgress, true},
		{MatchConfirmed, MatchCompleted, false},
		{MatchInProgress, MatchCompleted, true},
		{MatchCompleted, MatchPending, false},
		{MatchCancelled, MatchConfirmed, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestMatch_Validate(t *testing.T) {
	good := Match{ID: 3, RequestID: 42, Status: MatchPending}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid match rejected: %v", err)
	}

	outOfRange := 6
	bad := Match{ID: 3, RequestID: 42, Status: MatchCompleted, Rating: &outOfRange}
	if err := bad.Validate(); err == nil {
		t.Fatal("rating 6 accepted")
	}

	inRange := 5
	rated := Match{ID: 3, RequestID: 42, Status: MatchCompleted, Rating: &inRange}
	if err := rated.Validate(); err != nil {
		t.Fatalf("rating 5 rejected: %v", err)
	}
}

func TestShortlistEntry_Validate(t *testing.T) {
	good := ShortlistEntry{ID: 1, RequestID: 42, Priority: PriorityMedium}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
	bad := ShortlistEntry{ID: 1, RequestID: 42, Priority: "top"}
	if err := bad.Validate(); err == nil {
		t.Fatal("unknown priority accepted")
	}
}
