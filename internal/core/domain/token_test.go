package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"username": "alice", "exp": exp.Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(mintToken(t, exp))
	if !ok {
		t.Fatal("expected exp claim to be readable")
	}
	if !got.Equal(exp) {
		t.Fatalf("exp = %v, want %v", got, exp)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	if TokenExpired(mintToken(t, now.Add(time.Hour)), now) {
		t.Fatal("future token reported expired")
	}
	if !TokenExpired(mintToken(t, now.Add(-time.Hour)), now) {
		t.Fatal("past token not reported expired")
	}
	// Garbage and claim-less tokens stay the server's problem.
	if TokenExpired("not-a-jwt", now) {
		t.Fatal("opaque token reported expired")
	}
}

func TestUser_Validate(t *testing.T) {
	u := User{ID: 7, Username: "alice", Role: RoleRequester}
	if err := u.Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	u.Role = "superuser"
	if err := u.Validate(); err == nil {
		t.Fatal("unknown role accepted")
	}
}
