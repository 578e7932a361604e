package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// makeJWT signs a throwaway HS256 token whose exp lies ttl away from now.
// The client never verifies signatures, so the key is irrelevant.
func makeJWT(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenStoreRoundTrip(t *testing.T) {
	s := newTokenStore(t.TempDir())

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load from empty store: %v", err)
	}
	if got != "" {
		t.Errorf("empty store returned %q, want \"\"", got)
	}

	if err := s.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("load = %q, want tok-123", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got != "" {
		t.Errorf("load after clear = %q, want \"\"", got)
	}
}

func TestTokenStoreClearIsIdempotent(t *testing.T) {
	s := newTokenStore(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Errorf("clear on empty store: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestTokenStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	if err := newTokenStore(dir).Save("tok-persist"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := newTokenStore(dir).Load()
	if err != nil {
		t.Fatalf("load from reopened store: %v", err)
	}
	if got != "tok-persist" {
		t.Errorf("load = %q, want tok-persist", got)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired jwt", makeJWT(t, -time.Hour), true},
		{"live jwt", makeJWT(t, time.Hour), false},
		{"opaque token", "not-a-jwt", false},
		{"empty token", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenExpired(tt.token, now); got != tt.want {
				t.Errorf("tokenExpired(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestTokenExpiredNoExpClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "u1",
	}).SignedString([]byte("test"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if tokenExpired(token, time.Now()) {
		t.Error("a token without exp must be left for the server to judge")
	}
}
