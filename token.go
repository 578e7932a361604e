package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/peterbourgon/diskv/v3"
)

// The gallery session survives restarts through a single durable key: the
// JWT issued at sign-in. Nothing else is persisted.
const sessionTokenKey = "jwt"

var errTokenExpired = errors.New("stored token is expired")

type storedToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

// tokenStore persists the session token under the app data dir.
type tokenStore struct {
	d *diskv.Diskv
}

func newTokenStore(basePath string) *tokenStore {
	return &tokenStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}
}

func (s *tokenStore) Save(token string) error {
	payload, err := json.Marshal(storedToken{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := s.d.Write(sessionTokenKey, payload); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Load returns the stored token, or "" when none has been saved.
func (s *tokenStore) Load() (string, error) {
	payload, err := s.d.Read(sessionTokenKey)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	var st storedToken
	if err := json.Unmarshal(payload, &st); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	return st.Token, nil
}

func (s *tokenStore) Clear() error {
	if err := s.d.Erase(sessionTokenKey); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erase token: %w", err)
	}
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim has already
// passed. The decode is unverified: it exists only to skip a validate call
// that cannot succeed. A token that isn't a JWT, or carries no exp claim, is
// left for the server to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
