package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Service contracts
//
// Two JSON-over-HTTP services back the client: the auth service issues and
// validates session tokens, the content service owns profiles and cards.
// Wire conventions: JSON bodies, "Authorization: Bearer <jwt>" on
// authenticated calls, {"message": "..."} error envelopes.
// ---------------------------------------------------------------------------

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// apiError is a non-2xx response from either service.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// isAuthFailure reports whether err is a rejected-credentials/invalid-token
// class failure rather than a transport or server problem.
func isAuthFailure(err error) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.Status == http.StatusUnauthorized || ae.Status == http.StatusForbidden
	}
	return false
}

// ---------------------------------------------------------------------------
// Wire shapes
// ---------------------------------------------------------------------------

type cardWire struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Link  string   `json:"link"`
	Owner string   `json:"owner"`
	Likes []string `json:"likes"`
}

func (w cardWire) toCard() card {
	return card{
		id:      w.ID,
		name:    w.Name,
		link:    w.Link,
		ownerID: w.Owner,
		likedBy: w.Likes,
	}
}

type profileWire struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

func (w profileWire) toProfile() userProfile {
	return userProfile{id: w.ID, name: w.Name, about: w.About, avatarURL: w.Avatar}
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

type apiClient struct {
	http        *http.Client
	authBase    string
	contentBase string

	mu    sync.RWMutex
	token string
}

func newAPIClient(authBase, contentBase string) *apiClient {
	return &apiClient{
		// Generous ceiling: a hang stalls one operation's feedback, never
		// the interface, so this exists mainly to reclaim the goroutine.
		http:        &http.Client{Timeout: 60 * time.Second},
		authBase:    authBase,
		contentBase: contentBase,
	}
}

// SetToken swaps the bearer token used for authenticated calls. Commands
// run off the update goroutine, hence the lock.
func (c *apiClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *apiClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *apiClient) do(method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apiError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// ---------------------------------------------------------------------------
// Auth service
// ---------------------------------------------------------------------------

// Authorize exchanges credentials for a session token.
func (c *apiClient) Authorize(creds credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, c.authBase+"/signin", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("signin: empty token in response")
	}
	return out.Token, nil
}

// Register creates an account. The caller still signs in afterwards.
func (c *apiClient) Register(creds credentials) error {
	return c.do(http.MethodPost, c.authBase+"/signup", creds, nil)
}

// Validate checks token against the auth service and returns the account
// email. It uses the given token rather than the stored one so startup can
// probe a persisted token before committing to it.
func (c *apiClient) Validate(token string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.authBase+"/users/me", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("validate token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &apiError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	var out struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Email, nil
}

// ---------------------------------------------------------------------------
// Content service
// ---------------------------------------------------------------------------

func (c *apiClient) GetProfile() (userProfile, error) {
	var w profileWire
	if err := c.do(http.MethodGet, c.contentBase+"/users/me", nil, &w); err != nil {
		return userProfile{}, err
	}
	return w.toProfile(), nil
}

func (c *apiClient) SetProfile(name, about string) (userProfile, error) {
	body := map[string]string{"name": name, "about": about}
	var w profileWire
	if err := c.do(http.MethodPatch, c.contentBase+"/users/me", body, &w); err != nil {
		return userProfile{}, err
	}
	return w.toProfile(), nil
}

func (c *apiClient) SetAvatar(avatarURL string) (userProfile, error) {
	body := map[string]string{"avatar": avatarURL}
	var w profileWire
	if err := c.do(http.MethodPatch, c.contentBase+"/users/me/avatar", body, &w); err != nil {
		return userProfile{}, err
	}
	return w.toProfile(), nil
}

func (c *apiClient) ListCards() ([]card, error) {
	var ws []cardWire
	if err := c.do(http.MethodGet, c.contentBase+"/cards", nil, &ws); err != nil {
		return nil, err
	}
	cards := make([]card, 0, len(ws))
	for _, w := range ws {
		cards = append(cards, w.toCard())
	}
	return cards, nil
}

func (c *apiClient) CreateCard(name, link string) (card, error) {
	body := map[string]string{"name": name, "link": link}
	var w cardWire
	if err := c.do(http.MethodPost, c.contentBase+"/cards", body, &w); err != nil {
		return card{}, err
	}
	return w.toCard(), nil
}

// SetLike likes (like=true) or unlikes (like=false) a card and returns the
// card with the server's authoritative like set.
func (c *apiClient) SetLike(cardID string, like bool) (card, error) {
	method := http.MethodPut
	if !like {
		method = http.MethodDelete
	}
	var w cardWire
	if err := c.do(method, c.contentBase+"/cards/"+cardID+"/likes", nil, &w); err != nil {
		return card{}, err
	}
	return w.toCard(), nil
}

func (c *apiClient) DeleteCard(cardID string) error {
	return c.do(http.MethodDelete, c.contentBase+"/cards/"+cardID, nil, nil)
}
