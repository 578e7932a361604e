package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSendsBearerAndRequestID(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, []cardWire{})
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)
	c.SetToken("tok-abc")
	if _, err := c.ListCards(); err != nil {
		t.Fatalf("ListCards: %v", err)
	}

	if auth := got.Get("Authorization"); auth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want Bearer tok-abc", auth)
	}
	if got.Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q, want application/json", got.Get("Accept"))
	}
}

func TestClientOmitsBearerWhenUnset(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"token": "tok-x"})
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)
	if _, err := c.Authorize(credentials{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if got != "" {
		t.Errorf("Authorization = %q sent without a token, want none", got)
	}
}

func TestClientParsesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusUnauthorized, "incorrect email or password")
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)
	_, err := c.Authorize(credentials{Email: "a@b.com", Password: "pw"})
	if err == nil {
		t.Fatal("want error for 401 response")
	}

	var ae *apiError
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T, want *apiError", err)
	}
	if ae.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", ae.Status)
	}
	if ae.Message != "incorrect email or password" {
		t.Errorf("message = %q", ae.Message)
	}
	if !isAuthFailure(err) {
		t.Error("401 must count as an auth failure")
	}
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"401", &apiError{Status: 401}, true},
		{"403", &apiError{Status: 403}, true},
		{"500", &apiError{Status: 500}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAuthFailure(tt.err); got != tt.want {
				t.Errorf("isAuthFailure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetLikeMethodMatchesDirection(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, cardWire{ID: "c1", Likes: []string{"u1"}})
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)

	if _, err := c.SetLike("c1", true); err != nil {
		t.Fatalf("like: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/cards/c1/likes" {
		t.Errorf("like request = %s %s, want PUT /cards/c1/likes", gotMethod, gotPath)
	}

	if _, err := c.SetLike("c1", false); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("unlike method = %s, want DELETE", gotMethod)
	}
}

func TestAuthorizeRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token": ""})
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)
	if _, err := c.Authorize(credentials{Email: "a@b.com", Password: "pw"}); err == nil {
		t.Fatal("want error for empty token in a 200 response")
	}
}

func TestValidateUsesExplicitToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"email": "a@b.com"})
	}))
	defer srv.Close()

	c := newAPIClient(srv.URL, srv.URL)
	c.SetToken("tok-stored")
	email, err := c.Validate("tok-probe")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", email)
	}
	if got != "Bearer tok-probe" {
		t.Errorf("Authorization = %q, want the probed token, not the stored one", got)
	}
}

func TestCardWireRoundsToCard(t *testing.T) {
	payload := []byte(`{"id":"c1","name":"Alps","link":"https://img.test/a.png","owner":"u2","likes":["u1","u3"]}`)
	var w cardWire
	if err := json.Unmarshal(payload, &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	c := w.toCard()
	if c.id != "c1" || c.name != "Alps" || c.ownerID != "u2" {
		t.Errorf("card = %+v", c)
	}
	if !c.likedByUser("u1") || !c.likedByUser("u3") || c.likedByUser("u2") {
		t.Errorf("like set wrong: %+v", c.likedBy)
	}
}
