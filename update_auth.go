package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Auth routes: signin / signup
// ---------------------------------------------------------------------------

// authForm resolves the form for the active auth route.
func (m *model) authForm() *form {
	if m.route == routeSignUp {
		return &m.signupForm
	}
	return &m.signinForm
}

func (m model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.authForm()

	switch {
	case key.Matches(msg, m.keys.SwitchAuth):
		if m.route == routeSignIn {
			m.navigate(routeSignUp)
		} else {
			m.navigate(routeSignIn)
		}
		m.setStatus("")
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		f.focusNext()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		f.focusPrev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitAuth()
	}

	return m, f.update(msg)
}

func (m model) submitAuth() (tea.Model, tea.Cmd) {
	f := m.authForm()

	// Enter on a non-final field advances instead of submitting a
	// half-finished form.
	if f.focus < len(f.fields)-1 && f.value(f.focus) != "" {
		f.focusNext()
		return m, nil
	}
	if !f.complete() {
		m.setError("Email and password are required.")
		return m, nil
	}
	creds := credentials{Email: f.value(0), Password: f.value(1)}
	if m.route == routeSignUp {
		m.setStatus("Creating account…")
		return m, registerCmd(m.api, creds)
	}
	m.setStatus("Signing in…")
	return m, loginCmd(m.api, m.tokens, creds)
}
