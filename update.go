package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update
// ---------------------------------------------------------------------------

// Init fires the stored-token probe exactly once per process. Returning
// sessions recover here without touching the signin form.
func (m model) Init() tea.Cmd {
	return checkStoredTokenCmd(m.tokens)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tokenCheckedMsg:
		return m.handleTokenChecked(msg)
	case validateDoneMsg:
		return m.handleValidateDone(msg)
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case registerDoneMsg:
		return m.handleRegisterDone(msg)
	case cardsLoadedMsg:
		return m.handleCardsLoaded(msg)
	case profileLoadedMsg:
		return m.handleProfileLoaded(msg)
	case likeDoneMsg:
		return m.handleLikeDone(msg)
	case cardCreatedMsg:
		return m.handleCardCreated(msg)
	case cardDeletedMsg:
		return m.handleCardDeleted(msg)
	case profileSavedMsg:
		return m.handleProfileSaved(msg)
	case avatarSavedMsg:
		return m.handleAvatarSaved(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.modal.kind != modalNone {
			return m.updateModal(msg)
		}
		switch m.route {
		case routeSignIn, routeSignUp:
			return m.updateAuth(msg)
		case routeGallery:
			return m.updateGallery(msg)
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Route gating
// ---------------------------------------------------------------------------

// navigate enforces reachability: the gallery needs an authenticated
// session, and authenticated sessions are steered away from the auth forms.
func (m *model) navigate(r route) {
	if r == routeGallery && !m.session.loggedIn {
		m.route = routeSignIn
		return
	}
	if r != routeGallery && m.session.loggedIn {
		m.route = routeGallery
		return
	}
	m.route = r
}

// ---------------------------------------------------------------------------
// Session message handlers
// ---------------------------------------------------------------------------

func (m model) handleTokenChecked(msg tokenCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("stored token unusable: %v", msg.err)
		m.setStatus("Please sign in.")
		return m, nil
	}
	if msg.token == "" {
		m.setStatus("Please sign in.")
		return m, nil
	}
	m.session.token = msg.token
	m.api.SetToken(msg.token)
	m.setStatus("Checking session…")
	return m, validateTokenCmd(m.api, msg.token)
}

func (m model) handleValidateDone(msg validateDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Non-fatal: the session simply stays logged out.
		logf("validate token: %v", msg.err)
		m.session.loggedIn = false
		if isAuthFailure(msg.err) {
			m.setStatus("Session expired. Please sign in.")
		} else {
			m.setError("Session check failed. Please sign in.")
		}
		return m, nil
	}
	m.session.loggedIn = true
	m.session.email = msg.email
	m.navigate(routeGallery)
	m.setStatus(fmt.Sprintf("Signed in as %s", msg.email))
	return m, tea.Batch(loadCardsCmd(m.api), loadProfileCmd(m.api))
}

func (m model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("signin: %v", msg.err)
		m.openModal(modalState{kind: modalInfoResult, infoSuccess: false})
		return m, nil
	}
	m.session.token = msg.token
	m.api.SetToken(msg.token)
	return m, validateTokenCmd(m.api, msg.token)
}

func (m model) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	// Success or failure, the info modal opens: always inform.
	if msg.err != nil {
		logf("signup: %v", msg.err)
		m.openModal(modalState{kind: modalInfoResult, infoSuccess: false})
		return m, nil
	}
	m.navigate(routeSignIn)
	m.signinForm.setValues(msg.email)
	m.openModal(modalState{kind: modalInfoResult, infoSuccess: true})
	return m, nil
}

// ---------------------------------------------------------------------------
// Content message handlers
// ---------------------------------------------------------------------------

func (m model) handleCardsLoaded(msg cardsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("load cards: %v", msg.err)
		m.setError("Could not load cards.")
		return m, nil
	}
	m.cards = msg.cards
	m.cursor = 0
	m.topIndex = 0
	m.setStatus(fmt.Sprintf("%d cards", len(m.cards)))
	return m, nil
}

func (m model) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("load profile: %v", msg.err)
		return m, nil
	}
	m.profile = msg.profile
	return m, nil
}

func (m model) handleLikeDone(msg likeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("toggle like on %s: %v", msg.id, msg.err)
		m.setError("Like failed.")
		return m, nil
	}
	// The server's like set is authoritative; apply to whatever the
	// collection holds now, keyed by id.
	m.replaceCard(msg.card)
	return m, nil
}

func (m model) handleCardCreated(msg cardCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("create card: %v", msg.err)
		m.setError("Could not create card.")
		return m, nil
	}
	m.prependCard(msg.card)
	m.addCardForm.reset()
	m.closeAllModals()
	m.cursor = 0
	m.topIndex = 0
	m.setStatus(fmt.Sprintf("Added %q", msg.card.name))
	return m, nil
}

func (m model) handleCardDeleted(msg cardDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("delete card %s: %v", msg.id, msg.err)
		m.setError("Delete failed.")
		return m, nil
	}
	m.removeCard(msg.id)
	m.closeAllModals()
	m.ensureCursorInWindow()
	m.setStatus("Card deleted.")
	return m, nil
}

func (m model) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("save profile: %v", msg.err)
		m.setError("Could not save profile.")
		return m, nil
	}
	m.profile = msg.profile
	m.closeAllModals()
	m.setStatus("Profile updated.")
	return m, nil
}

func (m model) handleAvatarSaved(msg avatarSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logf("save avatar: %v", msg.err)
		m.setError("Could not update avatar.")
		return m, nil
	}
	m.profile = msg.profile
	m.avatarForm.reset()
	m.closeAllModals()
	m.setStatus("Avatar updated.")
	return m, nil
}
