package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const appName = "Snapgrid"

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

type card struct {
	id      string
	name    string
	link    string
	ownerID string
	likedBy []string
}

// likedByUser reports whether userID appears in the card's like set.
func (c card) likedByUser(userID string) bool {
	for _, id := range c.likedBy {
		if id == userID {
			return true
		}
	}
	return false
}

type userProfile struct {
	id        string
	name      string
	about     string
	avatarURL string
}

// session is the authenticated state of the running client. loggedIn only
// ever becomes true after a successful validate roundtrip; no key handler
// sets it directly.
type session struct {
	token    string
	loggedIn bool
	email    string
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

type route int

const (
	routeSignIn route = iota
	routeSignUp
	routeGallery
)

// ---------------------------------------------------------------------------
// Modal state
//
// Exactly one modal (or none) is ever open. The sum type plus the single
// openModal setter makes the exclusivity structural: opening a modal
// supersedes whatever was open, and closeAllModals drops every staged
// payload along with the modal itself.
// ---------------------------------------------------------------------------

type modalKind int

const (
	modalNone modalKind = iota
	modalEditAvatar
	modalEditProfile
	modalAddCard
	modalConfirmDelete
	modalImagePreview
	modalInfoResult
)

type modalState struct {
	kind modalKind

	// confirm-delete payload, staged when the modal opens and consumed by
	// the delete completing or any close
	pendingDeleteID string

	// image-preview payload
	previewName string
	previewURL  string

	// info-result payload
	infoSuccess bool
}

func (m *model) openModal(s modalState) {
	m.modal = s
}

// closeAllModals returns to modalNone and clears every staged payload.
// Calling it with nothing open is a no-op beyond that clearing.
func (m *model) closeAllModals() {
	m.modal = modalState{kind: modalNone}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg    appConfig
	api    *apiClient
	tokens *tokenStore

	route   route
	session session
	profile userProfile
	cards   []card
	modal   modalState

	// auth forms
	signinForm form
	signupForm form

	// modal forms
	profileForm form
	avatarForm  form
	addCardForm form

	// gallery fuzzy search
	searchOpen  bool
	searchInput textinput.Model

	keys keyMap

	cursor   int
	topIndex int

	width  int
	height int

	status    string
	statusErr bool
}

func newModel(cfg appConfig, api *apiClient, tokens *tokenStore) model {
	search := textinput.New()
	search.Placeholder = "search cards"
	search.Prompt = "/ "
	search.CharLimit = 64

	return model{
		cfg:         cfg,
		api:         api,
		tokens:      tokens,
		route:       routeSignIn,
		modal:       modalState{kind: modalNone},
		signinForm:  newSignInForm(),
		signupForm:  newSignUpForm(),
		profileForm: newProfileForm("", ""),
		avatarForm:  newAvatarForm(),
		addCardForm: newAddCardForm(),
		searchInput: search,
		keys:        newKeyMap(),
		width:       100,
		height:      32,
		status:      "Ready",
	}
}

// ---------------------------------------------------------------------------
// Status line
// ---------------------------------------------------------------------------

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

// ---------------------------------------------------------------------------
// Card collection mutation
//
// Each mutation is applied only after the server confirms it, against
// whatever the collection holds at completion time. Targets are resolved by
// id, so a late response still lands on the right card (or on nothing).
// ---------------------------------------------------------------------------

// replaceCard swaps the card with matching id, leaving order and all other
// cards untouched. Unknown ids are dropped on the floor.
func (m *model) replaceCard(updated card) {
	for i := range m.cards {
		if m.cards[i].id == updated.id {
			m.cards[i] = updated
			return
		}
	}
}

// prependCard puts a newly created card at the head of the collection.
// Most-recent-first ordering is client policy.
func (m *model) prependCard(c card) {
	m.cards = append([]card{c}, m.cards...)
}

// removeCard deletes the card with matching id, if still present.
func (m *model) removeCard(id string) {
	for i := range m.cards {
		if m.cards[i].id == id {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return
		}
	}
}

func (m *model) findCard(id string) *card {
	for i := range m.cards {
		if m.cards[i].id == id {
			return &m.cards[i]
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Session transitions
// ---------------------------------------------------------------------------

// logout clears the session and routes back to signin. Purely client-side:
// the token is discarded, not invalidated server-side.
func (m *model) logout() {
	m.session = session{}
	m.api.SetToken("")
	if err := m.tokens.Clear(); err != nil {
		logf("clear token: %v", err)
	}
	m.cards = nil
	m.profile = userProfile{}
	m.closeAllModals()
	m.searchOpen = false
	m.searchInput.Reset()
	m.cursor = 0
	m.topIndex = 0
	m.route = routeSignIn
	m.setStatus("Signed out.")
}
