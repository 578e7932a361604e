package main

import "testing"

func testModel() model {
	cfg := normalizeConfig(appConfig{RowsPerPage: 10})
	return newModel(cfg, newAPIClient("http://auth.test", "http://content.test"), newTokenStore("."))
}

func TestOpenModalSupersedes(t *testing.T) {
	m := testModel()

	m.openModal(modalState{kind: modalConfirmDelete, pendingDeleteID: "c1"})
	if m.modal.kind != modalConfirmDelete || m.modal.pendingDeleteID != "c1" {
		t.Fatalf("modal = %+v", m.modal)
	}

	// A second open replaces the first entirely, staged payload included.
	m.openModal(modalState{kind: modalEditProfile})
	if m.modal.kind != modalEditProfile {
		t.Errorf("kind = %v, want edit-profile", m.modal.kind)
	}
	if m.modal.pendingDeleteID != "" {
		t.Errorf("stale delete target survived a modal switch: %q", m.modal.pendingDeleteID)
	}
}

func TestCloseAllModalsClearsPayloads(t *testing.T) {
	m := testModel()
	m.openModal(modalState{kind: modalImagePreview, previewName: "Alps", previewURL: "https://x"})

	m.closeAllModals()
	if m.modal != (modalState{kind: modalNone}) {
		t.Errorf("modal = %+v, want zeroed", m.modal)
	}

	// Closing with nothing open stays a no-op.
	m.closeAllModals()
	if m.modal.kind != modalNone {
		t.Errorf("modal = %+v after redundant close", m.modal)
	}
}

func TestNavigateGatesGallery(t *testing.T) {
	m := testModel()

	m.navigate(routeGallery)
	if m.route != routeSignIn {
		t.Errorf("logged-out gallery navigation landed on %d, want signin", m.route)
	}

	m.session.loggedIn = true
	m.navigate(routeGallery)
	if m.route != routeGallery {
		t.Errorf("logged-in gallery navigation landed on %d", m.route)
	}

	// Authenticated sessions are steered away from the auth forms.
	m.navigate(routeSignIn)
	if m.route != routeGallery {
		t.Errorf("logged-in signin navigation landed on %d, want gallery", m.route)
	}
}

func TestReplaceCardKeepsOrder(t *testing.T) {
	m := testModel()
	m.cards = []card{
		{id: "a", name: "Alps"},
		{id: "b", name: "Bay"},
		{id: "c", name: "Canyon"},
	}

	m.replaceCard(card{id: "b", name: "Bay", likedBy: []string{"u1"}})
	if len(m.cards) != 3 {
		t.Fatalf("len = %d, want 3", len(m.cards))
	}
	if m.cards[0].id != "a" || m.cards[1].id != "b" || m.cards[2].id != "c" {
		t.Errorf("order changed: %+v", m.cards)
	}
	if !m.cards[1].likedByUser("u1") {
		t.Errorf("replacement not applied: %+v", m.cards[1])
	}
}

func TestReplaceCardUnknownIDIsNoOp(t *testing.T) {
	m := testModel()
	m.cards = []card{{id: "a"}}

	// A late response for a card deleted meanwhile lands on nothing.
	m.replaceCard(card{id: "gone", likedBy: []string{"u1"}})
	if len(m.cards) != 1 || m.cards[0].id != "a" {
		t.Errorf("cards = %+v, want unchanged [a]", m.cards)
	}
}

func TestPrependAndRemoveCard(t *testing.T) {
	m := testModel()
	m.cards = []card{{id: "a"}, {id: "b"}}

	m.prependCard(card{id: "new"})
	if m.cards[0].id != "new" || m.cards[1].id != "a" || m.cards[2].id != "b" {
		t.Fatalf("order after prepend: %+v", m.cards)
	}

	m.removeCard("a")
	if len(m.cards) != 2 || m.cards[0].id != "new" || m.cards[1].id != "b" {
		t.Errorf("cards after remove: %+v", m.cards)
	}

	m.removeCard("missing")
	if len(m.cards) != 2 {
		t.Errorf("removing an absent id changed the collection: %+v", m.cards)
	}
}

func TestFindCard(t *testing.T) {
	m := testModel()
	m.cards = []card{{id: "a", name: "Alps"}}

	if c := m.findCard("a"); c == nil || c.name != "Alps" {
		t.Errorf("findCard(a) = %+v", c)
	}
	if c := m.findCard("zzz"); c != nil {
		t.Errorf("findCard(zzz) = %+v, want nil", c)
	}
}

func TestLogoutResetsClientState(t *testing.T) {
	m := testModel()
	m.tokens = newTokenStore(t.TempDir())
	m.session = session{token: "tok", loggedIn: true, email: "a@b.com"}
	m.route = routeGallery
	m.cards = []card{{id: "a"}}
	m.profile = userProfile{id: "u1", name: "Jacques"}
	m.openModal(modalState{kind: modalEditProfile})
	m.searchOpen = true
	m.cursor = 3

	m.logout()

	if m.session != (session{}) {
		t.Errorf("session = %+v, want zeroed", m.session)
	}
	if m.route != routeSignIn {
		t.Errorf("route = %d, want signin", m.route)
	}
	if m.cards != nil || m.profile != (userProfile{}) {
		t.Errorf("stores not cleared: cards=%+v profile=%+v", m.cards, m.profile)
	}
	if m.modal.kind != modalNone || m.searchOpen || m.cursor != 0 {
		t.Errorf("interface state not reset: modal=%+v searchOpen=%v cursor=%d", m.modal, m.searchOpen, m.cursor)
	}
}

func TestFormCompleteRequiresRequiredFields(t *testing.T) {
	f := newAddCardForm()
	if f.complete() {
		t.Error("empty form must not be complete")
	}
	f.fields[0].input.SetValue("Alps")
	if f.complete() {
		t.Error("form with empty required URL must not be complete")
	}
	f.fields[1].input.SetValue("https://img.test/a.png")
	if !f.complete() {
		t.Error("fully filled form must be complete")
	}

	f.fields[0].input.SetValue("   ")
	if f.complete() {
		t.Error("whitespace-only required field must not count as filled")
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := newSignInForm()
	if f.focus != 0 {
		t.Fatalf("initial focus = %d", f.focus)
	}
	f.focusNext()
	if f.focus != 1 {
		t.Errorf("focus after next = %d, want 1", f.focus)
	}
	f.focusNext()
	if f.focus != 0 {
		t.Errorf("focus did not wrap: %d", f.focus)
	}
	f.focusPrev()
	if f.focus != 1 {
		t.Errorf("focus after prev from 0 = %d, want 1", f.focus)
	}
	if !f.fields[1].input.Focused() || f.fields[0].input.Focused() {
		t.Error("exactly one field must hold input focus")
	}
}
