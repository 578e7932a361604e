package main

// ---------------------------------------------------------------------------
// Bubble Tea messages
//
// Every async operation reports back through one of these. All carry err;
// handlers in update.go decide whether a failure is logged, surfaced on the
// status line, or shown in the info modal.
// ---------------------------------------------------------------------------

// tokenCheckedMsg is the startup probe of the durable token key. token is ""
// when no usable token exists (missing, unreadable, or already expired).
type tokenCheckedMsg struct {
	token string
	err   error
}

type validateDoneMsg struct {
	email string
	err   error
}

type loginDoneMsg struct {
	token string
	err   error
}

type registerDoneMsg struct {
	email string
	err   error
}

type cardsLoadedMsg struct {
	cards []card
	err   error
}

type profileLoadedMsg struct {
	profile userProfile
	err     error
}

// likeDoneMsg carries the server's authoritative card. id is set even on
// failure so the handler can name the card in the log.
type likeDoneMsg struct {
	id   string
	card card
	err  error
}

type cardCreatedMsg struct {
	card card
	err  error
}

type cardDeletedMsg struct {
	id  string
	err error
}

type profileSavedMsg struct {
	profile userProfile
	err     error
}

type avatarSavedMsg struct {
	profile userProfile
	err     error
}
