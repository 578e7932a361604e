package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Tea commands
//
// Commands run off the update goroutine and deliver their result as a typed
// message. None of them touch model state directly, and none are cancelled:
// a response that arrives after its modal was dismissed still applies, by
// id, to whatever the stores hold then.
// ---------------------------------------------------------------------------

// checkStoredTokenCmd reads the durable token key once at startup. An
// expired token short-circuits to "no token" without a network call.
func checkStoredTokenCmd(tokens *tokenStore) tea.Cmd {
	return func() tea.Msg {
		token, err := tokens.Load()
		if err != nil {
			return tokenCheckedMsg{err: err}
		}
		if token == "" {
			return tokenCheckedMsg{}
		}
		if tokenExpired(token, time.Now()) {
			return tokenCheckedMsg{err: errTokenExpired}
		}
		return tokenCheckedMsg{token: token}
	}
}

func validateTokenCmd(api *apiClient, token string) tea.Cmd {
	return func() tea.Msg {
		email, err := api.Validate(token)
		return validateDoneMsg{email: email, err: err}
	}
}

// loginCmd authorizes and, on success, persists the issued token before
// reporting back. The session only flips to logged-in after the follow-up
// validate roundtrip.
func loginCmd(api *apiClient, tokens *tokenStore, creds credentials) tea.Cmd {
	return func() tea.Msg {
		token, err := api.Authorize(creds)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		if err := tokens.Save(token); err != nil {
			// Sign-in still works for this run; only restart recovery is lost.
			logf("persist token: %v", err)
		}
		return loginDoneMsg{token: token}
	}
}

func registerCmd(api *apiClient, creds credentials) tea.Cmd {
	return func() tea.Msg {
		err := api.Register(creds)
		return registerDoneMsg{email: creds.Email, err: err}
	}
}

func loadCardsCmd(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		cards, err := api.ListCards()
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func loadProfileCmd(api *apiClient) tea.Cmd {
	return func() tea.Msg {
		profile, err := api.GetProfile()
		return profileLoadedMsg{profile: profile, err: err}
	}
}

// toggleLikeCmd computes the intended direction locally (the request is the
// opposite of the current membership) but only the server-returned card is
// ever applied. The heart never flips on intent alone.
func toggleLikeCmd(api *apiClient, c card, userID string) tea.Cmd {
	return func() tea.Msg {
		liked := c.likedByUser(userID)
		updated, err := api.SetLike(c.id, !liked)
		return likeDoneMsg{id: c.id, card: updated, err: err}
	}
}

func createCardCmd(api *apiClient, name, link string) tea.Cmd {
	return func() tea.Msg {
		created, err := api.CreateCard(name, link)
		return cardCreatedMsg{card: created, err: err}
	}
}

func deleteCardCmd(api *apiClient, cardID string) tea.Cmd {
	return func() tea.Msg {
		err := api.DeleteCard(cardID)
		return cardDeletedMsg{id: cardID, err: err}
	}
}

func saveProfileCmd(api *apiClient, name, about string) tea.Cmd {
	return func() tea.Msg {
		profile, err := api.SetProfile(name, about)
		return profileSavedMsg{profile: profile, err: err}
	}
}

func saveAvatarCmd(api *apiClient, avatarURL string) tea.Cmd {
	return func() tea.Msg {
		profile, err := api.SetAvatar(avatarURL)
		return avatarSavedMsg{profile: profile, err: err}
	}
}
