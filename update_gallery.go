package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Gallery route
// ---------------------------------------------------------------------------

// visibleCards is the collection as currently filtered by search. Cursor
// positions always address this slice, never m.cards directly.
func (m model) visibleCards() []card {
	if !m.searchOpen {
		return m.cards
	}
	return filterCards(m.cards, m.searchInput.Value())
}

func (m model) selectedCard() *card {
	visible := m.visibleCards()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	c := visible[m.cursor]
	return &c
}

func (m model) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchOpen && m.searchInput.Focused() {
		return m.updateSearch(msg)
	}

	switch {
	case msg.String() == "q":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorInWindow()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleCards())-1 {
			m.cursor++
		}
		m.ensureCursorInWindow()
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if c := m.selectedCard(); c != nil {
			return m, toggleLikeCmd(m.api, *c, m.profile.id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		if c := m.selectedCard(); c != nil {
			m.openModal(modalState{kind: modalImagePreview, previewName: c.name, previewURL: c.link})
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		c := m.selectedCard()
		if c == nil {
			return m, nil
		}
		if c.ownerID != m.profile.id {
			m.setError("You can only delete your own cards.")
			return m, nil
		}
		// The confirm modal never opens without a target staged.
		m.openModal(modalState{kind: modalConfirmDelete, pendingDeleteID: c.id})
		return m, nil

	case key.Matches(msg, m.keys.AddCard):
		m.addCardForm.reset()
		m.openModal(modalState{kind: modalAddCard})
		return m, nil

	case key.Matches(msg, m.keys.Profile):
		m.profileForm.setValues(m.profile.name, m.profile.about)
		m.openModal(modalState{kind: modalEditProfile})
		return m, nil

	case key.Matches(msg, m.keys.Avatar):
		m.avatarForm.reset()
		m.openModal(modalState{kind: modalEditAvatar})
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchOpen = true
		m.searchInput.Focus()
		m.cursor = 0
		m.topIndex = 0
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if m.searchOpen {
			m.searchOpen = false
			m.searchInput.Reset()
			m.cursor = 0
			m.topIndex = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.setStatus("Reloading…")
		return m, tea.Batch(loadCardsCmd(m.api), loadProfileCmd(m.api))

	case key.Matches(msg, m.keys.Logout):
		m.logout()
		return m, nil
	}

	return m, nil
}

// updateSearch handles keys while the search input has focus. Enter keeps
// the filter and moves focus back to the card list; Escape drops it.
func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.searchOpen = false
		m.searchInput.Reset()
		m.cursor = 0
		m.topIndex = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Retyping the query reshapes the visible slice; snap the cursor back.
	m.cursor = 0
	m.topIndex = 0
	return m, cmd
}

// ---------------------------------------------------------------------------
// Cursor windowing
// ---------------------------------------------------------------------------

// visibleRows is how many card rows fit between the chrome lines.
func (m *model) visibleRows() int {
	if m.height == 0 {
		return m.cfg.RowsPerPage
	}
	headerHeight := 2
	searchHeight := 0
	if m.searchOpen {
		searchHeight = 2
	}
	statusAndFooter := 2
	available := m.height - headerHeight - searchHeight - statusAndFooter - 2
	if available < 3 {
		available = 3
	}
	if available > m.cfg.RowsPerPage {
		available = m.cfg.RowsPerPage
	}
	return available
}

func (m *model) ensureCursorInWindow() {
	total := len(m.visibleCards())
	if m.cursor > total-1 {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}
