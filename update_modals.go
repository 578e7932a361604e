package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Modal dispatch
//
// One handler per modal kind; Escape is handled before dispatch so that
// every modal, current and future, dismisses the same way. Dismissal only
// resets modal state. The stores are untouched, and any in-flight request
// keeps its eventual effect.
// ---------------------------------------------------------------------------

func (m model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.closeAllModals()
		return m, nil
	}

	switch m.modal.kind {
	case modalInfoResult, modalImagePreview:
		return m.updateDismissModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modalEditProfile, modalEditAvatar, modalAddCard:
		return m.updateFormModal(msg)
	}
	return m, nil
}

// updateDismissModal covers modals with no inputs: any close key dismisses.
func (m model) updateDismissModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.closeAllModals()
	}
	return m, nil
}

func (m model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeAllModals()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		// Guarded at open time, but a stale modal with no target staged
		// must stay a no-op.
		if m.modal.pendingDeleteID == "" {
			m.closeAllModals()
			return m, nil
		}
		m.setStatus("Deleting…")
		return m, deleteCardCmd(m.api, m.modal.pendingDeleteID)
	}
	return m, nil
}

// modalForm resolves the form owned by the open form modal.
func (m *model) modalForm() *form {
	switch m.modal.kind {
	case modalEditProfile:
		return &m.profileForm
	case modalEditAvatar:
		return &m.avatarForm
	default:
		return &m.addCardForm
	}
}

// updateFormModal runs the shared field-navigation protocol for the three
// form modals and fires the matching save on submit. The modal stays open
// until the success handler in update.go closes it, so a failed edit keeps
// the user's input on screen.
func (m model) updateFormModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.modalForm()
	switch {
	case key.Matches(msg, m.keys.NextField):
		f.focusNext()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		f.focusPrev()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if f.focus < len(f.fields)-1 && f.value(f.focus) != "" {
			f.focusNext()
			return m, nil
		}
		if !f.complete() {
			m.setError("Fill in the required fields.")
			return m, nil
		}
		return m.submitModalForm()
	}
	return m, f.update(msg)
}

func (m model) submitModalForm() (tea.Model, tea.Cmd) {
	switch m.modal.kind {
	case modalEditProfile:
		m.setStatus("Saving profile…")
		return m, saveProfileCmd(m.api, m.profileForm.value(0), m.profileForm.value(1))
	case modalEditAvatar:
		m.setStatus("Updating avatar…")
		return m, saveAvatarCmd(m.api, m.avatarForm.value(0))
	case modalAddCard:
		m.setStatus("Creating card…")
		return m, createCardCmd(m.api, m.addCardForm.value(0), m.addCardForm.value(1))
	}
	return m, nil
}
