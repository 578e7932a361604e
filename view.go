package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Bubble Tea interface: View
// ---------------------------------------------------------------------------

func (m model) View() string {
	var routeTitle string
	switch m.route {
	case routeSignIn:
		routeTitle = "Sign in"
	case routeSignUp:
		routeTitle = "Sign up"
	case routeGallery:
		routeTitle = "Gallery"
	}

	header := renderHeader(routeTitle, m.session.email, m.width)
	statusLine := m.renderStatus()
	footer := m.renderFooter(m.footerBindings())

	var body string
	switch m.route {
	case routeSignIn, routeSignUp:
		body = m.authView()
	case routeGallery:
		body = m.galleryView()
	}

	main := header + "\n\n" + body

	if m.modal.kind != modalNone {
		return m.composeModal(main, statusLine, footer)
	}
	return m.placeWithFooter(main, statusLine, footer)
}

// placeWithFooter pins the status line and footer to the bottom edge.
func (m model) placeWithFooter(body, statusLine, footer string) string {
	bodyLines := len(splitLines(body))
	pad := m.height - bodyLines - 2
	if pad < 0 {
		pad = 0
	}
	return body + strings.Repeat("\n", pad+1) + statusLine + "\n" + footer
}

// composeModal centers the open modal over the base view, which stays
// as-is underneath.
func (m model) composeModal(base, statusLine, footer string) string {
	full := m.placeWithFooter(base, statusLine, footer)
	return overlayCenter(full, m.modalView(), m.width, m.height)
}

// ---------------------------------------------------------------------------
// Route views
// ---------------------------------------------------------------------------

func (m model) authView() string {
	f := m.signinForm
	title := "Welcome back"
	hint := "ctrl+g to create an account"
	if m.route == routeSignUp {
		f = m.signupForm
		title = "Create your account"
		hint = "ctrl+g to sign in instead"
	}

	content := titleStyle.Render(title) + "\n\n" + renderForm(f) + "\n\n" + mutedStyle.Render(hint)
	box := sectionStyle.Render(content)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

func (m model) galleryView() string {
	width := m.width - 6
	if width < 30 {
		width = 30
	}

	var sections []string
	if m.searchOpen {
		sections = append(sections, m.searchInput.View(), "")
	}
	sections = append(sections, sectionStyle.Render(
		titleStyle.Render("Cards")+"\n"+m.renderGalleryRows(width),
	))
	return strings.Join(sections, "\n")
}

// ---------------------------------------------------------------------------
// Modal views
// ---------------------------------------------------------------------------

func (m model) modalView() string {
	switch m.modal.kind {
	case modalEditProfile:
		return modalStyle.Render(titleStyle.Render("Edit profile") + "\n\n" + renderForm(m.profileForm))
	case modalEditAvatar:
		return modalStyle.Render(titleStyle.Render("Change avatar") + "\n\n" + renderForm(m.avatarForm))
	case modalAddCard:
		return modalStyle.Render(titleStyle.Render("New card") + "\n\n" + renderForm(m.addCardForm))
	case modalConfirmDelete:
		return modalStyle.Render(
			titleStyle.Render("Delete card?") + "\n\n" +
				"This cannot be undone." + "\n\n" +
				helpKeyStyle.Render("enter/y") + helpDescStyle.Render(" delete   ") +
				helpKeyStyle.Render("esc/n") + helpDescStyle.Render(" keep"),
		)
	case modalImagePreview:
		name := m.modal.previewName
		if name == "" {
			name = "(untitled)"
		}
		return modalStyle.Render(
			titleStyle.Render(name) + "\n\n" + mutedStyle.Render(m.modal.previewURL),
		)
	case modalInfoResult:
		if m.modal.infoSuccess {
			return modalStyle.Render(
				successStyle.Render("✓ Success!") + "\n\n" + "You're all set. Sign in to continue.",
			)
		}
		return modalStyle.Render(
			failureStyle.Render("✗ Something went wrong.") + "\n\n" + "Please try again.",
		)
	}
	return ""
}
