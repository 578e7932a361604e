package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles, Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerEmailStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)

	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	fieldFocusStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	likedStyle   = lipgloss.NewStyle().Foreground(colorLiked)
	unlikedStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	ownerStyle   = lipgloss.NewStyle().Foreground(colorTeal)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(routeTitle, email string, width int) string {
	name := headerAppStyle.Render(appName)
	left := name + "  " + routeTitle
	right := ""
	if email != "" {
		right = headerEmailStyle.Render(email)
	}

	content := left
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if right != "" && gap > 0 {
		content = left + strings.Repeat(" ", gap) + right
	}
	return headerBarStyle.Width(width).Render(content)
}

func (m model) renderStatus() string {
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	return style.Width(m.width).Render(truncate(m.status, m.width-4))
}

func (m model) renderFooter(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return footerStyle.Width(m.width).Render(strings.Join(parts, "  ·  "))
}

// footerBindings picks the hint set for whatever surface has the keyboard.
func (m model) footerBindings() []key.Binding {
	switch m.modal.kind {
	case modalConfirmDelete:
		return m.keys.confirmHelp()
	case modalEditProfile, modalEditAvatar, modalAddCard:
		return m.keys.formModalHelp()
	case modalInfoResult, modalImagePreview:
		return m.keys.dismissHelp()
	}
	if m.route != routeGallery {
		return m.keys.authHelp()
	}
	if m.searchOpen && m.searchInput.Focused() {
		return m.keys.searchHelp()
	}
	return m.keys.galleryHelp()
}

// ---------------------------------------------------------------------------
// Forms
// ---------------------------------------------------------------------------

func renderForm(f form) string {
	var b strings.Builder
	for i := range f.fields {
		label := fieldLabelStyle.Render(f.fields[i].label)
		if i == f.focus {
			label = fieldFocusStyle.Render(f.fields[i].label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.fields[i].input.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Gallery rows
// ---------------------------------------------------------------------------

// renderCardRow renders one gallery line: cursor, heart + like count,
// caption, owner marker.
func renderCardRow(c card, selected, likedByMe, mine bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	heart := unlikedStyle.Render("♡")
	if likedByMe {
		heart = likedStyle.Render("♥")
	}
	likes := fmt.Sprintf("%s %-3d", heart, len(c.likedBy))

	ownerMark := "  "
	if mine {
		ownerMark = ownerStyle.Render("● ")
	}

	captionWidth := width - 12
	if captionWidth < 8 {
		captionWidth = 8
	}
	caption := padRight(truncate(c.name, captionWidth), captionWidth)
	if selected {
		caption = titleStyle.Render(caption)
	}
	return prefix + likes + " " + ownerMark + caption
}

func (m model) renderGalleryRows(width int) string {
	visible := m.visibleCards()
	if len(visible) == 0 {
		if m.searchOpen && strings.TrimSpace(m.searchInput.Value()) != "" {
			return mutedStyle.Render("No cards match.")
		}
		return mutedStyle.Render("No cards yet. Press a to add one.")
	}

	rows := m.visibleRows()
	end := m.topIndex + rows
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	for i := m.topIndex; i < end; i++ {
		c := visible[i]
		b.WriteString(renderCardRow(
			c,
			i == m.cursor,
			c.likedByUser(m.profile.id),
			c.ownerID == m.profile.id,
			width,
		))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(visible) > rows {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d–%d of %d", m.topIndex+1, end, len(visible))))
	}
	return b.String()
}
