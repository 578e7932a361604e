package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Input forms
//
// Each auth route and form modal owns one of these: a labelled stack of
// textinputs with a single focused field. Tab/shift+tab move focus; the
// enclosing update handler decides what enter means.
// ---------------------------------------------------------------------------

type formField struct {
	label    string
	required bool
	input    textinput.Model
}

type form struct {
	fields []formField
	focus  int
}

func newField(label, placeholder string, required bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 200
	in.Width = 40
	return formField{label: label, required: required, input: in}
}

func newPasswordField(label string) formField {
	f := newField(label, "", true)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func newSignInForm() form {
	return newForm(
		newField("Email", "you@example.com", true),
		newPasswordField("Password"),
	)
}

func newSignUpForm() form {
	return newForm(
		newField("Email", "you@example.com", true),
		newPasswordField("Password"),
	)
}

func newProfileForm(name, about string) form {
	f := newForm(
		newField("Name", "display name", true),
		newField("About", "a line about you", false),
	)
	f.fields[0].input.SetValue(name)
	f.fields[1].input.SetValue(about)
	return f
}

func newAvatarForm() form {
	return newForm(
		newField("Avatar URL", "https://…", true),
	)
}

func newAddCardForm() form {
	return newForm(
		newField("Caption", "name this place", true),
		newField("Image URL", "https://…", true),
	)
}

// ---------------------------------------------------------------------------
// Focus and input plumbing
// ---------------------------------------------------------------------------

func (f *form) focusField(i int) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.fields[i].input.Focus()
	f.focus = i
}

func (f *form) focusNext() {
	f.focusField((f.focus + 1) % len(f.fields))
}

func (f *form) focusPrev() {
	f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// update feeds a message to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// complete reports whether every required field is non-empty.
func (f *form) complete() bool {
	for i := range f.fields {
		if f.fields[i].required && f.value(i) == "" {
			return false
		}
	}
	return true
}

// reset clears all values and puts focus back on the first field.
func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.focusField(0)
}

// setValues overwrites field values in order, for forms that stage current
// state (the profile editor prefills name/about).
func (f *form) setValues(values ...string) {
	for i, v := range values {
		if i >= len(f.fields) {
			break
		}
		f.fields[i].input.SetValue(v)
	}
	f.focusField(0)
}
