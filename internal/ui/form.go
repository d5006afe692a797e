package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	input      = lipgloss.NewStyle().Foreground(Background).Background(Secondary).Width(Width - 6)
	inputFaded = input.Foreground(Faded)
)

// NewInput creates a text input whose placeholder doubles as its label
func NewInput(placeholder string) textinput.Model {
	i := textinput.New()
	i.Placeholder = placeholder
	i.Prompt = " "
	i.CharLimit = 256
	i.Width = Width - 8
	i.TextStyle = lipgloss.NewStyle().Foreground(Background)
	i.PlaceholderStyle = lipgloss.NewStyle().Foreground(Faded)
	return i
}

// NewPassword creates a masked input
func NewPassword(placeholder string) textinput.Model {
	i := NewInput(placeholder)
	i.EchoMode = textinput.EchoPassword
	i.EchoCharacter = '*'
	return i
}

// Form is a column of inputs followed by buttons. Focus moves through both
// with tab/shift+tab or the arrow keys.
type Form struct {
	Inputs  []textinput.Model
	Buttons Buttons

	focus int
}

func NewForm(inputs []textinput.Model, buttons Buttons) Form {
	f := Form{Inputs: inputs, Buttons: buttons}
	f.setFocus(0)
	return f
}

// Update handles a key and returns the index of the pressed button, or -1
// when no button was pressed.
func (f *Form) Update(msg tea.Msg) (int, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blinks
		if f.onButtons() {
			return -1, nil
		}
		var cmd tea.Cmd
		f.Inputs[f.focus], cmd = f.Inputs[f.focus].Update(msg)
		return -1, cmd
	}
	switch key.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return -1, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return -1, nil
	case "enter":
		if f.onButtons() {
			return f.Buttons.Value(), nil
		}
		f.setFocus(f.focus + 1)
		return -1, nil
	}
	if f.onButtons() {
		switch key.String() {
		case "j":
			f.setFocus(f.focus + 1)
		case "k":
			f.setFocus(f.focus - 1)
		}
		return -1, nil
	}
	var cmd tea.Cmd
	f.Inputs[f.focus], cmd = f.Inputs[f.focus].Update(msg)
	return -1, cmd
}

func (f Form) Value(i int) string {
	return f.Inputs[i].Value()
}

// Focused returns the focused input, or -1 when a button has focus
func (f Form) Focused() int {
	if f.onButtons() {
		return -1
	}
	return f.focus
}

// Reset clears every input and focuses the first one
func (f *Form) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	f.setFocus(0)
}

func (f Form) View() string {
	rows := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		style := inputFaded
		if i == f.focus {
			style = input
		}
		rows[i] = style.Render(in.View())
	}
	return strings.Join(rows, "\n\n") + "\n\n\n" + f.Buttons.View()
}

func (f Form) onButtons() bool {
	return f.focus >= len(f.Inputs)
}

// setFocus wraps around, so tabbing past the last button returns to the
// first input
func (f *Form) setFocus(i int) {
	total := len(f.Inputs) + f.Buttons.Len()
	if total == 0 {
		return
	}
	f.focus = ((i % total) + total) % total
	for j := range f.Inputs {
		if j == f.focus {
			f.Inputs[j].Focus()
		} else {
			f.Inputs[j].Blur()
		}
	}
	f.Buttons.Focused = f.onButtons()
	if f.Buttons.Focused {
		f.Buttons.Set(f.focus - len(f.Inputs))
	}
}
