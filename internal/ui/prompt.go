package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(1, 2).
		Width(Width - 4)
	modalTitle = lipgloss.NewStyle().Bold(true).Foreground(Accent)
)

type PromptState int

const (
	PromptOpen PromptState = iota
	PromptSubmitted
	PromptCancelled
)

// Prompt asks for one line of text in a modal box
type Prompt struct {
	title string
	label string
	input textinput.Model
}

func NewPrompt() Prompt {
	return Prompt{input: NewInput("")}
}

// Open resets the prompt with a title, label and initial value
func (p *Prompt) Open(title, label, value string) {
	p.title = title
	p.label = label
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.input.Focus()
}

// Update returns PromptSubmitted on enter and PromptCancelled on esc
func (p *Prompt) Update(msg tea.Msg) (PromptState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			p.input.Blur()
			return PromptSubmitted, nil
		case tea.KeyEsc:
			p.input.Blur()
			return PromptCancelled, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return PromptOpen, cmd
}

func (p Prompt) Value() string {
	return p.input.Value()
}

func (p Prompt) View() string {
	body := modalTitle.Render(p.title) + "\n\n" +
		Body.Render(p.label) + "\n" +
		input.Width(Width-10).Render(p.input.View()) + "\n\n" +
		Help.Render("enter: ok • esc: cancel")
	return modal.Render(body)
}

// Alert renders a modal message box
func Alert(title, body string) string {
	return modal.Render(modalTitle.Render(title) + "\n\n" + Body.Render(body) + "\n\n" + Help.Render("enter: ok"))
}
