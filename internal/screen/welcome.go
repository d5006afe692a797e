package screen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/ui"
)

const (
	welcomeSignIn = iota
	welcomeSignUp
)

type welcome struct {
	buttons ui.Buttons
}

func newWelcome() *welcome {
	return &welcome{buttons: ui.NewButtons("SIGN IN", "SIGN UP NOW").AsLink(welcomeSignUp)}
}

func (s *welcome) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "q":
		return tea.Quit
	case "enter":
		if s.buttons.Value() == welcomeSignIn {
			return Show(Login)
		}
		return Show(SignUp)
	}
	s.buttons, _ = s.buttons.Update(msg)
	return nil
}

func (s *welcome) View() string {
	return ui.Title("Let's Get", "Started!") +
		s.buttons.View() + "\n\n" +
		ui.Help.Render("↑/↓: select • enter: ok • q: quit")
}
