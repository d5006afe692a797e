package screen

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
	"github.com/td0m/todo/pkg/account"
)

const (
	loginUsername = iota
	loginPassword
)

const (
	loginSubmit = iota
	loginSignUp
)

type login struct {
	app  *app.App
	form ui.Form
}

func newLogin(a *app.App) *login {
	return &login{
		app: a,
		form: ui.NewForm(
			[]textinput.Model{ui.NewInput("Username"), ui.NewPassword("Password")},
			ui.NewButtons("LOG IN", "Don't have an account? Sign up").AsLink(loginSignUp),
		),
	}
}

func (s *login) Update(msg tea.Msg) tea.Cmd {
	pressed, cmd := s.form.Update(msg)
	switch pressed {
	case loginSubmit:
		return s.submit()
	case loginSignUp:
		return Show(SignUp)
	}
	return cmd
}

func (s *login) submit() tea.Cmd {
	err := s.app.Login(s.form.Value(loginUsername), s.form.Value(loginPassword))
	if errors.Is(err, account.ErrInvalidCredentials) {
		return Alert("Error", "Invalid credentials")
	}
	if err != nil {
		return Error(err)
	}
	s.form.Reset()
	return Show(Menu)
}

func (s *login) View() string {
	return ui.Title("Welcome", "Back!") + s.form.View()
}
