package screen

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
	"github.com/td0m/todo/pkg/account"
)

// the email is asked for but not stored
const (
	signUpUsername = iota
	signUpEmail
	signUpPassword
	signUpConfirm
)

const (
	signUpSubmit = iota
	signUpSignIn
)

type signUp struct {
	app  *app.App
	form ui.Form
}

func newSignUp(a *app.App) *signUp {
	return &signUp{
		app: a,
		form: ui.NewForm(
			[]textinput.Model{
				ui.NewInput("Username"),
				ui.NewInput("Email Address"),
				ui.NewPassword("Password"),
				ui.NewPassword("Confirm Password"),
			},
			ui.NewButtons("CREATE ACCOUNT", "Already have an account? Sign in").AsLink(signUpSignIn),
		),
	}
}

func (s *signUp) Update(msg tea.Msg) tea.Cmd {
	pressed, cmd := s.form.Update(msg)
	switch pressed {
	case signUpSubmit:
		return s.submit()
	case signUpSignIn:
		return Show(Login)
	}
	return cmd
}

func (s *signUp) submit() tea.Cmd {
	err := s.app.Register(
		s.form.Value(signUpUsername),
		s.form.Value(signUpPassword),
		s.form.Value(signUpConfirm),
	)
	switch {
	case errors.Is(err, account.ErrPasswordMismatch):
		return Alert("Error", "Passwords don't match")
	case errors.Is(err, account.ErrUserExists):
		return Alert("Error", "User exists")
	case errors.Is(err, account.ErrInvalidUsername):
		return Alert("Error", "Username must not contain / or \\")
	case err != nil:
		return Error(err)
	}
	s.form.Reset()
	return tea.Batch(Alert("Success", "Account created"), Show(Login))
}

func (s *signUp) View() string {
	return ui.Title("Create an", "Account!") + s.form.View()
}
