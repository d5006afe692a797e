// Package app implements the to-do operations on top of the account and task
// stores, scoped to the logged in user.
package app

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/td0m/todo/pkg/session"
	"github.com/td0m/todo/pkg/task"
)

var ErrNoSession = errors.New("not logged in")

type Accounts interface {
	Register(username, password, confirm string) error
	Authenticate(username, password string) error
}

type Tasks interface {
	List(user string) (task.Tasks, error)
	Create(user, title, desc, due string) error
	Update(user string, i int, title, desc, due string) error
	Delete(user string, i int) error
}

type App struct {
	accounts Accounts
	tasks    Tasks
	session  session.Session
	log      *log.Logger
}

// New creates an app with no active session. A nil logger discards output.
func New(accounts Accounts, tasks Tasks, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		accounts: accounts,
		tasks:    tasks,
		log:      logger,
	}
}

func (a *App) Session() session.Session {
	return a.session
}

func (a *App) Register(username, password, confirm string) error {
	if err := a.accounts.Register(username, password, confirm); err != nil {
		a.log.Warn("sign up rejected", "user", username, "err", err)
		return err
	}
	a.log.Info("account created", "user", username)
	return nil
}

// Login starts a session for username. On failure the current session, if
// any, is left as it was.
func (a *App) Login(username, password string) error {
	if err := a.accounts.Authenticate(username, password); err != nil {
		a.log.Warn("login failed", "user", username)
		return err
	}
	a.session.Start(username)
	a.log.Info("logged in", "user", username, "session", a.session.ID())
	return nil
}

func (a *App) Logout() {
	if user, ok := a.session.User(); ok {
		a.log.Info("logged out", "user", user, "session", a.session.ID())
	}
	a.session.End()
}

func (a *App) CreateTask(title, desc, due string) error {
	return a.do("create task", func(user string) error {
		return a.tasks.Create(user, title, desc, due)
	})
}

func (a *App) ListTasks() (task.Tasks, error) {
	var ts task.Tasks
	err := a.do("list tasks", func(user string) error {
		var err error
		ts, err = a.tasks.List(user)
		return err
	})
	return ts, err
}

func (a *App) UpdateTask(i int, title, desc, due string) error {
	return a.do("update task", func(user string) error {
		return a.tasks.Update(user, i, title, desc, due)
	}, "index", i)
}

func (a *App) DeleteTask(i int) error {
	return a.do("delete task", func(user string) error {
		return a.tasks.Delete(user, i)
	}, "index", i)
}

// do runs fn for the session user and logs the outcome
func (a *App) do(op string, fn func(user string) error, keyvals ...interface{}) error {
	user, ok := a.session.User()
	if !ok {
		a.log.Warn(op, append(keyvals, "err", ErrNoSession)...)
		return ErrNoSession
	}
	keyvals = append(keyvals, "user", user, "session", a.session.ID())
	if err := fn(user); err != nil {
		a.log.Error(op, append(keyvals, "err", err)...)
		return err
	}
	a.log.Debug(op, keyvals...)
	return nil
}
