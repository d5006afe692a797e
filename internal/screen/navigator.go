// Package screen holds the terminal screens and the navigator that switches
// between them.
package screen

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
)

type ID int

const (
	Welcome ID = iota
	Login
	SignUp
	Menu
	CreateTask
	ViewTask
	UpdateTask
	DeleteTask
)

var names = map[ID]string{
	Welcome:    "welcome",
	Login:      "login",
	SignUp:     "signup",
	Menu:       "menu",
	CreateTask: "create",
	ViewTask:   "view",
	UpdateTask: "update",
	DeleteTask: "delete",
}

func (id ID) String() string {
	return names[id]
}

// Screen is a long-lived part of the UI. Screens are created once and keep
// their state between visits.
type Screen interface {
	Update(tea.Msg) tea.Cmd
	View() string
}

// Refresher is implemented by screens that reload their data every time they
// are shown.
type Refresher interface {
	Refresh() error
}

type showMsg struct {
	id ID
}

type alertMsg struct {
	title string
	body  string
}

// Show makes id the visible screen
func Show(id ID) tea.Cmd {
	return func() tea.Msg {
		return showMsg{id}
	}
}

// Alert opens a modal message over the current screen
func Alert(title, body string) tea.Cmd {
	return func() tea.Msg {
		return alertMsg{title, body}
	}
}

func Error(err error) tea.Cmd {
	return Alert("Error", err.Error())
}

// Navigator shows exactly one screen at a time. Alerts are modal: while one is
// open every key other than ctrl+c goes to it.
type Navigator struct {
	screens map[ID]Screen
	current ID
	alerts  []alertMsg

	width  int
	height int
}

var _ tea.Model = &Navigator{}

// New creates the navigator with every screen of the app, starting at Welcome
func New(a *app.App) *Navigator {
	return NewNavigator(map[ID]Screen{
		Welcome:    newWelcome(),
		Login:      newLogin(a),
		SignUp:     newSignUp(a),
		Menu:       newMenu(a),
		CreateTask: newCreate(a),
		ViewTask:   newView(a),
		UpdateTask: newUpdate(a),
		DeleteTask: newDelete(a),
	}, Welcome)
}

func NewNavigator(screens map[ID]Screen, initial ID) *Navigator {
	n := &Navigator{screens: screens}
	n.show(initial)
	return n
}

func (n *Navigator) Current() ID {
	return n.current
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (n *Navigator) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width, n.height = msg.Width, msg.Height
		return n, nil
	case showMsg:
		n.show(msg.id)
		return n, nil
	case alertMsg:
		n.alerts = append(n.alerts, msg)
		return n, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return n, tea.Quit
		}
		if len(n.alerts) > 0 {
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				n.alerts = n.alerts[1:]
			}
			return n, nil
		}
	}
	return n, n.screens[n.current].Update(msg)
}

// show switches screens and reloads the new one before it is drawn
func (n *Navigator) show(id ID) {
	s, ok := n.screens[id]
	if !ok {
		return
	}
	n.current = id
	if r, ok := s.(Refresher); ok {
		if err := r.Refresh(); err != nil {
			n.alerts = append(n.alerts, alertMsg{"Error", err.Error()})
		}
	}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (n *Navigator) View() string {
	body := n.screens[n.current].View()
	if len(n.alerts) > 0 {
		a := n.alerts[0]
		body = ui.Alert(a.title, a.body)
	}
	frame := ui.Frame.Render(body)
	if n.width == 0 {
		return frame
	}
	return lipgloss.Place(n.width, n.height, lipgloss.Center, lipgloss.Top, frame)
}
