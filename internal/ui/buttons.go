package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	button       = lipgloss.NewStyle().Width(Width-6).Align(lipgloss.Center).Bold(true).Foreground(Primary).Background(Button)
	activeButton = button.Background(Accent).Foreground(Background)
	link         = lipgloss.NewStyle().Width(Width - 6).Align(lipgloss.Center).Foreground(Link)
	activeLink   = link.Underline(true).Bold(true)
)

// Buttons is a vertical list of choices with one selected
type Buttons struct {
	labels []string
	links  map[int]bool
	i      int

	// Focused is false when keyboard focus is elsewhere, e.g. in a form input
	Focused bool
}

// NewButtons creates a new buttons ui bubbletea model
func NewButtons(labels ...string) Buttons {
	return Buttons{labels: labels, links: map[int]bool{}, Focused: true}
}

// AsLink renders the button at i as a plain link, like "Sign up"
func (m Buttons) AsLink(i int) Buttons {
	m.links[i] = true
	return m
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m Buttons) Init() tea.Cmd {
	return nil
}

// Update moves the selection with up/down and j/k
func (m Buttons) Update(msg tea.Msg) (Buttons, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.Set(m.i - 1)
		case "down", "j":
			m.Set(m.i + 1)
		}
	}
	return m, nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Buttons) View() string {
	rows := make([]string, len(m.labels))
	for i, l := range m.labels {
		active := m.Focused && i == m.i
		switch {
		case m.links[i] && active:
			rows[i] = activeLink.Render(l)
		case m.links[i]:
			rows[i] = link.Render(l)
		case active:
			rows[i] = activeButton.Render(l)
		default:
			rows[i] = button.Render(l)
		}
	}
	return strings.Join(rows, "\n\n")
}

func (m Buttons) Value() int {
	return m.i
}

func (m Buttons) Len() int {
	return len(m.labels)
}

// Set selects the button at i, clamped to the list
func (m *Buttons) Set(i int) {
	m.i = min(max(i, 0), len(m.labels)-1)
	if m.i < 0 {
		m.i = 0
	}
}

// SetLabels replaces the choices and keeps the selection in range
func (m *Buttons) SetLabels(labels ...string) {
	m.labels = labels
	m.links = map[int]bool{}
	m.Set(m.i)
}
