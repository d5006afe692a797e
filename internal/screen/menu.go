package screen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
)

var menuItems = []struct {
	label string
	to    ID
}{
	{"Create Task ➕", CreateTask},
	{"Update Task 🔄", UpdateTask},
	{"Delete Task 🗑", DeleteTask},
	{"View Task 👁", ViewTask},
}

type menu struct {
	app     *app.App
	buttons ui.Buttons
	user    string
}

func newMenu(a *app.App) *menu {
	labels := make([]string, 0, len(menuItems)+1)
	for _, it := range menuItems {
		labels = append(labels, it.label)
	}
	labels = append(labels, "Logout")
	return &menu{
		app:     a,
		buttons: ui.NewButtons(labels...).AsLink(len(menuItems)),
	}
}

func (s *menu) Refresh() error {
	s.user, _ = s.app.Session().User()
	return nil
}

func (s *menu) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyEnter {
		i := s.buttons.Value()
		if i < len(menuItems) {
			return Show(menuItems[i].to)
		}
		s.app.Logout()
		s.buttons.Set(0)
		return Show(Welcome)
	}
	s.buttons, _ = s.buttons.Update(msg)
	return nil
}

func (s *menu) View() string {
	return ui.Title(s.user, "Menu") +
		s.buttons.View() + "\n\n" +
		ui.Help.Render("↑/↓: select • enter: ok")
}
