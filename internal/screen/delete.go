package screen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
)

type remove struct {
	app  *app.App
	n    int
	rows ui.Buttons
}

func newDelete(a *app.App) *remove {
	return &remove{app: a, rows: ui.NewButtons("Back")}
}

func (s *remove) Refresh() error {
	ts, err := s.app.ListTasks()
	s.n = len(ts)
	labels := make([]string, 0, len(ts)+1)
	for _, t := range ts {
		labels = append(labels, "Delete "+t.Title)
	}
	s.rows.SetLabels(append(labels, "Back")...)
	s.rows = s.rows.AsLink(len(ts))
	return err
}

func (s *remove) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		return Show(Menu)
	case tea.KeyEnter:
		i := s.rows.Value()
		if i >= s.n {
			return Show(Menu)
		}
		if err := s.app.DeleteTask(i); err != nil {
			return Error(err)
		}
		if err := s.Refresh(); err != nil {
			return Error(err)
		}
		return nil
	}
	s.rows, _ = s.rows.Update(msg)
	return nil
}

func (s *remove) View() string {
	return ui.Title("", "Delete Task") +
		s.rows.View() + "\n\n" +
		ui.Help.Render("↑/↓: select • enter: delete • esc: back")
}
