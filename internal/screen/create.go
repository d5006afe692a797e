package screen

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
	"github.com/td0m/todo/pkg/dateinput"
)

const (
	createTitle = iota
	createDesc
	createDue
)

const (
	createSave = iota
	createBack
)

type create struct {
	app  *app.App
	form ui.Form
	now  func() time.Time
}

func newCreate(a *app.App) *create {
	return &create{
		app: a,
		form: ui.NewForm(
			[]textinput.Model{
				ui.NewInput("Title"),
				ui.NewInput("Description"),
				ui.NewInput("Due Date (YYYY-MM-DD)"),
			},
			ui.NewButtons("Save Task", "Back"),
		),
		now: time.Now,
	}
}

func (s *create) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return Show(Menu)
	}
	pressed, cmd := s.form.Update(msg)
	switch pressed {
	case createSave:
		return s.save()
	case createBack:
		return Show(Menu)
	}
	return cmd
}

func (s *create) save() tea.Cmd {
	err := s.app.CreateTask(
		s.form.Value(createTitle),
		s.form.Value(createDesc),
		s.form.Value(createDue),
	)
	if err != nil {
		return Error(err)
	}
	s.form.Reset()
	return tea.Batch(Alert("Success", "Task created!"), Show(Menu))
}

func (s *create) View() string {
	due := ""
	if s.form.Focused() == createDue {
		due = ui.Help.Render("due:") + dateinput.Hint(s.form.Value(createDue), s.now())
	}
	return ui.Title("", "Create Task") + s.form.View() + "\n\n" + due
}
