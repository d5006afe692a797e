package screen

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
	"github.com/td0m/todo/pkg/task"
)

const viewHeight = 24

type view struct {
	app      *app.App
	tasks    task.Tasks
	viewport viewport.Model
	bar      progress.Model
	now      func() time.Time
}

func newView(a *app.App) *view {
	return &view{
		app:      a,
		viewport: viewport.New(ui.Width-4, viewHeight),
		bar:      ui.NewTaskBar(),
		now:      time.Now,
	}
}

func (s *view) Refresh() error {
	ts, err := s.app.ListTasks()
	s.tasks = ts
	s.viewport.SetContent(s.render())
	s.viewport.GotoTop()
	return err
}

func (s *view) render() string {
	if len(s.tasks) == 0 {
		return ui.Help.Render("No tasks yet.")
	}
	now := s.now()
	rows := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		rows[i] = ui.RenderTask(s.bar, i+1, t, now)
	}
	return strings.Join(rows, "\n\n")
}

func (s *view) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "b":
			return Show(Menu)
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *view) View() string {
	return ui.Title("", "Your Tasks") +
		s.viewport.View() + "\n\n" +
		ui.Help.Render("↑/↓: scroll • enter/esc: back")
}
