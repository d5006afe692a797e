package screen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/ui"
	"github.com/td0m/todo/pkg/task"
)

var editLabels = [3]string{"Title", "Description", "Due date"}

type update struct {
	app   *app.App
	tasks task.Tasks
	rows  ui.Buttons

	// the edit in progress: a task index and one value per prompt
	prompt  ui.Prompt
	editing int
	step    int
	draft   [3]string
	name    string
}

func newUpdate(a *app.App) *update {
	return &update{
		app:     a,
		rows:    ui.NewButtons("Back"),
		prompt:  ui.NewPrompt(),
		editing: -1,
	}
}

func (s *update) Refresh() error {
	s.editing = -1
	ts, err := s.app.ListTasks()
	s.tasks = ts
	labels := make([]string, 0, len(ts)+1)
	for _, t := range ts {
		labels = append(labels, t.Title+" (Edit)")
	}
	s.rows.SetLabels(append(labels, "Back")...)
	s.rows = s.rows.AsLink(len(ts))
	return err
}

func (s *update) Update(msg tea.Msg) tea.Cmd {
	if s.editing >= 0 {
		return s.updatePrompt(msg)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyEsc:
		return Show(Menu)
	case tea.KeyEnter:
		i := s.rows.Value()
		if i >= len(s.tasks) {
			return Show(Menu)
		}
		return s.edit(i)
	}
	s.rows, _ = s.rows.Update(msg)
	return nil
}

// edit starts the three prompts, pre-filled with the stored values
func (s *update) edit(i int) tea.Cmd {
	ts, err := s.app.ListTasks()
	if err != nil {
		return Error(err)
	}
	if i >= len(ts) {
		return s.refresh()
	}
	t := ts[i]
	s.editing, s.step = i, 0
	s.draft = [3]string{t.Title, t.Desc, t.Due}
	s.name = t.Title
	s.prompt.Open("Edit "+s.name, editLabels[0], s.draft[0])
	return nil
}

// updatePrompt feeds the open prompt. Cancelling any prompt drops the whole
// edit; the task is only written after the last one.
func (s *update) updatePrompt(msg tea.Msg) tea.Cmd {
	state, cmd := s.prompt.Update(msg)
	switch state {
	case ui.PromptCancelled:
		s.editing = -1
		return nil
	case ui.PromptSubmitted:
		s.draft[s.step] = s.prompt.Value()
		s.step++
		if s.step < len(s.draft) {
			s.prompt.Open("Edit "+s.name, editLabels[s.step], s.draft[s.step])
			return nil
		}
		i := s.editing
		s.editing = -1
		if err := s.app.UpdateTask(i, s.draft[0], s.draft[1], s.draft[2]); err != nil {
			return Error(err)
		}
		return s.refresh()
	}
	return cmd
}

func (s *update) refresh() tea.Cmd {
	if err := s.Refresh(); err != nil {
		return Error(err)
	}
	return nil
}

func (s *update) View() string {
	if s.editing >= 0 {
		return ui.Title("", "Update Task") + s.prompt.View()
	}
	return ui.Title("", "Update Task") +
		s.rows.View() + "\n\n" +
		ui.Help.Render("↑/↓: select • enter: edit • esc: back")
}
