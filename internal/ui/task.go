package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/todo/pkg/dateinput"
	"github.com/td0m/todo/pkg/task"
)

var (
	TaskTitle   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TaskDone    = TaskTitle.Foreground(Secondary).Strikethrough(true)
	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
)

// NewTaskBar creates the progress bar drawn under each task
func NewTaskBar() progress.Model {
	p := progress.New(
		progress.WithSolidFill(string(TaskFill)),
		progress.WithWidth(Width-6),
		progress.WithoutPercentage(),
	)
	p.EmptyColor = string(TaskEmpty)
	return p
}

// RenderTask renders "{n}. {title}" with its due date and a bar filled by
// the task's progress
func RenderTask(bar progress.Model, n int, t task.Task, now time.Time) string {
	title := TaskTitle
	if t.Done() {
		title = TaskDone
	}
	s := title.Render(strconv.Itoa(n) + ". " + t.Title)
	if d, ok := dateinput.Parse(t.Due, now); ok {
		s += TaskDivider + lipgloss.NewStyle().Foreground(DueColor(d, now)).Render(dateinput.Format(d, now))
	} else if t.Due != "" {
		s += TaskDivider + lipgloss.NewStyle().Foreground(Faded).Render(t.Due)
	}
	return s + "\n" + bar.ViewAs(t.Progress())
}

// DueColor gets more urgent the closer the date is
func DueColor(due, now time.Time) lipgloss.Color {
	switch days := dateinput.Days(due, now); {
	case days <= 2:
		return Red
	case days <= 7:
		return Orange
	case days <= 14:
		return Yellow
	default:
		return Green
	}
}
