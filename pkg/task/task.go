package task

import "errors"

const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

var ErrNotFound = errors.New("task not found")

// Task is a single to-do item. It has no id: its position in Tasks is its
// identity.
type Task struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Due    string `json:"due"`
	Status string `json:"status"`
}

// New creates a pending task. No field is validated.
func New(title, desc, due string) Task {
	return Task{Title: title, Desc: desc, Due: due, Status: StatusPending}
}

func (t Task) Done() bool {
	return t.Status != StatusPending
}

// Progress is the fill ratio shown next to the task
func (t Task) Progress() float64 {
	if t.Status == StatusPending {
		return 0.4
	}
	return 1.0
}

// Tasks is kept in insertion order and is never re-sorted.
type Tasks []Task

func (ts Tasks) Append(title, desc, due string) Tasks {
	return append(ts, New(title, desc, due))
}

// Replace overwrites title, desc and due of the task at i. Status is kept.
func (ts Tasks) Replace(i int, title, desc, due string) error {
	if i < 0 || i >= len(ts) {
		return ErrNotFound
	}
	t := ts[i]
	t.Title, t.Desc, t.Due = title, desc, due
	ts[i] = t
	return nil
}

// Remove deletes the task at i; every later task moves down by one.
func (ts Tasks) Remove(i int) (Tasks, error) {
	if i < 0 || i >= len(ts) {
		return ts, ErrNotFound
	}
	out := make(Tasks, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	return append(out, ts[i+1:]...), nil
}
