package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

type task struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Due    string `json:"due"`
	Status string `json:"status"`
}

func TestJSON_SaveLoad(t *testing.T) {
	is := is.New(t)

	file := filepath.Join(t.TempDir(), "bob_tasks.json")
	doc := InJSON(file, Tasks)
	tasks := []task{
		{Title: "Buy milk", Desc: "2%", Due: "2024-01-01", Status: "Pending"},
		{Title: "Walk", Status: "Done"},
	}
	is.NoErr(doc.Save(tasks))

	var loaded []task
	is.NoErr(doc.Load(&loaded))
	is.Equal(loaded, tasks)
}

func TestJSON_LoadMissing(t *testing.T) {
	is := is.New(t)

	doc := InJSON(filepath.Join(t.TempDir(), "users.json"), Users)
	users := map[string]string{}
	is.NoErr(doc.Load(&users))
	is.Equal(len(users), 0)

	_, err := os.Stat(doc.File())
	is.True(errors.Is(err, os.ErrNotExist)) // loading must not create the file
}

func TestJSON_SaveCreatesDir(t *testing.T) {
	is := is.New(t)

	file := filepath.Join(t.TempDir(), "nested", "data", "users.json")
	is.NoErr(InJSON(file, Users).Save(map[string]string{"alice": "pw"}))

	users := map[string]string{}
	is.NoErr(InJSON(file, Users).Load(&users))
	is.Equal(users, map[string]string{"alice": "pw"})

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(file))
	is.NoErr(err)
	is.Equal(len(entries), 1)
}

func TestJSON_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"alice": `},
		{"empty", ``},
		{"wrong type", `["alice"]`},
		{"non string password", `{"alice": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			file := filepath.Join(t.TempDir(), "users.json")
			is.NoErr(os.WriteFile(file, []byte(tt.content), 0600))

			users := map[string]string{}
			err := InJSON(file, Users).Load(&users)
			is.True(errors.Is(err, ErrCorrupt))

			// the corrupt file is left untouched
			bs, err := os.ReadFile(file)
			is.NoErr(err)
			is.Equal(string(bs), tt.content)
		})
	}
}

func TestJSON_TaskSchema(t *testing.T) {
	is := is.New(t)

	file := filepath.Join(t.TempDir(), "bob_tasks.json")
	is.NoErr(os.WriteFile(file, []byte(`[{"title": "a", "desc": "", "due": ""}]`), 0600))

	var tasks []task
	err := InJSON(file, Tasks).Load(&tasks)
	is.True(errors.Is(err, ErrCorrupt)) // status is required
}
