package screen

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/pkg/account"
	"github.com/td0m/todo/pkg/task"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()
	accounts, err := account.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	return app.New(accounts, task.NewStore(dir), nil)
}

// fill types one value per input, tabbing between them, and lands on the
// first button
func fill(n *Navigator, values ...string) {
	for _, v := range values {
		typeText(n, v)
		press(n, "tab")
	}
}

func TestScreens_SignUp(t *testing.T) {
	a := newTestApp(t)
	n := New(a)

	t.Run("welcome to sign up", func(t *testing.T) {
		is := is.New(t)
		is.Equal(n.Current(), Welcome)
		press(n, "down", "enter")
		is.Equal(n.Current(), SignUp)
	})

	t.Run("passwords don't match", func(t *testing.T) {
		is := is.New(t)
		fill(n, "bob", "bob@example.com", "x", "y")
		press(n, "enter")
		is.Equal(n.Current(), SignUp)
		is.Equal(n.alerts[0].body, "Passwords don't match")
		press(n, "enter")
	})

	t.Run("success", func(t *testing.T) {
		is := is.New(t)
		n.screens[SignUp].(*signUp).form.Reset()
		fill(n, "bob", "bob@example.com", "x", "x")
		press(n, "enter")
		is.Equal(n.Current(), Login)
		is.Equal(n.alerts[0].body, "Account created")

		// keys go to the alert until it is dismissed
		typeText(n, "zzz")
		press(n, "enter")
		is.Equal(len(n.alerts), 0)
		is.Equal(n.screens[Login].(*login).form.Value(loginUsername), "")
	})

	t.Run("user exists", func(t *testing.T) {
		is := is.New(t)
		press(n, "down", "down", "down", "enter") // sign up link
		is.Equal(n.Current(), SignUp)
		fill(n, "bob", "", "y", "y")
		press(n, "enter")
		is.Equal(n.Current(), SignUp)
		is.Equal(n.alerts[0].body, "User exists")
	})
}

func TestScreens_Login(t *testing.T) {
	a := newTestApp(t)
	if err := a.Register("bob", "x", "x"); err != nil {
		t.Fatal(err)
	}
	n := New(a)
	press(n, "enter")

	t.Run("invalid credentials", func(t *testing.T) {
		is := is.New(t)
		is.Equal(n.Current(), Login)
		fill(n, "bob", "X")
		press(n, "enter")
		is.Equal(n.Current(), Login)
		is.Equal(n.alerts[0].body, "Invalid credentials")
		is.True(!a.Session().Active())
		press(n, "enter")
	})

	t.Run("success", func(t *testing.T) {
		is := is.New(t)
		n.screens[Login].(*login).form.Reset()
		fill(n, "bob", "x")
		press(n, "enter")
		is.Equal(n.Current(), Menu)
		user, _ := a.Session().User()
		is.Equal(user, "bob")
		is.True(strings.Contains(n.View(), "bob"))
	})
}

func TestScreens_Tasks(t *testing.T) {
	a := newTestApp(t)
	if err := a.Register("bob", "x", "x"); err != nil {
		t.Fatal(err)
	}
	n := New(a)
	press(n, "enter")
	fill(n, "bob", "x")
	press(n, "enter")

	list := func(t *testing.T) task.Tasks {
		t.Helper()
		ts, err := a.ListTasks()
		if err != nil {
			t.Fatal(err)
		}
		return ts
	}

	t.Run("create", func(t *testing.T) {
		is := is.New(t)
		is.Equal(n.Current(), Menu)
		press(n, "enter")
		is.Equal(n.Current(), CreateTask)
		fill(n, "Buy milk", "2%", "2024-01-01")
		press(n, "enter")
		is.Equal(n.Current(), Menu)
		is.Equal(n.alerts[0].body, "Task created!")
		press(n, "enter")

		is.Equal(list(t), task.Tasks{{Title: "Buy milk", Desc: "2%", Due: "2024-01-01", Status: "Pending"}})
	})

	t.Run("create with esc", func(t *testing.T) {
		is := is.New(t)
		press(n, "enter")
		typeText(n, "never saved")
		press(n, "esc")
		is.Equal(n.Current(), Menu)
		is.Equal(len(list(t)), 1)
	})

	t.Run("view", func(t *testing.T) {
		is := is.New(t)
		press(n, "down", "down", "down", "enter")
		is.Equal(n.Current(), ViewTask)
		is.True(strings.Contains(n.View(), "1. Buy milk"))
		press(n, "esc")
		is.Equal(n.Current(), Menu)
	})

	t.Run("update cancelled", func(t *testing.T) {
		is := is.New(t)
		press(n, "up", "up", "enter")
		is.Equal(n.Current(), UpdateTask)
		press(n, "enter")
		typeText(n, " today")
		press(n, "enter") // title accepted
		press(n, "esc")   // description cancelled
		is.Equal(list(t)[0].Title, "Buy milk")
		is.Equal(n.screens[UpdateTask].(*update).editing, -1)
	})

	t.Run("update", func(t *testing.T) {
		is := is.New(t)
		press(n, "enter")
		typeText(n, "!")
		press(n, "enter")
		typeText(n, " fat")
		press(n, "enter", "enter")
		is.Equal(list(t), task.Tasks{{Title: "Buy milk!", Desc: "2% fat", Due: "2024-01-01", Status: "Pending"}})
		is.True(strings.Contains(n.View(), "Buy milk! (Edit)"))
		press(n, "esc")
	})

	t.Run("delete", func(t *testing.T) {
		is := is.New(t)
		for _, title := range []string{"second", "third"} {
			is.NoErr(a.CreateTask(title, "", ""))
		}
		press(n, "down", "enter")
		is.Equal(n.Current(), DeleteTask)
		press(n, "down", "enter") // delete "second"
		is.Equal(len(list(t)), 2)
		is.Equal(list(t)[1].Title, "third")
		press(n, "up", "enter", "enter")
		is.Equal(len(list(t)), 0)
		press(n, "enter") // only Back is left
		is.Equal(n.Current(), Menu)
	})

	t.Run("logout", func(t *testing.T) {
		is := is.New(t)
		press(n, "down", "down", "down", "down", "down", "enter")
		is.Equal(n.Current(), Welcome)
		is.True(!a.Session().Active())
	})
}
