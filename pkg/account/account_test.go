package account

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/todo/pkg/persist"
)

func TestStore_RegisterCreatesFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	s, err := Open(dir)
	is.NoErr(err)
	is.NoErr(s.Register("alice", "pw", "pw"))

	bs, err := os.ReadFile(filepath.Join(dir, FileName))
	is.NoErr(err)
	var users map[string]string
	is.NoErr(json.Unmarshal(bs, &users))
	is.Equal(users, map[string]string{"alice": "pw"})
}

func TestStore_Register(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("password mismatch", func(t *testing.T) {
		is := is.New(t)
		is.Equal(s.Register("alice", "pw", "PW"), ErrPasswordMismatch)
		is.True(!s.Exists("alice"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(s.Register("alice", "pw", "pw"))
		is.Equal(s.Register("alice", "other", "other"), ErrUserExists)
		is.Equal(s.Len(), 1)
		is.NoErr(s.Authenticate("alice", "pw")) // first password wins
	})

	t.Run("path separators", func(t *testing.T) {
		is := is.New(t)
		is.Equal(s.Register("../evil", "x", "x"), ErrInvalidUsername)
		is.Equal(s.Register(`a\b`, "x", "x"), ErrInvalidUsername)
	})
}

func TestStore_Authenticate(t *testing.T) {
	is := is.New(t)
	s, err := Open(t.TempDir())
	is.NoErr(err)
	is.NoErr(s.Register("bob", "Secret", "Secret"))

	is.NoErr(s.Authenticate("bob", "Secret"))
	is.Equal(s.Authenticate("bob", "secret"), ErrInvalidCredentials)
	is.Equal(s.Authenticate("Bob", "Secret"), ErrInvalidCredentials)
	is.Equal(s.Authenticate("nobody", ""), ErrInvalidCredentials)
}

func TestOpen_Reload(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	s, err := Open(dir)
	is.NoErr(err)
	is.NoErr(s.Register("bob", "x", "x"))

	s2, err := Open(dir)
	is.NoErr(err)
	is.NoErr(s2.Authenticate("bob", "x"))
}

func TestOpen_Corrupt(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, FileName), []byte(`{"bob": `), 0600))

	_, err := Open(dir)
	is.True(errors.Is(err, persist.ErrCorrupt))
}
