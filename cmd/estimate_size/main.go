package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/td0m/todo/pkg/persist"
	"github.com/td0m/todo/pkg/task"
)

var (
	perDay = flag.Int("per-day", 30, "Tasks created per day")
	years  = flag.Int("years", 1, "Years of tasks")
)

// estimate_size measures how large a task file gets, and how long a single
// create takes once every create has to reload and rewrite all of it
func main() {
	flag.Parse()
	total := 365 * *perDay * *years

	dir, err := os.MkdirTemp("", "todo-estimate")
	check(err)
	defer os.RemoveAll(dir)

	const user = "estimate"
	s := task.NewStore(dir)
	ts := make(task.Tasks, 0, total)
	for i := 0; i < total; i++ {
		ts = ts.Append(randomString(20), randomString(60), "2024-01-01")
	}

	writeTime := measureTime(func() {
		check(persist.InJSON(s.File(user), persist.Tasks).Save(ts))
	})
	readTime := measureTime(func() {
		_, err := s.List(user)
		check(err)
	})
	createTime := measureTime(func() {
		check(s.Create(user, "one more", "", ""))
	})

	info, err := os.Stat(s.File(user))
	check(err)
	fmt.Printf("Tasks: %d years, %d per day (%d total)\n", *years, *perDay, total)
	fmt.Printf("File size: %dKB\n", info.Size()/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
	fmt.Printf("Create time: %dms\n", createTime.Milliseconds())
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
