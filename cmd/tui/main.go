package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/todo/internal/app"
	"github.com/td0m/todo/internal/config"
	"github.com/td0m/todo/internal/screen"
	"github.com/td0m/todo/pkg/account"
	"github.com/td0m/todo/pkg/task"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	check(err)

	logger, closer, err := cfg.Logger()
	check(err)
	defer closer.Close()

	accounts, err := account.Open(cfg.DataDir)
	if err != nil {
		logger.Error("load users", "dir", cfg.DataDir, "err", err)
	}
	check(err)
	logger.Info("started", "dir", cfg.DataDir, "users", accounts.Len())

	a := app.New(accounts, task.NewStore(cfg.DataDir), logger)

	p := tea.NewProgram(screen.New(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("ui", "err", err)
		check(err)
	}
	logger.Info("exited")
}
