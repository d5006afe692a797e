// Package config loads settings from defaults, an optional TOML file, TODO_*
// environment variables and command line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DefaultFile is read when present and no -config flag is given
const DefaultFile = "todo.toml"

type Config struct {
	// DataDir holds users.json and every <user>_tasks.json
	DataDir  string `toml:"data_dir"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

func defaults() *Config {
	return &Config{
		DataDir:  ".",
		LogLevel: "info",
	}
}

// Load parses args with fs and resolves the final configuration.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var (
		file     = fs.String("config", "", "Path to a TOML config file (default ./"+DefaultFile+" if present)")
		dataDir  = fs.String("data", "", "Directory holding users.json and task files")
		logFile  = fs.String("log-file", "", "Write logs to this file")
		logLevel = fs.String("log-level", "", "Log level: debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults()

	if *file != "" {
		if _, err := toml.DecodeFile(*file, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", *file, err)
		}
	} else if _, err := os.Stat(DefaultFile); err == nil {
		if _, err := toml.DecodeFile(DefaultFile, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", DefaultFile, err)
		}
	}

	fromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataDir = *dataDir
		case "log-file":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if cfg.DataDir == "" {
		return nil, errors.New("data dir must not be empty")
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}

func fromEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TODO_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv("TODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("TODO_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}

// Logger builds the application logger. The terminal belongs to the UI, so
// logs only go to LogFile; without one they are discarded. The returned
// closer must be called on exit.
func (c Config) Logger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
	return logger, closer, nil
}
