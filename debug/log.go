// Package debug writes a structured log to a file when enabled. The TUI
// owns the terminal, so nothing may log to stdout; tail the file instead:
//
//	tail -f ~/.config/go-simon/debug.log
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	file   *os.File
	nop    = zerolog.Nop()
	logger = &nop
)

// output is the logger's sink. Every write takes the package lock; writes
// while no file is open are dropped.
type output struct{}

func (output) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return len(p), nil
	}
	return file.Write(p)
}

// Enable truncates and opens ~/.config/go-simon/debug.log and starts
// logging to it. Call it once at startup, before anything logs; the logger
// installed here is never swapped out again, so goroutines may hold it
// across Disable.
func Enable() error {
	if err := open(); err != nil {
		return err
	}
	Log().Info().Msg("debug logging started")
	return nil
}

func open() error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "go-simon")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	file = f
	if logger == &nop {
		l := zerolog.New(zerolog.ConsoleWriter{
			Out:        output{},
			NoColor:    true,
			TimeFormat: "15:04:05.000",
		}).With().Timestamp().Logger()
		logger = &l
	}
	return nil
}

// Disable closes the file. Later writes are dropped, not errors.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
}

// Log returns the active logger. While disabled it swallows everything, so
// call sites never need to check.
func Log() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
