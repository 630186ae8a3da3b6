package debug

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func logPath(t *testing.T) string {
	t.Helper()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	return filepath.Join(home, ".config", "go-simon", "debug.log")
}

func TestEnableWritesToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	defer Disable()

	Log().Info().Msg("pad pressed")

	data, err := os.ReadFile(logPath(t))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "pad pressed") {
		t.Errorf("log file %q missing the logged message", data)
	}
}

func TestDisableDropsLateWrites(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	// a goroutine may hold the logger past Disable; its writes must vanish
	l := Log()
	Disable()
	l.Info().Msg("after close")

	data, err := os.ReadFile(logPath(t))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "after close") {
		t.Errorf("write after Disable() reached the file: %q", data)
	}
}

func TestLogConcurrentWithDisable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Log().Debug().Int("n", j).Msg("tick")
			}
		}()
	}
	Disable()
	wg.Wait()
}
