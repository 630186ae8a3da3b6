package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-simon/config"
	"go-simon/debug"
	"go-simon/game"
	"go-simon/midi"
	"go-simon/panel"
	"go-simon/theme"
	"go-simon/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer debug.Disable()
	}

	th := theme.Default()
	pnl := panel.New(th)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	sess := game.NewSession(rng)
	engine := game.New(sess, pnl, pnl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Device watcher (hot-plug); a Launchpad can arrive any time
	var deviceMgr *midi.DeviceManager
	if !cfg.NoMIDI {
		deviceMgr = midi.NewDeviceManager(cfg.LaunchpadPort)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(pnl, deviceMgr, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		err := engine.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			debug.Log().Error().Err(err).Msg("engine stopped")
		}
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
