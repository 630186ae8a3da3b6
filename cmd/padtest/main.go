// padtest exercises a connected Launchpad outside the game: list ports,
// detect the device, paint the game pads, or watch presses.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-simon/game"
	"go-simon/midi"
	"go-simon/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detect()
	case "leds":
		paintPads()
	case "watch":
		watchPads()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("padtest - Launchpad diagnostics")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find a Launchpad")
	fmt.Println("  leds    - Paint the five game pads")
	fmt.Println("  watch   - Print pad presses")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ch <- result{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! The MIDI backend is hung.")
	}
}

func findLaunchpad() (drivers.In, drivers.Out) {
	var in drivers.In
	var out drivers.Out
	for _, p := range gomidi.GetInPorts() {
		name := strings.ToLower(p.String())
		if strings.Contains(name, "launchpad") && strings.Contains(name, "midi") {
			in = p
			break
		}
	}
	for _, p := range gomidi.GetOutPorts() {
		name := strings.ToLower(p.String())
		if strings.Contains(name, "launchpad") && strings.Contains(name, "midi") {
			out = p
			break
		}
	}
	return in, out
}

func detect() {
	fmt.Println("Looking for a Launchpad...")
	in, out := findLaunchpad()
	if in != nil {
		fmt.Printf("Found input:  %s\n", in.String())
	}
	if out != nil {
		fmt.Printf("Found output: %s\n", out.String())
	}
	if in != nil && out != nil {
		fmt.Println("\nLaunchpad detected!")
	} else {
		fmt.Println("\nLaunchpad not found")
	}
}

func paintPads() {
	in, out := findLaunchpad()
	if out == nil {
		fmt.Println("No Launchpad found")
		return
	}
	lp, err := midi.NewLaunchpad(out.String(), in, out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lp.Close()

	th := theme.Default()
	fmt.Println("Painting the game pads (the start pad pulses)...")
	for i := 0; i < game.NumSymbols; i++ {
		sym := game.Symbol(i)
		row, col := midi.PadForSymbol(sym)
		channel := midi.ChannelStatic
		if sym == game.StartSymbol {
			channel = midi.ChannelPulse
		}
		lp.SetLED(row, col, [3]uint8(th.Pad(sym)), channel)
		time.Sleep(150 * time.Millisecond)
	}

	fmt.Println("Press Enter to clear...")
	fmt.Scanln()
}

func watchPads() {
	in, out := findLaunchpad()
	if in == nil {
		fmt.Println("No Launchpad found")
		return
	}
	lp, err := midi.NewLaunchpad(in.String(), in, out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lp.Close()

	fmt.Println("Watching pad presses. Ctrl+C to exit.")
	for pad := range lp.PadEvents() {
		if sym, ok := midi.SymbolForPad(pad.Row, pad.Col); ok {
			fmt.Printf("  row %d col %d vel %3d -> %s\n", pad.Row, pad.Col, pad.Velocity, sym)
		} else {
			fmt.Printf("  row %d col %d vel %3d (not a game pad)\n", pad.Row, pad.Col, pad.Velocity)
		}
	}
}
