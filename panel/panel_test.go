package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-simon/game"
	"go-simon/midi"
	"go-simon/theme"
)

// fakePad records LED writes and feeds no events.
type fakePad struct {
	id     string
	leds   map[[2]int][3]uint8
	padc   chan midi.PadEvent
	ledErr error
}

func newFakePad(id string) *fakePad {
	return &fakePad{
		id:   id,
		leds: make(map[[2]int][3]uint8),
		padc: make(chan midi.PadEvent),
	}
}

func (f *fakePad) ID() string                      { return f.id }
func (f *fakePad) PadEvents() <-chan midi.PadEvent { return f.padc }
func (f *fakePad) Close() error                    { return nil }

func (f *fakePad) SetLED(row, col int, rgb [3]uint8, channel uint8) error {
	if f.ledErr != nil {
		return f.ledErr
	}
	f.leds[[2]int{row, col}] = rgb
	return nil
}

func (f *fakePad) ClearLEDs() error {
	f.leds = make(map[[2]int][3]uint8)
	return nil
}

func TestPressNextRoundTrip(t *testing.T) {
	p := New(theme.Default())
	p.Press(game.Octagon)
	sym, err := p.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if sym != game.Octagon {
		t.Errorf("Next() = %v, want %v", sym, game.Octagon)
	}
}

func TestPressInvalidDropped(t *testing.T) {
	p := New(theme.Default())
	p.Press(game.Symbol(-2))
	p.Press(game.Symbol(99))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if sym, err := p.Next(ctx); err == nil {
		t.Errorf("Next() = %v for an invalid press, want none", sym)
	}
}

func TestDrainDiscardsStalePresses(t *testing.T) {
	p := New(theme.Default())
	p.Press(game.X)
	p.Press(game.Circle)
	p.Drain()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if sym, err := p.Next(ctx); err == nil {
		t.Errorf("Next() = %v after Drain(), want none", sym)
	}
}

func TestPressDropsWhenFull(t *testing.T) {
	p := New(theme.Default())
	for i := 0; i < 50; i++ {
		p.Press(game.X) // must never block
	}
	kept := 0
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		_, err := p.Next(ctx)
		cancel()
		if err != nil {
			break
		}
		kept++
	}
	if kept == 0 || kept >= 50 {
		t.Errorf("kept %d presses, want a small bounded queue", kept)
	}
}

func TestNextHonorsCancel(t *testing.T) {
	p := New(theme.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Next(ctx)
		done <- err
	}()
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Next() error = %v, want %v", err, context.Canceled)
	}
}

func TestActivateTracksLights(t *testing.T) {
	p := New(theme.Default())
	if err := p.Activate(game.Square); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	var want [game.NumSymbols]bool
	want[game.Square] = true
	if got := p.Lit(); got != want {
		t.Errorf("Lit() = %v, want %v", got, want)
	}
	if err := p.Deactivate(game.Square); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if got := p.Lit(); got != [game.NumSymbols]bool{} {
		t.Errorf("Lit() after Deactivate = %v, want all off", got)
	}
}

func TestShowMessageSnapshotIsolated(t *testing.T) {
	p := New(theme.Default())
	p.ShowMessage("Checking", "Sequence!")
	got := p.Screen()
	got[0] = "mutated"
	if p.Screen()[0] != "Checking" {
		t.Errorf("Screen() shares its backing array with callers")
	}
}

func TestUpdateChanSignals(t *testing.T) {
	p := New(theme.Default())
	p.ShowMessage("hi")
	select {
	case <-p.UpdateChan:
	default:
		t.Errorf("no update queued after ShowMessage")
	}
	// repeated changes must never block
	for i := 0; i < 10; i++ {
		p.Activate(game.X)
		p.Deactivate(game.X)
	}
}

func TestAttachPaintsRestingPads(t *testing.T) {
	th := theme.Default()
	p := New(th)
	f := newFakePad("fake")
	p.AttachController(f)
	for i := 0; i < game.NumSymbols; i++ {
		sym := game.Symbol(i)
		row, col := midi.PadForSymbol(sym)
		if got, want := f.leds[[2]int{row, col}], [3]uint8(th.PadDim(sym)); got != want {
			t.Errorf("pad %v LED = %v, want resting %v", sym, got, want)
		}
	}
}

func TestActivateMirrorsToController(t *testing.T) {
	th := theme.Default()
	p := New(th)
	f := newFakePad("fake")
	p.AttachController(f)

	p.Activate(game.Circle)
	row, col := midi.PadForSymbol(game.Circle)
	if got, want := f.leds[[2]int{row, col}], [3]uint8(th.Pad(game.Circle)); got != want {
		t.Errorf("lit pad LED = %v, want %v", got, want)
	}

	p.DetachController("fake")
	p.Activate(game.X) // no controller attached; must not panic
}

func TestDetachIgnoresStaleID(t *testing.T) {
	th := theme.Default()
	p := New(th)
	f := newFakePad("new")
	p.AttachController(f)
	p.DetachController("old")

	p.Activate(game.X)
	row, col := midi.PadForSymbol(game.X)
	if got, want := f.leds[[2]int{row, col}], [3]uint8(th.Pad(game.X)); got != want {
		t.Errorf("controller dropped by a stale detach; LED = %v, want %v", got, want)
	}
}

func TestLEDFailureDetaches(t *testing.T) {
	p := New(theme.Default())
	f := newFakePad("flaky")
	p.AttachController(f)

	f.ledErr = errors.New("write failed")
	p.Activate(game.X)

	// discard the attach-time paint; a detached controller gets no writes
	f.ledErr = nil
	f.leds = make(map[[2]int][3]uint8)

	p.Activate(game.Square)
	if len(f.leds) != 0 {
		t.Errorf("LEDs written after a failed write = %v, want the controller detached", f.leds)
	}
}
