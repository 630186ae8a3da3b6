// Package panel owns the board state shared between the engine and its
// renderers: the message screen, the five pad lights, and the press queue.
// It is the engine's Input and Output; the TUI reads snapshots and an
// attached grid controller mirrors the lights.
package panel

import (
	"context"
	"sync"

	"go-simon/debug"
	"go-simon/game"
	"go-simon/midi"
	"go-simon/theme"
)

// Panel implements game.Input and game.Output.
type Panel struct {
	mu     sync.RWMutex
	screen []string
	lit    [game.NumSymbols]bool
	ctrl   midi.Controller
	th     *theme.Theme

	presses chan game.Symbol

	// UpdateChan gets a token whenever something visible changed. Buffered
	// by one; renderers drain it and repaint.
	UpdateChan chan struct{}
}

func New(th *theme.Theme) *Panel {
	return &Panel{
		th:         th,
		presses:    make(chan game.Symbol, 8),
		UpdateChan: make(chan struct{}, 1),
	}
}

// Press queues one debounced pad activation. Safe from any goroutine; a
// full queue drops the press.
func (p *Panel) Press(sym game.Symbol) {
	if !sym.Valid() {
		return
	}
	select {
	case p.presses <- sym:
	default:
		debug.Log().Debug().Stringer("symbol", sym).Msg("press dropped, queue full")
	}
}

// Next implements game.Input.
func (p *Panel) Next(ctx context.Context) (game.Symbol, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case sym := <-p.presses:
		return sym, nil
	}
}

// Drain implements game.Input.
func (p *Panel) Drain() {
	for {
		select {
		case <-p.presses:
		default:
			return
		}
	}
}

// Activate implements game.Output.
func (p *Panel) Activate(sym game.Symbol) error {
	p.setLit(sym, true)
	return nil
}

// Deactivate implements game.Output.
func (p *Panel) Deactivate(sym game.Symbol) error {
	p.setLit(sym, false)
	return nil
}

// ShowMessage implements game.Output.
func (p *Panel) ShowMessage(lines ...string) error {
	p.mu.Lock()
	p.screen = append(p.screen[:0], lines...)
	p.mu.Unlock()
	p.notify()
	return nil
}

func (p *Panel) setLit(sym game.Symbol, on bool) {
	p.mu.Lock()
	p.lit[sym] = on
	ctrl := p.ctrl
	p.mu.Unlock()

	if ctrl != nil {
		row, col := midi.PadForSymbol(sym)
		color := p.th.PadDim(sym)
		if on {
			color = p.th.Pad(sym)
		}
		if err := ctrl.SetLED(row, col, [3]uint8(color), midi.ChannelStatic); err != nil {
			debug.Log().Warn().Err(err).Str("id", ctrl.ID()).Msg("LED write failed, detaching")
			p.DetachController(ctrl.ID())
		}
	}
	p.notify()
}

// AttachController starts mirroring the pad lights on ctrl, painting the
// current state right away.
func (p *Panel) AttachController(ctrl midi.Controller) {
	p.mu.Lock()
	p.ctrl = ctrl
	lit := p.lit
	p.mu.Unlock()

	ctrl.ClearLEDs()
	for i := 0; i < game.NumSymbols; i++ {
		sym := game.Symbol(i)
		row, col := midi.PadForSymbol(sym)
		color := p.th.PadDim(sym)
		if lit[i] {
			color = p.th.Pad(sym)
		}
		ctrl.SetLED(row, col, [3]uint8(color), midi.ChannelStatic)
	}
	p.notify()
}

// DetachController stops mirroring. The id must match, so a stale
// disconnect cannot drop a newer controller.
func (p *Panel) DetachController(id string) {
	p.mu.Lock()
	if p.ctrl != nil && p.ctrl.ID() == id {
		p.ctrl = nil
	}
	p.mu.Unlock()
	p.notify()
}

// Screen returns a copy of the current message lines.
func (p *Panel) Screen() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.screen...)
}

// Lit returns the pad light states.
func (p *Panel) Lit() [game.NumSymbols]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lit
}

// notify pokes the renderers without ever blocking.
func (p *Panel) notify() {
	select {
	case p.UpdateChan <- struct{}{}:
	default:
	}
}
