package game

import (
	"context"
	"fmt"
	"time"

	"go-simon/debug"
)

// Engine runs the game loop: a cyclic state machine whose only suspension
// point is waiting for the player. Each phase step runs to completion and
// then hands over; a canceled context is the only other way out.
type Engine struct {
	session *Session
	in      Input
	out     Output

	// sleep paces playback and screen dwells; tests swap it out.
	sleep func(ctx context.Context, d time.Duration) error
}

const (
	countdownBeat = 650 * time.Millisecond
	echoHold      = 200 * time.Millisecond
	goodJobHold   = 700 * time.Millisecond
	gameOverHold  = 2 * time.Second
)

// New wires an engine to its session and board services.
func New(session *Session, in Input, out Output) *Engine {
	return &Engine{session: session, in: in, out: out, sleep: sleepCtx}
}

// Run drives the loop until ctx ends or a board service fails. It never
// returns nil.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch e.session.Phase {
		case PhaseIdle:
			err = e.idle(ctx)
		case PhasePlayback:
			err = e.playback(ctx)
		case PhaseCollecting:
			err = e.collect(ctx)
		case PhaseFailed:
			err = e.gameOver(ctx, screenLost)
		case PhaseWon:
			err = e.gameOver(ctx, screenWon)
		default:
			panic(fmt.Sprintf("game: phase %d out of range", int(e.session.Phase)))
		}
		if err != nil {
			return err
		}
	}
}

// idle shows the welcome screen and waits for the start pad. Other pads do
// nothing here.
func (e *Engine) idle(ctx context.Context) error {
	if err := e.out.ShowMessage(screenWelcome...); err != nil {
		return err
	}
	e.in.Drain()
	for {
		sym, err := e.in.Next(ctx)
		if err != nil {
			return err
		}
		if sym == StartSymbol {
			break
		}
		debug.Log().Debug().Stringer("symbol", sym).Msg("ignored while idle")
	}
	// every start is a fresh game
	e.session.Reset()
	if err := e.countdown(ctx); err != nil {
		return err
	}
	e.session.Phase = PhasePlayback
	return nil
}

func (e *Engine) countdown(ctx context.Context) error {
	for _, step := range countdownSteps {
		if err := e.out.ShowMessage(step); err != nil {
			return err
		}
		if err := e.sleep(ctx, countdownBeat); err != nil {
			return err
		}
	}
	return nil
}

// playback extends the sequence by one symbol and replays the whole thing,
// pad on then off, at the difficulty's pace.
func (e *Engine) playback(ctx context.Context) error {
	s := e.session
	sym := s.Extend()
	debug.Log().Info().
		Int("difficulty", s.Difficulty).
		Stringer("symbol", sym).
		Msg("sequence extended")
	if err := e.out.ShowMessage(screenPlaying...); err != nil {
		return err
	}
	step := StepDelay(s.Difficulty)
	for _, sq := range s.Sequence {
		if err := e.out.Activate(sq); err != nil {
			return err
		}
		if err := e.sleep(ctx, step); err != nil {
			return err
		}
		if err := e.out.Deactivate(sq); err != nil {
			return err
		}
		if err := e.sleep(ctx, step); err != nil {
			return err
		}
	}
	s.Phase = PhaseCollecting
	return nil
}

// collect reads the replay one press at a time, echoing every press before
// any judgment. Collection stops after the first wrong press; the verdict
// comes from Evaluate.
func (e *Engine) collect(ctx context.Context) error {
	s := e.session
	if err := e.out.ShowMessage(screenChecking...); err != nil {
		return err
	}
	e.in.Drain()
	s.collected = s.collected[:0]
	for i := 0; i <= s.Difficulty; i++ {
		sym, err := e.in.Next(ctx)
		if err != nil {
			return err
		}
		if err := e.echo(ctx, sym); err != nil {
			return err
		}
		s.collected = append(s.collected, sym)
		if sym != s.Sequence[i] {
			break
		}
	}
	out := Evaluate(s.Sequence, s.collected, s.Difficulty)
	debug.Log().Info().
		Int("difficulty", s.Difficulty).
		Stringer("result", out.Result).
		Int("failedAt", out.FailedAt).
		Msg("round judged")
	switch out.Result {
	case ResultIncorrect:
		s.Phase = PhaseFailed
	case ResultCompleted:
		s.Phase = PhaseWon
	case ResultCorrect:
		if err := e.out.ShowMessage(screenGoodJob...); err != nil {
			return err
		}
		if err := e.sleep(ctx, goodJobHold); err != nil {
			return err
		}
		s.Difficulty++
		s.Phase = PhasePlayback
	}
	return nil
}

// echo flashes the pressed pad and shows its digit on the display.
func (e *Engine) echo(ctx context.Context, sym Symbol) error {
	if err := e.out.Activate(sym); err != nil {
		return err
	}
	if err := e.out.ShowMessage(echoScreen(sym)...); err != nil {
		return err
	}
	if err := e.sleep(ctx, echoHold); err != nil {
		return err
	}
	if err := e.out.Deactivate(sym); err != nil {
		return err
	}
	return e.out.ShowMessage(screenChecking...)
}

// gameOver shows the closing screen, lets it sit, and resets for the next
// player.
func (e *Engine) gameOver(ctx context.Context, screen []string) error {
	if err := e.out.ShowMessage(screen...); err != nil {
		return err
	}
	if err := e.sleep(ctx, gameOverHold); err != nil {
		return err
	}
	e.session.Reset()
	e.session.Phase = PhaseIdle
	return nil
}

// sleepCtx waits out d unless ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
