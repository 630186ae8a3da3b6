package game

import "context"

// Input delivers the player's pad presses, one per physical activation,
// already debounced. Implementations sit on the board side: terminal keys,
// a grid controller, a test script.
type Input interface {
	// Next blocks until the player presses a pad. Waiting forever is
	// normal; the error is non-nil only when ctx ends or the source is
	// gone for good, and the engine stops on it.
	Next(ctx context.Context) (Symbol, error)

	// Drain throws away presses buffered while the game was not
	// listening, so stale taps never count toward a round.
	Drain()
}

// Output drives the pad indicators and the message display. Failures
// propagate out of the engine.
type Output interface {
	Activate(Symbol) error
	Deactivate(Symbol) error
	ShowMessage(lines ...string) error
}
