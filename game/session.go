package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Session is one player's game: the hidden sequence, the current round, and
// the replay collected so far. A Session is not safe for concurrent use;
// the engine owns it for the duration of Run.
type Session struct {
	// Sequence holds the generated symbols. During a round its length is
	// exactly Difficulty+1; each slot is written once and never changes.
	Sequence []Symbol

	// Difficulty is the current round, counted from zero.
	Difficulty int

	// Phase is the loop position. The zero value is the welcome screen.
	Phase Phase

	collected []Symbol
	rng       *rand.Rand
}

// NewSession starts an empty session. A nil rng falls back to the clock.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		Sequence:  make([]Symbol, 0, MaxLength),
		collected: make([]Symbol, 0, MaxLength),
		rng:       rng,
	}
}

// Extend draws one random symbol and appends it at the current difficulty.
// Extending past the cap is a caller bug and panics.
func (s *Session) Extend() Symbol {
	if s.Difficulty >= MaxLength {
		panic(fmt.Sprintf("game: sequence extended past cap %d", MaxLength))
	}
	sym := Symbol(s.rng.Intn(NumSymbols))
	s.Sequence = append(s.Sequence[:s.Difficulty], sym)
	return sym
}

// Reset wipes the sequence and difficulty for a fresh game.
func (s *Session) Reset() {
	s.Sequence = s.Sequence[:0]
	s.Difficulty = 0
	s.collected = s.collected[:0]
}
