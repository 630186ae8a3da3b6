package game

import "fmt"

// Result classifies a judged round.
type Result int

const (
	// ResultCorrect means the full round was replayed without a mistake.
	ResultCorrect Result = iota
	// ResultIncorrect means the replay diverged from the sequence.
	ResultIncorrect
	// ResultCompleted means the last possible round was cleared; the game
	// is won.
	ResultCompleted
)

var resultNames = [...]string{"Correct", "Incorrect", "Completed"}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return resultNames[r]
}

// Outcome is the verdict for one collected replay.
type Outcome struct {
	Result Result

	// FailedAt is the index of the first wrong press, or -1 when there is
	// none.
	FailedAt int
}

// Evaluate judges a collected replay against the generated sequence for the
// given difficulty. Comparison is position by position and stops at the
// first mismatch; nothing past it is ever read, so a replay that went wrong
// at index i is judged the same no matter what came after.
//
// A replay that is too long, or that ran short without containing a
// mismatch, cannot have come from a well-behaved collector and panics.
func Evaluate(generated, collected []Symbol, difficulty int) Outcome {
	want := difficulty + 1
	if len(collected) > want {
		panic(fmt.Sprintf("game: judged %d presses for a round of %d", len(collected), want))
	}
	for i, sym := range collected {
		if sym != generated[i] {
			return Outcome{Result: ResultIncorrect, FailedAt: i}
		}
	}
	if len(collected) < want {
		panic(fmt.Sprintf("game: judged %d presses for a round of %d with no mismatch", len(collected), want))
	}
	if difficulty == MaxLength-1 {
		return Outcome{Result: ResultCompleted, FailedAt: -1}
	}
	return Outcome{Result: ResultCorrect, FailedAt: -1}
}
