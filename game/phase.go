package game

import "fmt"

// Phase is where the game loop currently sits. Transitions happen only at
// the end of a phase step; there are no mid-step jumps.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlayback
	PhaseCollecting
	PhaseFailed
	PhaseWon
)

var phaseNames = [...]string{"Idle", "Playback", "Collecting", "Failed", "Won"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}
