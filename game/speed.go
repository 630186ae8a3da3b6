package game

import "time"

// Playback pacing. The tiers shift at rounds 13 and 26; past that the game
// plays as fast as the steps stay readable.
const (
	delaySlow   = 420 * time.Millisecond
	delayMedium = 220 * time.Millisecond
	delayFast   = 90 * time.Millisecond
)

// StepDelay is the on and the off time of one playback step at the given
// difficulty.
func StepDelay(difficulty int) time.Duration {
	switch {
	case difficulty < 13:
		return delaySlow
	case difficulty < 26:
		return delayMedium
	default:
		return delayFast
	}
}
