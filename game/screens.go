package game

// The fixed display screens, one per game moment. Lines are short and meant
// to be centered; Output implementations decide typography.
var (
	screenWelcome  = []string{"Welcome to", "Simon Says", "Press X", "to Start"}
	screenPlaying  = []string{"Playing", "Sequence!"}
	screenChecking = []string{"Checking", "Sequence!"}
	screenGoodJob  = []string{"GOOD JOB!"}
	screenLost     = []string{"You Lost!", "Sorry,", "Thanks for", "Playing!"}
	screenWon      = []string{"CONGRATS!", "YOU WON!", "Thanks for", "Playing!"}
)

// countdownSteps run after the start press, one beat apiece.
var countdownSteps = []string{"3", "2", "1", "Go!"}

// echoScreen is the checking screen plus the digit of the pad just pressed.
func echoScreen(sym Symbol) []string {
	return []string{screenChecking[0], screenChecking[1], "", sym.Digit()}
}
