package parameter

// Round Structure
const (
	// MaxRounds is the number of rounds in a full game
	MaxRounds = 5

	// SequenceBaseLength is the sequence length in round 1
	SequenceBaseLength = 2

	// SequenceGrowth is the per-round sequence length increment
	SequenceGrowth = 2

	// ErrorBudgetPerRound is the number of wrong inputs tolerated
	// before the game performs a full restart
	ErrorBudgetPerRound = 1
)
