package game

import "github.com/lixenwraith/recall/parameter"

// RoundState is the authoritative mutable game state
// Owned exclusively by the Controller; nothing else writes it
// Invariant: Progress is always a prefix-equal match of Sequence
type RoundState struct {
	Round      int
	Sequence   []rune
	Progress   []rune
	ErrorsLeft int
	Difficulty Difficulty
}

// NewRoundState creates state positioned at round 1 with a full error budget
func NewRoundState(d Difficulty) *RoundState {
	s := &RoundState{}
	s.Reset(d)
	return s
}

// Reset returns the state to round 1 with no sequence and a full budget
func (s *RoundState) Reset(d Difficulty) {
	s.Round = 1
	s.Sequence = nil
	s.Progress = nil
	s.ErrorsLeft = parameter.ErrorBudgetPerRound
	s.Difficulty = d
}

// BeginRound installs the target sequence for the current round,
// clearing progress and refilling the error budget
func (s *RoundState) BeginRound(seq []rune) {
	s.Sequence = seq
	s.Progress = s.Progress[:0]
	s.ErrorsLeft = parameter.ErrorBudgetPerRound
}

// ClearProgress rewinds the input cursor to the start of the sequence
func (s *RoundState) ClearProgress() {
	s.Progress = s.Progress[:0]
}

// Expected returns the symbol the player must enter next
// Only valid while Complete() is false
func (s *RoundState) Expected() rune {
	return s.Sequence[len(s.Progress)]
}

// Accept appends a matched symbol to the progress prefix
func (s *RoundState) Accept(sym rune) {
	s.Progress = append(s.Progress, sym)
}

// Complete reports whether the full sequence has been reproduced
func (s *RoundState) Complete() bool {
	return len(s.Sequence) > 0 && len(s.Progress) == len(s.Sequence)
}
