package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundKey      SoundType = iota // Demonstration / accepted key blip
	SoundRoundWin                  // Round cleared arpeggio
	SoundGameWin                   // Full game fanfare
	SoundError                     // First wrong input buzz
	SoundFail                      // Game over descent
	SoundTypeCount
)
