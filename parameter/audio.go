package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Key Blip
const (
	KeySoundDuration = 120 * time.Millisecond
	KeySoundAttack   = 5 * time.Millisecond
	KeySoundRelease  = 40 * time.Millisecond
)

// Error Buzz
const (
	ErrorSoundDuration = 200 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 50 * time.Millisecond
)

// Fail Descent
const (
	FailSoundStepDuration = 180 * time.Millisecond
	FailSoundAttack       = 5 * time.Millisecond
	FailSoundRelease      = 60 * time.Millisecond
)

// Round Win Arpeggio
const (
	RoundWinNoteDuration = 130 * time.Millisecond
	RoundWinAttack       = 5 * time.Millisecond
	RoundWinRelease      = 50 * time.Millisecond
)

// Game Win Fanfare
const (
	GameWinNoteDuration = 200 * time.Millisecond
	GameWinAttack       = 5 * time.Millisecond
	GameWinRelease      = 80 * time.Millisecond
)
