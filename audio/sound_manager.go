package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/recall/core"
	"github.com/lixenwraith/recall/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Tone frequencies (Hz)
const (
	freqKey   = 660.0
	freqError = 220.0

	// Round win arpeggio: C5 E5 G5, game win adds C6
	freqC5 = 523.25
	freqE5 = 659.25
	freqG5 = 783.99
	freqC6 = 1046.50

	// Fail descent
	freqFailHigh = 330.0
	freqFailMid  = 220.0
	freqFailLow  = 147.0
)

// SoundManager owns the speaker and synthesizes all game audio
// Graceful degradation: Play is a no-op before Initialize succeeds, so
// the game runs fine on machines without an audio backend
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       atomic.Bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and shuts the audio system down
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores output without touching the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMuted flips the mute state and returns the new value
func (sm *SoundManager) ToggleMuted() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Play synthesizes and queues the effect for the given sound
// Implements game.Sounder; fire-and-forget
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}

	var streamer beep.Streamer
	switch sound {
	case core.SoundKey:
		streamer = note(freqKey, parameter.KeySoundDuration, parameter.KeySoundAttack, parameter.KeySoundRelease, WaveSine)
	case core.SoundRoundWin:
		streamer = beep.Seq(
			note(freqC5, parameter.RoundWinNoteDuration, parameter.RoundWinAttack, parameter.RoundWinRelease, WaveSine),
			note(freqE5, parameter.RoundWinNoteDuration, parameter.RoundWinAttack, parameter.RoundWinRelease, WaveSine),
			note(freqG5, parameter.RoundWinNoteDuration, parameter.RoundWinAttack, parameter.RoundWinRelease, WaveSine),
		)
	case core.SoundGameWin:
		streamer = beep.Seq(
			note(freqC5, parameter.GameWinNoteDuration, parameter.GameWinAttack, parameter.GameWinRelease, WaveSine),
			note(freqE5, parameter.GameWinNoteDuration, parameter.GameWinAttack, parameter.GameWinRelease, WaveSine),
			note(freqG5, parameter.GameWinNoteDuration, parameter.GameWinAttack, parameter.GameWinRelease, WaveSine),
			note(freqC6, parameter.GameWinNoteDuration, parameter.GameWinAttack, parameter.GameWinRelease, WaveSine),
		)
	case core.SoundError:
		streamer = note(freqError, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, WaveSquare)
	case core.SoundFail:
		streamer = beep.Seq(
			note(freqFailHigh, parameter.FailSoundStepDuration, parameter.FailSoundAttack, parameter.FailSoundRelease, WaveSaw),
			note(freqFailMid, parameter.FailSoundStepDuration, parameter.FailSoundAttack, parameter.FailSoundRelease, WaveSaw),
			note(freqFailLow, parameter.FailSoundStepDuration, parameter.FailSoundAttack, parameter.FailSoundRelease, WaveSaw),
		)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
