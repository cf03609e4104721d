package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/recall/core"
	"github.com/lixenwraith/recall/event"
	"github.com/lixenwraith/recall/parameter"
)

// Phase is the controller's finite state. Every input handler gates on
// the phase, never on UI-visible side effects
type Phase int

const (
	PhaseIdle          Phase = iota // Before the first round / after new game
	PhaseDemonstrating              // Sequence playback, all input suppressed
	PhaseAwaitingInput              // Keyboard live, reading player symbols
	PhaseRoundWon                   // Round cleared, waiting for next round start
	PhaseGameWon                    // All rounds cleared
	PhaseGameLost                   // Budget exhausted, state already reset, waiting for restart
)

// Controller drives the round/sequence state machine: round start,
// demonstration, input validation, win/error/reset transitions
// All methods must be called from the game loop goroutine; the only
// cross-goroutine surface is CurrentDifficulty
type Controller struct {
	state     *RoundState
	generator *Generator
	presenter Presenter
	sounder   Sounder
	clock     TimeProvider

	phase    Phase
	playback *playback

	// Mirror of state.Difficulty for the input goroutine's typed-symbol filter
	difficultyMirror atomic.Int32
}

// NewController wires the state machine to its collaborators and
// presents the idle screen
func NewController(gen *Generator, pr Presenter, snd Sounder, clock TimeProvider, d Difficulty) *Controller {
	c := &Controller{
		state:     NewRoundState(d),
		generator: gen,
		presenter: pr,
		sounder:   snd,
		clock:     clock,
	}
	c.difficultyMirror.Store(int32(d))
	c.applyDifficulty()
	c.enterIdle("Press Start to play")
	return c
}

// HandleEvent processes a single queued game event
func (c *Controller) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSymbolTyped, event.EventControlPressed:
		if sym, ok := ev.Payload.(rune); ok {
			c.handleUserInput(sym)
		}
	case event.EventStartPressed:
		c.handleStart()
	case event.EventRepeatPressed:
		c.handleRepeat()
	case event.EventNewGamePressed:
		c.handleNewGame()
	case event.EventDifficultySelected:
		if n, ok := ev.Payload.(int); ok && n >= 0 && n < int(DifficultyCount) {
			c.handleDifficulty(Difficulty(n))
		}
	}
}

// Update advances the demonstration playback, if one is running
func (c *Controller) Update(now time.Time) {
	if c.phase != PhaseDemonstrating || c.playback == nil {
		return
	}
	if c.playback.update(now, c.presenter, c.sounder) {
		c.playback = nil
		c.enterAwaitingInput()
	}
}

// === Event handlers ===

func (c *Controller) handleStart() {
	switch c.phase {
	case PhaseIdle, PhaseRoundWon, PhaseGameLost:
	case PhaseGameWon:
		// Start after a won game begins a fresh one at the same tier
		c.state.Reset(c.state.Difficulty)
	default:
		return
	}
	c.startRound()
}

func (c *Controller) handleRepeat() {
	if c.phase != PhaseAwaitingInput {
		return
	}
	// Same sequence, same round, same budget; only the cursor rewinds
	c.state.ClearProgress()
	c.presenter.SetText(TargetProgress, "")
	c.beginDemonstration()
}

func (c *Controller) handleNewGame() {
	// The phase guard is what makes a second playback impossible, not
	// the disabled button
	if c.phase == PhaseDemonstrating {
		return
	}
	c.state.Reset(c.state.Difficulty)
	c.presenter.SetText(TargetStart, "Start")
	c.enterIdle("Press Start to play")
}

func (c *Controller) handleDifficulty(d Difficulty) {
	if c.phase != PhaseIdle && c.phase != PhaseGameLost {
		return
	}
	c.state.Reset(d)
	c.difficultyMirror.Store(int32(d))
	c.applyDifficulty()
	c.presenter.SetText(TargetStatus, fmt.Sprintf("Difficulty: %s. Press Start to play", d))
}

// handleUserInput validates one player symbol against the sequence
// Both input sources (typed and on-screen) land here
func (c *Controller) handleUserInput(sym rune) {
	if c.phase != PhaseAwaitingInput {
		return
	}
	if sym != c.state.Expected() {
		c.handleMismatch()
		return
	}

	c.state.Accept(sym)
	if !c.state.Complete() {
		c.presenter.SetText(TargetProgress, progressText(c.state))
		return
	}

	if c.state.Round == parameter.MaxRounds {
		c.winGame()
	} else {
		c.winRound()
	}
}

// === Transitions ===

func (c *Controller) startRound() {
	seq := c.generator.Generate(c.state.Round, c.state.Difficulty)
	c.state.BeginRound(seq)

	c.presenter.SetEnabled(TargetDifficulty, false)
	c.presenter.SetEnabled(TargetStart, false)
	c.presenter.SetText(TargetStatus, fmt.Sprintf("Round %d of %d: watch the sequence", c.state.Round, parameter.MaxRounds))
	c.presenter.SetText(TargetProgress, "")
	c.beginDemonstration()
}

// beginDemonstration suppresses all controls and hands the sequence to
// the playback stepper. Strictly sequential; AwaitingInput is entered
// only after the final symbol's gap has elapsed
func (c *Controller) beginDemonstration() {
	c.presenter.SetEnabled(TargetKeyboard, false)
	c.presenter.SetEnabled(TargetRepeat, false)
	c.presenter.SetEnabled(TargetNewGame, false)
	c.phase = PhaseDemonstrating
	c.playback = newPlayback(c.state.Sequence)
}

func (c *Controller) enterAwaitingInput() {
	c.presenter.SetEnabled(TargetKeyboard, true)
	c.presenter.SetEnabled(TargetRepeat, true)
	c.presenter.SetEnabled(TargetNewGame, true)
	c.presenter.SetText(TargetStatus, "Your turn: repeat the sequence")
	c.phase = PhaseAwaitingInput
}

func (c *Controller) winRound() {
	c.state.Round++
	c.phase = PhaseRoundWon

	c.sounder.Play(core.SoundRoundWin)
	c.presenter.ShowOverlay(OverlaySuccess, parameter.OverlayDuration)
	c.presenter.SetEnabled(TargetKeyboard, false)
	c.presenter.SetEnabled(TargetRepeat, false)
	c.presenter.SetText(TargetStart, "Next")
	c.presenter.SetEnabled(TargetStart, true)
	c.presenter.SetText(TargetStatus, fmt.Sprintf("Round cleared! Press Next for round %d", c.state.Round))
}

func (c *Controller) winGame() {
	c.phase = PhaseGameWon

	c.sounder.Play(core.SoundGameWin)
	c.presenter.ShowOverlay(OverlaySuccess, parameter.OverlayDuration)
	c.presenter.SetEnabled(TargetKeyboard, false)
	c.presenter.SetEnabled(TargetRepeat, false)
	c.presenter.SetText(TargetStart, "Play again")
	c.presenter.SetEnabled(TargetStart, true)
	c.presenter.SetText(TargetStatus, fmt.Sprintf("You remembered all %d rounds. You win!", parameter.MaxRounds))
}

// handleMismatch implements the two-strike policy: the first wrong
// input spends the budget and the round continues from the same cursor
// position; the second always restarts the whole game at round 1
func (c *Controller) handleMismatch() {
	c.presenter.ShowOverlay(OverlayFailure, parameter.OverlayDuration)

	if c.state.ErrorsLeft > 0 {
		c.state.ErrorsLeft--
		c.sounder.Play(core.SoundError)
		c.presenter.SetText(TargetStatus, fmt.Sprintf("Wrong key. Errors left: %d", c.state.ErrorsLeft))
		return
	}

	c.sounder.Play(core.SoundFail)
	c.state.Reset(c.state.Difficulty)
	c.phase = PhaseGameLost

	c.presenter.SetEnabled(TargetKeyboard, false)
	c.presenter.SetEnabled(TargetRepeat, false)
	c.presenter.SetEnabled(TargetNewGame, true)
	c.presenter.SetEnabled(TargetDifficulty, true)
	c.presenter.SetText(TargetProgress, "")
	c.presenter.SetText(TargetStart, "Start")
	c.presenter.SetEnabled(TargetStart, true)
	c.presenter.SetText(TargetStatus, "Try again from round 1")
}

func (c *Controller) enterIdle(status string) {
	c.phase = PhaseIdle
	c.playback = nil

	c.presenter.SetText(TargetStatus, status)
	c.presenter.SetText(TargetProgress, "")
	c.presenter.SetEnabled(TargetStart, true)
	c.presenter.SetEnabled(TargetRepeat, false)
	c.presenter.SetEnabled(TargetKeyboard, false)
	c.presenter.SetEnabled(TargetNewGame, true)
	c.presenter.SetEnabled(TargetDifficulty, true)
}

// applyDifficulty shows the layout matching the active tier and hides
// the other two
func (c *Controller) applyDifficulty() {
	layouts := map[Difficulty]Target{
		DifficultyEasy:   TargetKeyboardEasy,
		DifficultyMedium: TargetKeyboardMedium,
		DifficultyHard:   TargetKeyboardHard,
	}
	for tier, target := range layouts {
		c.presenter.SetVisible(target, tier == c.state.Difficulty)
	}
}

func progressText(s *RoundState) string {
	out := make([]rune, 0, len(s.Progress)*2)
	for i, r := range s.Progress {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// === Read accessors (game loop and tests) ===

// Phase returns the current state-machine phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Round returns the current round number
func (c *Controller) Round() int {
	return c.state.Round
}

// ErrorsLeft returns the remaining error budget
func (c *Controller) ErrorsLeft() int {
	return c.state.ErrorsLeft
}

// Sequence returns a copy of the current target sequence
func (c *Controller) Sequence() []rune {
	return append([]rune(nil), c.state.Sequence...)
}

// Progress returns a copy of the player's matched prefix
func (c *Controller) Progress() []rune {
	return append([]rune(nil), c.state.Progress...)
}

// CurrentDifficulty returns the active tier
// Safe for concurrent use; read by the input goroutine
func (c *Controller) CurrentDifficulty() Difficulty {
	return Difficulty(c.difficultyMirror.Load())
}
