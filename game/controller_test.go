package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/recall/core"
	"github.com/lixenwraith/recall/event"
	"github.com/lixenwraith/recall/game"
	"github.com/lixenwraith/recall/parameter"
)

// fakePresenter records presentation commands for assertions
type fakePresenter struct {
	texts      map[game.Target]string
	enabled    map[game.Target]bool
	visible    map[game.Target]bool
	highlights []rune // Symbols in the order they lit up
	overlays   []game.OverlayKind
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		texts:   make(map[game.Target]string),
		enabled: make(map[game.Target]bool),
		visible: make(map[game.Target]bool),
	}
}

func (p *fakePresenter) SetText(t game.Target, text string)   { p.texts[t] = text }
func (p *fakePresenter) SetVisible(t game.Target, v bool)     { p.visible[t] = v }
func (p *fakePresenter) SetEnabled(t game.Target, e bool)     { p.enabled[t] = e }
func (p *fakePresenter) ShowOverlay(k game.OverlayKind, _ time.Duration) {
	p.overlays = append(p.overlays, k)
}
func (p *fakePresenter) SetHighlight(sym rune, on bool) {
	if on {
		p.highlights = append(p.highlights, sym)
	}
}

type fakeSounder struct {
	played []core.SoundType
}

func (s *fakeSounder) Play(sound core.SoundType) {
	s.played = append(s.played, sound)
}

type fixture struct {
	ctrl  *game.Controller
	pres  *fakePresenter
	snd   *fakeSounder
	clock *game.MockTimeProvider
}

func newFixture(t *testing.T, seed int64, d game.Difficulty) *fixture {
	t.Helper()
	pres := newFakePresenter()
	snd := &fakeSounder{}
	clock := game.NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctrl := game.NewController(game.NewGenerator(seed), pres, snd, clock, d)
	return &fixture{ctrl: ctrl, pres: pres, snd: snd, clock: clock}
}

func (f *fixture) send(t event.EventType, payload any) {
	f.ctrl.HandleEvent(event.GameEvent{Type: t, Payload: payload})
}

// runDemonstration steps the clock until playback finishes
func (f *fixture) runDemonstration(t *testing.T) {
	t.Helper()
	for i := 0; i < 2000 && f.ctrl.Phase() == game.PhaseDemonstrating; i++ {
		f.ctrl.Update(f.clock.Now())
		f.clock.Advance(50 * time.Millisecond)
	}
	require.Equal(t, game.PhaseAwaitingInput, f.ctrl.Phase(), "demonstration did not complete")
}

// startRound drives the controller into AwaitingInput for the current round
func (f *fixture) startRound(t *testing.T) {
	t.Helper()
	f.send(event.EventStartPressed, nil)
	require.Equal(t, game.PhaseDemonstrating, f.ctrl.Phase())
	f.runDemonstration(t)
}

// enterSequence replays the current target sequence via on-screen input
func (f *fixture) enterSequence(symbols []rune) {
	for _, sym := range symbols {
		f.send(event.EventControlPressed, sym)
	}
}

// wrongSymbol picks an alphabet member that is not the expected next symbol
func (f *fixture) wrongSymbol(t *testing.T) rune {
	t.Helper()
	seq := f.ctrl.Sequence()
	expected := seq[len(f.ctrl.Progress())]
	for _, sym := range f.ctrl.CurrentDifficulty().Alphabet() {
		if sym != expected {
			return sym
		}
	}
	t.Fatal("alphabet has a single symbol")
	return 0
}

func TestIdlePresentation(t *testing.T) {
	f := newFixture(t, 1, game.DifficultyEasy)

	assert.Equal(t, game.PhaseIdle, f.ctrl.Phase())
	assert.True(t, f.pres.enabled[game.TargetStart])
	assert.True(t, f.pres.enabled[game.TargetDifficulty])
	assert.False(t, f.pres.enabled[game.TargetKeyboard])
	assert.False(t, f.pres.enabled[game.TargetRepeat])
	assert.True(t, f.pres.visible[game.TargetKeyboardEasy])
	assert.False(t, f.pres.visible[game.TargetKeyboardMedium])
	assert.False(t, f.pres.visible[game.TargetKeyboardHard])
}

func TestDemonstrationPlaysSequenceInOrder(t *testing.T) {
	f := newFixture(t, 3, game.DifficultyEasy)

	f.send(event.EventStartPressed, nil)
	seq := f.ctrl.Sequence()
	require.Len(t, seq, 2)
	assert.False(t, f.pres.enabled[game.TargetKeyboard])
	assert.False(t, f.pres.enabled[game.TargetNewGame])
	assert.False(t, f.pres.enabled[game.TargetDifficulty])

	f.runDemonstration(t)

	assert.Equal(t, seq, f.pres.highlights)
	assert.Equal(t, []core.SoundType{core.SoundKey, core.SoundKey}, f.snd.played)
	assert.True(t, f.pres.enabled[game.TargetKeyboard])
	assert.True(t, f.pres.enabled[game.TargetNewGame])
	assert.True(t, f.pres.enabled[game.TargetRepeat])
}

func TestRoundWin(t *testing.T) {
	f := newFixture(t, 3, game.DifficultyEasy)
	f.startRound(t)

	f.enterSequence(f.ctrl.Sequence())

	assert.Equal(t, game.PhaseRoundWon, f.ctrl.Phase())
	assert.Equal(t, 2, f.ctrl.Round())
	assert.Contains(t, f.snd.played, core.SoundRoundWin)
	assert.Equal(t, []game.OverlayKind{game.OverlaySuccess}, f.pres.overlays)
	assert.Equal(t, "Next", f.pres.texts[game.TargetStart])
	assert.True(t, f.pres.enabled[game.TargetStart])
	assert.False(t, f.pres.enabled[game.TargetKeyboard])
}

func TestFullGameWin(t *testing.T) {
	f := newFixture(t, 9, game.DifficultyEasy)

	for round := 1; round <= parameter.MaxRounds; round++ {
		require.Equal(t, round, f.ctrl.Round())
		f.startRound(t)
		require.Len(t, f.ctrl.Sequence(), game.SequenceLength(round))
		f.enterSequence(f.ctrl.Sequence())
	}

	assert.Equal(t, game.PhaseGameWon, f.ctrl.Phase())
	assert.Equal(t, parameter.MaxRounds, f.ctrl.Round())
	assert.Contains(t, f.snd.played, core.SoundGameWin)
	assert.True(t, f.pres.enabled[game.TargetStart])
}

func TestFirstMismatchKeepsCursor(t *testing.T) {
	f := newFixture(t, 5, game.DifficultyMedium)
	f.send(event.EventDifficultySelected, int(game.DifficultyMedium))
	f.startRound(t)

	seq := f.ctrl.Sequence()
	f.send(event.EventControlPressed, seq[0])
	require.Equal(t, []rune{seq[0]}, f.ctrl.Progress())

	f.send(event.EventControlPressed, f.wrongSymbol(t))

	// Same round, same cursor, budget spent, round continues
	assert.Equal(t, game.PhaseAwaitingInput, f.ctrl.Phase())
	assert.Equal(t, []rune{seq[0]}, f.ctrl.Progress())
	assert.Equal(t, 0, f.ctrl.ErrorsLeft())
	assert.Contains(t, f.snd.played, core.SoundError)
	assert.Contains(t, f.pres.overlays, game.OverlayFailure)
	assert.Equal(t, "Wrong key. Errors left: 0", f.pres.texts[game.TargetStatus])

	// Recovery from the same position still wins the round
	f.enterSequence(seq[1:])
	assert.Equal(t, game.PhaseRoundWon, f.ctrl.Phase())
	assert.Equal(t, 2, f.ctrl.Round())
}

func TestSecondMismatchRestartsGame(t *testing.T) {
	f := newFixture(t, 5, game.DifficultyMedium)
	f.send(event.EventDifficultySelected, int(game.DifficultyMedium))
	f.startRound(t)

	f.send(event.EventControlPressed, f.ctrl.Sequence()[0])
	f.send(event.EventControlPressed, f.wrongSymbol(t))
	require.Equal(t, 0, f.ctrl.ErrorsLeft())
	f.send(event.EventControlPressed, f.wrongSymbol(t))

	assert.Equal(t, game.PhaseGameLost, f.ctrl.Phase())
	assert.Equal(t, 1, f.ctrl.Round())
	assert.Equal(t, parameter.ErrorBudgetPerRound, f.ctrl.ErrorsLeft())
	assert.Empty(t, f.ctrl.Sequence())
	assert.Contains(t, f.snd.played, core.SoundFail)
	// Start is re-enabled immediately so the player can retry from round 1
	assert.True(t, f.pres.enabled[game.TargetStart])
	assert.True(t, f.pres.enabled[game.TargetDifficulty])

	f.startRound(t)
	assert.Equal(t, 1, f.ctrl.Round())
}

func TestRepeatReplaysSameSequence(t *testing.T) {
	f := newFixture(t, 11, game.DifficultyEasy)
	f.startRound(t)

	seq := f.ctrl.Sequence()
	f.send(event.EventControlPressed, seq[0])

	f.send(event.EventRepeatPressed, nil)
	assert.Equal(t, game.PhaseDemonstrating, f.ctrl.Phase())
	assert.Empty(t, f.ctrl.Progress())
	assert.Equal(t, 1, f.ctrl.Round())
	assert.Equal(t, parameter.ErrorBudgetPerRound, f.ctrl.ErrorsLeft())
	assert.Equal(t, seq, f.ctrl.Sequence(), "repeat must not regenerate the sequence")

	f.runDemonstration(t)
	f.enterSequence(seq)
	assert.Equal(t, game.PhaseRoundWon, f.ctrl.Phase())
}

func TestRepeatPreservesSpentBudget(t *testing.T) {
	f := newFixture(t, 11, game.DifficultyEasy)
	f.startRound(t)

	f.send(event.EventControlPressed, f.wrongSymbol(t))
	require.Equal(t, 0, f.ctrl.ErrorsLeft())

	f.send(event.EventRepeatPressed, nil)
	assert.Equal(t, 0, f.ctrl.ErrorsLeft(), "repeat must not refill the error budget")
}

func TestInputIgnoredOutsideAwaitingInput(t *testing.T) {
	f := newFixture(t, 2, game.DifficultyEasy)

	// Idle: symbols do nothing
	f.send(event.EventControlPressed, '1')
	assert.Empty(t, f.ctrl.Progress())

	// Demonstrating: symbols, start, repeat, and new game are all inert
	f.send(event.EventStartPressed, nil)
	seq := f.ctrl.Sequence()
	f.send(event.EventControlPressed, seq[0])
	assert.Empty(t, f.ctrl.Progress())
	f.send(event.EventStartPressed, nil)
	f.send(event.EventRepeatPressed, nil)
	f.send(event.EventNewGamePressed, nil)
	assert.Equal(t, game.PhaseDemonstrating, f.ctrl.Phase())
	assert.Equal(t, seq, f.ctrl.Sequence())
}

func TestNewGameResetsEverything(t *testing.T) {
	f := newFixture(t, 4, game.DifficultyEasy)
	f.startRound(t)
	f.enterSequence(f.ctrl.Sequence())
	require.Equal(t, 2, f.ctrl.Round())

	f.send(event.EventNewGamePressed, nil)

	assert.Equal(t, game.PhaseIdle, f.ctrl.Phase())
	assert.Equal(t, 1, f.ctrl.Round())
	assert.Empty(t, f.ctrl.Sequence())
	assert.Equal(t, "Start", f.pres.texts[game.TargetStart])
	assert.True(t, f.pres.enabled[game.TargetDifficulty])
}

func TestStartAfterGameWonBeginsFreshGame(t *testing.T) {
	f := newFixture(t, 9, game.DifficultyEasy)
	for round := 1; round <= parameter.MaxRounds; round++ {
		f.startRound(t)
		f.enterSequence(f.ctrl.Sequence())
	}
	require.Equal(t, game.PhaseGameWon, f.ctrl.Phase())

	f.send(event.EventStartPressed, nil)
	assert.Equal(t, game.PhaseDemonstrating, f.ctrl.Phase())
	assert.Equal(t, 1, f.ctrl.Round())
	assert.Len(t, f.ctrl.Sequence(), game.SequenceLength(1))
}

func TestDifficultySelectionOnlyWhenAllowed(t *testing.T) {
	f := newFixture(t, 6, game.DifficultyEasy)

	f.send(event.EventDifficultySelected, int(game.DifficultyHard))
	assert.Equal(t, game.DifficultyHard, f.ctrl.CurrentDifficulty())
	assert.True(t, f.pres.visible[game.TargetKeyboardHard])
	assert.False(t, f.pres.visible[game.TargetKeyboardEasy])

	f.startRound(t)
	f.send(event.EventDifficultySelected, int(game.DifficultyEasy))
	assert.Equal(t, game.DifficultyHard, f.ctrl.CurrentDifficulty(), "tier locked while a game is in progress")
}

func TestProgressTextUpdates(t *testing.T) {
	f := newFixture(t, 3, game.DifficultyEasy)
	f.startRound(t)

	seq := f.ctrl.Sequence()
	f.send(event.EventControlPressed, seq[0])
	assert.Equal(t, string(seq[0]), f.pres.texts[game.TargetProgress])
}
