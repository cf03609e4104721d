package game

import (
	"time"

	"github.com/lixenwraith/recall/core"
)

// Target identifies a screen element addressed by presentation commands
type Target int

const (
	TargetStatus         Target = iota // Message line (round results, errors left)
	TargetProgress                     // Player progress readout
	TargetStart                        // Start / next round button
	TargetRepeat                       // Repeat sequence button
	TargetNewGame                      // New game button
	TargetKeyboard                     // The whole virtual keyboard
	TargetDifficulty                   // Difficulty tabs
	TargetKeyboardEasy                 // Digit-only layout
	TargetKeyboardMedium               // Letter-only layout
	TargetKeyboardHard                 // Combined layout
)

// OverlayKind selects the full-board flash shown on round results
type OverlayKind int

const (
	OverlaySuccess OverlayKind = iota
	OverlayFailure
)

// Presenter receives presentation commands from the controller
// Implementations mutate the screen; they never call back into the game
type Presenter interface {
	SetText(target Target, text string)
	SetVisible(target Target, visible bool)
	SetEnabled(target Target, enabled bool)
	SetHighlight(symbol rune, on bool)

	// ShowOverlay flashes a success/failure wash for the given duration
	// Fire-and-forget: the controller never waits for it to fade
	ShowOverlay(kind OverlayKind, duration time.Duration)
}

// Sounder plays fire-and-forget sound effects
type Sounder interface {
	Play(sound core.SoundType)
}
