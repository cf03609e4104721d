package event

// EventType represents the type of game event
type EventType int

const (
	// EventSymbolTyped carries a symbol entered on the physical keyboard
	// Trigger: input.Dispatcher (rune key, uppercased, alphabet-checked)
	// Consumer: game.Controller | Payload: rune
	EventSymbolTyped EventType = iota

	// EventControlPressed carries a symbol activated on the on-screen keyboard
	// Trigger: input.Dispatcher (mouse click on a key cap)
	// Consumer: game.Controller | Payload: rune
	EventControlPressed

	// EventStartPressed requests the next round to begin
	// Trigger: start button click, Enter
	// Consumer: game.Controller | Payload: nil
	EventStartPressed

	// EventRepeatPressed requests the current sequence to be replayed
	// Trigger: repeat button click, Ctrl+R
	// Consumer: game.Controller | Payload: nil
	EventRepeatPressed

	// EventNewGamePressed requests a full game reset
	// Trigger: new game button click, Ctrl+N
	// Consumer: game.Controller | Payload: nil
	EventNewGamePressed

	// EventDifficultySelected switches the active difficulty tier
	// Trigger: difficulty tab click, F1/F2/F3
	// Consumer: game.Controller | Payload: int (difficulty ordinal)
	EventDifficultySelected

	// EventMuteToggled flips audio output on or off
	// Trigger: Ctrl+S
	// Consumer: main loop | Payload: nil
	EventMuteToggled

	// EventQuitRequested exits the program
	// Trigger: Esc, Ctrl+C
	// Consumer: main loop | Payload: nil
	EventQuitRequested
)

// GameEvent is a single queued game event
type GameEvent struct {
	Type    EventType
	Payload any
}
