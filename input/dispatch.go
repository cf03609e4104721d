package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/recall/event"
	"github.com/lixenwraith/recall/game"
	"github.com/lixenwraith/recall/render"
)

// Dispatcher translates terminal events into game events on the queue
// It runs on the input polling goroutine; the only game state it reads
// is the controller's difficulty mirror, which is atomic
//
// Two symbol sources exist:
//   - physical keys: uppercased, dropped unless the active tier accepts
//     typed input and the symbol belongs to its alphabet
//   - on-screen key caps (mouse): no alphabet filter, a visible cap
//     always yields its own symbol
type Dispatcher struct {
	queue *event.EventQueue
	ctrl  *game.Controller

	lastButtons tcell.ButtonMask
}

// NewDispatcher creates a dispatcher feeding the given queue
func NewDispatcher(queue *event.EventQueue, ctrl *game.Controller) *Dispatcher {
	return &Dispatcher{queue: queue, ctrl: ctrl}
}

// Dispatch translates one terminal event. Quit and mute land on the
// queue like everything else; the game loop reacts when consuming
func (d *Dispatcher) Dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		d.dispatchKey(ev)
	case *tcell.EventMouse:
		d.dispatchMouse(ev)
	}
}

func (d *Dispatcher) dispatchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		d.push(event.EventQuitRequested, nil)
	case tcell.KeyEnter:
		d.push(event.EventStartPressed, nil)
	case tcell.KeyCtrlR:
		d.push(event.EventRepeatPressed, nil)
	case tcell.KeyCtrlN:
		d.push(event.EventNewGamePressed, nil)
	case tcell.KeyCtrlS:
		d.push(event.EventMuteToggled, nil)
	case tcell.KeyF1:
		d.push(event.EventDifficultySelected, int(game.DifficultyEasy))
	case tcell.KeyF2:
		d.push(event.EventDifficultySelected, int(game.DifficultyMedium))
	case tcell.KeyF3:
		d.push(event.EventDifficultySelected, int(game.DifficultyHard))
	case tcell.KeyRune:
		d.dispatchSymbol(ev.Rune())
	}
}

func (d *Dispatcher) dispatchSymbol(r rune) {
	tier := d.ctrl.CurrentDifficulty()
	if !tier.AcceptsTypedInput() {
		return
	}
	sym := unicode.ToUpper(r)
	if !tier.Contains(sym) {
		return
	}
	d.push(event.EventSymbolTyped, sym)
}

// dispatchMouse fires on the press edge of the primary button only
func (d *Dispatcher) dispatchMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && d.lastButtons&tcell.Button1 == 0
	d.lastButtons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	layout := render.LayoutFor(d.ctrl.CurrentDifficulty())
	hit, ok := layout.HitTest(x, y)
	if !ok {
		return
	}

	switch hit.Kind {
	case render.HitKey:
		d.push(event.EventControlPressed, hit.Symbol)
	case render.HitButton:
		switch hit.Button {
		case render.ButtonStart:
			d.push(event.EventStartPressed, nil)
		case render.ButtonRepeat:
			d.push(event.EventRepeatPressed, nil)
		case render.ButtonNewGame:
			d.push(event.EventNewGamePressed, nil)
		}
	case render.HitDifficulty:
		d.push(event.EventDifficultySelected, hit.Difficulty)
	}
}

func (d *Dispatcher) push(t event.EventType, payload any) {
	d.queue.Push(event.GameEvent{Type: t, Payload: payload})
}
