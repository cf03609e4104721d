package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/recall/game"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleProgress = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	styleKey          = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleKeyDisabled  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleKeyHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)

	styleButton         = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleButtonDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray)

	styleTab         = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTabActive   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua).Bold(true)
	styleTabDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray)

	styleOverlaySuccess = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleOverlayFailure = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
)

// Renderer implements game.Presenter over a retained view model and
// repaints the whole board each frame
// All methods run on the game loop goroutine
type Renderer struct {
	screen tcell.Screen
	clock  game.TimeProvider

	texts      map[game.Target]string
	enabled    map[game.Target]bool
	visible    map[game.Target]bool
	highlights map[rune]bool

	overlayKind  game.OverlayKind
	overlayUntil time.Time
}

// NewRenderer creates a renderer bound to a screen
func NewRenderer(screen tcell.Screen, clock game.TimeProvider) *Renderer {
	return &Renderer{
		screen: screen,
		clock:  clock,
		texts: map[game.Target]string{
			game.TargetStart:   "Start",
			game.TargetRepeat:  "Repeat",
			game.TargetNewGame: "New Game",
		},
		enabled:    make(map[game.Target]bool),
		visible:    make(map[game.Target]bool),
		highlights: make(map[rune]bool),
	}
}

// === game.Presenter ===

func (r *Renderer) SetText(target game.Target, text string) {
	r.texts[target] = text
}

func (r *Renderer) SetVisible(target game.Target, visible bool) {
	r.visible[target] = visible
}

func (r *Renderer) SetEnabled(target game.Target, enabled bool) {
	r.enabled[target] = enabled
}

func (r *Renderer) SetHighlight(symbol rune, on bool) {
	if on {
		r.highlights[symbol] = true
	} else {
		delete(r.highlights, symbol)
	}
}

func (r *Renderer) ShowOverlay(kind game.OverlayKind, duration time.Duration) {
	r.overlayKind = kind
	r.overlayUntil = r.clock.Now().Add(duration)
}

// === Drawing ===

// ActiveLayout returns the layout whose keyboard target is visible
func (r *Renderer) ActiveLayout() *Layout {
	switch {
	case r.visible[game.TargetKeyboardHard]:
		return LayoutFor(game.DifficultyHard)
	case r.visible[game.TargetKeyboardMedium]:
		return LayoutFor(game.DifficultyMedium)
	default:
		return LayoutFor(game.DifficultyEasy)
	}
}

// Draw repaints the full board and flushes the screen
func (r *Renderer) Draw() {
	r.screen.Clear()

	r.drawText(OriginX, TitleY, styleTitle, "R E C A L L")
	r.drawTabs()
	r.drawText(OriginX, StatusY, styleStatus, r.texts[game.TargetStatus])
	r.drawText(OriginX, ProgressY, styleProgress, r.texts[game.TargetProgress])
	r.drawKeyboard()
	r.drawButtons()
	r.drawOverlay()

	r.screen.Show()
}

func (r *Renderer) drawTabs() {
	for i := 0; i < int(game.DifficultyCount); i++ {
		tier := game.Difficulty(i)
		style := styleTab
		if !r.enabled[game.TargetDifficulty] {
			style = styleTabDisabled
		} else if r.activeTier() == tier {
			style = styleTabActive
		}
		r.drawField(OriginX+i*TabStride, TabsY, TabWidth, style, tier.String())
	}
}

func (r *Renderer) drawKeyboard() {
	layout := r.ActiveLayout()
	keysEnabled := r.enabled[game.TargetKeyboard]
	for _, k := range layout.Keys {
		style := styleKey
		if !keysEnabled {
			style = styleKeyDisabled
		}
		// Demonstration highlights fire while the keyboard is disabled,
		// so highlight wins over the disabled style
		if r.highlights[k.Symbol] {
			style = styleKeyHighlight
		}
		r.drawField(k.X, k.Y, KeyWidth, style, string(k.Symbol))
	}
}

func (r *Renderer) drawButtons() {
	buttons := []struct {
		target game.Target
		kind   ButtonKind
	}{
		{game.TargetStart, ButtonStart},
		{game.TargetRepeat, ButtonRepeat},
		{game.TargetNewGame, ButtonNewGame},
	}
	for i, b := range buttons {
		style := styleButton
		if !r.enabled[b.target] {
			style = styleButtonDisabled
		}
		x := OriginX + i*(ButtonWidth+2)
		r.drawField(x, ButtonsY, ButtonWidth, style, r.texts[b.target])
	}
}

func (r *Renderer) drawOverlay() {
	if r.overlayUntil.IsZero() || r.clock.Now().After(r.overlayUntil) {
		return
	}
	style := styleOverlaySuccess
	label := "well done"
	if r.overlayKind == game.OverlayFailure {
		style = styleOverlayFailure
		label = "miss"
	}
	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	r.drawText((width-len(label))/2, 0, style, label)
}

func (r *Renderer) activeTier() game.Difficulty {
	return r.ActiveLayout().Difficulty
}

// drawField draws text centered in a fixed-width cell run
func (r *Renderer) drawField(x, y, width int, style tcell.Style, text string) {
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	pad := (width - len(runes)) / 2
	for i := 0; i < width; i++ {
		ch := ' '
		if i >= pad && i-pad < len(runes) {
			ch = runes[i-pad]
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
