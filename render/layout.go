package render

import "github.com/lixenwraith/recall/game"

// Screen geometry. The board is anchored at a fixed origin so the
// input goroutine can hit-test against the same coordinates the
// renderer draws to, without sharing mutable state
const (
	TitleY    = 1
	TabsY     = 3
	StatusY   = 5
	ProgressY = 6
	KeyboardY = 8
	ButtonsY  = 17

	OriginX    = 2
	KeyWidth   = 3
	KeyStride  = 4 // Key width plus one column gap
	RowSpacing = 2
	RowStagger = 2 // Extra indent per keyboard row

	TabWidth    = 10
	TabStride   = 11
	ButtonWidth = 14
	ButtonCount = 3
)

// ButtonKind identifies one of the three control buttons
type ButtonKind int

const (
	ButtonStart ButtonKind = iota
	ButtonRepeat
	ButtonNewGame
)

// HitKind classifies what a mouse click landed on
type HitKind int

const (
	HitNone HitKind = iota
	HitKey
	HitButton
	HitDifficulty
)

// Hit is the result of a layout hit-test
type Hit struct {
	Kind       HitKind
	Symbol     rune
	Button     ButtonKind
	Difficulty int
}

// KeyRect is the screen cell range of one on-screen key cap
type KeyRect struct {
	Symbol rune
	X, Y   int
}

// Layout holds the key cap positions for one difficulty tier
type Layout struct {
	Difficulty game.Difficulty
	Keys       []KeyRect
	Rows       []string
}

var layoutRows = map[game.Difficulty][]string{
	game.DifficultyEasy:   {"1234567890"},
	game.DifficultyMedium: {"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"},
	game.DifficultyHard:   {"1234567890", "QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"},
}

var layouts = buildLayouts()

func buildLayouts() map[game.Difficulty]*Layout {
	out := make(map[game.Difficulty]*Layout, len(layoutRows))
	for d, rows := range layoutRows {
		l := &Layout{Difficulty: d, Rows: rows}
		for i, row := range rows {
			y := KeyboardY + i*RowSpacing
			x := OriginX + i*RowStagger
			for _, sym := range row {
				l.Keys = append(l.Keys, KeyRect{Symbol: sym, X: x, Y: y})
				x += KeyStride
			}
		}
		out[d] = l
	}
	return out
}

// LayoutFor returns the shared immutable layout for a tier
func LayoutFor(d game.Difficulty) *Layout {
	return layouts[d]
}

// KeyAt returns the cap position for a symbol
func (l *Layout) KeyAt(sym rune) (KeyRect, bool) {
	for _, k := range l.Keys {
		if k.Symbol == sym {
			return k, true
		}
	}
	return KeyRect{}, false
}

// HitTest maps a screen coordinate to a key cap, control button, or
// difficulty tab. Buttons and tabs sit at fixed rows shared by all
// tiers; key caps depend on the active layout
func (l *Layout) HitTest(x, y int) (Hit, bool) {
	if y == TabsY {
		for i := 0; i < int(game.DifficultyCount); i++ {
			tabX := OriginX + i*TabStride
			if x >= tabX && x < tabX+TabWidth {
				return Hit{Kind: HitDifficulty, Difficulty: i}, true
			}
		}
		return Hit{}, false
	}

	if y == ButtonsY {
		for i := 0; i < ButtonCount; i++ {
			btnX := OriginX + i*(ButtonWidth+2)
			if x >= btnX && x < btnX+ButtonWidth {
				return Hit{Kind: HitButton, Button: ButtonKind(i)}, true
			}
		}
		return Hit{}, false
	}

	for _, k := range l.Keys {
		if y == k.Y && x >= k.X && x < k.X+KeyWidth {
			return Hit{Kind: HitKey, Symbol: k.Symbol}, true
		}
	}
	return Hit{}, false
}
