package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/recall/game"
)

func TestLayoutCoversAlphabet(t *testing.T) {
	tiers := []game.Difficulty{game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard}
	for _, d := range tiers {
		t.Run(d.String(), func(t *testing.T) {
			l := LayoutFor(d)
			require.NotNil(t, l)
			assert.Len(t, l.Keys, len(d.Alphabet()))
			for _, sym := range d.Alphabet() {
				_, ok := l.KeyAt(sym)
				assert.True(t, ok, "no key cap for %q", sym)
			}
		})
	}
}

func TestHitTestRoundTripsEveryKey(t *testing.T) {
	for _, d := range []game.Difficulty{game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard} {
		l := LayoutFor(d)
		for _, k := range l.Keys {
			// Every cell of the cap maps back to its symbol
			for dx := 0; dx < KeyWidth; dx++ {
				hit, ok := l.HitTest(k.X+dx, k.Y)
				require.True(t, ok, "%s: no hit at %d,%d", d, k.X+dx, k.Y)
				assert.Equal(t, HitKey, hit.Kind)
				assert.Equal(t, k.Symbol, hit.Symbol)
			}
		}
	}
}

func TestHitTestButtons(t *testing.T) {
	l := LayoutFor(game.DifficultyEasy)
	cases := []struct {
		name string
		x    int
		want ButtonKind
	}{
		{"start", OriginX, ButtonStart},
		{"repeat", OriginX + ButtonWidth + 2, ButtonRepeat},
		{"newgame", OriginX + 2*(ButtonWidth+2), ButtonNewGame},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := l.HitTest(tc.x+ButtonWidth/2, ButtonsY)
			require.True(t, ok)
			assert.Equal(t, HitButton, hit.Kind)
			assert.Equal(t, tc.want, hit.Button)
		})
	}
}

func TestHitTestDifficultyTabs(t *testing.T) {
	l := LayoutFor(game.DifficultyHard)
	for i := 0; i < int(game.DifficultyCount); i++ {
		t.Run(fmt.Sprintf("tab%d", i), func(t *testing.T) {
			hit, ok := l.HitTest(OriginX+i*TabStride+1, TabsY)
			require.True(t, ok)
			assert.Equal(t, HitDifficulty, hit.Kind)
			assert.Equal(t, i, hit.Difficulty)
		})
	}
}

func TestHitTestMisses(t *testing.T) {
	l := LayoutFor(game.DifficultyEasy)

	_, ok := l.HitTest(0, 0)
	assert.False(t, ok)

	// Between the first and second key caps (the gap column)
	first := l.Keys[0]
	_, ok = l.HitTest(first.X+KeyWidth, first.Y)
	assert.False(t, ok)

	// Letter rows exist only on medium and hard
	medium := LayoutFor(game.DifficultyMedium)
	letterKey, found := medium.KeyAt('A')
	require.True(t, found)
	_, ok = l.HitTest(letterKey.X, letterKey.Y)
	assert.False(t, ok, "easy layout must not expose letter caps")
}
