package game

import (
	"time"

	"github.com/lixenwraith/recall/core"
	"github.com/lixenwraith/recall/parameter"
)

// playback walks the demonstration protocol one symbol at a time:
// highlight on for PlaybackKeyOn with a key sound, highlight off,
// then PlaybackKeyGap of silence before the next symbol
// Driven by Controller.Update against the TimeProvider; there is no
// goroutine and no cancellation, a started demonstration always
// completes
type playback struct {
	sequence []rune
	index    int
	lit      bool
	started  bool
	deadline time.Time
}

func newPlayback(seq []rune) *playback {
	return &playback{sequence: seq}
}

// update advances the demonstration. Returns true once the final
// symbol has gone dark and its trailing gap has elapsed
func (p *playback) update(now time.Time, pr Presenter, snd Sounder) bool {
	if !p.started {
		p.started = true
		p.light(now, pr, snd)
		return false
	}
	if now.Before(p.deadline) {
		return false
	}
	if p.lit {
		pr.SetHighlight(p.sequence[p.index], false)
		p.lit = false
		p.index++
		p.deadline = now.Add(parameter.PlaybackKeyGap)
		return false
	}
	if p.index >= len(p.sequence) {
		return true
	}
	p.light(now, pr, snd)
	return false
}

func (p *playback) light(now time.Time, pr Presenter, snd Sounder) {
	pr.SetHighlight(p.sequence[p.index], true)
	snd.Play(core.SoundKey)
	p.lit = true
	p.deadline = now.Add(parameter.PlaybackKeyOn)
}
