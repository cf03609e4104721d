package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	// The game is mostly static between inputs, no need for 60
	FrameUpdateInterval = 33 * time.Millisecond
)

// Playback Timing
const (
	// PlaybackKeyOn is how long a demonstrated key stays highlighted
	PlaybackKeyOn = 500 * time.Millisecond

	// PlaybackKeyGap is the silent pause after a key un-highlights,
	// before the next key lights up
	PlaybackKeyGap = 500 * time.Millisecond

	// OverlayDuration is how long success/failure flashes stay visible
	// Overlays are fire-and-forget: a new demonstration may start under
	// a fading overlay
	OverlayDuration = 3 * time.Second
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
