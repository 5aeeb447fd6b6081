package theremin

import "time"

const (
	LoudThreshold   = 20000
	GestureCount    = 5
	GestureWindow   = 10 * time.Second
	GestureSpacing  = 300 * time.Millisecond
	SwitchHoldPause = 2000 * time.Millisecond
)

// GestureDetector counts sustained loud events. GestureCount events within
// GestureWindow of the first one, each at least GestureSpacing apart, make a
// switch gesture. The window is anchored at the first event and does not
// slide.
type GestureDetector struct {
	count       int
	windowStart time.Duration
	lastLoud    time.Duration
	inWindow    bool
	heard       bool
}

// Observe feeds one volume value taken at now and reports whether the
// switch gesture fired.
func (g *GestureDetector) Observe(volume int, now time.Duration) bool {
	if volume > LoudThreshold && (!g.heard || now-g.lastLoud >= GestureSpacing) {
		if g.count < GestureCount {
			g.count++
		}
		if !g.inWindow {
			g.windowStart = now
			g.inWindow = true
		}
		g.lastLoud = now
		g.heard = true
	}

	if g.inWindow && g.count >= GestureCount && now-g.windowStart < GestureWindow {
		g.Reset()
		return true
	}

	g.expire(now)
	return false
}

func (g *GestureDetector) expire(now time.Duration) {
	if g.inWindow && now-g.windowStart > GestureWindow {
		g.count = 0
		g.inWindow = false
	}
}

// Reset clears the count and the window. The spacing reference is kept so
// a held loud hand is not counted twice in a row.
func (g *GestureDetector) Reset() {
	g.count = 0
	g.inWindow = false
}

// Count returns the loud events counted in the current window.
func (g *GestureDetector) Count() int {
	return g.count
}

// WindowStart returns when the current window opened.
func (g *GestureDetector) WindowStart() (time.Duration, bool) {
	return g.windowStart, g.inWindow
}
