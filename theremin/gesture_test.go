package theremin

import (
	"testing"
	"time"
)

const loud = LoudThreshold + 1

func TestGestureFiresOnceWithinWindow(t *testing.T) {
	var g GestureDetector
	fired := 0
	at := []time.Duration{
		1 * time.Second,
		1*time.Second + 300*time.Millisecond,
		3 * time.Second,
		6 * time.Second,
		10*time.Second + 900*time.Millisecond,
	}
	for i, now := range at {
		if g.Observe(loud, now) {
			fired++
			if i != len(at)-1 {
				t.Fatalf("fired early on spike %d", i)
			}
		}
	}
	if fired != 1 {
		t.Fatalf("expected exactly one switch, got %d", fired)
	}
	if g.Count() != 0 {
		t.Fatalf("expected count reset after switch, got %d", g.Count())
	}
	if _, open := g.WindowStart(); open {
		t.Fatalf("expected window cleared after switch")
	}

	if g.Observe(loud, 11*time.Second+300*time.Millisecond) {
		t.Fatalf("a single spike after a switch must not fire")
	}
	if g.Count() != 1 {
		t.Fatalf("expected a fresh window with one event, got %d", g.Count())
	}
}

func TestGestureWindowExpires(t *testing.T) {
	var g GestureDetector
	at := []time.Duration{
		0,
		2 * time.Second,
		4 * time.Second,
		6 * time.Second,
		10*time.Second + time.Millisecond,
	}
	for i, now := range at {
		if g.Observe(loud, now) {
			t.Fatalf("spike %d must not fire", i)
		}
	}
	if g.Count() != 0 {
		t.Fatalf("expected window reset, got count %d", g.Count())
	}
	if _, open := g.WindowStart(); open {
		t.Fatalf("expected window cleared after timeout")
	}
}

func TestGestureSpacing(t *testing.T) {
	var g GestureDetector
	now := time.Duration(0)
	for i := 0; i < 10; i++ {
		if g.Observe(loud, now) {
			t.Fatalf("spikes closer than %v must not fire", GestureSpacing)
		}
		now += 100 * time.Millisecond
	}
	// 1 s of continuous loudness at 100 ms ticks counts one event per 300 ms
	if g.Count() != GestureCount-1 {
		t.Fatalf("expected %d counted events, got %d", GestureCount-1, g.Count())
	}
}

func TestGestureIgnoresThresholdValue(t *testing.T) {
	var g GestureDetector
	for i := 0; i < 10; i++ {
		if g.Observe(LoudThreshold, time.Duration(i)*time.Second) {
			t.Fatalf("volume equal to the threshold is not loud")
		}
	}
	if g.Count() != 0 {
		t.Fatalf("expected no counted events, got %d", g.Count())
	}
}

func TestGestureCountNeverExceedsThreshold(t *testing.T) {
	var g GestureDetector
	g.Observe(loud, 0)
	g.Observe(loud, 1*time.Second)
	g.Observe(loud, 2*time.Second)
	g.Observe(loud, 3*time.Second)
	// fifth event lands exactly on the window edge: no switch, no reset yet
	if g.Observe(loud, GestureWindow) {
		t.Fatalf("switch must require less than %v", GestureWindow)
	}
	if g.Count() != GestureCount {
		t.Fatalf("expected count %d at the window edge, got %d", GestureCount, g.Count())
	}
	g.Observe(loud, GestureWindow+GestureSpacing)
	if g.Count() > GestureCount {
		t.Fatalf("count exceeded %d: %d", GestureCount, g.Count())
	}
}
