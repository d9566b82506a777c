package tinsel

import "testing"

// holdFrames feeds n stationary held frames and reports any long-press.
func holdFrames(g *gestureDetector, n int, x, y float64) (longPress bool) {
	for i := 0; i < n; i++ {
		if g.feed(true, x, y, frameDT).LongPress {
			longPress = true
		}
	}
	return longPress
}

// idleFrames advances the detector with the pointer up.
func idleFrames(g *gestureDetector, n int) {
	for i := 0; i < n; i++ {
		g.feed(false, 0, 0, frameDT)
	}
}

func TestTapFiresOnRelease(t *testing.T) {
	g := newGestureDetector()

	if ev := g.feed(true, 100, 100, frameDT); ev.Tap {
		t.Error("tap should not fire on press")
	}
	holdFrames(g, 3, 100, 100)
	ev := g.feed(false, 0, 0, frameDT)
	if !ev.Tap {
		t.Error("tap should fire on release")
	}
	if ev.DoubleTap {
		t.Error("single tap should not report DoubleTap")
	}
}

func TestDoubleTapWithinWindow(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 100, 100, frameDT)
	g.feed(false, 0, 0, frameDT)

	idleFrames(g, 5) // ~83ms, well inside the window

	g.feed(true, 102, 101, frameDT)
	ev := g.feed(false, 0, 0, frameDT)
	if !ev.Tap || !ev.DoubleTap {
		t.Errorf("second tap inside window: Tap=%v DoubleTap=%v, want both", ev.Tap, ev.DoubleTap)
	}

	// A third quick tap starts a fresh pair rather than chaining.
	idleFrames(g, 5)
	g.feed(true, 100, 100, frameDT)
	if ev := g.feed(false, 0, 0, frameDT); ev.DoubleTap {
		t.Error("tap after a double-tap should start a new pair")
	}
}

func TestTapsOutsideWindowStaySingle(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 100, 100, frameDT)
	g.feed(false, 0, 0, frameDT)

	idleFrames(g, 30) // 0.5s, past the window

	g.feed(true, 100, 100, frameDT)
	ev := g.feed(false, 0, 0, frameDT)
	if !ev.Tap || ev.DoubleTap {
		t.Errorf("slow second tap: Tap=%v DoubleTap=%v, want single", ev.Tap, ev.DoubleTap)
	}
}

func TestLongPressFiresOnceAndSuppressesTap(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 100, 100, frameDT)
	fired := 0
	for i := 0; i < 60; i++ { // one second held
		if g.feed(true, 100, 100, frameDT).LongPress {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("long-press fired %d times over a held second, want 1", fired)
	}
	if ev := g.feed(false, 0, 0, frameDT); ev.Tap {
		t.Error("release after a long-press should not also tap")
	}
}

func TestDragSuppressesTapAndLongPress(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 100, 100, frameDT)
	ev := g.feed(true, 120, 100, frameDT) // 20px, past the dead zone
	if !ev.Dragging {
		t.Fatal("movement past the dead zone should report Dragging")
	}
	assertNear(t, "drag dx", ev.DragDX, 20)
	assertNear(t, "drag dy", ev.DragDY, 0)

	// Held in place long enough for a long-press; a drag stays a drag.
	if longPress := holdFrames(g, 60, 120, 100); longPress {
		t.Error("long-press should not fire after a drag started")
	}
	if ev := g.feed(false, 0, 0, frameDT); ev.Tap {
		t.Error("release after a drag should not tap")
	}
}

func TestDeadZoneKeepsTap(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 100, 100, frameDT)
	ev := g.feed(true, 103, 102, frameDT) // inside the 6px dead zone
	if ev.Dragging {
		t.Error("movement inside the dead zone should not start a drag")
	}
	if ev := g.feed(false, 0, 0, frameDT); !ev.Tap {
		t.Error("jittery press inside the dead zone should still tap")
	}
}

func TestDragDeltasAccumulatePerFrame(t *testing.T) {
	g := newGestureDetector()

	g.feed(true, 0, 0, frameDT)
	g.feed(true, 10, 0, frameDT) // crosses the dead zone
	ev := g.feed(true, 14, -3, frameDT)
	assertNear(t, "dx", ev.DragDX, 4)
	assertNear(t, "dy", ev.DragDY, -3)
}
