package tinsel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Gesture thresholds.
const (
	tapDeadZone     = 6.0  // pixels of travel before a press becomes a drag
	doubleTapWindow = 0.35 // seconds between taps
	longPressDelay  = 0.6  // seconds held before a long-press fires
)

// gestureEvents is what the detector reports for one frame. Tap fires on
// release; a second tap inside the window also sets DoubleTap (matching
// browser click/dblclick ordering: the single-tap action runs first).
// LongPress fires once while still held and suppresses the release tap.
// Drag deltas are reported every frame the pointer moves outside the dead
// zone; a drag suppresses tap on release.
type gestureEvents struct {
	Tap       bool
	DoubleTap bool
	LongPress bool

	Dragging       bool
	DragDX, DragDY float64
}

// gestureDetector tracks one pointer (mouse or first touch) and classifies
// tap, double-tap, long-press, and drag. Raw input polling is isolated in
// update; feed contains the classification logic and is driven directly by
// tests.
type gestureDetector struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	holdTime   float64
	dragging   bool
	longFired  bool
	sinceTap   float64
	tapPending bool

	touchID    ebiten.TouchID
	touchLive  bool
	touchQueue []ebiten.TouchID
}

func newGestureDetector() *gestureDetector {
	return &gestureDetector{sinceTap: doubleTapWindow}
}

// update polls ebiten for the pointer state and classifies this frame.
func (g *gestureDetector) update(dt float64) gestureEvents {
	down, x, y := g.pollPointer()
	return g.feed(down, x, y, dt)
}

// pollPointer reports whether the tracked pointer is held and where.
// Mouse takes priority; otherwise the first touch is tracked for its whole
// lifetime.
func (g *gestureDetector) pollPointer() (down bool, x, y float64) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return true, float64(mx), float64(my)
	}

	if g.touchLive {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touchLive = false
		} else {
			tx, ty := ebiten.TouchPosition(g.touchID)
			return true, float64(tx), float64(ty)
		}
	}
	g.touchQueue = inpututil.AppendJustPressedTouchIDs(g.touchQueue[:0])
	if len(g.touchQueue) > 0 {
		g.touchID = g.touchQueue[0]
		g.touchLive = true
		tx, ty := ebiten.TouchPosition(g.touchID)
		return true, float64(tx), float64(ty)
	}
	return false, 0, 0
}

// feed advances the classifier with one frame of pointer state.
func (g *gestureDetector) feed(down bool, x, y float64, dt float64) gestureEvents {
	var ev gestureEvents
	g.sinceTap += dt

	switch {
	case down && !g.down:
		// Press.
		g.down = true
		g.startX, g.startY = x, y
		g.lastX, g.lastY = x, y
		g.holdTime = 0
		g.dragging = false
		g.longFired = false

	case down && g.down:
		g.holdTime += dt
		dx := x - g.lastX
		dy := y - g.lastY
		g.lastX, g.lastY = x, y

		if !g.dragging {
			tx := x - g.startX
			ty := y - g.startY
			if tx*tx+ty*ty > tapDeadZone*tapDeadZone {
				g.dragging = true
			}
		}
		if g.dragging {
			ev.Dragging = true
			ev.DragDX = dx
			ev.DragDY = dy
		} else if !g.longFired && g.holdTime >= longPressDelay {
			g.longFired = true
			ev.LongPress = true
		}

	case !down && g.down:
		// Release.
		g.down = false
		if !g.dragging && !g.longFired {
			ev.Tap = true
			if g.tapPending && g.sinceTap < doubleTapWindow {
				ev.DoubleTap = true
				g.tapPending = false
			} else {
				g.tapPending = true
			}
			g.sinceTap = 0
		}
	}

	if g.sinceTap >= doubleTapWindow {
		g.tapPending = false
	}
	return ev
}
