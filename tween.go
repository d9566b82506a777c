package tinsel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// floatTween animates a single float64 value with gween. There is no global
// animation manager; owners call update themselves each frame and read
// value afterwards.
type floatTween struct {
	tween *gween.Tween
	value float64
	done  bool
}

func newFloatTween(from, to float64, duration float32, fn ease.TweenFunc) *floatTween {
	return &floatTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// update advances the tween by dt seconds and returns the current value.
func (t *floatTween) update(dt float64) float64 {
	if t.done {
		return t.value
	}
	v, finished := t.tween.Update(float32(dt))
	t.value = float64(v)
	t.done = finished
	return t.value
}
