package tinsel

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short synthesized two-tone bell when the layout toggles.
// Everything is generated from sine oscillators, no audio assets. Speaker
// initialization failure is non-fatal: the chime logs once and stays silent.
type Chime struct {
	ready bool
}

// NewChime initializes the speaker. A nil-safe, silent Chime is returned on
// failure.
func NewChime() *Chime {
	c := &Chime{}
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		fmt.Fprintf(os.Stderr, "[tinsel] audio disabled: %v\n", err)
		return c
	}
	c.ready = true
	return c
}

// Play fires the chime. ascending selects the scatter-to-tree direction
// (rising interval); false plays it falling.
func (c *Chime) Play(ascending bool) {
	if c == nil || !c.ready {
		return
	}
	lo, hi := 523.25, 783.99 // C5, G5
	first, second := lo, hi
	if !ascending {
		first, second = hi, lo
	}
	seq := beep.Seq(
		bell(first, 120*time.Millisecond),
		bell(second, 220*time.Millisecond),
	)
	speaker.Play(&effects.Volume{
		Streamer: seq,
		Base:     2,
		Volume:   -1.5,
	})
}

// bell returns a finite sine streamer with an exponential decay envelope.
func bell(freq float64, dur time.Duration) beep.Streamer {
	return &bellOsc{
		freq:     freq,
		duration: chimeSampleRate.N(dur),
	}
}

type bellOsc struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func (o *bellOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		env := math.Exp(-4 * float64(o.position) / float64(o.duration))
		val := math.Sin(2*math.Pi*o.phase) * env
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(chimeSampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *bellOsc) Err() error { return nil }
