// Package fps measures frame times.
package fps

import (
	"time"
)

// Counter reports the average time per frame once per interval.
type Counter struct {
	Interval time.Duration

	last   time.Time
	frames int
}

func NewCounter(start time.Time) *Counter {
	return &Counter{
		Interval: time.Second,
		last:     start,
	}
}

// Tick counts one frame. Once at least Interval passed since the last
// report it returns the average milliseconds per frame and starts over.
func (c *Counter) Tick(now time.Time) (msPerFrame float64, ok bool) {
	c.frames++

	elapsed := now.Sub(c.last)
	if elapsed < c.Interval {
		return 0, false
	}

	msPerFrame = elapsed.Seconds() * 1000 / float64(c.frames)
	c.frames = 0
	c.last = now

	return msPerFrame, true
}

// Delta measures the time between consecutive frames.
type Delta struct {
	last time.Time
}

func NewDelta(start time.Time) *Delta {
	return &Delta{last: start}
}

// Next returns the seconds passed since the previous call, capped at max.
func (d *Delta) Next(now time.Time, max time.Duration) float32 {
	delta := now.Sub(d.last)
	d.last = now

	if delta < 0 {
		delta = 0
	}
	if max > 0 && delta > max {
		delta = max
	}

	return float32(delta.Seconds())
}
