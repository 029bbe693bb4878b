package animation

import (
	"time"
)

// Clock is a monotonic millisecond counter plus a blocking delay.
type Clock interface {
	Millis() int64
	Delay(ms int64)
}

type wallClock struct {
	start time.Time
}

// NewClock counts from the moment it is created.
func NewClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *wallClock) Delay(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
