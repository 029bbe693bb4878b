package animation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeClock only moves when told to or when something delays on it.
type fakeClock struct {
	now    int64
	delays []int64
}

func (c *fakeClock) Millis() int64 {
	return c.now
}

func (c *fakeClock) Delay(ms int64) {
	c.delays = append(c.delays, ms)
	c.now += ms
}

// sourceFunc scripts the random draws.
type sourceFunc func(n int64) int64

func (f sourceFunc) Int63n(n int64) int64 {
	return f(n)
}

// lowest always draws the bottom of every range.
var lowest = sourceFunc(func(n int64) int64 { return 0 })

// highest always draws the top of every range.
var highest = sourceFunc(func(n int64) int64 { return n - 1 })

type recordingOutput struct {
	frames [][]RGB
	err    error
}

func (o *recordingOutput) Render(pixels []RGB) error {
	if o.err != nil {
		return o.err
	}
	o.frames = append(o.frames, append([]RGB(nil), pixels...))
	return nil
}

func (o *recordingOutput) last() []RGB {
	if len(o.frames) == 0 {
		return nil
	}
	return o.frames[len(o.frames)-1]
}

func newTestStrip(pixels int, src Source) (*Strip, *fakeClock, *recordingOutput) {
	clock := &fakeClock{}
	out := &recordingOutput{}
	s := NewStrip(pixels, clock, NewRandom(src), out)
	s.SetBrightness(255)
	return s, clock, out
}

func seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func allBlack(t *testing.T, pixels []RGB) {
	t.Helper()
	for i, c := range pixels {
		require.True(t, c.IsBlack(), "pixel %d is %+v", i, c)
	}
}
