package animation

import (
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

const (
	DefaultBrightness = 100
)

// Animation is one effect generator. Each implementation owns its state and
// mutates the strip's frame once per call.
type Animation interface {
	frame(s *Strip) error
}

// Output transmits a finished frame to hardware.
type Output interface {
	Render(pixels []RGB) error
}

// Frame is the pixel buffer every animation writes into.
type Frame []RGB

// Set writes c at i and reports whether i was on the strip.
func (f Frame) Set(i int, c RGB) bool {
	if i < 0 || i >= len(f) {
		return false
	}
	f[i] = c
	return true
}

// Add blends c into the pixel at i with saturation.
func (f Frame) Add(i int, c RGB) bool {
	if i < 0 || i >= len(f) {
		return false
	}
	f[i] = f[i].Add(c)
	return true
}

func (f Frame) Fill(c RGB) {
	for i := range f {
		f[i] = c
	}
}

func (f Frame) Clear() {
	f.Fill(Black)
}

func (f Frame) FadeToBlackBy(amount uint8) {
	for i := range f {
		f[i] = f[i].FadeToBlackBy(amount)
	}
}

// Strip is the process wide context handed to the scheduler and to every
// animation.
type Strip struct {
	Pixels Frame

	clock Clock
	rnd   *Random
	out   Output

	brightness uint8
	correction RGB
	scaled     []RGB
}

func NewStrip(pixelCount int, clock Clock, rnd *Random, out Output) *Strip {
	return &Strip{
		Pixels:     make(Frame, pixelCount),
		clock:      clock,
		rnd:        rnd,
		out:        out,
		brightness: DefaultBrightness,
		correction: UncorrectedColor,
		scaled:     make([]RGB, pixelCount),
	}
}

func (s *Strip) Len() int {
	return len(s.Pixels)
}

// Now is milliseconds since startup.
func (s *Strip) Now() int64 {
	return s.clock.Millis()
}

// Delay blocks the caller for ms milliseconds.
func (s *Strip) Delay(ms int64) {
	s.clock.Delay(ms)
}

func (s *Strip) Random() *Random {
	return s.rnd
}

func (s *Strip) SetBrightness(brightness uint8) {
	s.brightness = brightness
}

func (s *Strip) SetCorrection(correction RGB) {
	s.correction = correction
}

// Show scales the frame by brightness and correction and hands it to the
// output. The frame itself is left untouched.
func (s *Strip) Show() (err errors.Error) {
	for i, c := range s.Pixels {
		s.scaled[i] = c.Scale(s.brightness, s.correction)
	}
	if errGo := s.out.Render(s.scaled); errGo != nil {
		return errors.Wrap(errGo).With("pixels", len(s.scaled)).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
