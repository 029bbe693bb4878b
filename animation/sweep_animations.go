package animation

import (
	"math"
)

// Phase driven sweeps. Each one advances one or more phase accumulators per
// tick and maps (phase, pixel) to a color.

type rainbowFlowAnimation struct {
	hue       uint8
	direction int8
}

func newRainbowFlowAnimation(s *Strip) Animation {
	return &rainbowFlowAnimation{direction: 1}
}

func (a *rainbowFlowAnimation) frame(s *Strip) error {
	n := s.Len()
	for i := range s.Pixels {
		s.Pixels[i] = HSV{a.hue + uint8(i*256/n), 255, 255}.RGB()
	}

	a.hue += uint8(int(a.direction) * 2)
	if a.hue > 250 || a.hue < 5 {
		a.direction = -a.direction
	}
	return nil
}

// breathingAnimation ramps an 8-bit level up by 2 per tick. The level wraps
// from 254 straight back to 0, so the descending half never runs.
type breathingAnimation struct {
	brightness uint8
	increasing bool
}

func newBreathingAnimation(s *Strip) Animation {
	return &breathingAnimation{increasing: true}
}

func (a *breathingAnimation) frame(s *Strip) error {
	if a.increasing {
		a.brightness += 2
		if a.brightness == 255 {
			a.increasing = false
		}
	} else {
		a.brightness -= 2
		if a.brightness == 0 {
			a.increasing = true
		}
	}

	s.Pixels.Fill(HSV{160, 255, a.brightness}.RGB())
	return nil
}

type waveAnimation struct {
	phase float64
}

func newWaveAnimation(s *Strip) Animation {
	return &waveAnimation{}
}

func (a *waveAnimation) frame(s *Strip) error {
	a.phase += 0.1
	for i := range s.Pixels {
		v := uint8((math.Sin(a.phase+float64(i)*0.5) + 1) * 127)
		s.Pixels[i] = HSV{96, 255, v}.RGB()
	}
	return nil
}

type staticColorAnimation struct {
	colorIndex uint8
	lastChange int64
}

func newStaticColorAnimation(s *Strip) Animation {
	return &staticColorAnimation{}
}

func (a *staticColorAnimation) frame(s *Strip) error {
	if now := s.Now(); now-a.lastChange > 2000 {
		a.colorIndex = uint8((int(a.colorIndex) + 60) % 255)
		a.lastChange = now
	}
	s.Pixels.Fill(HSV{a.colorIndex, 255, 255}.RGB())
	return nil
}

type rainbowCycleAnimation struct {
	j uint16
}

func newRainbowCycleAnimation(s *Strip) Animation {
	return &rainbowCycleAnimation{}
}

func (a *rainbowCycleAnimation) frame(s *Strip) error {
	n := s.Len()
	for i := range s.Pixels {
		hue := uint8((i*256/n + int(a.j)) & 255)
		s.Pixels[i] = HSV{hue, 255, 255}.RGB()
	}
	a.j += 2
	return nil
}

type plasmaAnimation struct {
	phase1, phase2, phase3 float64
}

func newPlasmaAnimation(s *Strip) Animation {
	return &plasmaAnimation{}
}

func (a *plasmaAnimation) frame(s *Strip) error {
	a.phase1 += 0.1
	a.phase2 += 0.05
	a.phase3 += 0.07

	for i := range s.Pixels {
		x := float64(i)
		v1 := math.Sin(a.phase1 + x*0.3)
		v2 := math.Sin(a.phase2 + x*0.2)
		v3 := math.Sin(a.phase3 + x*0.1)

		brightness := uint8((v1 + v2 + v3 + 3) * 42)
		// out of range hues truncate toward zero then wrap
		hue := uint8(int((v1+v2)*127 + 128))

		s.Pixels[i] = HSV{hue, 255, brightness}.RGB()
	}
	return nil
}

type rainbowSpiralAnimation struct {
	hue   uint8
	phase float64
}

func newRainbowSpiralAnimation(s *Strip) Animation {
	return &rainbowSpiralAnimation{}
}

func (a *rainbowSpiralAnimation) frame(s *Strip) error {
	n := s.Len()
	for i := range s.Pixels {
		hue := a.hue + uint8(i*512/n)
		v := uint8(64 + (math.Sin(a.phase+float64(i)*0.4)+1)*95)
		s.Pixels[i] = HSV{hue, 255, v}.RGB()
	}
	a.hue += 3
	a.phase += 0.15
	return nil
}

type pulseWaveAnimation struct {
	phase   float64
	baseHue uint8
}

func newPulseWaveAnimation(s *Strip) Animation {
	return &pulseWaveAnimation{}
}

func (a *pulseWaveAnimation) frame(s *Strip) error {
	a.phase += 0.2
	a.baseHue++

	for i := range s.Pixels {
		level := math.Max(0, math.Sin(a.phase-float64(i)*0.35))
		s.Pixels[i] = HSV{a.baseHue + uint8(2*i), 255, uint8(level * 255)}.RGB()
	}
	return nil
}
