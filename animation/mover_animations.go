package animation

import (
	"math"
)

// Position driven movers. The ones with a lastMove stamp advance on their
// own interval, independent of the refresh rate.

type chaseAnimation struct {
	position int
	lastMove int64
	hue      uint8
}

func newChaseAnimation(s *Strip) Animation {
	return &chaseAnimation{}
}

func (a *chaseAnimation) frame(s *Strip) error {
	now := s.Now()
	if now-a.lastMove <= 150 {
		return nil
	}

	n := s.Len()
	s.Pixels.Clear()
	for i := 0; i < 5; i++ {
		pos := (a.position + i) % n
		s.Pixels.Set(pos, HSV{a.hue + uint8(i*30), 255, uint8(255 - i*50)}.RGB())
	}

	a.position = (a.position + 1) % n
	a.hue += 3
	a.lastMove = now
	return nil
}

type meteorAnimation struct {
	position int
	hue      uint8
}

func newMeteorAnimation(s *Strip) Animation {
	return &meteorAnimation{position: -10}
}

func (a *meteorAnimation) frame(s *Strip) error {
	s.Pixels.FadeToBlackBy(20)

	for i := 0; i < 8; i++ {
		s.Pixels.Set(a.position-i, HSV{a.hue, 255, uint8(255 - i*30)}.RGB())
	}

	a.position++
	if a.position > s.Len()+10 {
		a.position = -10
		a.hue += 60
	}
	return nil
}

type knightRiderAnimation struct {
	position  int
	direction int
	lastMove  int64
}

func newKnightRiderAnimation(s *Strip) Animation {
	return &knightRiderAnimation{direction: 1}
}

func (a *knightRiderAnimation) frame(s *Strip) error {
	now := s.Now()
	if now-a.lastMove <= 100 {
		return nil
	}

	s.Pixels.Clear()
	for i := 0; i < 4; i++ {
		s.Pixels.Set(a.position+i*a.direction, RGB{uint8(255 - i*60), 0, 0})
	}

	a.position += a.direction
	if a.position >= s.Len()-3 || a.position <= 0 {
		a.direction = -a.direction
	}
	a.lastMove = now
	return nil
}

type cometAnimation struct {
	position int
	hue      uint8
}

func newCometAnimation(s *Strip) Animation {
	return &cometAnimation{}
}

func (a *cometAnimation) frame(s *Strip) error {
	s.Pixels.FadeToBlackBy(15)

	s.Pixels.Set(a.position, HSV{a.hue, 255, 255}.RGB())
	for i := 1; i < 6 && a.position-i >= 0; i++ {
		s.Pixels.Add(a.position-i, HSV{a.hue, 255, uint8(255 - i*40)}.RGB())
	}

	a.position++
	if a.position >= s.Len() {
		a.position = 0
		a.hue += 30
	}
	return nil
}

type colorWipeAnimation struct {
	position int
	hue      uint8
	lastMove int64
}

func newColorWipeAnimation(s *Strip) Animation {
	return &colorWipeAnimation{}
}

func (a *colorWipeAnimation) frame(s *Strip) error {
	now := s.Now()
	if now-a.lastMove <= 40 {
		return nil
	}

	s.Pixels.Set(a.position, HSV{a.hue, 255, 255}.RGB())
	a.position++
	if a.position >= s.Len() {
		a.position = 0
		a.hue += 40
	}
	a.lastMove = now
	return nil
}

// waveCollapseAnimation grows a lit band out from the centre to the ends of
// the strip and back.
type waveCollapseAnimation struct {
	radius    float64
	direction float64
	hue       uint8
}

func newWaveCollapseAnimation(s *Strip) Animation {
	return &waveCollapseAnimation{direction: 1}
}

func (a *waveCollapseAnimation) frame(s *Strip) error {
	n := s.Len()
	center := float64(n) / 2

	s.Pixels.Clear()
	a.radius += 0.5 * a.direction
	if a.radius >= center {
		a.radius = center
		a.direction = -1
	} else if a.radius <= 0 {
		a.radius = 0
		a.direction = 1
	}

	for i := range s.Pixels {
		d := math.Abs(float64(i) - center)
		if d > a.radius {
			continue
		}
		level := 255 * (1 - d/(a.radius+1))
		s.Pixels.Set(i, HSV{a.hue, 255, uint8(level)}.RGB())
	}
	a.hue++
	return nil
}
