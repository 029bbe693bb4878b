package animation

// Decay and inject: existing light or heat decays every tick and new energy
// is injected on a random draw.

type twinkleAnimation struct{}

func newTwinkleAnimation(s *Strip) Animation {
	return &twinkleAnimation{}
}

func (a *twinkleAnimation) frame(s *Strip) error {
	rnd := s.Random()
	if rnd.Uint8() < 50 {
		led := rnd.Intn(s.Len())
		s.Pixels.Set(led, HSV{rnd.Uint8(), 255, 255}.RGB())
	}
	s.Pixels.FadeToBlackBy(20)
	return nil
}

const (
	fireCooling   = 55
	fireSparking  = 120
	fireSparkZone = 7
)

type fireAnimation struct {
	heat []uint8
}

func newFireAnimation(s *Strip) Animation {
	return &fireAnimation{heat: make([]uint8, s.Len())}
}

func (a *fireAnimation) frame(s *Strip) error {
	rnd := s.Random()
	n := len(a.heat)

	cooldownMax := fireCooling*10/n + 2
	if cooldownMax > 255 {
		cooldownMax = 255
	}
	for i := range a.heat {
		a.heat[i] = QSub8(a.heat[i], rnd.Uint8Range(0, uint8(cooldownMax)))
	}

	// heat drifts up and diffuses
	for k := n - 1; k >= 2; k-- {
		a.heat[k] = uint8((int(a.heat[k-1]) + int(a.heat[k-2]) + int(a.heat[k-2])) / 3)
	}

	if rnd.Uint8() < fireSparking {
		y := int(rnd.Uint8n(fireSparkZone))
		if y < n {
			a.heat[y] = QAdd8(a.heat[y], rnd.Uint8Range(160, 255))
		}
	}

	for j, t := range a.heat {
		s.Pixels[j] = HeatColor(t)
	}
	return nil
}

type matrixRainAnimation struct {
	drops      []bool
	brightness []uint8
}

func newMatrixRainAnimation(s *Strip) Animation {
	return &matrixRainAnimation{
		drops:      make([]bool, s.Len()),
		brightness: make([]uint8, s.Len()),
	}
}

func (a *matrixRainAnimation) frame(s *Strip) error {
	rnd := s.Random()
	if rnd.Uint8() < 30 {
		pos := rnd.Intn(len(a.drops))
		a.drops[pos] = true
		a.brightness[pos] = 255
	}

	for i := range a.drops {
		if !a.drops[i] {
			s.Pixels[i] = Black
			continue
		}
		s.Pixels[i] = RGB{0, a.brightness[i], 0}
		a.brightness[i] = uint8(float64(a.brightness[i]) * 0.9)
		if a.brightness[i] < 10 {
			a.drops[i] = false
		}
	}
	return nil
}

type digitalRainAnimation struct {
	heads    []int
	lastStep int64
}

func newDigitalRainAnimation(s *Strip) Animation {
	return &digitalRainAnimation{}
}

var digitalRainHead = RGB{180, 255, 180}

func (a *digitalRainAnimation) frame(s *Strip) error {
	rnd := s.Random()
	s.Pixels.FadeToBlackBy(40)

	if now := s.Now(); now-a.lastStep > 60 {
		live := a.heads[:0]
		for _, h := range a.heads {
			if h+1 < s.Len() {
				live = append(live, h+1)
			}
		}
		a.heads = live
		a.lastStep = now
	}

	if rnd.Uint8() < 40 {
		a.heads = append(a.heads, 0)
	}

	for _, h := range a.heads {
		s.Pixels.Set(h, digitalRainHead)
	}
	return nil
}

type sparklePopAnimation struct {
	lastPop int64
}

func newSparklePopAnimation(s *Strip) Animation {
	return &sparklePopAnimation{}
}

func (a *sparklePopAnimation) frame(s *Strip) error {
	rnd := s.Random()
	s.Pixels.FadeToBlackBy(8)

	now := s.Now()
	if now-a.lastPop <= rnd.Range(100, 500) {
		return nil
	}

	center := rnd.Intn(s.Len())
	hue := rnd.Uint8()
	s.Pixels.Set(center, HSV{hue, 255, 255}.RGB())
	for i := 1; i < 4; i++ {
		c := HSV{hue, 255, uint8(255 - i*50)}.RGB()
		s.Pixels.Set(center-i, c)
		s.Pixels.Set(center+i, c)
	}
	a.lastPop = now
	return nil
}

type fireworkStage int

const (
	fireworkIdle fireworkStage = iota
	fireworkRising
	fireworkBursting
)

const fireworkMaxRadius = 5

type fireworksAnimation struct {
	stage    fireworkStage
	position int
	target   int
	radius   int
	hue      uint8
}

func newFireworksAnimation(s *Strip) Animation {
	return &fireworksAnimation{}
}

func (a *fireworksAnimation) frame(s *Strip) error {
	rnd := s.Random()
	n := s.Len()
	s.Pixels.FadeToBlackBy(30)

	switch a.stage {
	case fireworkIdle:
		if rnd.Uint8() < 20 {
			a.stage = fireworkRising
			a.position = 0
			a.target = int(rnd.Range(int64(n/3), int64(n-n/6)))
			a.hue = rnd.Uint8()
		}
	case fireworkRising:
		s.Pixels.Set(a.position, White)
		if a.position >= a.target {
			a.stage = fireworkBursting
			a.radius = 0
			break
		}
		a.position++
	case fireworkBursting:
		c := HSV{a.hue, 255, uint8(255 - a.radius*40)}.RGB()
		s.Pixels.Set(a.target-a.radius, c)
		s.Pixels.Set(a.target+a.radius, c)
		a.radius++
		if a.radius > fireworkMaxRadius {
			a.stage = fireworkIdle
		}
	}
	return nil
}
