package animation

// Timed bursts. After a hidden wait they fire a train of flashes, each one
// transmitted and held from inside the frame call. A train runs to
// completion; nothing interrupts the blocking delays.

var lightningIdle = RGB{0, 0, 20}

type lightningAnimation struct {
	lastFlash  int64
	flashing   bool
	flashCount int64
}

func newLightningAnimation(s *Strip) Animation {
	return &lightningAnimation{}
}

func (a *lightningAnimation) frame(s *Strip) error {
	rnd := s.Random()

	if !a.flashing && s.Now()-a.lastFlash > rnd.Range(2000, 5000) {
		a.flashing = true
		a.flashCount = rnd.Range(1, 4)
		a.lastFlash = s.Now()
	}

	if !a.flashing {
		s.Pixels.Fill(lightningIdle)
		return nil
	}

	if a.flashCount > 0 && s.Now()-a.lastFlash > rnd.Range(50, 200) {
		s.Pixels.Fill(White)
		if err := s.Show(); err != nil {
			return err
		}
		s.Delay(rnd.Range(10, 50))
		s.Pixels.Clear()
		a.flashCount--
		a.lastFlash = s.Now()
	}

	if a.flashCount <= 0 {
		a.flashing = false
	}
	return nil
}

type rainbowStrobeAnimation struct {
	lastBurst int64
	wait      int64
	hue       uint8
}

func newRainbowStrobeAnimation(s *Strip) Animation {
	return &rainbowStrobeAnimation{wait: s.Random().Range(1000, 3000)}
}

func (a *rainbowStrobeAnimation) frame(s *Strip) error {
	rnd := s.Random()

	if s.Now()-a.lastBurst <= a.wait {
		s.Pixels.Fill(HSV{a.hue, 255, 40}.RGB())
		return nil
	}

	for flashes := rnd.Range(3, 8); flashes > 0; flashes-- {
		s.Pixels.Fill(HSV{a.hue, 255, 255}.RGB())
		if err := s.Show(); err != nil {
			return err
		}
		s.Delay(rnd.Range(20, 60))

		s.Pixels.Clear()
		if err := s.Show(); err != nil {
			return err
		}
		s.Delay(rnd.Range(30, 90))
		a.hue += 32
	}

	a.lastBurst = s.Now()
	a.wait = rnd.Range(1000, 3000)
	return nil
}
