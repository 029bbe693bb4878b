package animation

// Source is the uniform generator behind Random. *rand.Rand satisfies it.
type Source interface {
	Int63n(n int64) int64
}

// Random exposes the draws the animations use. Every range is inclusive of
// its lower bound and exclusive of its upper bound.
type Random struct {
	src Source
}

func NewRandom(src Source) *Random {
	return &Random{src: src}
}

// Uint8 draws from [0, 256).
func (r *Random) Uint8() uint8 {
	return uint8(r.src.Int63n(256))
}

// Uint8n draws from [0, lim). A zero limit yields 0.
func (r *Random) Uint8n(lim uint8) uint8 {
	if lim == 0 {
		return 0
	}
	return uint8(r.src.Int63n(int64(lim)))
}

// Uint8Range draws from [lo, hi).
func (r *Random) Uint8Range(lo, hi uint8) uint8 {
	if hi <= lo {
		return lo
	}
	return lo + uint8(r.src.Int63n(int64(hi-lo)))
}

// Intn draws a pixel index from [0, n).
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.src.Int63n(int64(n)))
}

// Range draws from [lo, hi).
func (r *Random) Range(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Int63n(hi-lo)
}
