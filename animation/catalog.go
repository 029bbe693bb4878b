package animation

import (
	"sort"
	"strings"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// EffectID names one animation in a catalog.
type EffectID string

const (
	RainbowFlow   EffectID = "rainbow-flow"
	Breathing     EffectID = "breathing"
	Wave          EffectID = "wave"
	StaticColor   EffectID = "static-color"
	Twinkle       EffectID = "twinkle"
	Chase         EffectID = "chase"
	Fire          EffectID = "fire"
	Meteor        EffectID = "meteor"
	RainbowCycle  EffectID = "rainbow-cycle"
	Plasma        EffectID = "plasma"
	Lightning     EffectID = "lightning"
	MatrixRain    EffectID = "matrix-rain"
	KnightRider   EffectID = "knight-rider"
	Comet         EffectID = "comet"
	SparklePop    EffectID = "sparkle-pop"
	RainbowSpiral EffectID = "rainbow-spiral"
	PulseWave     EffectID = "pulse-wave"
	ColorWipe     EffectID = "color-wipe"
	DigitalRain   EffectID = "digital-rain"
	Fireworks     EffectID = "fireworks"
	RainbowStrobe EffectID = "rainbow-strobe"
	WaveCollapse  EffectID = "wave-collapse"
	SimplexDrift  EffectID = "simplex-drift"
)

type generator struct {
	name string
	new  func(s *Strip) Animation
}

var generators = map[EffectID]generator{
	RainbowFlow:   {"rainbow flow", newRainbowFlowAnimation},
	Breathing:     {"breathing", newBreathingAnimation},
	Wave:          {"wave", newWaveAnimation},
	StaticColor:   {"static color", newStaticColorAnimation},
	Twinkle:       {"twinkle", newTwinkleAnimation},
	Chase:         {"chase", newChaseAnimation},
	Fire:          {"fire", newFireAnimation},
	Meteor:        {"meteor", newMeteorAnimation},
	RainbowCycle:  {"rainbow cycle", newRainbowCycleAnimation},
	Plasma:        {"plasma", newPlasmaAnimation},
	Lightning:     {"lightning", newLightningAnimation},
	MatrixRain:    {"matrix rain", newMatrixRainAnimation},
	KnightRider:   {"knight rider", newKnightRiderAnimation},
	Comet:         {"comet", newCometAnimation},
	SparklePop:    {"sparkle pop", newSparklePopAnimation},
	RainbowSpiral: {"rainbow spiral", newRainbowSpiralAnimation},
	PulseWave:     {"pulse wave", newPulseWaveAnimation},
	ColorWipe:     {"color wipe", newColorWipeAnimation},
	DigitalRain:   {"digital rain", newDigitalRainAnimation},
	Fireworks:     {"fireworks", newFireworksAnimation},
	RainbowStrobe: {"rainbow strobe", newRainbowStrobeAnimation},
	WaveCollapse:  {"wave collapse", newWaveCollapseAnimation},
	SimplexDrift:  {"simplex drift", newSimplexAnimation},
}

var (
	// ClassicEffects is the 15 effect rotation of the small firmware.
	ClassicEffects = []EffectID{
		RainbowFlow, Breathing, Wave, StaticColor, Twinkle,
		Chase, Fire, Meteor, RainbowCycle, Plasma,
		Lightning, MatrixRain, KnightRider, Comet, SparklePop,
	}

	// ExtendedEffects is the 18 effect rotation of the large firmware.
	ExtendedEffects = []EffectID{
		RainbowFlow, RainbowCycle, RainbowSpiral, Plasma, PulseWave,
		Chase, Meteor, Comet, KnightRider, ColorWipe,
		Twinkle, Fire, DigitalRain, SparklePop, Fireworks,
		Lightning, RainbowStrobe, WaveCollapse,
	}

	catalogs = map[string][]EffectID{
		"classic":  ClassicEffects,
		"extended": ExtendedEffects,
	}
)

// Entry binds an effect identifier to its generator and the generator's
// private state.
type Entry struct {
	ID        EffectID
	Name      string
	Animation Animation
}

// Catalog is the fixed rotation. Its order is the rotation order.
type Catalog []Entry

// CatalogEffects returns the rotation of a named catalog.
func CatalogEffects(name string) (ids []EffectID, err errors.Error) {
	ids, isPresent := catalogs[strings.ToLower(name)]
	if !isPresent {
		return nil, errors.New("unknown catalog").With("catalog", name).With("stack", stack.Trace().TrimRuntime())
	}
	return ids, nil
}

// KnownEffects lists every identifier a custom catalog may use.
func KnownEffects() (ids []EffectID) {
	for id := range generators {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NewCatalog builds fresh state for every listed effect against the strip.
// An identifier listed twice gets two independent states.
func NewCatalog(s *Strip, ids []EffectID) (catalog Catalog, err errors.Error) {
	if len(ids) == 0 {
		return nil, errors.New("empty catalog").With("stack", stack.Trace().TrimRuntime())
	}
	catalog = make(Catalog, 0, len(ids))
	for _, id := range ids {
		gen, isPresent := generators[id]
		if !isPresent {
			return nil, errors.New("unknown effect").With("effect", string(id)).With("stack", stack.Trace().TrimRuntime())
		}
		catalog = append(catalog, Entry{ID: id, Name: gen.name, Animation: gen.new(s)})
	}
	return catalog, nil
}
