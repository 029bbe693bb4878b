package animation

import (
	"strings"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one pixel as it goes out on the wire, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// HSV is an 8-bit hue/saturation/value triple. Hue wraps modulo 256.
type HSV struct {
	H, S, V uint8
}

var (
	Black = RGB{}
	White = RGB{255, 255, 255}

	// Correction profiles, channel multipliers applied on transmit.
	TypicalLEDStrip   = RGB{0xFF, 0xB0, 0xF0}
	TypicalPixelStrip = RGB{0xFF, 0xE0, 0x8C}
	UncorrectedColor  = RGB{0xFF, 0xFF, 0xFF}

	correctionProfiles = map[string]RGB{
		"typical-strip": TypicalLEDStrip,
		"typical-pixel": TypicalPixelStrip,
		"uncorrected":   UncorrectedColor,
	}
)

// RGB converts with a three segment linear hue wheel: 0 is red, 85 green
// and 170 blue.
func (c HSV) RGB() RGB {
	var r, g, b int
	h := int(c.H)
	switch {
	case h < 85:
		r, g = 255-h*3, h*3
	case h < 170:
		h -= 85
		g, b = 255-h*3, h*3
	default:
		h -= 170
		b, r = 255-h*3, h*3
	}

	s, v := int(c.S), int(c.V)
	desat := 255 - s
	apply := func(ch int) uint8 {
		ch = ch*s/255 + desat
		return uint8(ch * v / 255)
	}
	return RGB{apply(r), apply(g), apply(b)}
}

// Add blends o into c with per channel saturation at 255.
func (c RGB) Add(o RGB) RGB {
	return RGB{QAdd8(c.R, o.R), QAdd8(c.G, o.G), QAdd8(c.B, o.B)}
}

// FadeToBlackBy scales every channel by (256-amount)/256, rounding down.
func (c RGB) FadeToBlackBy(amount uint8) RGB {
	keep := 256 - uint16(amount)
	return RGB{
		uint8(uint16(c.R) * keep >> 8),
		uint8(uint16(c.G) * keep >> 8),
		uint8(uint16(c.B) * keep >> 8),
	}
}

// Scale applies the global brightness and a color correction profile.
func (c RGB) Scale(brightness uint8, correction RGB) RGB {
	scale := func(ch, corr uint8) uint8 {
		factor := uint32(brightness) * uint32(corr) / 255
		return uint8(uint32(ch) * factor / 255)
	}
	return RGB{scale(c.R, correction.R), scale(c.G, correction.G), scale(c.B, correction.B)}
}

// IsBlack reports whether every channel is off.
func (c RGB) IsBlack() bool {
	return c == Black
}

// QAdd8 adds and clamps at 255.
func QAdd8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// QSub8 subtracts and clamps at 0.
func QSub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Scale8Video scales i by scale/256 but never takes a non-zero input to zero.
func Scale8Video(i, scale uint8) uint8 {
	r := uint8(uint16(i) * uint16(scale) >> 8)
	if i != 0 && scale != 0 {
		r++
	}
	return r
}

// HeatColor maps a temperature onto black, red, yellow then white.
func HeatColor(temperature uint8) RGB {
	t192 := Scale8Video(temperature, 191)
	ramp := (t192 & 0x3F) << 2

	switch {
	case t192&0x80 != 0:
		return RGB{255, 255, ramp}
	case t192&0x40 != 0:
		return RGB{255, ramp, 0}
	default:
		return RGB{ramp, 0, 0}
	}
}

// ParseCorrection accepts a named profile or a hex color such as "#FFB0F0".
func ParseCorrection(profile string) (corr RGB, err errors.Error) {
	name := strings.ToLower(strings.TrimSpace(profile))
	if c, isPresent := correctionProfiles[name]; isPresent {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	color, errGo := colorful.Hex(name)
	if errGo != nil {
		return corr, errors.Wrap(errGo).With("profile", profile).With("stack", stack.Trace().TrimRuntime())
	}
	corr.R, corr.G, corr.B = color.RGB255()
	return corr, nil
}
