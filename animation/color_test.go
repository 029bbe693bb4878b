package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSVFixedPoints(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, HSV{0, 255, 255}.RGB())
	assert.Equal(t, RGB{0, 255, 0}, HSV{85, 255, 255}.RGB())
	assert.Equal(t, RGB{0, 0, 255}, HSV{170, 255, 255}.RGB())

	frame := make(Frame, 60)
	frame.Fill(HSV{0, 255, 255}.RGB())
	for i, c := range frame {
		assert.Equal(t, RGB{255, 0, 0}, c, "pixel %d", i)
	}
}

func TestHSVSaturationAndValue(t *testing.T) {
	assert.Equal(t, White, HSV{123, 0, 255}.RGB())
	assert.Equal(t, Black, HSV{42, 255, 0}.RGB())
	assert.Equal(t, RGB{128, 0, 0}, HSV{0, 255, 128}.RGB())

	// hue wraps: 255 sits just short of red again
	c := HSV{255, 255, 255}.RGB()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
}

func TestHSVStaysInGamut(t *testing.T) {
	for h := 0; h < 256; h++ {
		c := HSV{uint8(h), 255, 255}.RGB()
		sum := int(c.R) + int(c.G) + int(c.B)
		assert.Equal(t, 255, sum, "hue %d", h)
	}
}

func TestFadeToBlackByDecreasesToZero(t *testing.T) {
	for _, amount := range []uint8{1, 8, 15, 20, 50, 128, 255} {
		c := RGB{255, 100, 1}
		for step := 0; !c.IsBlack(); step++ {
			require.Less(t, step, 2000, "amount %d never reached black", amount)
			next := c.FadeToBlackBy(amount)
			for _, pair := range [][2]uint8{{c.R, next.R}, {c.G, next.G}, {c.B, next.B}} {
				if pair[0] == 0 {
					assert.Zero(t, pair[1])
				} else {
					assert.Less(t, pair[1], pair[0], "amount %d", amount)
				}
			}
			c = next
		}
	}
}

func TestFadeToBlackByZeroHolds(t *testing.T) {
	c := RGB{10, 20, 30}
	assert.Equal(t, c, c.FadeToBlackBy(0))
	assert.Equal(t, RGB{80, 80, 80}, RGB{100, 100, 100}.FadeToBlackBy(50))
}

func TestAddSaturates(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 15 {
			c := RGB{uint8(a), uint8(b), 255}.Add(RGB{uint8(b), uint8(a), uint8(a)})
			want := a + b
			if want > 255 {
				want = 255
			}
			assert.Equal(t, uint8(want), c.R)
			assert.Equal(t, uint8(want), c.G)
			assert.Equal(t, uint8(255), c.B)
		}
	}
}

func TestSaturatingMath(t *testing.T) {
	assert.Equal(t, uint8(255), QAdd8(200, 100))
	assert.Equal(t, uint8(150), QAdd8(100, 50))
	assert.Equal(t, uint8(0), QSub8(10, 20))
	assert.Equal(t, uint8(5), QSub8(25, 20))

	assert.Equal(t, uint8(0), Scale8Video(0, 191))
	assert.Equal(t, uint8(1), Scale8Video(1, 191))
	assert.Equal(t, uint8(191), Scale8Video(255, 191))
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, Black, HeatColor(0))

	hot := HeatColor(255)
	assert.Equal(t, uint8(255), hot.R)
	assert.Equal(t, uint8(255), hot.G)
	assert.NotZero(t, hot.B)

	// red comes up first, then green, then blue
	prev := HeatColor(0)
	for temp := 1; temp < 256; temp++ {
		c := HeatColor(uint8(temp))
		assert.GreaterOrEqual(t, c.R, prev.R, "temp %d", temp)
		if c.G > 0 {
			assert.Equal(t, uint8(255), c.R, "temp %d", temp)
		}
		if c.B > 0 {
			assert.Equal(t, uint8(255), c.G, "temp %d", temp)
		}
		prev = c
	}
}

func TestScale(t *testing.T) {
	c := RGB{200, 100, 50}
	assert.Equal(t, c, c.Scale(255, UncorrectedColor))
	assert.Equal(t, Black, c.Scale(0, UncorrectedColor))

	strip := White.Scale(255, TypicalLEDStrip)
	assert.Equal(t, uint8(255), strip.R)
	assert.Equal(t, uint8(0xB0), strip.G)
	assert.Equal(t, uint8(0xF0), strip.B)

	dim := White.Scale(100, UncorrectedColor)
	assert.Equal(t, RGB{100, 100, 100}, dim)
}

func TestParseCorrection(t *testing.T) {
	corr, err := ParseCorrection("typical-strip")
	require.Nil(t, err)
	assert.Equal(t, TypicalLEDStrip, corr)

	corr, err = ParseCorrection(" Uncorrected ")
	require.Nil(t, err)
	assert.Equal(t, UncorrectedColor, corr)

	corr, err = ParseCorrection("#FFE08C")
	require.Nil(t, err)
	assert.Equal(t, TypicalPixelStrip, corr)

	corr, err = ParseCorrection("ff8000")
	require.Nil(t, err)
	assert.Equal(t, RGB{255, 128, 0}, corr)

	_, err = ParseCorrection("sunset")
	assert.NotNil(t, err)
}
