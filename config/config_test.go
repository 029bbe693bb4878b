package config

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/14790897/esp32-ws2812/animation"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.Nil(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Pixels)
	assert.Equal(t, 3*time.Second, cfg.EffectDuration)
	assert.Equal(t, 50*time.Millisecond, cfg.RefreshDelay)

	ids, err := cfg.EffectIDs()
	require.Nil(t, err)
	assert.Equal(t, animation.ClassicEffects, ids)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero pixels":    func(c *Config) { c.Pixels = 0 },
		"brightness":     func(c *Config) { c.Brightness = 300 },
		"duration":       func(c *Config) { c.EffectDuration = 0 },
		"negative delay": func(c *Config) { c.RefreshDelay = -time.Millisecond },
		"driver":         func(c *Config) { c.Driver = "serial" },
		"correction":     func(c *Config) { c.Correction = "not-a-color" },
		"catalog":        func(c *Config) { c.Catalog = "huge" },
		"effect":         func(c *Config) { c.Effects = []string{"fire", "disco"} },
		"opc channel":    func(c *Config) { c.OPCChannel = 256 },
	}
	for name, mutate := range cases {
		cfg := Defaults()
		mutate(&cfg)
		assert.NotNil(t, cfg.Validate(), name)
	}
}

func TestCustomEffects(t *testing.T) {
	cfg := Defaults()
	cfg.Effects = []string{"Fire", "simplex-drift"}
	require.Nil(t, cfg.Validate())

	ids, err := cfg.EffectIDs()
	require.Nil(t, err)
	assert.Equal(t, []animation.EffectID{animation.Fire, animation.SimplexDrift}, ids)
}

func TestLoadFile(t *testing.T) {
	dir, errGo := ioutil.TempDir("", "ws2812")
	require.NoError(t, errGo)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "strip.yaml")
	yml := "pixels: 60\neffect_duration: 6s\ncatalog: extended\neffects: []\ndriver: opc\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadFile(path, Defaults())
	require.Nil(t, err)
	assert.Equal(t, 60, cfg.Pixels)
	assert.Equal(t, 6*time.Second, cfg.EffectDuration)
	assert.Equal(t, "extended", cfg.Catalog)
	assert.Equal(t, "opc", cfg.Driver)
	// untouched keys keep the base value
	assert.Equal(t, 18, cfg.DataPin)
	assert.Equal(t, path, cfg.File)
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile("/does/not/exist.yaml", Defaults())
	assert.NotNil(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-pixels", "45", "-effects", "comet, fire", "-v"}))

	assert.Equal(t, 45, cfg.Pixels)
	assert.Equal(t, []string{"comet", "fire"}, cfg.Effects)

	fromFile := Defaults()
	fromFile.Pixels = 60
	fromFile.Brightness = 200

	merged, err := fromFile.WithFlags(fs)
	require.Nil(t, err)
	assert.Equal(t, 45, merged.Pixels)
	assert.Equal(t, 200, merged.Brightness)
	assert.Equal(t, []string{"comet", "fire"}, merged.Effects)
	assert.True(t, merged.Verbose)
}
