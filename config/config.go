// Package config holds the read-only startup settings of the strip: layout,
// brightness, timing, catalog and output driver. Settings come from the
// defaults below, then an optional YAML file, then flags or their
// environment variable equivalents.
package config

import (
	"flag"
	"io/ioutil"
	"strings"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"gopkg.in/yaml.v2"

	"github.com/14790897/esp32-ws2812/animation"
)

type Config struct {
	File string `yaml:"-"`

	Pixels     int    `yaml:"pixels"`
	DataPin    int    `yaml:"data_pin"`
	Brightness int    `yaml:"brightness"`
	Correction string `yaml:"correction"`

	EffectDuration time.Duration `yaml:"effect_duration"`
	RefreshDelay   time.Duration `yaml:"refresh_delay"`
	SettleDelay    time.Duration `yaml:"settle_delay"`

	Catalog string   `yaml:"catalog"`
	Effects []string `yaml:"effects"` // overrides Catalog when set

	Driver     string `yaml:"driver"`
	OPCServer  string `yaml:"opc_server"`
	OPCChannel int    `yaml:"opc_channel"`

	Seed    int64 `yaml:"seed"` // 0 seeds from the clock
	Verbose bool  `yaml:"verbose"`
}

var drivers = map[string]bool{"term": true, "opc": true, "usb": true}

// Defaults mirror the stock firmware build.
func Defaults() Config {
	return Config{
		Pixels:         30,
		DataPin:        18,
		Brightness:     animation.DefaultBrightness,
		Correction:     "typical-strip",
		EffectDuration: animation.DefaultEffectDuration * time.Millisecond,
		RefreshDelay:   animation.DefaultRefreshDelay * time.Millisecond,
		SettleDelay:    animation.DefaultSettleDelay * time.Millisecond,
		Catalog:        "classic",
		Driver:         "term",
		OPCServer:      "localhost:7890",
	}
}

type effectList struct {
	effects *[]string
}

func (l effectList) String() string {
	if l.effects == nil {
		return ""
	}
	return strings.Join(*l.effects, ",")
}

func (l effectList) Set(value string) error {
	*l.effects = (*l.effects)[:0]
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*l.effects = append(*l.effects, name)
		}
	}
	return nil
}

// Bind registers one flag per setting, defaulting to the current values.
func (cfg *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&cfg.File, "config", cfg.File, "optional YAML file with settings, overridden by flags")
	fs.IntVar(&cfg.Pixels, "pixels", cfg.Pixels, "number of pixels on the strip")
	fs.IntVar(&cfg.DataPin, "data-pin", cfg.DataPin, "data pin of the strip, reported only")
	fs.IntVar(&cfg.Brightness, "brightness", cfg.Brightness, "global brightness 0-255")
	fs.StringVar(&cfg.Correction, "correction", cfg.Correction, "color correction, typical-strip, typical-pixel, uncorrected or a hex color")
	fs.DurationVar(&cfg.EffectDuration, "effect-duration", cfg.EffectDuration, "how long each effect stays active")
	fs.DurationVar(&cfg.RefreshDelay, "refresh-delay", cfg.RefreshDelay, "delay after every frame")
	fs.DurationVar(&cfg.SettleDelay, "settle-delay", cfg.SettleDelay, "dark hold after an effect switch")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "effect rotation, classic or extended")
	fs.Var(effectList{&cfg.Effects}, "effects", "comma separated custom effect rotation, overrides -catalog")
	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "output driver, term, opc or usb")
	fs.StringVar(&cfg.OPCServer, "opc-server", cfg.OPCServer, "host:port of the OPC server")
	fs.IntVar(&cfg.OPCChannel, "opc-channel", cfg.OPCChannel, "OPC channel of the strip")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 uses the clock")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "When enabled will print internal logging for this tool")
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (cfg Config, err errors.Error) {
	cfg = base
	data, errGo := ioutil.ReadFile(path)
	if errGo != nil {
		return base, errors.Wrap(errGo).With("file", path).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo = yaml.Unmarshal(data, &cfg); errGo != nil {
		return base, errors.Wrap(errGo).With("file", path).With("stack", stack.Trace().TrimRuntime())
	}
	cfg.File = path
	return cfg, nil
}

// WithFlags returns cfg with every flag that was explicitly set in fs
// applied on top.
func (cfg Config) WithFlags(fs *flag.FlagSet) (out Config, err errors.Error) {
	out = cfg
	out.Effects = append([]string(nil), cfg.Effects...)

	overlay := flag.NewFlagSet("overlay", flag.ContinueOnError)
	out.Bind(overlay)

	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		if errGo := overlay.Set(f.Name, f.Value.String()); errGo != nil {
			err = errors.Wrap(errGo).With("flag", f.Name).With("stack", stack.Trace().TrimRuntime())
		}
	})
	return out, err
}

// EffectIDs resolves the rotation, custom list first.
func (cfg Config) EffectIDs() (ids []animation.EffectID, err errors.Error) {
	if len(cfg.Effects) == 0 {
		return animation.CatalogEffects(cfg.Catalog)
	}
	for _, name := range cfg.Effects {
		ids = append(ids, animation.EffectID(strings.ToLower(name)))
	}
	return ids, nil
}

func (cfg Config) Validate() (err errors.Error) {
	switch {
	case cfg.Pixels <= 0:
		return errors.New("pixel count must be positive").With("pixels", cfg.Pixels).With("stack", stack.Trace().TrimRuntime())
	case cfg.Brightness < 0 || cfg.Brightness > 255:
		return errors.New("brightness out of range").With("brightness", cfg.Brightness).With("stack", stack.Trace().TrimRuntime())
	case cfg.EffectDuration <= 0:
		return errors.New("effect duration must be positive").With("effect-duration", cfg.EffectDuration.String()).With("stack", stack.Trace().TrimRuntime())
	case cfg.RefreshDelay < 0 || cfg.SettleDelay < 0:
		return errors.New("delays cannot be negative").With("stack", stack.Trace().TrimRuntime())
	case !drivers[cfg.Driver]:
		return errors.New("unknown driver").With("driver", cfg.Driver).With("stack", stack.Trace().TrimRuntime())
	case cfg.OPCChannel < 0 || cfg.OPCChannel > 255:
		return errors.New("opc channel out of range").With("opc-channel", cfg.OPCChannel).With("stack", stack.Trace().TrimRuntime())
	}

	if _, err = animation.ParseCorrection(cfg.Correction); err != nil {
		return err
	}

	ids, err := cfg.EffectIDs()
	if err != nil {
		return err
	}
	known := map[animation.EffectID]bool{}
	for _, id := range animation.KnownEffects() {
		known[id] = true
	}
	for _, id := range ids {
		if !known[id] {
			return errors.New("unknown effect").With("effect", string(id)).With("stack", stack.Trace().TrimRuntime())
		}
	}
	return nil
}
