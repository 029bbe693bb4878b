package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/rcrowley/go-metrics"

	"github.com/14790897/esp32-ws2812/animation"
	"github.com/14790897/esp32-ws2812/config"
	"github.com/14790897/esp32-ws2812/opc"
	"github.com/14790897/esp32-ws2812/term"
	"github.com/14790897/esp32-ws2812/usb"
)

var (
	logger = logxi.New("ws2812")

	cfg = config.Defaults()
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "cycles an addressable LED strip through a catalog of animations")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "with the term driver logs are written to stderr, redirect it (2>ws2812.log) to keep the preview clean.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "effects:", animation.KnownEffects())
}

func init() {
	flag.Usage = usage
	cfg.Bind(flag.CommandLine)
}

type closer interface {
	Close() error
}

type keyWatcher interface {
	WatchKeys(quit func())
}

func openOutput(cfg config.Config) (out animation.Output, err errors.Error) {
	switch cfg.Driver {
	case "opc":
		return opc.NewClient(cfg.OPCServer, uint8(cfg.OPCChannel), logxi.New("opc")), nil
	case "usb":
		dev, err := usb.Open(logxi.New("usb"))
		if err != nil {
			return nil, err
		}
		return dev, nil
	default:
		preview, err := term.Open()
		if err != nil {
			return nil, err
		}
		return preview, nil
	}
}

func main() {

	// Parse the CLI flags
	if !flag.Parsed() {
		envflag.Parse()
	}

	resolved, err := resolve(cfg, flag.CommandLine)
	if err != nil {
		logger.Fatal("could not load config", "error", err.Error())
	}
	logger = newLogger(resolved)

	if err := run(resolved); err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}
}

// resolve layers the optional config file under the flags that were set
// explicitly.
func resolve(cfg config.Config, fs *flag.FlagSet) (resolved config.Config, err errors.Error) {
	if cfg.File == "" {
		return cfg, nil
	}
	fromFile, err := config.LoadFile(cfg.File, config.Defaults())
	if err != nil {
		return cfg, err
	}
	return fromFile.WithFlags(fs)
}

// newLogger sends logs to stderr while the terminal preview owns the
// screen, so they can be redirected away from it.
func newLogger(cfg config.Config) (l logxi.Logger) {
	if cfg.Driver == "term" {
		l = logxi.NewLogger(logxi.NewConcurrentWriter(os.Stderr), "ws2812")
	} else {
		l = logxi.New("ws2812")
	}
	if cfg.Verbose {
		l.SetLevel(logxi.LevelDebug)
	}
	return l
}

func run(cfg config.Config) (err errors.Error) {
	if err = cfg.Validate(); err != nil {
		return err
	}

	correction, err := animation.ParseCorrection(cfg.Correction)
	if err != nil {
		return err
	}
	ids, err := cfg.EffectIDs()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out, err := openOutput(cfg)
	if err != nil {
		return err
	}
	if c, isCloser := out.(closer); isCloser {
		defer c.Close()
	}

	strip := animation.NewStrip(cfg.Pixels, animation.NewClock(), animation.NewRandom(rand.New(rand.NewSource(seed))), out)
	strip.SetBrightness(uint8(cfg.Brightness))
	strip.SetCorrection(correction)

	catalog, err := animation.NewCatalog(strip, ids)
	if err != nil {
		return err
	}

	sched, err := animation.NewScheduler(strip, catalog, animation.Options{
		EffectDuration: cfg.EffectDuration.Milliseconds(),
		RefreshDelay:   cfg.RefreshDelay.Milliseconds(),
		SettleDelay:    cfg.SettleDelay.Milliseconds(),
		Logger:         logger,
		Registry:       metrics.DefaultRegistry,
	})
	if err != nil {
		return err
	}

	logger.Info("starting",
		"pixels", cfg.Pixels,
		"data-pin", cfg.DataPin,
		"brightness", cfg.Brightness,
		"driver", cfg.Driver,
		"effects", len(catalog),
		"first", sched.Current().Name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopC
		cancel()
	}()
	if w, isWatcher := out.(keyWatcher); isWatcher {
		w.WatchKeys(cancel)
	}

	sched.Run(ctx)

	// leave the strip dark on the way out
	strip.Pixels.Clear()
	if err = strip.Show(); err != nil {
		logger.Warn("could not blank strip", "error", err.Error())
	}
	return nil
}
