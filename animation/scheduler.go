package animation

import (
	"context"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/rcrowley/go-metrics"
)

const (
	DefaultEffectDuration = 3000 // ms
	DefaultRefreshDelay   = 50   // ms
	DefaultSettleDelay    = 100  // ms

	fpsReportInterval = 1000 // ticks
)

type Options struct {
	EffectDuration int64 // ms an effect stays active
	RefreshDelay   int64 // ms slept after every transmit
	SettleDelay    int64 // ms held dark after a switch

	Logger   logxi.Logger
	Registry metrics.Registry
}

// Scheduler rotates through a catalog on a fixed effect duration and runs
// the active animation once per tick.
type Scheduler struct {
	strip   *Strip
	catalog Catalog
	opts    Options

	current    int
	lastSwitch int64
	ticks      int64

	logger   logxi.Logger
	tickTime metrics.Timer
	switches metrics.Counter
}

func NewScheduler(strip *Strip, catalog Catalog, opts Options) (sched *Scheduler, err errors.Error) {
	if len(catalog) == 0 {
		return nil, errors.New("empty catalog").With("stack", stack.Trace().TrimRuntime())
	}
	if opts.EffectDuration <= 0 {
		opts.EffectDuration = DefaultEffectDuration
	}
	if opts.Logger == nil {
		opts.Logger = logxi.New("scheduler")
	}
	if opts.Registry == nil {
		opts.Registry = metrics.NewRegistry()
	}

	return &Scheduler{
		strip:      strip,
		catalog:    catalog,
		opts:       opts,
		lastSwitch: strip.Now(),
		logger:     opts.Logger,
		tickTime:   metrics.GetOrRegisterTimer("tick", opts.Registry),
		switches:   metrics.GetOrRegisterCounter("switches", opts.Registry),
	}, nil
}

// Current is the active catalog entry.
func (sched *Scheduler) Current() Entry {
	return sched.catalog[sched.current]
}

func (sched *Scheduler) Index() int {
	return sched.current
}

// Switch advances to the next effect once the active one has run for longer
// than the effect duration. On a switch the strip is blanked, transmitted
// and held dark for the settle delay. The incoming effect keeps whatever
// state it had when it last ran.
func (sched *Scheduler) Switch() (switched bool, err errors.Error) {
	now := sched.strip.Now()
	if now-sched.lastSwitch <= sched.opts.EffectDuration {
		return false, nil
	}

	sched.current = (sched.current + 1) % len(sched.catalog)
	sched.lastSwitch = now
	sched.switches.Inc(1)

	sched.strip.Pixels.Clear()
	err = sched.strip.Show()
	sched.strip.Delay(sched.opts.SettleDelay)

	entry := sched.Current()
	sched.logger.Info("switched effect", "index", sched.current, "effect", string(entry.ID), "name", entry.Name)

	return true, err
}

// Tick is one pass of the loop: switch check, one frame, transmit, refresh
// delay. A failed transmit is returned only after the delay so the cadence
// holds either way.
func (sched *Scheduler) Tick() (err errors.Error) {
	start := time.Now()
	defer sched.tickTime.UpdateSince(start)

	if _, err = sched.Switch(); err != nil {
		err = err.With("phase", "switch")
	}

	entry := sched.Current()
	if errGo := entry.Animation.frame(sched.strip); errGo != nil {
		err = errors.Wrap(errGo).With("effect", string(entry.ID)).With("stack", stack.Trace().TrimRuntime())
	}

	if errShow := sched.strip.Show(); errShow != nil && err == nil {
		err = errShow.With("effect", string(entry.ID))
	}
	sched.strip.Delay(sched.opts.RefreshDelay)

	sched.ticks++
	if sched.ticks%fpsReportInterval == 0 && sched.logger.IsDebug() {
		if mean := sched.tickTime.Snapshot().Mean(); mean > 0 {
			sched.logger.Debug("frame rate", "avg_fps", float64(time.Second)/mean, "ticks", sched.ticks)
		}
	}
	return err
}

// Run ticks until ctx is done. Cancellation is only seen between ticks.
// Transmission failures are logged and the loop carries on with the next
// frame.
func (sched *Scheduler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := sched.Tick(); err != nil {
			sched.logger.Warn("tick failed", "error", err.Error())
		}
	}
}
