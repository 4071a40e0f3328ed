// services/power/power.go
//
// Blocking delay and low-power sleep for a single-core microcontroller.
// A Timekeeper is built once with one of two timing backbones: a
// free-running millisecond tick counter that delay busy-waits on, or a
// low-energy 24-bit compare counter that parks the core in a retention
// state until the compare interrupt fires.
package power

import (
	"lowpower-go/errcode"
	"lowpower-go/services/debug"
	"lowpower-go/services/internal/emcore"
	"lowpower-go/types"
)

// Timekeeper is the public face of the timing core. Safe for use from a
// single foreground context; the registered interrupt handlers are the
// only concurrent actors and share state through isrState.
type Timekeeper struct {
	cfg types.PowerConfig
	st  isrState
	bb  backbone
}

// New validates cfg, binds the collaborators and constructs the one
// backbone the configuration selects. No hardware is touched here; the
// first Delay/Sleep call (or one with duration 0) runs the one-time setup.
func New(cfg types.PowerConfig, ports Ports) (*Timekeeper, error) {
	if !cfg.Valid() {
		return nil, errcode.InvalidParams
	}
	t := &Timekeeper{cfg: cfg}
	switch cfg.Mode {
	case types.ModeTickCounter:
		if ports.Clocks == nil || ports.Ticks == nil {
			return nil, errcode.InvalidParams
		}
		t.bb = &tickLoop{
			st:     &t.st,
			clocks: ports.Clocks,
			gen:    ports.Ticks,
			log:    logIf(cfg, ports),
		}
	case types.ModeLowPowerTimer:
		if ports.Clocks == nil || ports.Compare == nil || ports.Energy == nil {
			return nil, errcode.InvalidParams
		}
		lp := &lowPowerTimer{
			st:       &t.st,
			clocks:   ports.Clocks,
			cmp:      ports.Compare,
			energy:   ports.Energy,
			log:      logIf(cfg, ports),
			hz:       cfg.Osc.Hz(),
			announce: cfg.AnnounceSleep,
		}
		if cfg.Osc == types.OscLFXO {
			lp.src = emcore.SourceLFXO
			lp.level = emcore.EM2
		} else {
			lp.src = emcore.SourceULFRCO
			lp.level = emcore.EM3
		}
		t.bb = lp
	}
	return t, nil
}

// logIf returns the diagnostics sink, or nil when diagnostics are off.
// A nil *debug.Log drops everything, so backbones log unconditionally.
func logIf(cfg types.PowerConfig, ports Ports) *debug.Log {
	if !cfg.Diagnostics {
		return nil
	}
	return ports.Log
}

// Delay blocks for ms milliseconds. ms == 0 performs the backbone's
// one-time initialization and returns. Completion never touches the
// wakeup-cause latch.
func (t *Timekeeper) Delay(ms uint32) error { return t.bb.delay(ms) }

// Sleep parks the core in a retention state for s whole seconds. s == 0
// performs initialization only. Returns errcode.Unsupported on the
// tick-counter backbone.
func (t *Timekeeper) Sleep(s uint32) error { return t.bb.sleep(s) }

// WakeupWasScheduled reports whether the last sleep ended because the
// armed compare interrupt fired, as opposed to some external event. The
// latch survives until ClearWakeup.
func (t *Timekeeper) WakeupWasScheduled() bool { return t.st.wakeupLatched() }

// ClearWakeup resets the wakeup-cause latch.
func (t *Timekeeper) ClearWakeup() { t.st.clearWakeup() }

// SleptSeconds reads how long the counter has been running, stops it and
// converts the raw count to whole seconds. Call it after an
// externally-caused wakeup to learn how far into the sleep it happened.
// Always 0 on the tick-counter backbone.
func (t *Timekeeper) SleptSeconds() uint32 {
	lp, ok := t.bb.(*lowPowerTimer)
	if !ok {
		return 0
	}
	return lp.sleptSeconds()
}

// MaxSleepSeconds is the longest sleep whose tick count still fits the
// compare field. 0 on the tick-counter backbone.
func (t *Timekeeper) MaxSleepSeconds() uint32 {
	lp, ok := t.bb.(*lowPowerTimer)
	if !ok {
		return 0
	}
	return emcore.CompareMax / lp.hz
}

// Retention names the low-power state this Timekeeper sleeps in: "em2",
// "em3", or "" for the tick-counter backbone.
func (t *Timekeeper) Retention() string {
	lp, ok := t.bb.(*lowPowerTimer)
	if !ok {
		return ""
	}
	return lp.level.String()
}
