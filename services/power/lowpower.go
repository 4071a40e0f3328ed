// services/power/lowpower.go
package power

import (
	"lowpower-go/errcode"
	"lowpower-go/services/debug"
	"lowpower-go/services/internal/emcore"
	"lowpower-go/x/timex"
)

// lowPowerTimer is the retention backbone: the compare counter raises an
// interrupt after N oscillator ticks while the core sits in EM2 (crystal)
// or EM3 (internal RC).
type lowPowerTimer struct {
	st     *isrState
	clocks emcore.ClockTree
	cmp    emcore.CompareCounter
	energy emcore.EnergyController
	log    *debug.Log

	src      emcore.LowFreqSource
	level    emcore.RetentionLevel
	hz       uint32
	announce bool
}

// onCompareMatch is the compare interrupt handler. It must stay bounded
// and non-blocking: stop the counter, acknowledge the source, and latch
// the wakeup cause iff the foreground is inside a sleep. Clock gating is
// the foreground's job on resume.
func (b *lowPowerTimer) onCompareMatch() {
	b.cmp.Enable(false)
	b.cmp.ClearPending()
	if b.st.isSleeping() {
		b.st.latchWakeup()
	}
}

// ensureInit runs the one-time peripheral setup: oscillator enable and
// routing, low-energy interface clock, explicit handler binding, interrupt
// unmask, and counter configuration with counting held off. Returns
// whether this call did the setup.
func (b *lowPowerTimer) ensureInit() (bool, error) {
	if b.st.isInitialized() {
		return false, nil
	}
	if b.src == emcore.SourceLFXO {
		if err := b.clocks.EnableOscillator(emcore.SourceLFXO); err != nil {
			return false, err
		}
	}
	if err := b.clocks.EnableLEInterface(true); err != nil {
		return false, err
	}
	if err := b.clocks.RouteLowFreqClock(b.src); err != nil {
		return false, err
	}
	if err := b.clocks.EnableCounterClock(true); err != nil {
		return false, err
	}
	b.cmp.SetHandler(b.onCompareMatch)
	b.cmp.UnmaskInterrupt()
	if err := b.cmp.ConfigureStopped(); err != nil {
		return false, err
	}
	if b.src == emcore.SourceLFXO {
		b.log.Info("compare counter initialized with lfxo")
	} else {
		b.log.Info("compare counter initialized with ulfrco")
	}
	b.st.markInitialized()
	return true, nil
}

// arm range-checks ticks against the compare field, arms the comparator
// and parks the core. asSleep marks the retention window so the handler
// can attribute the wakeup. The counter clock was enabled by the caller;
// it is gated off again before returning, whatever happened in between.
func (b *lowPowerTimer) arm(ticks uint64, asSleep bool) error {
	if ticks > emcore.CompareMax {
		b.log.Crit("delay too long, can't fit in the compare field")
		_ = b.clocks.EnableCounterClock(false)
		return errcode.DurationOverflow
	}
	b.cmp.SetCompare(uint32(ticks))
	if asSleep {
		b.st.setSleeping(true)
	}
	// The compare interrupt is armed before the retention entry; the
	// reverse order would let the wakeup fire into a masked core.
	b.cmp.Enable(true)
	b.energy.EnterRetention(b.level)
	if asSleep {
		b.st.setSleeping(false)
	}
	// The handler already stopped the counter; drop its clock too.
	return b.clocks.EnableCounterClock(false)
}

func (b *lowPowerTimer) delay(ms uint32) error {
	justInit, err := b.ensureInit()
	if err != nil {
		return err
	}
	if ms == 0 {
		return nil
	}
	if !justInit {
		if err := b.clocks.EnableCounterClock(true); err != nil {
			return err
		}
	}
	return b.arm(timex.TicksForMillis(b.hz, ms), false)
}

func (b *lowPowerTimer) sleep(s uint32) error {
	justInit, err := b.ensureInit()
	if err != nil {
		return err
	}
	if s == 0 {
		return nil
	}
	if !justInit {
		if err := b.clocks.EnableCounterClock(true); err != nil {
			return err
		}
	}
	if b.announce {
		b.log.InfoUint("sleeping in "+b.level.String()+" for ", s, " s")
	}
	return b.arm(timex.TicksForSeconds(b.hz, s), true)
}

// sleptSeconds reads the accumulated count, stops the counter and
// converts to whole seconds of the active oscillator.
func (b *lowPowerTimer) sleptSeconds() uint32 {
	count := b.cmp.Count()
	b.cmp.Enable(false)
	return timex.SecondsFromTicks(b.hz, count)
}
