// services/power/tickloop.go
package power

import (
	"runtime"
	"sync/atomic"

	"lowpower-go/errcode"
	"lowpower-go/services/debug"
	"lowpower-go/services/internal/emcore"
)

// tickLoop is the always-on backbone: a fixed-period interrupt advances a
// free-running millisecond counter and delay busy-waits on the delta.
type tickLoop struct {
	st     *isrState
	clocks emcore.ClockTree
	gen    emcore.TickGenerator
	log    *debug.Log

	ticks uint32 // advanced one per tick interrupt; atomic access only
}

// onTick is the tick interrupt handler. Increment and nothing else.
func (b *tickLoop) onTick() {
	atomic.AddUint32(&b.ticks, 1)
}

// ensureInit configures the tick generator for one interrupt per
// millisecond of core clock. Returns whether this call did the setup.
func (b *tickLoop) ensureInit() (bool, error) {
	if b.st.isInitialized() {
		return false, nil
	}
	b.gen.SetHandler(b.onTick)
	if err := b.gen.Configure(b.clocks.CoreHz() / 1000); err != nil {
		return false, errcode.ClockFault
	}
	b.log.Info("tick source initialized")
	b.st.markInitialized()
	return true, nil
}

func (b *tickLoop) delay(ms uint32) error {
	justInit, err := b.ensureInit()
	if err != nil {
		return err
	}
	if ms == 0 {
		return nil
	}
	// Configure left the generator running on first init; afterwards the
	// enable bits were cleared at the end of the previous delay.
	if !justInit {
		b.gen.SetActive(true)
	}

	// Unsigned modular subtraction keeps this correct across a counter
	// wrap; do not "fix" it into a comparison of absolute values.
	start := atomic.LoadUint32(&b.ticks)
	for atomic.LoadUint32(&b.ticks)-start < ms {
		runtime.Gosched()
	}

	// Stop the tick interrupt so it cannot disturb a later retention
	// state entered by the caller.
	b.gen.SetActive(false)
	return nil
}

func (b *tickLoop) sleep(uint32) error { return errcode.Unsupported }
