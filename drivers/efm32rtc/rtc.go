//go:build tinygo

package efm32rtc

// compareHandler is bound explicitly via SetCompareHandler; the target's
// interrupt dispatch must route the RTC vector (IRQ 12) to HandleIRQ.
var compareHandler func()

// SetCompareHandler registers the compare-match callback.
func SetCompareHandler(fn func()) { compareHandler = fn }

// HandleIRQ is the RTC interrupt entry point. Keep the registered
// handler bounded and non-blocking; it runs in interrupt context.
func HandleIRQ() {
	if compareHandler != nil {
		compareHandler()
	}
}

// ConfigureStopped applies the reset configuration with the counter
// disabled so nothing counts before the first arm.
func ConfigureStopped() {
	rtcCTRL.Set(0)
	rtcCNT.Set(0)
}

// SetCompare arms compare channel 0. Only the low 24 bits are writable.
func SetCompare(ticks uint32) {
	rtcCOMP0.Set(ticks & CompareMask)
}

// EnableCounter starts or stops counting. The count restarts from zero
// on enable because ConfigureStopped cleared CNT.
func EnableCounter(on bool) {
	if on {
		rtcCTRL.SetBits(rtcCtrlEN)
	} else {
		rtcCTRL.ClearBits(rtcCtrlEN)
	}
}

// Counter returns the accumulated 24-bit count.
func Counter() uint32 { return rtcCNT.Get() & CompareMask }

// UnmaskCompareInterrupt clears any stale compare flag, enables the
// compare source and unmasks the RTC line in the interrupt controller.
func UnmaskCompareInterrupt() {
	rtcIFC.Set(rtcIntCOMP0)
	rtcIEN.SetBits(rtcIntCOMP0)
	nvicICPR.Set(1 << rtcIRQn)
	nvicISER.Set(1 << rtcIRQn)
}

// ClearCompareInterrupt acknowledges the compare-match flag.
func ClearCompareInterrupt() { rtcIFC.Set(rtcIntCOMP0) }
