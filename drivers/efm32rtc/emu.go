//go:build tinygo

package efm32rtc

import "device/arm"

// EnterEM2 parks the core in deep sleep with low-frequency oscillators
// kept alive. Returns after a wakeup interrupt has been serviced.
func EnterEM2() {
	scbSCR.SetBits(scrSLEEPDEEP)
	arm.Asm("wfi")
	scbSCR.ClearBits(scrSLEEPDEEP)
}

// EnterEM3 parks the core one level deeper. On this family the unwanted
// oscillators are gated automatically; only the ULFRCO keeps running, so
// there is nothing extra to shut down first.
func EnterEM3() {
	scbSCR.SetBits(scrSLEEPDEEP)
	arm.Asm("wfi")
	scbSCR.ClearBits(scrSLEEPDEEP)
}
