//go:build tinygo

package efm32rtc

import "lowpower-go/errcode"

var tickHandler func()

// SetTickHandler registers the SysTick callback; the target's vector
// table must route SysTick to HandleSysTick.
func SetTickHandler(fn func()) { tickHandler = fn }

// HandleSysTick is the SysTick interrupt entry point.
func HandleSysTick() {
	if tickHandler != nil {
		tickHandler()
	}
}

// ConfigureSysTick programs one interrupt per reload core cycles and
// starts the counter. The reload field is 24 bits wide.
func ConfigureSysTick(reload uint32) error {
	if reload == 0 || reload > systReloadMask {
		return errcode.ClockFault
	}
	systRVR.Set(reload - 1)
	systCVR.Set(0)
	systCSR.Set(systCsrCLKSOURCE | systCsrTICKINT | systCsrENABLE)
	return nil
}

// SetSysTickActive sets or clears the interrupt and counter enable bits,
// leaving the reload value alone.
func SetSysTickActive(on bool) {
	if on {
		systCSR.SetBits(systCsrTICKINT | systCsrENABLE)
	} else {
		systCSR.ClearBits(systCsrTICKINT | systCsrENABLE)
	}
}
