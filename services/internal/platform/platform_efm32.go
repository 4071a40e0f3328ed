// services/internal/platform/platform_efm32.go
//go:build tinygo

package platform

import (
	"lowpower-go/drivers/efm32rtc"
	"lowpower-go/services/internal/emcore"
)

// hfrcoHz is the boot-default core clock on this family.
const hfrcoHz = 14_000_000

// ----------------------------- clock tree (MCU) -------------------------------

type efm32ClockTree struct{}

func (efm32ClockTree) EnableOscillator(src emcore.LowFreqSource) error {
	if src == emcore.SourceLFXO {
		efm32rtc.EnableLFXO()
	}
	return nil
}

func (efm32ClockTree) RouteLowFreqClock(src emcore.LowFreqSource) error {
	if src == emcore.SourceLFXO {
		efm32rtc.RouteLFAToLFXO()
	} else {
		efm32rtc.RouteLFAToULFRCO()
	}
	return nil
}

func (efm32ClockTree) EnableLEInterface(on bool) error {
	efm32rtc.EnableLEClock(on)
	return nil
}

func (efm32ClockTree) EnableCounterClock(on bool) error {
	efm32rtc.EnableRTCClock(on)
	return nil
}

func (efm32ClockTree) CoreHz() uint32 { return hfrcoHz }

// --------------------------- compare counter (MCU) ----------------------------

type efm32Compare struct{}

func (efm32Compare) SetHandler(fn func()) { efm32rtc.SetCompareHandler(fn) }
func (efm32Compare) UnmaskInterrupt()     { efm32rtc.UnmaskCompareInterrupt() }
func (efm32Compare) ClearPending()        { efm32rtc.ClearCompareInterrupt() }
func (efm32Compare) SetCompare(t uint32)  { efm32rtc.SetCompare(t) }
func (efm32Compare) Enable(on bool)       { efm32rtc.EnableCounter(on) }
func (efm32Compare) Count() uint32        { return efm32rtc.Counter() }
func (efm32Compare) ConfigureStopped() error {
	efm32rtc.ConfigureStopped()
	return nil
}

// ----------------------------- energy (MCU) -----------------------------------

type efm32Energy struct{}

func (efm32Energy) EnterRetention(level emcore.RetentionLevel) {
	if level == emcore.EM3 {
		efm32rtc.EnterEM3()
	} else {
		efm32rtc.EnterEM2()
	}
}

// -------------------------- tick generator (MCU) ------------------------------

type efm32Ticks struct{}

func (efm32Ticks) SetHandler(fn func())     { efm32rtc.SetTickHandler(fn) }
func (efm32Ticks) Configure(r uint32) error { return efm32rtc.ConfigureSysTick(r) }
func (efm32Ticks) SetActive(on bool)        { efm32rtc.SetSysTickActive(on) }

// ------------------------------- defaults -------------------------------------

// Bundle carries the MCU bindings handed to power.New.
type Bundle struct {
	Clocks  emcore.ClockTree
	Compare emcore.CompareCounter
	Ticks   emcore.TickGenerator
	Energy  emcore.EnergyController
}

// Default binds the register-level driver.
func Default() Bundle {
	return Bundle{
		Clocks:  efm32ClockTree{},
		Compare: efm32Compare{},
		Ticks:   efm32Ticks{},
		Energy:  efm32Energy{},
	}
}
