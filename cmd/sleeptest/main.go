// cmd/sleeptest/main.go
//go:build tinygo

package main

import (
	"time"

	"lowpower-go/services/power"
	"lowpower-go/types"
)

// Sleeps the core in EM2 off the 32.768 kHz crystal and reports how each
// wakeup happened. Pressing a wired wakeup source mid-sleep should show an
// external wakeup with the partial elapsed time.

const sleepS = 10

func main() {
	time.Sleep(2 * time.Second)
	println("sleeptest: start")

	tk, err := power.New(types.PowerConfig{
		Mode:          types.ModeLowPowerTimer,
		Osc:           types.OscLFXO,
		AnnounceSleep: true,
		Diagnostics:   true,
	}, power.DefaultPorts())
	if err != nil {
		println("sleeptest: init failed:", err.Error())
		return
	}
	println("sleeptest: retention", tk.Retention(), "max", tk.MaxSleepSeconds(), "s")

	for {
		if err := tk.Sleep(sleepS); err != nil {
			println("sleeptest: sleep failed:", err.Error())
			return
		}
		if tk.WakeupWasScheduled() {
			println("sleeptest: scheduled wakeup after", uint32(sleepS), "s")
		} else {
			println("sleeptest: external wakeup after", tk.SleptSeconds(), "s")
		}
		tk.ClearWakeup()
	}
}
