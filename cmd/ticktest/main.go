// cmd/ticktest/main.go
//go:build tinygo

package main

import (
	"time"

	"lowpower-go/services/power"
	"lowpower-go/types"
)

// Exercises the busy-wait tick backbone on hardware: blinks a counter over
// the console at a measurable cadence so drift against a stopwatch is easy
// to spot.

const stepMs = 500

func main() {
	time.Sleep(2 * time.Second)
	println("ticktest: start")

	tk, err := power.New(types.PowerConfig{
		Mode:        types.ModeTickCounter,
		Diagnostics: true,
	}, power.DefaultPorts())
	if err != nil {
		println("ticktest: init failed:", err.Error())
		return
	}

	// Duration 0 runs the one-time setup so the first timed step is clean.
	if err := tk.Delay(0); err != nil {
		println("ticktest: setup failed:", err.Error())
		return
	}

	for n := uint32(0); ; n++ {
		if err := tk.Delay(stepMs); err != nil {
			println("ticktest: delay failed:", err.Error())
			return
		}
		println("ticktest: step", n, "(", stepMs, "ms )")
	}
}
