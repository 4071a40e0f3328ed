// services/power/types.go
package power

import (
	"lowpower-go/services/debug"
	"lowpower-go/services/internal/emcore"
)

// backbone is the capability a timing backend must provide. Exactly one
// implementation is constructed per Timekeeper; there is no runtime
// switching between them.
type backbone interface {
	// delay blocks for ms milliseconds. ms == 0 forces one-time
	// initialization and returns immediately.
	delay(ms uint32) error
	// sleep blocks in a retention state for s whole seconds. s == 0
	// forces initialization only. The tick backbone does not support it.
	sleep(s uint32) error
}

// Ports collects the hardware collaborators a Timekeeper drives. Platform
// factories provide defaults; tests inject fakes.
type Ports struct {
	Clocks  emcore.ClockTree
	Compare emcore.CompareCounter // LowPowerTimer mode
	Ticks   emcore.TickGenerator  // TickCounter mode
	Energy  emcore.EnergyController
	Log     *debug.Log // nil disables diagnostics
}
