// services/power/ports_efm32.go
//go:build tinygo

package power

import "lowpower-go/services/internal/platform"

// DefaultPorts binds the register-level EFM32 driver. Diagnostics have no
// sink by default; callers wire a UART log into Ports.Log themselves.
func DefaultPorts() Ports {
	b := platform.Default()
	return Ports{
		Clocks:  b.Clocks,
		Compare: b.Compare,
		Ticks:   b.Ticks,
		Energy:  b.Energy,
	}
}
