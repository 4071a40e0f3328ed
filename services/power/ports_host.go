// services/power/ports_host.go
//go:build !tinygo

package power

import "lowpower-go/services/internal/platform"

// DefaultPorts returns a simulated hardware rig for host runs: the energy
// controller dwells briefly and then fires the compare interrupt, so a
// demo loop paces itself without real hardware.
func DefaultPorts() Ports {
	b := platform.Default()
	return Ports{
		Clocks:  b.Clocks,
		Compare: b.Compare,
		Ticks:   b.Ticks,
		Energy:  b.Energy,
		Log:     b.Log,
	}
}
