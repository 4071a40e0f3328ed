package types

// ------------------------
// Timing backbone selection (build/construction-time, not switchable)
// ------------------------

// TimingMode fixes which timing backbone a Timekeeper is built with.
// There is deliberately no way to change it after construction.
type TimingMode uint8

const (
	// ModeTickCounter busy-waits on a free-running millisecond tick
	// counter fed by a fixed-period timer interrupt. No low-power entry.
	ModeTickCounter TimingMode = iota
	// ModeLowPowerTimer programs a 24-bit compare counter and parks the
	// core in a retention state until the compare interrupt fires.
	ModeLowPowerTimer
)

func (m TimingMode) String() string {
	switch m {
	case ModeTickCounter:
		return "tick_counter"
	case ModeLowPowerTimer:
		return "low_power_timer"
	default:
		return "unknown"
	}
}

// ------------------------
// Oscillator selection (LowPowerTimer mode only)
// ------------------------

// Oscillator selects the low-frequency source feeding the compare counter.
type Oscillator uint8

const (
	// OscULFRCO: internal ultra-low-frequency RC oscillator, 1 kHz,
	// always running, lower accuracy. Allows the deepest retention state.
	OscULFRCO Oscillator = iota
	// OscLFXO: external 32.768 kHz crystal, higher accuracy, needs an
	// explicit oscillator enable and keeps the core one retention level up.
	OscLFXO
)

// Hz returns the oscillator tick frequency in ticks per second.
func (o Oscillator) Hz() uint32 {
	if o == OscLFXO {
		return 32768
	}
	return 1000
}

func (o Oscillator) String() string {
	if o == OscLFXO {
		return "lfxo"
	}
	return "ulfrco"
}

// ------------------------
// Power core configuration
// ------------------------

// PowerConfig is fixed at construction. Json tags follow the convention
// used for embedded per-device configs published over the bus.
type PowerConfig struct {
	Mode          TimingMode `json:"mode"`
	Osc           Oscillator `json:"osc"`            // LowPowerTimer only
	AnnounceSleep bool       `json:"announce_sleep"` // log before suspending
	Diagnostics   bool       `json:"diagnostics"`    // enable info/crit logging
}

// Valid reports whether the combination is constructible.
func (c PowerConfig) Valid() bool {
	switch c.Mode {
	case ModeTickCounter:
		return true
	case ModeLowPowerTimer:
		return c.Osc == OscULFRCO || c.Osc == OscLFXO
	default:
		return false
	}
}
