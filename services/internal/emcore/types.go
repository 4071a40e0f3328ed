// services/internal/emcore/types.go
//
// Narrow interfaces over the clock-management, compare-counter and
// energy-management peripherals. The power service only ever talks to
// these; platform bindings (host fakes or memory-mapped registers) live in
// the sibling platform package.
package emcore

// CompareMax is the largest value the hardware compare field can hold.
// The counter compare register is 24 bits wide.
const CompareMax = 1<<24 - 1

// RetentionLevel is the depth of the low-power state entered while
// waiting on the compare counter. Deeper levels shut down more clocks.
type RetentionLevel uint8

const (
	EM2 RetentionLevel = 2 // low-frequency oscillators still running
	EM3 RetentionLevel = 3 // only the ultra-low-frequency RC left
)

func (l RetentionLevel) String() string {
	switch l {
	case EM2:
		return "em2"
	case EM3:
		return "em3"
	default:
		return "run"
	}
}

// LowFreqSource identifies the oscillator routed to the compare counter.
type LowFreqSource uint8

const (
	SourceULFRCO LowFreqSource = iota // internal 1 kHz RC, always on
	SourceLFXO                        // external 32.768 kHz crystal
)

// ClockTree is the clock-management unit surface the power service needs.
// Hardware configuration calls are assumed to succeed; errors are reserved
// for bindings that can actually fail (host fakes under fault injection).
type ClockTree interface {
	// EnableOscillator starts src and blocks until it reports ready.
	// A no-op for SourceULFRCO, which is always running.
	EnableOscillator(src LowFreqSource) error
	// RouteLowFreqClock selects src as the low-frequency clock domain input.
	RouteLowFreqClock(src LowFreqSource) error
	// EnableLEInterface gates the clock to the low-energy module interface.
	EnableLEInterface(on bool) error
	// EnableCounterClock gates the compare counter's peripheral clock.
	EnableCounterClock(on bool) error
	// CoreHz reports the core clock frequency, used to derive the
	// millisecond tick reload value.
	CoreHz() uint32
}

// CompareCounter is the low-energy counter with a 24-bit compare field.
type CompareCounter interface {
	// SetHandler binds fn as the compare-match interrupt handler. The
	// binding is explicit; nothing fires before this is called.
	SetHandler(fn func())
	// UnmaskInterrupt enables the compare interrupt source and its
	// controller line, clearing anything pending first.
	UnmaskInterrupt()
	// ClearPending acknowledges the compare-match interrupt flag.
	ClearPending()
	// SetCompare arms the compare register. Value must be <= CompareMax.
	SetCompare(ticks uint32)
	// Enable starts or stops counting. Disabling resets the count on
	// this hardware family's next enable.
	Enable(on bool)
	// Count returns the free-running count accumulated since enable.
	Count() uint32
	// ConfigureStopped applies the reset configuration with counting
	// disabled, so the counter does not run before the first arm.
	ConfigureStopped() error
}

// TickGenerator is the fixed-period millisecond tick source used by the
// busy-wait backbone.
type TickGenerator interface {
	// SetHandler binds fn as the tick interrupt handler.
	SetHandler(fn func())
	// Configure sets the interrupt period to reload core cycles and
	// starts the generator.
	Configure(reload uint32) error
	// SetActive sets or clears the interrupt+counter enable bits without
	// touching the reload value.
	SetActive(on bool)
}

// EnergyController parks the core in a retention state. EnterRetention
// blocks until a wakeup interrupt has been taken; the caller must have
// armed and unmasked that interrupt beforehand or the call never returns.
type EnergyController interface {
	EnterRetention(level RetentionLevel)
}
