// services/internal/platform/factories_host.go
//go:build !tinygo

package platform

import (
	"sync"
	"time"

	"lowpower-go/services/debug"
	"lowpower-go/services/internal/emcore"
)

// ----------------------------- clock tree (host) -----------------------------

// FakeClockTree records every gating decision for host-side tests.
type FakeClockTree struct {
	mu sync.Mutex

	OscEnables   map[emcore.LowFreqSource]int
	Routed       emcore.LowFreqSource
	RouteCalls   int
	LEOn         bool
	CounterOn    bool
	CounterFlips int // total EnableCounterClock transitions

	Hz uint32 // CoreHz value; defaults to 14 MHz if zero
}

func NewFakeClockTree() *FakeClockTree {
	return &FakeClockTree{OscEnables: map[emcore.LowFreqSource]int{}}
}

func (c *FakeClockTree) EnableOscillator(src emcore.LowFreqSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.OscEnables[src]++
	return nil
}

func (c *FakeClockTree) RouteLowFreqClock(src emcore.LowFreqSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Routed = src
	c.RouteCalls++
	return nil
}

func (c *FakeClockTree) EnableLEInterface(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LEOn = on
	return nil
}

func (c *FakeClockTree) EnableCounterClock(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.CounterOn != on {
		c.CounterFlips++
	}
	c.CounterOn = on
	return nil
}

func (c *FakeClockTree) CounterClockOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CounterOn
}

func (c *FakeClockTree) CoreHz() uint32 {
	if c.Hz == 0 {
		return 14_000_000
	}
	return c.Hz
}

// --------------------------- compare counter (host) ---------------------------

// FakeCompareCounter mimics the 24-bit compare counter. Fire invokes the
// registered handler the way the hardware compare-match interrupt would.
type FakeCompareCounter struct {
	mu sync.Mutex

	handler func()

	Compare      uint32
	CompareArmed bool // SetCompare seen since construction
	Enabled      bool
	CountVal     uint32 // what Count returns; tests preload it
	Unmasked     bool
	Cleared      int // ClearPending calls
	Configured   int // ConfigureStopped calls
}

func (f *FakeCompareCounter) SetHandler(fn func()) {
	f.mu.Lock()
	f.handler = fn
	f.mu.Unlock()
}

func (f *FakeCompareCounter) UnmaskInterrupt() {
	f.mu.Lock()
	f.Unmasked = true
	f.mu.Unlock()
}

func (f *FakeCompareCounter) ClearPending() {
	f.mu.Lock()
	f.Cleared++
	f.mu.Unlock()
}

func (f *FakeCompareCounter) SetCompare(ticks uint32) {
	f.mu.Lock()
	f.Compare = ticks
	f.CompareArmed = true
	f.mu.Unlock()
}

func (f *FakeCompareCounter) Enable(on bool) {
	f.mu.Lock()
	f.Enabled = on
	f.mu.Unlock()
}

func (f *FakeCompareCounter) Count() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CountVal
}

func (f *FakeCompareCounter) ConfigureStopped() error {
	f.mu.Lock()
	f.Configured++
	f.Enabled = false
	f.mu.Unlock()
	return nil
}

// Fire simulates the compare-match interrupt.
func (f *FakeCompareCounter) Fire() {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	if h != nil {
		h()
	}
}

func (f *FakeCompareCounter) IsEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Enabled
}

// ----------------------------- energy (host) ----------------------------------

// FakeEnergy stands in for the retention entry. By default Wake fires the
// scheduled compare interrupt, i.e. the timer woke us. Tests model an
// external wakeup by replacing Wake with a function that does not fire.
type FakeEnergy struct {
	mu      sync.Mutex
	Entered []emcore.RetentionLevel

	Dwell time.Duration // wall-clock pause before waking; 0 = immediate
	Wake  func()        // runs "at wakeup time"; nil = plain return
}

func (e *FakeEnergy) EnterRetention(level emcore.RetentionLevel) {
	e.mu.Lock()
	e.Entered = append(e.Entered, level)
	wake := e.Wake
	dwell := e.Dwell
	e.mu.Unlock()
	if dwell > 0 {
		time.Sleep(dwell)
	}
	if wake != nil {
		wake()
	}
}

func (e *FakeEnergy) Entries() []emcore.RetentionLevel {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]emcore.RetentionLevel, len(e.Entered))
	copy(out, e.Entered)
	return out
}

// -------------------------- tick generator (host) -----------------------------

// FakeTickGenerator drives the busy-wait backbone from test goroutines.
type FakeTickGenerator struct {
	mu sync.Mutex

	handler func()

	Reload       uint32
	Active       bool
	ConfigureErr error
}

func (g *FakeTickGenerator) SetHandler(fn func()) {
	g.mu.Lock()
	g.handler = fn
	g.mu.Unlock()
}

func (g *FakeTickGenerator) Configure(reload uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ConfigureErr != nil {
		return g.ConfigureErr
	}
	g.Reload = reload
	g.Active = true
	return nil
}

func (g *FakeTickGenerator) SetActive(on bool) {
	g.mu.Lock()
	g.Active = on
	g.mu.Unlock()
}

func (g *FakeTickGenerator) IsActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Active
}

// Tick fires n tick interrupts.
func (g *FakeTickGenerator) Tick(n int) {
	g.mu.Lock()
	h := g.handler
	g.mu.Unlock()
	if h == nil {
		return
	}
	for i := 0; i < n; i++ {
		h()
	}
}

// ------------------------------- defaults -------------------------------------

// Bundle is everything Default hands to power.New plus the fakes kept
// accessible so a host demo can steer them.
type Bundle struct {
	Clocks  *FakeClockTree
	Compare *FakeCompareCounter
	Ticks   *FakeTickGenerator
	Energy  *FakeEnergy
	Log     *debug.Log
}

// Default builds a self-contained host rig: the energy controller dwells
// briefly and then fires the compare interrupt, so sleeps pace a demo loop
// without real hardware.
func Default() Bundle {
	cc := &FakeCompareCounter{}
	return Bundle{
		Clocks:  NewFakeClockTree(),
		Compare: cc,
		Ticks:   &FakeTickGenerator{},
		Energy:  &FakeEnergy{Dwell: 200 * time.Millisecond, Wake: cc.Fire},
		Log:     debug.Console(),
	}
}
