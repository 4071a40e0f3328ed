// services/power/state.go
package power

import "sync/atomic"

// isrState is the only memory shared between the interrupt handlers and
// foreground code. Flags are uint32 words accessed through sync/atomic so
// reads and writes cannot tear on any supported core.
type isrState struct {
	initialized uint32 // one-time hardware setup completed
	sleeping    uint32 // foreground is inside a sleep's retention window
	wakeup      uint32 // latched by the compare handler during a sleep
}

func flag(v *uint32) bool { return atomic.LoadUint32(v) != 0 }
func setFlag(v *uint32)   { atomic.StoreUint32(v, 1) }
func clearFlag(v *uint32) { atomic.StoreUint32(v, 0) }

func (s *isrState) isInitialized() bool { return flag(&s.initialized) }
func (s *isrState) markInitialized()    { setFlag(&s.initialized) }

func (s *isrState) setSleeping(on bool) {
	if on {
		setFlag(&s.sleeping)
	} else {
		clearFlag(&s.sleeping)
	}
}
func (s *isrState) isSleeping() bool { return flag(&s.sleeping) }

func (s *isrState) latchWakeup()        { setFlag(&s.wakeup) }
func (s *isrState) clearWakeup()        { clearFlag(&s.wakeup) }
func (s *isrState) wakeupLatched() bool { return flag(&s.wakeup) }
