// services/dutycycle/service.go
package dutycycle

import (
	"context"

	"lowpower-go/bus"
	"lowpower-go/services/power"
	"lowpower-go/types"
	"lowpower-go/x/mathx"
	"lowpower-go/x/timex"
)

var (
	topicConfig = bus.T("config", "dutycycle")
	topicWakeup = bus.T("power", "wakeup")
)

// Service sleeps the device in a fixed duty cycle and reports how each
// cycle ended: the scheduled timer, an external event, or a failure. The
// last report is retained so late subscribers see the current state.
type Service struct {
	tk      *power.Timekeeper
	periodS uint32
}

func New(tk *power.Timekeeper, periodS uint32) *Service {
	return &Service{tk: tk, periodS: periodS}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	if s.tk.MaxSleepSeconds() == 0 {
		// Tick-counter backbone: there is no sleep to duty-cycle.
		conn.Publish(&bus.Message{
			Topic:    topicWakeup,
			Payload:  types.WakeupReport{Error: "unsupported", TS: timex.NowMs()},
			Retained: true,
		})
		return
	}

	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)

	for {
		select {
		case <-ctx.Done():
			println("Info: dutycycle service stopping")
			return
		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload)
			continue
		default:
		}

		conn.Publish(&bus.Message{
			Topic:    topicWakeup,
			Payload:  s.runCycle(),
			Retained: true,
		})
	}
}

// runCycle performs one sleep and classifies its wakeup.
func (s *Service) runCycle() types.WakeupReport {
	period := mathx.Clamp(s.periodS, 1, s.tk.MaxSleepSeconds())
	rep := types.WakeupReport{Retention: s.tk.Retention()}

	if err := s.tk.Sleep(period); err != nil {
		rep.Error = err.Error()
		rep.TS = timex.NowMs()
		return rep
	}

	if s.tk.WakeupWasScheduled() {
		rep.Scheduled = true
		rep.SleptS = period
	} else {
		// Something else woke us early; ask the counter how far we got.
		rep.SleptS = s.tk.SleptSeconds()
	}
	s.tk.ClearWakeup()
	rep.TS = timex.NowMs()
	return rep
}

func (s *Service) applyConfig(payload any) {
	m, ok := payload.(map[string]any)
	if !ok {
		return
	}
	if v, ok := m["period_s"].(float64); ok && v > 0 {
		s.periodS = uint32(v)
		println("Info: dutycycle period set to", s.periodS, "seconds")
	}
}

// Start runs the duty-cycle loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
