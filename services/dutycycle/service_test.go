// services/dutycycle/service_test.go
package dutycycle

import (
	"context"
	"testing"
	"time"

	"lowpower-go/bus"
	"lowpower-go/services/power"
	"lowpower-go/services/internal/platform"
	"lowpower-go/types"
)

func newRig(t *testing.T) (*power.Timekeeper, *platform.FakeCompareCounter, *platform.FakeEnergy) {
	t.Helper()
	cmp := &platform.FakeCompareCounter{}
	energy := &platform.FakeEnergy{Dwell: time.Millisecond, Wake: cmp.Fire}
	tk, err := power.New(types.PowerConfig{
		Mode: types.ModeLowPowerTimer,
		Osc:  types.OscULFRCO,
	}, power.Ports{
		Clocks:  platform.NewFakeClockTree(),
		Compare: cmp,
		Energy:  energy,
	})
	if err != nil {
		t.Fatal(err)
	}
	return tk, cmp, energy
}

func waitReport(t *testing.T, sub *bus.Subscription) types.WakeupReport {
	t.Helper()
	select {
	case msg := <-sub.Channel():
		rep, ok := msg.Payload.(types.WakeupReport)
		if !ok {
			t.Fatalf("payload type %T", msg.Payload)
		}
		return rep
	case <-time.After(time.Second):
		t.Fatal("no wakeup report")
		return types.WakeupReport{}
	}
}

func TestScheduledWakeupReport(t *testing.T) {
	tk, _, _ := newRig(t)
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.NewConnection("test").Subscribe(bus.T("power", "wakeup"))
	if err := New(tk, 5).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		t.Fatal(err)
	}

	rep := waitReport(t, sub)
	if !rep.Scheduled {
		t.Error("timer wakeup reported as external")
	}
	if rep.SleptS != 5 {
		t.Errorf("SleptS = %d, want 5", rep.SleptS)
	}
	if rep.Retention != "em3" {
		t.Errorf("Retention = %q, want em3", rep.Retention)
	}
	if rep.Error != "" {
		t.Errorf("unexpected error %q", rep.Error)
	}
}

func TestExternalWakeupReport(t *testing.T) {
	tk, cmp, energy := newRig(t)
	energy.Wake = nil // retention exits without the compare interrupt
	cmp.CountVal = 3000

	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.NewConnection("test").Subscribe(bus.T("power", "wakeup"))
	if err := New(tk, 10).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		t.Fatal(err)
	}

	rep := waitReport(t, sub)
	if rep.Scheduled {
		t.Error("external wakeup reported as scheduled")
	}
	if rep.SleptS != 3 {
		t.Errorf("SleptS = %d, want 3", rep.SleptS)
	}
}

func TestPeriodClampedToCompareField(t *testing.T) {
	tk, _, _ := newRig(t)
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.NewConnection("test").Subscribe(bus.T("power", "wakeup"))
	// 20000 s would overflow the 24-bit field at 1 kHz; the service must
	// clamp to MaxSleepSeconds instead of failing every cycle.
	if err := New(tk, 20000).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		t.Fatal(err)
	}

	rep := waitReport(t, sub)
	if rep.Error != "" {
		t.Fatalf("cycle failed: %s", rep.Error)
	}
	if rep.SleptS != tk.MaxSleepSeconds() {
		t.Errorf("SleptS = %d, want clamp to %d", rep.SleptS, tk.MaxSleepSeconds())
	}
}

func TestConfigUpdatesPeriod(t *testing.T) {
	tk, _, _ := newRig(t)
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Retained config published before the service starts, as the config
	// service would.
	b.NewConnection("config").Publish(&bus.Message{
		Topic:    bus.T("config", "dutycycle"),
		Payload:  map[string]any{"period_s": float64(2)},
		Retained: true,
	})

	sub := b.NewConnection("test").Subscribe(bus.T("power", "wakeup"))
	if err := New(tk, 9).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		t.Fatal(err)
	}

	// The first cycle may still use the construction-time period; the
	// retained config must take effect on a later one.
	deadline := time.After(2 * time.Second)
	for {
		rep := waitReport(t, sub)
		if rep.SleptS == 2 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("period never updated, last SleptS = %d", rep.SleptS)
		default:
		}
	}
}

func TestTickBackboneRefusesDutyCycle(t *testing.T) {
	tk, err := power.New(types.PowerConfig{Mode: types.ModeTickCounter}, power.Ports{
		Clocks: platform.NewFakeClockTree(),
		Ticks:  &platform.FakeTickGenerator{},
	})
	if err != nil {
		t.Fatal(err)
	}
	b := bus.NewBus(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.NewConnection("test").Subscribe(bus.T("power", "wakeup"))
	if err := New(tk, 5).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		t.Fatal(err)
	}

	rep := waitReport(t, sub)
	if rep.Error != "unsupported" {
		t.Errorf("error = %q, want unsupported", rep.Error)
	}
}
