package main

import (
	"context"
	"time"

	"lowpower-go/bus"
	"lowpower-go/services/config"
	"lowpower-go/services/dutycycle"
	"lowpower-go/services/power"
	"lowpower-go/types"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID())

	b := bus.NewBus(8)

	println("[main] starting config service …")
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	tk, err := power.New(types.PowerConfig{
		Mode:          types.ModeLowPowerTimer,
		Osc:           types.OscULFRCO,
		AnnounceSleep: true,
		Diagnostics:   true,
	}, power.DefaultPorts())
	if err != nil {
		println("[main] power init failed:", err.Error())
		return
	}
	println("[main] timekeeper ready, retention:", tk.Retention(),
		"max sleep:", tk.MaxSleepSeconds(), "s")

	uiConn := b.NewConnection("ui")
	mon := uiConn.Subscribe(bus.T("power", "wakeup"))
	go func() {
		for m := range mon.Channel() {
			rep, ok := m.Payload.(types.WakeupReport)
			if !ok {
				continue
			}
			if rep.Error != "" {
				println("[monitor] cycle failed:", rep.Error)
				continue
			}
			if rep.Scheduled {
				println("[monitor] scheduled wakeup after", rep.SleptS, "s in", rep.Retention)
			} else {
				println("[monitor] external wakeup after", rep.SleptS, "s in", rep.Retention)
			}
		}
	}()

	println("[main] starting dutycycle service …")
	if err := dutycycle.New(tk, 5).Start(ctx, b.NewConnection("dutycycle")); err != nil {
		println("[main] dutycycle start failed:", err.Error())
		return
	}

	select {}
}
