package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgHappyGecko = `{
  "power": {
      "mode": 1,
      "osc": 0,
      "announce_sleep": true,
      "diagnostics": true
  },
  "dutycycle": {
      "period_s": 5
  }
}`

var embeddedConfigs = map[string][]byte{
	"happy-gecko": []byte(cfgHappyGecko),
	"host-sim":    []byte(cfgHappyGecko),
}
