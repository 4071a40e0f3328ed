package types

// ------------------------
// Bus payloads (retained)
// ------------------------

// WakeupReport is published after every sleep cycle completes.
type WakeupReport struct {
	Scheduled bool   `json:"scheduled"`          // compare interrupt woke us
	SleptS    uint32 `json:"slept_s"`            // whole seconds actually slept
	Retention string `json:"retention"`          // "em2" | "em3" | "" (tick mode)
	TS        int64  `json:"ts_ms"`              // publish Unix ms
	Error     string `json:"error,omitempty"`    // short code if the cycle failed
}

// DutyCycleConfig is the runtime-adjustable part of the duty-cycle service.
type DutyCycleConfig struct {
	PeriodS uint32 `json:"period_s"` // sleep length per cycle
}

// ------------------------
// Generic replies
// ------------------------

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
