// services/debug/debug.go
package debug

import (
	"io"
	"sync"

	"lowpower-go/x/conv"
)

// Log is the diagnostics sink collaborator: informational and critical
// text messages, formatted without fmt so MCU builds stay lean. A nil
// *Log is valid and drops everything, which is how diagnostics are
// disabled.
type Log struct {
	mu   sync.Mutex
	sink io.Writer
}

// New wraps any byte sink (UART, stdout, test buffer) as a Log.
func New(w io.Writer) *Log {
	if w == nil {
		return nil
	}
	return &Log{sink: w}
}

const (
	infoPrefix = "INFO: "
	critPrefix = "CRIT: "
	crlf       = "\r\n"
)

func (l *Log) emit(parts ...string) {
	if l == nil || l.sink == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range parts {
		_, _ = io.WriteString(l.sink, p)
	}
	_, _ = io.WriteString(l.sink, crlf)
}

// Info emits an informational line.
func (l *Log) Info(msg string) { l.emit(infoPrefix, msg) }

// Crit emits a critical line.
func (l *Log) Crit(msg string) { l.emit(critPrefix, msg) }

// InfoUint emits prefix, a decimal value and suffix as one line.
func (l *Log) InfoUint(prefix string, v uint32, suffix string) {
	var buf [20]byte
	l.emit(infoPrefix, prefix, string(conv.Utoa(buf[:], uint64(v))), suffix)
}

// InfoHex emits prefix and an 8-digit hex value as one line.
func (l *Log) InfoHex(prefix string, v uint32) {
	var buf [8]byte
	l.emit(infoPrefix, prefix, "0x", string(conv.U32Hex(buf[:], v)))
}

// Dump emits a label followed by the hex expansion of raw bytes.
func (l *Log) Dump(label string, data []byte) {
	l.emit(infoPrefix, label, string(conv.AppendHexASCII(nil, data)))
}
