// services/debug/console_rp2.go
//go:build rp2040

package debug

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

// NewUART wraps any TinyGo driver UART as a diagnostics sink.
func NewUART(u drivers.UART) *Log { return New(u) }

// Console configures uartx UART0 and returns it as the diagnostics sink.
// Defaults inside uartx apply when baud is zero.
func Console(baud uint32, tx, rx machine.Pin) *Log {
	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       tx,
		RX:       rx,
	})
	return New(hw)
}
