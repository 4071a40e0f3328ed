// services/debug/console_host.go
//go:build !tinygo

package debug

import "os"

// Console returns a Log writing to stdout for host runs and tests.
func Console() *Log { return New(os.Stdout) }
