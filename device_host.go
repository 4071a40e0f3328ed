//go:build !tinygo

package main

// deviceID names the embedded config used on a host run.
func deviceID() string { return "host-sim" }
