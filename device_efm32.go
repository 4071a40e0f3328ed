//go:build tinygo

package main

// deviceID names the embedded config flashed with this build.
func deviceID() string { return "happy-gecko" }
