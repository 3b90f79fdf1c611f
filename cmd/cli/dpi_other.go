//go:build !windows

package main

// DPI awareness is a Windows concern; other platforms need no setup.
func enableDPIAwareness() {}
