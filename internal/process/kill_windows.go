//go:build windows

// Package process terminates browser process trees left by the PDF backend.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its child processes with taskkill
// (/F force, /T tree).
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill runs afterwards.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
