//go:build darwin || linux

package opengate

import (
	"os/exec"
	"syscall"
)

// launchDetached starts a handler process in its own session and releases
// it, so the child is reparented to init and the caller never waits on it.
// Setsid (rather than Setpgid) keeps the handler alive independently of the
// host application's process group and controlling terminal.
func launchDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
