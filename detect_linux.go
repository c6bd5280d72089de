//go:build linux

package opengate

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// handlerCandidates lists desktop openers in preference order. "gio open"
// superseded gnome-open; kde-open covers Plasma desktops without gio.
var handlerCandidates = [][]string{
	{"xdg-open"},
	{"gio", "open"},
	{"gnome-open"},
	{"kde-open"},
}

// lookPath is overridden in tests to simulate PATH contents.
var lookPath = exec.LookPath

// detectHandler returns the argv prefix of the default opener for this
// system, or nil when none is installed. Under WSL, wslview is preferred so
// resources open with the Windows-side handler.
func detectHandler() []string {
	if isWSL() {
		if _, err := lookPath("wslview"); err == nil {
			return []string{"wslview"}
		}
	}
	for _, c := range handlerCandidates {
		if _, err := lookPath(c[0]); err == nil {
			return c
		}
	}
	return nil
}

// unameRelease reads the kernel release string. It is a function variable so
// tests can simulate WSL and non-WSL kernels.
var unameRelease = func() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}

// isWSL reports whether we are running under Windows Subsystem for Linux.
// WSL kernels carry "microsoft" in the uname release string.
func isWSL() bool {
	rel, err := unameRelease()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(rel), "microsoft")
}
