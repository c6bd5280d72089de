//go:build linux

package opengate

import (
	"context"
	"errors"
	"path/filepath"
)

// errNoHandler is returned when no desktop opener could be found on PATH.
var errNoHandler = errors.New("no desktop opener found on PATH")

// systemOpener dispatches to the desktop opener detected at construction
// time (wslview under WSL, otherwise xdg-open and friends).
type systemOpener struct {
	// handler is the argv prefix of the detected default opener.
	handler []string
}

func newSystemOpener() Opener {
	return &systemOpener{handler: detectHandler()}
}

func (s *systemOpener) Open(_ context.Context, resource string) error {
	if len(s.handler) == 0 {
		return errNoHandler
	}
	argv := append(append([]string(nil), s.handler...), resource)
	return launchDetached(argv[0], argv[1:]...)
}

func (s *systemOpener) OpenWith(_ context.Context, resource, program string) error {
	return launchDetached(program, resource)
}

func (s *systemOpener) Reveal(ctx context.Context, path string) error {
	// Linux file managers expose no portable select-item verb, so reveal
	// opens the containing directory instead.
	return s.Open(ctx, filepath.Dir(path))
}
