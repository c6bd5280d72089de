//go:build darwin

package opengate

import "context"

// systemOpener dispatches to the macOS "open" utility, which resolves the
// default handler through Launch Services.
type systemOpener struct{}

func newSystemOpener() Opener {
	return systemOpener{}
}

func (systemOpener) Open(_ context.Context, resource string) error {
	return launchDetached("open", resource)
}

func (systemOpener) OpenWith(_ context.Context, resource, program string) error {
	return launchDetached("open", "-a", program, resource)
}

func (systemOpener) Reveal(_ context.Context, path string) error {
	return launchDetached("open", "-R", path)
}
