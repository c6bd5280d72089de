//go:build windows

package opengate

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// hrSFalse is the S_FALSE HRESULT, returned by CoInitializeEx when COM is
// already initialized on the calling thread.
const hrSFalse = 0x00000001

// systemOpener dispatches through Shell.Application's ShellExecute, which
// resolves file associations the same way Explorer does and never flashes a
// console window.
type systemOpener struct{}

func newSystemOpener() Opener {
	return systemOpener{}
}

func (systemOpener) Open(_ context.Context, resource string) error {
	return shellExecute(resource, "")
}

func (systemOpener) OpenWith(_ context.Context, resource, program string) error {
	return shellExecute(program, fmt.Sprintf("%q", resource))
}

func (systemOpener) Reveal(_ context.Context, path string) error {
	cmd := exec.Command("explorer", "/select,"+path)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// shellExecute invokes Shell.Application.ShellExecute(file, args) over COM.
// The launch is inherently detached; the shell hands the process off and
// returns immediately.
func shellExecute(file, args string) error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || (oleErr.Code() != uintptr(ole.S_OK) && oleErr.Code() != hrSFalse) {
			return fmt.Errorf("initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return fmt.Errorf("create Shell.Application: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("query IDispatch: %w", err)
	}
	defer shell.Release()

	if _, err := oleutil.CallMethod(shell, "ShellExecute", file, args); err != nil {
		return fmt.Errorf("ShellExecute %q: %w", file, err)
	}
	return nil
}
