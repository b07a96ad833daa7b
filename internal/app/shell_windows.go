//go:build windows

package app

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32           = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// NativeShell calls ShellExecuteW directly. windows.ShellExecute is not used
// because it folds the return value into an errno and the raw status is needed.
type NativeShell struct{}

// NewShell returns the Shell for the current OS.
func NewShell(logger Logger) Shell {
	return NativeShell{}
}

func (NativeShell) Execute(req Request) (Status, error) {
	file, err := windows.UTF16PtrFromString(req.File)
	if err != nil {
		return 0, fmt.Errorf("encode file: %w", err)
	}
	verb, err := optionalUTF16(req.Verb)
	if err != nil {
		return 0, fmt.Errorf("encode verb: %w", err)
	}
	dir, err := optionalUTF16(req.Dir)
	if err != nil {
		return 0, fmt.Errorf("encode directory: %w", err)
	}
	var params *uint16
	if req.Params != nil {
		params, err = windows.UTF16PtrFromString(*req.Params)
		if err != nil {
			return 0, fmt.Errorf("encode arguments: %w", err)
		}
	}

	if err := procShellExecuteW.Find(); err != nil {
		return 0, err
	}

	r1, _, _ := procShellExecuteW.Call(
		0, // hwnd
		uintptr(unsafe.Pointer(verb)),
		uintptr(unsafe.Pointer(file)),
		uintptr(unsafe.Pointer(params)),
		uintptr(unsafe.Pointer(dir)),
		uintptr(req.Show),
	)
	// The buffers must outlive the call.
	runtime.KeepAlive(file)
	runtime.KeepAlive(verb)
	runtime.KeepAlive(params)
	runtime.KeepAlive(dir)

	return Status(r1), nil
}

// optionalUTF16 returns nil for an empty string so the API sees NULL.
func optionalUTF16(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}
