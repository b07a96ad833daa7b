//go:build !windows

package app

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ExecShell opens targets through the desktop opener on macOS (`open`) and
// Linux/BSD (`xdg-open`). It starts the opener and does not wait for it.
type ExecShell struct {
	logger   Logger
	goos     string
	lookPath func(string) (string, error)
}

// NewShell returns the Shell for the current OS.
func NewShell(logger Logger) Shell {
	return &ExecShell{
		logger:   logger,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

func (s *ExecShell) Execute(req Request) (Status, error) {
	cmd, err := s.buildOpenCommand(req)
	if err != nil {
		return 0, err
	}
	if req.Dir != "" {
		cmd.Dir = req.Dir
	}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	return StatusDispatched, nil
}

// buildOpenCommand creates the platform-specific command to open a file/URL.
func (s *ExecShell) buildOpenCommand(req Request) (*exec.Cmd, error) {
	if req.Verb != "" {
		s.logger.Warn("verb %q is ignored on %s", req.Verb, s.goos)
	}

	if s.goos == "darwin" {
		path, err := s.lookPath("open")
		if err != nil {
			return nil, fmt.Errorf("no platform opener available (need: open): %w", err)
		}
		// open passes each value after --args as its own argv element, so the
		// unjoined parameters are used.
		args := []string{req.File}
		switch {
		case len(req.Args) > 0:
			args = append(args, "--args")
			args = append(args, req.Args...)
		case req.Params != nil:
			args = append(args, "--args", *req.Params)
		}
		return exec.Command(path, args...), nil
	}

	path, err := s.lookPath("xdg-open")
	if err != nil {
		return nil, fmt.Errorf("no platform opener available (need: xdg-open): %w", err)
	}
	if req.Params != nil {
		s.logger.Error("xdg-open does not accept arguments, ignoring: %s", *req.Params)
	}
	return exec.Command(path, req.File), nil
}
