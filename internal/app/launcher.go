package app

import (
	"slices"
	"strconv"
)

// helpTargets are the FILE values that ask for usage instead of a launch.
var helpTargets = []string{"-h", "--help", "/?"}

// LauncherConfig holds launch settings.
// Injected at construction time - no global state.
type LauncherConfig struct {
	Verb    string
	Dir     string
	Show    ShowCommand
	EnvRule EnvRule
}

// DefaultLauncherConfig returns the system-default verb, the inherited working
// directory, SW_SHOWNORMAL and the MSYS cleanup rule.
func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Show:    ShowNormal,
		EnvRule: DefaultEnvRule(),
	}
}

// Launcher turns an invocation into a single shell dispatch.
type Launcher struct {
	config LauncherConfig
	shell  Shell
	env    EnvStore
	logger Logger
}

// NewLauncher creates a launcher with injected dependencies.
// A nil env uses the process environment.
func NewLauncher(cfg LauncherConfig, shell Shell, env EnvStore, logger Logger) *Launcher {
	if env == nil {
		env = OSEnv{}
	}
	return &Launcher{
		config: cfg,
		shell:  shell,
		env:    env,
		logger: logger,
	}
}

// Run launches args[1] with args[2:] as its parameters. args[0] is the
// program name and is ignored. The shell is called at most once.
func (l *Launcher) Run(args []string) error {
	if err := CheckInvocation(args); err != nil {
		return err
	}

	req, err := l.buildRequest(args[1], args[2:])
	if err != nil {
		return err
	}

	l.cleanEnvironment()

	l.logger.Debug("dispatching file=%q params=%s verb=%q dir=%q show=%d",
		req.File, describeParams(req.Params), req.Verb, req.Dir, req.Show)

	status, err := l.shell.Execute(req)
	if err != nil {
		return &LaunchError{Err: err}
	}
	if !status.OK() {
		if name := status.Name(); name != "" {
			l.logger.Debug("status %d is %s", status, name)
		}
		return &LaunchError{Status: status}
	}

	l.logger.Info("ShellExecute returned %d", status)
	return nil
}

// CheckInvocation returns a *UsageError when args carries no target and
// ErrHelpRequested when the target asks for usage. It touches nothing, so
// callers may run it before loading configuration.
func CheckInvocation(args []string) error {
	if len(args) < 2 {
		return &UsageError{Err: ErrNoTarget}
	}
	if slices.Contains(helpTargets, args[1]) {
		return ErrHelpRequested
	}
	return nil
}

// buildRequest joins params and rejects values the OS cannot receive.
func (l *Launcher) buildRequest(target string, params []string) (Request, error) {
	req := Request{
		Verb: l.config.Verb,
		File: target,
		Dir:  l.config.Dir,
		Show: l.config.Show,
	}
	if containsNUL(target) {
		return Request{}, &EncodingError{What: "filename"}
	}
	if len(params) > 0 {
		joined := JoinArgs(params)
		if containsNUL(joined) {
			return Request{}, &EncodingError{What: "arguments"}
		}
		req.Params = &joined
		req.Args = slices.Clone(params)
	}
	return req, nil
}

// cleanEnvironment removes compatibility-shell variables from the process
// environment before the launched program inherits it.
func (l *Launcher) cleanEnvironment() {
	_, removed := CleanEnvironment(l.env.Environ(), l.config.EnvRule)
	for _, key := range removed {
		if err := l.env.Unsetenv(key); err != nil {
			l.logger.Warn("failed to unset %s: %v", key, err)
			continue
		}
		l.logger.Debug("unset %s", key)
	}
}

func describeParams(p *string) string {
	if p == nil {
		return "<none>"
	}
	return strconv.Quote(*p)
}
