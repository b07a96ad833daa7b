package app

import (
	"fmt"
	"sort"
	"strings"
)

// Shell dispatches a request to the OS "open" primitive.
type Shell interface {
	Execute(req Request) (Status, error)
}

// Request carries the ShellExecute arguments. Empty Verb and Dir mean
// "system default"; a nil Params means no parameters at all, which differs
// from an empty command line. Args holds the parameters before joining for
// openers that take an argv instead of a command line.
type Request struct {
	Verb   string
	File   string
	Params *string
	Args   []string
	Dir    string
	Show   ShowCommand
}

// ShowCommand mirrors the SW_* display hints.
type ShowCommand int32

const (
	ShowHide        ShowCommand = 0  // SW_HIDE
	ShowNormal      ShowCommand = 1  // SW_SHOWNORMAL
	ShowMinimized   ShowCommand = 2  // SW_SHOWMINIMIZED
	ShowMaximized   ShowCommand = 3  // SW_SHOWMAXIMIZED
	ShowNoActivate  ShowCommand = 4  // SW_SHOWNOACTIVATE
	ShowShow        ShowCommand = 5  // SW_SHOW
	ShowMinNoActive ShowCommand = 7  // SW_SHOWMINNOACTIVE
	ShowRestore     ShowCommand = 9  // SW_RESTORE
	ShowDefault     ShowCommand = 10 // SW_SHOWDEFAULT
)

var showNames = map[string]ShowCommand{
	"hide":        ShowHide,
	"normal":      ShowNormal,
	"minimized":   ShowMinimized,
	"maximized":   ShowMaximized,
	"noactivate":  ShowNoActivate,
	"show":        ShowShow,
	"minnoactive": ShowMinNoActive,
	"restore":     ShowRestore,
	"default":     ShowDefault,
}

// ParseShowCommand maps a config name to its display hint. An empty name is
// ShowNormal.
func ParseShowCommand(name string) (ShowCommand, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ShowNormal, nil
	}
	if sc, ok := showNames[name]; ok {
		return sc, nil
	}
	valid := make([]string, 0, len(showNames))
	for k := range showNames {
		valid = append(valid, k)
	}
	sort.Strings(valid)
	return 0, fmt.Errorf("unknown show command %q (valid: %s)", name, strings.Join(valid, ", "))
}
