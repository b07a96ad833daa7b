//go:build !windows

package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestBuildOpenCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		found    []string
		req      Request
		wantArgs []string
		wantLogs []string
		wantErr  string
	}{
		{
			name:     "darwin file only",
			goos:     "darwin",
			found:    []string{"open"},
			req:      Request{File: "notes.txt"},
			wantArgs: []string{"/usr/bin/open", "notes.txt"},
		},
		{
			name:     "darwin forwards each argument",
			goos:     "darwin",
			found:    []string{"open"},
			req:      Request{File: "/Applications/Foo.app", Params: strPtr(`-x "a b"`), Args: []string{"-x", "a b"}},
			wantArgs: []string{"/usr/bin/open", "/Applications/Foo.app", "--args", "-x", "a b"},
		},
		{
			name:     "darwin falls back to command line",
			goos:     "darwin",
			found:    []string{"open"},
			req:      Request{File: "/Applications/Foo.app", Params: strPtr("-v")},
			wantArgs: []string{"/usr/bin/open", "/Applications/Foo.app", "--args", "-v"},
		},
		{
			name:     "linux file only",
			goos:     "linux",
			found:    []string{"xdg-open"},
			req:      Request{File: "https://example.com"},
			wantArgs: []string{"/usr/bin/xdg-open", "https://example.com"},
		},
		{
			name:     "linux drops params",
			goos:     "linux",
			found:    []string{"xdg-open"},
			req:      Request{File: "a.txt", Params: strPtr("-v"), Args: []string{"-v"}},
			wantArgs: []string{"/usr/bin/xdg-open", "a.txt"},
			wantLogs: []string{"ERROR: xdg-open does not accept arguments, ignoring: -v"},
		},
		{
			name:    "linux without opener",
			goos:    "linux",
			req:     Request{File: "a.txt"},
			wantErr: "need: xdg-open",
		},
		{
			name:    "darwin without opener",
			goos:    "darwin",
			req:     Request{File: "a.txt"},
			wantErr: "need: open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			s := &ExecShell{logger: logger, goos: tt.goos, lookPath: fakeLookPath(tt.found...)}

			cmd, err := s.buildOpenCommand(tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.wantLogs, logger.GetLogs())
		})
	}
}

func TestExecShell_MissingOpener(t *testing.T) {
	s := &ExecShell{logger: &MockLogger{}, goos: "linux", lookPath: fakeLookPath()}

	status, err := s.Execute(Request{File: "a.txt"})

	require.Error(t, err)
	assert.Equal(t, StatusOutOfResources, status)
}

func TestExecShell_IgnoresVerb(t *testing.T) {
	logger := &MockLogger{}
	s := &ExecShell{logger: logger, goos: "linux", lookPath: fakeLookPath("xdg-open")}

	_, err := s.buildOpenCommand(Request{File: "a.txt", Verb: "print"})

	require.NoError(t, err)
	assert.Equal(t, []string{`WARN: verb "print" is ignored on linux`}, logger.GetLogs())
}

func TestExecShell_DroppedArgumentsAreReportedWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(false, &buf)
	s := &ExecShell{logger: logger, goos: "linux", lookPath: fakeLookPath("xdg-open")}

	_, err := s.buildOpenCommand(Request{File: "a.txt", Params: strPtr(`-x "a b"`)})

	require.NoError(t, err)
	assert.Equal(t, "❌ xdg-open does not accept arguments, ignoring: -x \"a b\"\n", buf.String())
}
