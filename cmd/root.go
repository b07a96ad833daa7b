package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/shopen/internal/app"
	"github.com/dotcommander/shopen/internal/config"
	"github.com/dotcommander/shopen/internal/version"
)

// Replaced in tests.
var (
	newShell  = app.NewShell
	envStore  = app.EnvStore(app.OSEnv{})
	configDir = config.Dir
)

func newRootCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "shopen FILE [ARGUMENTS...]",
		Short: "Open a file, URL or program with its default handler",
		// Every argument belongs to FILE or its program, including ones that
		// look like flags.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// run prepends "--"; flag parsing is off, so it arrives here.
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			argv := append([]string{cmd.Root().Name()}, args...)
			if err := app.CheckInvocation(argv); err != nil {
				return err
			}
			launcher, err := newLauncher(stderr)
			if err != nil {
				return err
			}
			return launcher.Run(argv)
		},
	}
}

// Execute runs the command line and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes args and returns the process exit code: 0 on a successful
// dispatch, 1 for errors and for help.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stderr)
	// A leading "--" stops cobra from resolving args[0] as a command, which
	// includes its hidden completion commands.
	root.SetArgs(append([]string{"--"}, args...))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrHelpRequested):
		// Best effort so the help reflects the config file; a broken file
		// must not hide the usage text.
		_, _ = initConfig()
		styledHelp(stdout)
		return 1
	default:
		printStyledError(stderr, err)
		return 1
	}
}

// newLauncher loads config and wires the launcher for this OS.
func newLauncher(stderr io.Writer) (*app.Launcher, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}
	lc, err := cfg.LauncherConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := app.NewLogger(cfg.Verbose, stderr)
	return app.NewLauncher(lc, newShell(logger), envStore, logger), nil
}

func initConfig() (*config.Config, error) {
	dir, err := configDir()
	if err == nil {
		if err := config.ReadFile(dir); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return config.Load()
}

// printStyledError displays an error with lipgloss styling.
// Usage errors get a help hint.
func printStyledError(w io.Writer, err error) {
	theme := NewTheme(w)
	fmt.Fprintf(w, "%s %s\n", theme.ErrorText.Render("Error:"), err.Error())

	var usageErr *app.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(w, "%s\n", theme.HelpText.Render("Run 'shopen --help' for usage information"))
	}
}

// styledHelp displays the usage synopsis.
func styledHelp(w io.Writer) {
	theme := NewTheme(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render(" SHOPEN ")+" "+theme.Info.Render(version.String()))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", theme.Command.Render("shopen"), theme.Flag.Render("FILE [ARGUMENTS...]"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Description.Render("  Open FILE (a path, URL or program) with the system's default handler."))
	fmt.Fprintln(w, theme.Description.Render("  ARGUMENTS are joined into one command line for FILE; arguments with"))
	fmt.Fprintln(w, theme.Description.Render("  spaces are wrapped in double quotes."))
	fmt.Fprintln(w)

	fmt.Fprintln(w, theme.Section.Render("Examples"))
	fmt.Fprintln(w, theme.Divider.Render(strings.Repeat("-", 50)))
	examples := []string{
		`shopen report.pdf`,
		`shopen https://example.com`,
		`shopen .`,
		`shopen notepad.exe "C:\notes\todo list.txt"`,
	}
	for _, ex := range examples {
		fmt.Fprintf(w, "  %s\n", theme.Example.Render(ex))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, theme.Section.Render("Help"))
	fmt.Fprintln(w, theme.Divider.Render(strings.Repeat("-", 50)))
	fmt.Fprintf(w, "  %s  %s\n",
		theme.Flag.Render(fmt.Sprintf("%-18s", "-h, --help, /?")),
		theme.Description.Render("Show this help (as FILE)"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, theme.Section.Render("Environment"))
	fmt.Fprintln(w, theme.Divider.Render(strings.Repeat("-", 50)))
	marker := viper.GetString("env.marker")
	scrub := viper.GetStringSlice("env.scrub")
	if marker != "" {
		fmt.Fprintf(w, "  %s\n", theme.Description.Render(fmt.Sprintf(
			"When %s is set, %s are removed before launching.",
			marker, strings.Join(append([]string{marker}, scrub...), ", "))))
	} else {
		fmt.Fprintf(w, "  %s\n", theme.Description.Render("Environment cleanup is disabled."))
	}
	fmt.Fprintln(w)

	if dir, err := configDir(); err == nil {
		fmt.Fprintf(w, "%s %s\n", theme.Dim.Render("Config:"), theme.Description.Render(filepath.Join(dir, "config.yaml")))
		fmt.Fprintln(w)
	}
}
