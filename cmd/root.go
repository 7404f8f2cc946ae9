package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/regexcat/regexcat/internal/clipboard"
	"github.com/regexcat/regexcat/internal/config"
	"github.com/regexcat/regexcat/internal/core"
	"github.com/regexcat/regexcat/internal/pattern"
	"github.com/regexcat/regexcat/internal/source"
	"github.com/regexcat/regexcat/internal/tui"
	"github.com/regexcat/regexcat/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Seams for tests
var (
	clipboardWriter = clipboard.System()
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	runProgram = func(m tui.RootModel) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

type rootFlags struct {
	cleanup  pattern.CleanupMode
	matching pattern.MatchingMode
	file     string
	noCopy   bool
	paste    bool
	noColor  bool
	forceTUI bool
}

// NewRootCmd builds the regexcat command tree.
func NewRootCmd() *cobra.Command {
	defaults := pattern.DefaultOptions()
	flags := &rootFlags{cleanup: defaults.Cleanup, matching: defaults.Matching}

	rootCmd := &cobra.Command{
		Use:   "regexcat [url]...",
		Short: "Turn a list of URLs into one regex alternation",
		Long: `regexcat cleans up a list of URLs, anchors each one and joins them
into a single regular expression alternation, copying it to the clipboard.

URLs can be given as arguments, read from a file or piped on stdin. Without
any input an interactive form is started.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	rootCmd.Flags().VarP(&flags.cleanup, "cleanup", "c", "URL clean-up mode (full, scheme, subdomain, domain, slash)")
	rootCmd.Flags().VarP(&flags.matching, "match", "m", "Regex matching mode (wildcard, strict)")
	rootCmd.Flags().StringVarP(&flags.file, "file", "f", "", "File containing URLs (one per line)")
	rootCmd.Flags().BoolVar(&flags.noCopy, "no-copy", false, "Do not copy the pattern to the clipboard")
	rootCmd.Flags().BoolVar(&flags.paste, "paste", false, "Read URLs from the clipboard")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&flags.forceTUI, "tui", false, "Open the interactive form even when input is given")
	rootCmd.SetVersionTemplate("regexcat version {{.Version}}\n")

	rootCmd.AddCommand(newModesCmd(), newConfigCmd())
	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	initializeGlobalState(settings)
	defer func() {
		if err := utils.CloseDebug(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error closing debug log: %v\n", err)
		}
	}()

	opts, err := settings.Options()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cleanup") {
		opts = opts.WithCleanup(flags.cleanup)
	}
	if cmd.Flags().Changed("match") {
		opts = opts.WithMatching(flags.matching)
	}

	applyTheme(settings.General.Theme, flags.noColor)

	autoCopy := settings.General.AutoCopy && !flags.noCopy
	svc := core.NewLocalPatternService(clipboardWriter, autoCopy)

	piped := !stdinIsTerminal()
	req := source.Request{
		Args:      args,
		File:      flags.file,
		Clipboard: flags.paste,
	}
	// Arguments and --file take the place of stdin. An inherited pipe may
	// never be closed.
	if piped && len(args) == 0 && flags.file == "" {
		req.Stdin = cmd.InOrStdin()
	}

	headless := len(args) > 0 || flags.file != "" || piped
	if flags.forceTUI || !headless {
		raw, kinds, err := source.Read(req)
		if err != nil {
			return err
		}
		utils.Debug("starting form with %v, options %s/%s", kinds, opts.Cleanup, opts.Matching)
		return runProgram(tui.InitialRootModel(svc, opts, raw))
	}

	raw, kinds, err := source.Read(req)
	if err != nil {
		return err
	}
	utils.Debug("headless run from %v, options %s/%s", kinds, opts.Cleanup, opts.Matching)

	run := svc.Process(cmd.Context(), raw, opts)
	printRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), run)
	return nil
}

// printRun writes the pattern to out and the clipboard status to errOut so
// the pattern can be piped on its own.
func printRun(out, errOut io.Writer, run core.Run) {
	if run.Pattern != "" {
		fmt.Fprintln(out, run.Pattern)
	}
	if msg := run.Result.Message(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(nil); err != nil {
		return nil, err
	}
	return settings, nil
}

func applyTheme(theme int, noColor bool) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// initializeGlobalState sets up logging and prunes old logs
func initializeGlobalState(settings *config.Settings) {
	if !settings.General.Debug {
		return
	}

	logsDir := config.GetLogsDir()
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return
	}

	utils.ConfigureDebug(logsDir)
	utils.CleanupLogs(settings.General.LogRetentionCount)
	utils.Debug("regexcat %s (built %s)", Version, BuildTime)
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
