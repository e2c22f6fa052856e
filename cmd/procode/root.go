package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/procode/editor"
	"github.com/iw2rmb/procode/internal/app"
	"github.com/iw2rmb/procode/internal/logging"
	"github.com/iw2rmb/procode/internal/settings"
	"github.com/iw2rmb/procode/internal/workspace"
	"github.com/iw2rmb/procode/syntax"
)

// runConfig holds the parsed command-line flags.
type runConfig struct {
	settingsPath   string
	dir            string
	debugLog       string
	theme          string
	highlightDelay time.Duration
	firstLineOnly  bool
}

func newRootCmd(version string) *cobra.Command {
	var rc runConfig
	cmd := &cobra.Command{
		Use:          "procode [file]",
		Short:        "A minimal terminal text editor",
		Long:         `A terminal text editor with a file tree, a line number gutter, Python syntax colouring and persisted font preferences.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.run(cmd.Version, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rc.settingsPath, "settings", settings.DefaultPath, "settings file holding the font preference")
	f.StringVarP(&rc.dir, "dir", "d", ".", "directory shown in the file tree")
	f.StringVar(&rc.debugLog, "debug", "", "write debug logs to this file")
	f.StringVar(&rc.theme, "theme", "", "chroma style for syntax colours (default: built-in dark palette)")
	f.DurationVar(&rc.highlightDelay, "highlight-delay", 0, "debounce syntax highlighting while typing")
	f.BoolVar(&rc.firstLineOnly, "first-line-only", false, "map every token onto the first line (legacy highlighting)")
	return cmd
}

// options validates the flags against fsys and builds the shell options.
func (rc runConfig) options(fsys afero.Fs, logger *log.Logger, args []string) (app.Options, error) {
	theme := syntax.DefaultTheme()
	if rc.theme != "" {
		t, ok := syntax.ThemeFromChroma(rc.theme)
		if !ok {
			return app.Options{}, fmt.Errorf("unknown theme %q", rc.theme)
		}
		theme = t
	}

	info, err := fsys.Stat(rc.dir)
	if err != nil {
		return app.Options{}, fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return app.Options{}, fmt.Errorf("working directory %s: not a directory", rc.dir)
	}

	mode := syntax.PositionAllLines
	if rc.firstLineOnly {
		mode = syntax.PositionFirstLine
	}

	opts := app.Options{
		Workspace:      workspace.New(fsys, rc.dir),
		Store:          settings.NewStore(fsys, rc.settingsPath, logger),
		Logger:         logger,
		Theme:          theme,
		PositionMode:   mode,
		HighlightDelay: rc.highlightDelay,
		Clipboard:      editor.SystemClipboard{},
	}
	if len(args) == 1 {
		opts.FilePath = args[0]
	}
	return opts, nil
}

func (rc runConfig) run(version string, args []string) error {
	// Query the background colour before the program owns stdin.
	_ = lipgloss.HasDarkBackground()

	logger := logging.New(nil, "info")
	if rc.debugLog != "" {
		l, closer, err := logging.OpenFile(rc.debugLog, "debug")
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
		logger = l
	}
	logging.SetDefault(logger)

	opts, err := rc.options(afero.NewOsFs(), logger, args)
	if err != nil {
		return err
	}
	logger.Info("starting",
		logging.FieldVersion, version,
		logging.FieldDir, rc.dir,
		logging.FieldPath, opts.FilePath,
		logging.FieldTheme, rc.theme)

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
