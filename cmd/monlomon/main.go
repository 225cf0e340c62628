package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tinytelemetry/monlomon/internal/filter"
	"github.com/tinytelemetry/monlomon/internal/ingest"
	"github.com/tinytelemetry/monlomon/internal/logparse"
	"github.com/tinytelemetry/monlomon/internal/logsource"
	"github.com/tinytelemetry/monlomon/internal/report"
	"github.com/tinytelemetry/monlomon/internal/session"
	"github.com/tinytelemetry/monlomon/internal/store"
	"github.com/tinytelemetry/monlomon/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "monlomon [file]",
		Short: "Browse MongoDB structured logs in the terminal",
		Long: `monlomon reads MongoDB JSON log lines from a file or standard input and
opens them in an interactive viewer. Use - or no argument to read stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cmd.Context(), cfg, inputPath(args))
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/monlomon/config.yml)")
	root.PersistentFlags().Int("max-line-size", 0, "longest accepted input line in bytes")
	root.PersistentFlags().String("log-file", "", "diagnostic log file")
	root.PersistentFlags().String("log-level", "", "diagnostic log level (debug, info, warn, error)")
	root.Flags().String("detail-format", "", "detail pane format: json or yaml")
	root.Flags().Bool("reverse-scroll-wheel", false, "invert mouse wheel direction")
	root.Flags().Bool("plain", false, "disable syntax coloring in the detail pane")

	root.AddCommand(newPrintCmd(&configPath), newVersionCmd())
	return root
}

func newPrintCmd(configPath *string) *cobra.Command {
	var (
		hide     []string
		exclude  []string
		width    int
		noFooter bool
	)

	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print the filtered log table without the interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			fs, err := buildFilter(hide, exclude)
			if err != nil {
				return err
			}

			logger, closeLog := newFileLogger(cfg)
			defer closeLog()

			st, err := loadStore(cmd.Context(), cfg, inputPath(args), logger)
			if err != nil {
				return err
			}
			s := session.New(st, session.WithFilter(fs), session.WithLogger(logger))
			return report.Write(cmd.OutOrStdout(), s, report.Options{
				MaxMessageWidth: width,
				Summary:         !noFooter,
			})
		},
	}

	cmd.Flags().StringSliceVar(&hide, "hide", nil, "severities to hide (I, W, E, F or full names)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "message text to exclude (repeatable)")
	cmd.Flags().IntVar(&width, "width", 80, "truncate messages to this many characters (0 = no limit)")
	cmd.Flags().BoolVar(&noFooter, "no-summary", false, "omit the summary line")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "monlomon - MongoDB log viewer\n")
			fmt.Fprintf(out, "  Version: %s\n", version)
			fmt.Fprintf(out, "  Commit:  %s\n", commit)
			fmt.Fprintf(out, "  Built:   %s\n", buildTime)
		},
	}
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// buildFilter turns --hide and --exclude values into a filter state.
func buildFilter(hide, exclude []string) (*filter.State, error) {
	fs := filter.NewState()
	for _, name := range hide {
		sev, ok := logparse.ParseSeverityName(name)
		if !ok {
			return nil, fmt.Errorf("unknown severity %q (want one of I, W, E, F)", name)
		}
		fs.SetEnabled(sev, false)
	}
	for _, msg := range exclude {
		fs.Exclude(msg)
	}
	return fs, nil
}

// loadStore reads path ("-" for stdin) to completion into a sealed store.
func loadStore(ctx context.Context, cfg appConfig, path string, logger zerolog.Logger) (*store.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := logsource.Config{MaxLineSize: cfg.MaxLineSize}

	var src logsource.LogSource
	if path == "-" {
		src = logsource.NewStdinSource(ctx, conf)
	} else {
		fileSrc, err := logsource.NewFileSource(ctx, path, conf)
		if err != nil {
			return nil, err
		}
		src = fileSrc
	}

	st := store.New()
	if _, err := ingest.Load(ctx, src, st, logger); err != nil {
		return nil, err
	}
	return st, nil
}

func runTUI(ctx context.Context, cfg appConfig, path string) error {
	logger, closeLog := newFileLogger(cfg)
	defer closeLog()

	format, err := tui.ParseDetailFormat(cfg.DetailFormat)
	if err != nil {
		return err
	}

	st, err := loadStore(ctx, cfg, path, logger)
	if err != nil {
		return err
	}

	source := path
	if source == "-" {
		source = "stdin"
	}

	s := session.New(st, session.WithLogger(logger))
	viewer := tui.NewViewerModel(s, tui.Options{
		DetailFormat:       format,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Plain:              cfg.Plain,
		Source:             source,
		Logger:             &logger,
	})
	app := tui.NewApp(tui.NewViewerPage(viewer), tui.NewDetailPage(viewer))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return errors.New("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
