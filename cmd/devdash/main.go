package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"devdash/internal/config"
	"devdash/internal/dashboard"
	"devdash/internal/pty"
	"devdash/internal/telemetry"
	"devdash/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// addLayoutFlags registers the flags config.FlagKeys binds.
func addLayoutFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Int("left-width", ui.DefaultLeftWidth, "width of the left column in cells")
	f.Int("right-width", ui.DefaultRightWidth, "width of the right column in cells")
	f.Int("bottom-height", ui.DefaultBottomHeight, "height of the bottom row in cells")
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "devdash",
		Short: "Terminal dashboard of file tree, diagnostics and terminal panels",
		Long: `devdash shows a file tree, a diagnostics list and terminal output as
independently toggled panels.

Keys:
  ctrl+e / ctrl+d / ctrl+t   toggle file tree / diagnostics / terminal
  tab / shift+tab            cycle the active panel
  SPC                        leader menu
  q, ctrl+c                  quit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/devdash/config.toml)")
	addLayoutFlags(cmd)
	cmd.Flags().String("exec", "", "shell command whose output streams into the terminal panel")
	cmd.Flags().String("log-file", "", "write debug log to this file")

	cmd.AddCommand(newLayoutCmd(&cfgFile))
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	tracing, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	d, err := dashboard.Build(cfg, ui.WithTracer(tracing.Tracer))
	if err != nil {
		return err
	}
	app := ui.NewAppModel(d.Manager, d.Shortcuts)

	if cfg.Terminal.Exec != "" {
		feedCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		// The first WindowSizeMsg resizes the PTY to the panel's real content area.
		feed, err := pty.StartFeed(feedCtx, &pty.CreackPTY{}, dashboard.TerminalID, cfg.Terminal.Exec,
			pty.Size{Rows: uint16(max(cfg.Layout.BottomHeight, 1)), Cols: 80})
		if err != nil {
			return err
		}
		defer feed.Close()
		app.WatchRegion(dashboard.TerminalID, func(w, h int) {
			if err := feed.Resize(pty.Size{Rows: uint16(h), Cols: uint16(w)}); err != nil {
				log.Printf("terminal: %v", err)
			}
		})
		app.OnStart(feed.Next())
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty since the terminal is owned by the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "devdash")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
