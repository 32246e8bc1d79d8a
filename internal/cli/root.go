package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"statusdeck/internal/config"
	"statusdeck/internal/deck"
	"statusdeck/internal/format"
	"statusdeck/internal/store"
	"statusdeck/internal/tui"
)

type App struct {
	ConfigFile string
	PrettyJSON bool
	Format     string

	cfg    *config.Config
	store  store.Store
	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "statusdeck",
		Short:        "Tiled status dashboard (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  statusdeck

  # Inspect and edit the saved layout from scripts
  statusdeck tiles list --format table
  statusdeck tiles add --view graph --api https://status.example.com --set chartType=line
  statusdeck tiles add --view dev --target welcomeTile --edge bottom

  # Direct tile lookup (shortcut for: statusdeck tiles show <tile-id>)
  statusdeck tile-1b4e28ba-2fa1-11d2-883f-0016d3cca427
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init(cmd)
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigFile, "config", "", "Path to a statusdeck.yaml config file (default: <state dir>/statusdeck.yaml if present)")
	pf.String("dir", "", "State directory (default: $STATUSDECK_CONFIG_DIR or ~/.statusdeck)")
	pf.String("backend", config.DefaultBackend, "Layout storage backend (file|sqlite)")
	pf.Duration("debounce", config.DefaultDebounce, "Delay before a layout change is saved")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	pf.Bool("mouse", true, "Enable mouse drag-and-drop in the TUI")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&app.Format, "format", envOr("STATUSDECK_FORMAT", "json"), "Output format ("+strings.Join(format.Formats(), "|")+")")

	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newTilesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// init resolves config for every command. cmd.Flags() includes the
// persistent flags once cobra has parsed them.
func (app *App) init(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.Dir)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.store = st
	app.logger = newLogger(cmd.ErrOrStderr(), level)
	if cfg.FileUsed != "" {
		app.logger.Debug("loaded config file", "path", cfg.FileUsed)
	}
	return nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	if err := app.store.Ensure(); err != nil {
		return err
	}
	// The alt screen owns the terminal, so the TUI logs to a file.
	f, err := os.OpenFile(app.store.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	level, _ := app.cfg.Level()
	logger := newLogger(f, level)
	logger.Info("starting dashboard", "dir", app.store.Dir, "backend", app.cfg.Backend)

	return tui.Run(cmd.Context(), tui.Options{
		Deck:   app.newDeck(logger),
		UI:     app.store,
		Mouse:  app.cfg.Mouse,
		Logger: logger,
	})
}

func (app *App) gateway() deck.Gateway {
	if app.cfg.Backend == config.BackendSQLite {
		return app.store.SQLiteState()
	}
	return app.store.SettingsFile()
}

func (app *App) newDeck(logger *log.Logger) *deck.Store {
	return deck.New(deck.Options{
		Gateway:  app.gateway(),
		Debounce: app.cfg.Debounce,
		Logger:   logger,
	})
}

// loadDeck returns a hydrated deck for a headless command. Unlike the TUI, a
// command fails on an unreadable layout instead of editing the defaults.
func loadDeck(cmd *cobra.Command, app *App) (*deck.Store, error) {
	d := app.newDeck(app.logger)
	var loadErr error
	unsubscribe := d.Subscribe(func(ev deck.Event) {
		if ev.Kind == deck.EventLoadFailed {
			loadErr = ev.Err
		}
	})
	d.Hydrate(cmd.Context())
	unsubscribe()
	if loadErr != nil {
		return nil, fmt.Errorf("load layout: %w", loadErr)
	}
	return d, nil
}

// commit writes the mutation a command made.
func commit(d *deck.Store) error {
	if err := d.Flush(); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut wraps v in a {"data": ...} envelope, except for tables.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if app.Format == "table" {
		return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
