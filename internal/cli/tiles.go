package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"statusdeck/internal/deck"
	"statusdeck/internal/layout"
	"statusdeck/internal/model"
)

func newTilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tiles",
		Aliases: []string{"tile"},
		Short:   "Tile commands",
	}
	cmd.AddCommand(newTilesListCmd(app))
	cmd.AddCommand(newTilesShowCmd(app))
	cmd.AddCommand(newTilesAddCmd(app))
	cmd.AddCommand(newTilesSetCmd(app))
	cmd.AddCommand(newTilesRenameCmd(app))
	cmd.AddCommand(newTilesResizeCmd(app))
	cmd.AddCommand(newTilesRemoveCmd(app))
	return cmd
}

type tileView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Placed bool   `json:"placed"`
	model.TileSettings
}

func newTileView(d *deck.Store, id string) (tileView, bool) {
	s, ok := d.Tile(id)
	if !ok {
		return tileView{}, false
	}
	return tileView{
		ID:           id,
		Title:        d.Title(id),
		Placed:       layout.Contains(d.Layout(), id),
		TileSettings: s,
	}, true
}

func (v tileView) Header() []string { return tileList{v}.Header() }
func (v tileView) Rows() [][]any    { return tileList{v}.Rows() }

type tileList []tileView

func (l tileList) Header() []string {
	return []string{"ID", "TITLE", "VIEW", "API", "CONFIGURED", "PLACED"}
}

func (l tileList) Rows() [][]any {
	rows := make([][]any, 0, len(l))
	for _, t := range l {
		rows = append(rows, []any{t.ID, t.Title, string(t.ViewType), t.API, !t.NeedsConfig, t.Placed})
	}
	return rows
}

func newTilesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tiles in layout order",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := tileList{}
			for _, id := range d.TileIDs() {
				if v, ok := newTileView(d, id); ok {
					out = append(out, v)
				}
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newTilesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tile-id>",
		Short: "Show one tile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			v, ok := newTileView(d, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("tile", args[0]))
			}
			return writeOut(cmd, app, v)
		},
	}
}

func newTilesAddCmd(app *App) *cobra.Command {
	var (
		view        string
		api         string
		title       string
		target      string
		edge        string
		sets        []string
		needsConfig bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tile (appended, or split next to --target)",
		RunE: func(cmd *cobra.Command, args []string) error {
			vt, err := model.ParseViewType(strings.TrimSpace(view))
			if err != nil {
				return writeErr(cmd, err)
			}
			settings := model.TileSettings{
				ViewType:           vt,
				API:                strings.TrimSpace(api),
				AdditionalSettings: map[string]any{},
				NeedsConfig:        needsConfig,
			}
			if err := applySettingArgs(settings.AdditionalSettings, sets, nil); err != nil {
				return writeErr(cmd, err)
			}
			if err := settings.Validate(); err != nil {
				return writeErr(cmd, err)
			}

			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var id string
			if target = strings.TrimSpace(target); target != "" {
				e, err := layout.ParseEdge(strings.TrimSpace(edge))
				if err != nil {
					return writeErr(cmd, err)
				}
				if _, ok := d.Tile(target); !ok {
					return writeErr(cmd, errNotFound("tile", target))
				}
				nid, ok := d.AddTileRelative(target, e, settings, title)
				if !ok {
					return writeErr(cmd, notPlacedError{id: target})
				}
				id = nid
			} else {
				id = d.AddTile(settings, title)
			}
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Debug("added tile", "id", id, "view", vt, "target", target)

			v, _ := newTileView(d, id)
			return writeOut(cmd, app, v)
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "View type ("+viewTypesHelp()+")")
	cmd.Flags().StringVar(&api, "api", "", "Data source the view reads from")
	cmd.Flags().StringVar(&title, "title", "", "Tile title (default: \"Tile <n>\")")
	cmd.Flags().StringVar(&target, "target", "", "Existing tile to split (default: append to the right of the dashboard)")
	cmd.Flags().StringVar(&edge, "edge", string(layout.EdgeRight), "Edge of --target to place the tile at (left|right|top|bottom)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "View setting key=value (repeatable; values are parsed as YAML, e.g. values=[1,2,3])")
	cmd.Flags().BoolVar(&needsConfig, "needs-config", false, "Mark the tile as awaiting configuration in the dashboard")
	_ = cmd.MarkFlagRequired("view")
	return cmd
}

func newTilesSetCmd(app *App) *cobra.Command {
	var (
		api    string
		sets   []string
		unsets []string
	)

	cmd := &cobra.Command{
		Use:   "set <tile-id>",
		Short: "Change a tile's data source or view settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, ok := d.Tile(id)
			if !ok {
				return writeErr(cmd, errNotFound("tile", id))
			}
			if s.AdditionalSettings == nil {
				s.AdditionalSettings = map[string]any{}
			}
			if cmd.Flags().Changed("api") {
				s.API = strings.TrimSpace(api)
				s.NeedsConfig = false
			}
			if err := applySettingArgs(s.AdditionalSettings, sets, unsets); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Validate(); err != nil {
				return writeErr(cmd, err)
			}
			d.UpdateTile(id, s)
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			v, _ := newTileView(d, id)
			return writeOut(cmd, app, v)
		},
	}

	cmd.Flags().StringVar(&api, "api", "", "Data source the view reads from (also marks the tile configured)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "View setting key=value (repeatable)")
	cmd.Flags().StringArrayVar(&unsets, "unset", nil, "View setting key to remove (repeatable)")
	return cmd
}

func newTilesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <tile-id> <title>",
		Short: "Rename a tile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !d.RenameTile(args[0], args[1]) {
				return writeErr(cmd, errNotFound("tile", args[0]))
			}
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			v, _ := newTileView(d, args[0])
			return writeOut(cmd, app, v)
		},
	}
}

func newTilesResizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resize <tile-id> <delta>",
		Short: "Move the divider next to a tile by delta percentage points",
		Long: strings.TrimSpace(`
Shifts the split that directly contains the tile. A positive delta gives more
room to the split's first child (left or top), a negative one to the second.
The result is clamped to 5..95.`),
		Example: "  statusdeck tiles resize -- welcomeTile -10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid delta %q: %w", args[1], err))
			}
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := d.Tile(args[0]); !ok {
				return writeErr(cmd, errNotFound("tile", args[0]))
			}
			if !d.ResizeTile(args[0], delta) {
				return writeErr(cmd, notPlacedError{id: args[0]})
			}
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, layoutView{d.State()})
		},
	}
}

func newTilesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <tile-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a tile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !d.RemoveTile(args[0]) {
				return writeErr(cmd, errNotFound("tile", args[0]))
			}
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"removed": args[0]})
		},
	}
}

func viewTypesHelp() string {
	names := make([]string, 0, len(model.ViewTypes()))
	for _, vt := range model.ViewTypes() {
		names = append(names, string(vt))
	}
	return strings.Join(names, "|")
}

// applySettingArgs applies key=value pairs to dst, then deletes unset keys.
// Values are parsed as YAML so numbers, booleans and lists keep their type.
func applySettingArgs(dst map[string]any, sets, unsets []string) error {
	for _, kv := range sets {
		k, raw, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return fmt.Errorf("invalid --set %q (want key=value)", kv)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("invalid value for %s: %w", k, err)
		}
		if v == nil {
			v = raw
		}
		dst[k] = v
	}
	for _, k := range unsets {
		delete(dst, strings.TrimSpace(k))
	}
	return nil
}
