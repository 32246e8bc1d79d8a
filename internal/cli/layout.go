package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"statusdeck/internal/layout"
	"statusdeck/internal/model"
)

func newLayoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Dashboard layout commands",
	}
	cmd.AddCommand(newLayoutShowCmd(app))
	cmd.AddCommand(newLayoutResetCmd(app))
	return cmd
}

// layoutView is the saved layout state. As a table it lists the placed tiles
// in layout order with the share of the dashboard each one covers.
type layoutView struct {
	model.LayoutState
}

func (v layoutView) Header() []string {
	return []string{"ID", "TITLE", "VIEW", "AREA"}
}

func (v layoutView) Rows() [][]any {
	const side = 1000
	rects := layout.Rects(v.Layout, layout.Rect{W: side, H: side})
	var rows [][]any
	for _, id := range layout.Leaves(v.Layout) {
		r := rects[id]
		title := v.TitleMap[id]
		if title == "" {
			title = "Untitled"
		}
		area := float64(r.W*r.H) / float64(side*side) * 100
		rows = append(rows, []any{id, title, string(v.TileSettings[id].ViewType), fmt.Sprintf("%.1f%%", area)})
	}
	return rows
}

func newLayoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved layout (tree, tile settings and titles)",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, layoutView{d.State()})
		},
	}
}

func newLayoutResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the saved layout with the default welcome dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d.Reset()
			if err := commit(d); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Info("layout reset")
			return writeOut(cmd, app, layoutView{d.State()})
		},
	}
}
