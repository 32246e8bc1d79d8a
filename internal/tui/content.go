package tui

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"statusdeck/internal/model"
)

const welcomeMarkdown = `# Welcome to statusdeck

Compose a dashboard out of tiles, each bound to a status view.

- Press **a** to open the view palette
- **enter** appends a view, **d** lets you place it next to the focused tile
- With a mouse, drag a view from the palette onto any tile edge
- **x** removes a tile, **<** and **>** resize it

Your layout is saved automatically.`

// tileContent is what a tile body needs from the surrounding dashboard.
type tileContent struct {
	id       string
	settings model.TileSettings
	width    int
	height   int
}

// renderContent picks the body renderer for a tile's view type.
func renderContent(c tileContent) string {
	if c.settings.NeedsConfig {
		return styleMuted().Render("Not configured yet.\nPress c to choose a data source.")
	}
	switch c.settings.ViewType {
	case model.ViewWelcome:
		return renderMarkdown(welcomeMarkdown, c.width)
	case model.ViewSummary:
		return renderSummary(c)
	case model.ViewDetails:
		return renderDetails(c)
	case model.ViewGraph:
		return renderGraph(c)
	case model.ViewDev:
		return renderDev(c)
	default:
		return styleMuted().Render(fmt.Sprintf("Unknown view type %q", c.settings.ViewType))
	}
}

func apiLabel(api string) string {
	if strings.TrimSpace(api) == "" {
		return "(no data source)"
	}
	return api
}

func renderSummary(c tileContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", apiLabel(c.settings.API))
	keys := c.settings.SettingKeys()
	if len(keys) == 0 {
		b.WriteString(styleMuted().Render("No components reported."))
		return b.String()
	}
	for _, k := range keys {
		fmt.Fprintf(&b, "• %s: %v\n", k, c.settings.AdditionalSettings[k])
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDetails(c tileContent) string {
	var ds model.DetailsSettings
	_ = model.DecodeAdditional(c.settings, &ds)
	cols := ds.Columns()
	if len(cols) == 0 {
		cols = []string{"component", "status"}
	}
	var md strings.Builder
	fmt.Fprintf(&md, "Source: `%s`\n\n", apiLabel(c.settings.API))
	md.WriteString("| " + strings.Join(cols, " | ") + " |\n")
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	md.WriteString("| " + strings.Join(seps, " | ") + " |\n")
	return renderMarkdown(md.String(), c.width)
}

// renderGraph draws settings "values" as the configured chart kind.
func renderGraph(c tileContent) string {
	var gs model.GraphSettings
	if err := model.DecodeAdditional(c.settings, &gs); err != nil {
		return styleToastError().Render(err.Error())
	}
	kind := gs.ChartType
	if kind == "" {
		kind = "bar"
	}
	header := fmt.Sprintf("%s chart · %s", kind, apiLabel(c.settings.API))
	if len(gs.Values) == 0 {
		return header + "\n" + styleMuted().Render("No data yet.")
	}
	var body string
	switch kind {
	case "line":
		body = sparkline(gs.Values, c.width)
	case "pie":
		body = shares(gs.Values)
	default:
		body = bars(gs.Values, c.width)
	}
	return header + "\n" + body
}

func maxValue(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func bars(vs []float64, width int) string {
	m := maxValue(vs)
	label := 6
	avail := width - label
	if avail < 1 {
		avail = 1
	}
	lines := make([]string, 0, len(vs))
	for _, v := range vs {
		n := 0
		if m > 0 && v > 0 {
			n = int(math.Round(v / m * float64(avail)))
		}
		lines = append(lines, fmt.Sprintf("%5.4g %s", v, strings.Repeat("█", n)))
	}
	return strings.Join(lines, "\n")
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(vs []float64, width int) string {
	if width > 0 && len(vs) > width {
		vs = vs[len(vs)-width:]
	}
	m := maxValue(vs)
	out := make([]rune, len(vs))
	for i, v := range vs {
		idx := 0
		if m > 0 && v > 0 {
			idx = int(v / m * float64(len(sparkRunes)-1))
		}
		out[i] = sparkRunes[idx]
	}
	return string(out)
}

func shares(vs []float64) string {
	total := 0.0
	for _, v := range vs {
		if v > 0 {
			total += v
		}
	}
	lines := make([]string, 0, len(vs))
	for i, v := range vs {
		pct := 0.0
		if total > 0 && v > 0 {
			pct = v / total * 100
		}
		lines = append(lines, fmt.Sprintf("#%d %5.1f%%", i+1, pct))
	}
	return strings.Join(lines, "\n")
}

func renderDev(c tileContent) string {
	b, err := json.MarshalIndent(c.settings, "", "  ")
	if err != nil {
		return err.Error()
	}
	return "id: " + c.id + "\n" + string(b)
}

// zeroState is shown when the dashboard has no tiles.
func zeroState(width, height int) string {
	msg := lipgloss.NewStyle().Bold(true).Render("No tiles available") + "\n\n" +
		styleMuted().Render("Press a to add a tile and customize your dashboard.")
	return centerLines(msg, width, height)
}
