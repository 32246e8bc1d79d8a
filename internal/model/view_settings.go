package model

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// GraphSettings is the typed form of a graph tile's AdditionalSettings.
type GraphSettings struct {
	ChartType string    `mapstructure:"chartType"`
	Values    []float64 `mapstructure:"values"`
}

// ChartTypes lists the chart kinds a graph tile can draw.
func ChartTypes() []string {
	return []string{"bar", "line", "pie"}
}

// DetailsSettings is the typed form of a details tile's AdditionalSettings.
type DetailsSettings struct {
	// TableColumns is a comma separated list of column names.
	TableColumns string `mapstructure:"tableColumns"`
}

func (d DetailsSettings) Columns() []string {
	var out []string
	for _, c := range strings.Split(d.TableColumns, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// DecodeAdditional decodes s.AdditionalSettings into out. Unknown keys are
// ignored and scalar types are coerced ("1" into an int field works).
func DecodeAdditional(s TileSettings, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(s.AdditionalSettings); err != nil {
		return fmt.Errorf("decode %s settings: %w", s.ViewType, err)
	}
	return nil
}

// Validate checks the view-specific settings that have a fixed vocabulary.
func (s TileSettings) Validate() error {
	if _, err := ParseViewType(string(s.ViewType)); err != nil {
		return err
	}
	if s.ViewType == ViewGraph {
		var g GraphSettings
		if err := DecodeAdditional(s, &g); err != nil {
			return err
		}
		if g.ChartType != "" && !contains(ChartTypes(), g.ChartType) {
			return fmt.Errorf("unknown chart type %q (expected %s)", g.ChartType, strings.Join(ChartTypes(), "|"))
		}
	}
	return nil
}

// DefaultTitle names a tile the way the settings form does:
// "<api> - <view>[ - <chart>]". An empty api is left out.
func (s TileSettings) DefaultTitle() string {
	parts := []string{}
	if s.API != "" {
		parts = append(parts, s.API)
	}
	parts = append(parts, string(s.ViewType))
	if s.ViewType == ViewGraph {
		var g GraphSettings
		if DecodeAdditional(s, &g) == nil && g.ChartType != "" {
			parts = append(parts, g.ChartType)
		}
	}
	return strings.Join(parts, " - ")
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
