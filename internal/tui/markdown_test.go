package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("STATUSDECK_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("STATUSDECK_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyleConfig_KeepsListAndCodeStyles(t *testing.T) {
	t.Run("dark", func(t *testing.T) {
		got := markdownStyleConfig("dark")
		want := styles.DarkStyleConfig
		assertStylePrimitiveEqual(t, got.Code.StylePrimitive, want.Code.StylePrimitive)
		assertStylePrimitiveEqual(t, got.Item, want.Item)
		if strPtrValue(got.Link.Color) != colorAccent.Dark {
			t.Fatalf("expected link accent %q; got %q", colorAccent.Dark, strPtrValue(got.Link.Color))
		}
	})

	t.Run("light", func(t *testing.T) {
		got := markdownStyleConfig("light")
		want := styles.LightStyleConfig
		assertStylePrimitiveEqual(t, got.Code.StylePrimitive, want.Code.StylePrimitive)
		assertStylePrimitiveEqual(t, got.Item, want.Item)
		if got.H1.BackgroundColor != nil {
			t.Fatalf("expected no H1 background")
		}
	})
}

func TestRenderMarkdown_WrapsToWidth(t *testing.T) {
	t.Setenv("STATUSDECK_TUI_THEME", "dark")
	out := renderMarkdown(strings.Repeat("word ", 40), 20)
	for i, ln := range strings.Split(out, "\n") {
		if w := xansi.StringWidth(ln); w > 20 {
			t.Fatalf("line %d wider than 20 (%d): %q", i, w, xansi.Strip(ln))
		}
	}
	if renderMarkdown("   ", 20) != "" {
		t.Fatalf("expected blank input to render empty")
	}
}

func assertStylePrimitiveEqual(t *testing.T, got ansi.StylePrimitive, want ansi.StylePrimitive) {
	t.Helper()

	if strPtrValue(got.Color) != strPtrValue(want.Color) {
		t.Fatalf("Color: got %q want %q", strPtrValue(got.Color), strPtrValue(want.Color))
	}
	if strPtrValue(got.BackgroundColor) != strPtrValue(want.BackgroundColor) {
		t.Fatalf("BackgroundColor: got %q want %q", strPtrValue(got.BackgroundColor), strPtrValue(want.BackgroundColor))
	}
	if boolPtrValue(got.Bold) != boolPtrValue(want.Bold) {
		t.Fatalf("Bold: got %v want %v", boolPtrValue(got.Bold), boolPtrValue(want.Bold))
	}
	if got.Prefix != want.Prefix {
		t.Fatalf("Prefix: got %q want %q", got.Prefix, want.Prefix)
	}
	if got.BlockPrefix != want.BlockPrefix {
		t.Fatalf("BlockPrefix: got %q want %q", got.BlockPrefix, want.BlockPrefix)
	}
}

func strPtrValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolPtrValue(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
