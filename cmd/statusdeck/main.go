package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"statusdeck/internal/cli"
)

func isTileID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "tile-") && len(s) > len("tile-")
}

// rewriteDirectTileLookupArgs makes `statusdeck <tile-id>` work like
// `statusdeck tiles show <tile-id>`. Cobra treats the first non-flag token as
// a subcommand, so argv is rewritten before parsing. Persistent flags may come
// first (`statusdeck --dir x <tile-id>`), so the first positional token is
// located rather than assumed to be argv[1].
func rewriteDirectTileLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--dir":       true,
		"--backend":   true,
		"--debounce":  true,
		"--log-level": true,
		"--format":    true,
	}

	rewrite := func(at int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:at]...)
		out = append(out, "tiles", "show")
		return append(out, argv[at:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isTileID(argv[i+1]) {
				return rewrite(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Unknown flags and --flag=value forms are skipped without
			// consuming the next token.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isTileID(a) {
			return rewrite(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectTileLookupArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
