package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/slidedeck/internal/config"
	"git.home.luguber.info/inful/slidedeck/internal/watch"
)

// WatchCmd implements the 'watch' command: rebuild the deck whenever the
// slides or the template change, and serve the output directory locally.
type WatchCmd struct {
	Config  string `arg:"" optional:"" help:"Configuration file path" default:"slidedeck.yaml" type:"path"`
	Port    int    `short:"p" help:"Preview server port" default:"8080"`
	NoServe bool   `help:"Only rebuild on changes, do not serve the output"`
}

func (w *WatchCmd) Run(_ *Global, _ *CLI) error {
	cfg, err := config.Load(w.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	serveDir := cfg.OutputDir()
	if w.NoServe {
		serveDir = ""
	}

	// Never watch the output directory itself; every rebuild writes there
	// and would retrigger the watcher forever.
	watchDirs := make([]string, 0, 3)
	for _, d := range dedupe(cfg.SlideDir, filepath.Dir(cfg.TemplateFile), filepath.Dir(w.Config)) {
		if d != filepath.Clean(cfg.OutputDir()) {
			watchDirs = append(watchDirs, d)
		}
	}

	fmt.Println("Watching for slide changes (Ctrl-C to stop)")
	return watch.Run(ctx, watch.Options{
		WatchDirs: watchDirs,
		ServeDir:  serveDir,
		Port:      w.Port,
		Rebuild:   func() error { return RunAssembly(cfg) },
	})
}

func dedupe(dirs ...string) []string {
	seen := make(map[string]struct{}, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		d = filepath.Clean(d)
		if _, ok := seen[d]; ok || d == "." {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
