package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/slidedeck/internal/config"
	"git.home.luguber.info/inful/slidedeck/internal/deck"
	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

// DiscoverCmd implements the 'discover' command: print the slide order and
// per-slide local image references without assembling anything.
type DiscoverCmd struct {
	Dir    string `arg:"" optional:"" help:"Slide directory to scan (overrides config)" type:"path"`
	Config string `short:"c" help:"Configuration file path" default:"slidedeck.yaml" type:"path"`
}

func (d *DiscoverCmd) Run(_ *Global, _ *CLI) error {
	var spec deck.ListSpec
	if d.Dir != "" {
		spec = deck.DiscoverSpec{Dir: d.Dir}
	} else {
		cfg, err := config.Load(d.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		spec = cfg.ListSpec()
	}

	paths, err := deck.Resolve(spec)
	if err != nil {
		if deckerrors.IsFatal(err) {
			return err
		}
		fmt.Println("No slides found")
		return nil
	}

	fmt.Printf("Resolved %d slides:\n", len(paths))
	for i, path := range paths {
		fmt.Printf("%3d. %s\n", i+1, filepath.Base(path))
		content, err := os.ReadFile(path)
		if err != nil {
			return deckerrors.ReadError(path, err)
		}
		for _, img := range deck.LocalImageRefs(content) {
			fmt.Printf("       image: %s\n", img)
		}
	}
	return nil
}
