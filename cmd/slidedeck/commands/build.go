package commands

import (
	"fmt"

	"git.home.luguber.info/inful/slidedeck/internal/config"
)

// BuildCmd implements the 'build' command: config-file mode.
type BuildCmd struct {
	Config string `arg:"" optional:"" help:"Configuration file path" default:"slidedeck.yaml" type:"path"`
}

func (b *BuildCmd) Run(_ *Global, _ *CLI) error {
	fmt.Println("Assembling slide deck")

	cfg, err := config.Load(b.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return RunAssembly(cfg)
}
