package commands

import (
	"fmt"

	"git.home.luguber.info/inful/slidedeck/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Path  string `arg:"" optional:"" help:"Path for the new configuration file" default:"slidedeck.yaml" type:"path"`
	Force bool   `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	fmt.Printf("Writing configuration to %s\n", i.Path)
	if err := config.Init(i.Path, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
