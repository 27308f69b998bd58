package commands

import (
	"fmt"

	"git.home.luguber.info/inful/slidedeck/internal/config"
)

// QuickCmd implements the 'quick' command: directory mode, no config file.
type QuickCmd struct {
	SlideDir     string `arg:"" help:"Directory to search for slides in" type:"existingdir"`
	TemplateFile string `arg:"" help:"Path to the template file to use" type:"existingfile"`
	OutputDir    string `arg:"" help:"Directory to place the generated deck in" type:"existingdir"`

	Title      string `short:"t" help:"Title of the presentation" default:""`
	OutputName string `name:"output-name" help:"Output file name" default:"index.html"`
}

func (q *QuickCmd) Run(_ *Global, _ *CLI) error {
	fmt.Println("Assembling slide deck")

	cfg, err := config.FromArgs(q.SlideDir, q.TemplateFile, q.OutputDir, q.OutputName, q.Title)
	if err != nil {
		return err
	}
	return RunAssembly(cfg)
}
