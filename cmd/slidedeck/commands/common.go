package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/slidedeck/internal/config"
	"git.home.luguber.info/inful/slidedeck/internal/deck"
	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
	"git.home.luguber.info/inful/slidedeck/internal/template"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Assemble a slide deck from a config file"`
	Quick    QuickCmd    `cmd:"" help:"Assemble a slide deck directly from a slide directory"`
	Discover DiscoverCmd `cmd:"" help:"Show the resolved slide order without building"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild on changes and serve the deck locally"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// RunAssembly executes the whole pipeline for one configuration: validate,
// load template, resolve slide list, assemble, inject, write. All fatal
// conditions surface before the output path is touched.
func RunAssembly(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	tmpl, err := template.Load(cfg.TemplateFile)
	if err != nil {
		return err
	}

	paths, err := deck.Resolve(cfg.ListSpec())
	if err != nil {
		if deckerrors.IsFatal(err) {
			return err
		}
		// Empty input is legitimate; the deck just has zero sections.
		slog.Warn("No slides found, emitting an empty deck", "error", err)
	}
	slog.Info("Slides resolved", "count", len(paths))

	body, err := deck.AssembleBody(paths, cfg.OutputDir())
	if err != nil {
		return err
	}

	doc, err := template.Inject(tmpl, cfg.Title, body)
	if err != nil {
		return err
	}

	if err := template.WriteDocument(cfg.OutputFile, doc); err != nil {
		return err
	}

	fmt.Printf("Slides written to %s\n", cfg.OutputFile)
	slog.Info("Deck assembled", "output", cfg.OutputFile, "slides", len(paths))
	return nil
}
