// Package config loads and validates the presentation configuration, from a
// YAML file or from direct CLI arguments. All relative paths in a config
// file resolve against the config file's own directory, never the process
// working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/slidedeck/internal/deck"
	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

const (
	DefaultTitle      = "Untitled Presentation"
	DefaultOutputName = "index.html"
)

// Config is the assembly configuration for one run. It is built once, from a
// config file or CLI arguments, and passed through the pipeline unchanged.
type Config struct {
	Title        string   `yaml:"title,omitempty"`
	SlideDir     string   `yaml:"slide_dir"`
	OutputFile   string   `yaml:"output_file"`
	TemplateFile string   `yaml:"template_file"`
	IncludeFiles []string `yaml:"include_files,omitempty"`
}

// Load reads a YAML configuration file and resolves every path against the
// file's directory. Environment variables referenced in the YAML are
// expanded, with a .env overlay applied first when one exists.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("No .env file loaded", "error", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, deckerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, deckerrors.ConfigParseError(configPath, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, deckerrors.ConfigParseError(configPath, err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, deckerrors.ConfigParseError(configPath, err)
	}

	if cfg.OutputFile == "" {
		return nil, deckerrors.ConfigRequired("output_file")
	}
	if cfg.TemplateFile == "" {
		return nil, deckerrors.ConfigRequired("template_file")
	}
	if cfg.SlideDir == "" {
		if len(cfg.IncludeFiles) == 0 {
			return nil, deckerrors.ConfigRequired("slide_dir")
		}
		// Explicit lists without a slide_dir resolve against the config dir.
		cfg.SlideDir = baseDir
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	cfg.SlideDir = resolveAgainst(baseDir, cfg.SlideDir)
	cfg.OutputFile = resolveAgainst(baseDir, cfg.OutputFile)
	cfg.TemplateFile = resolveAgainst(baseDir, cfg.TemplateFile)

	return &cfg, nil
}

// FromArgs builds a Config from the directory-mode CLI invocation. Paths
// resolve against the current working directory.
func FromArgs(slideDir, templateFile, outputDir, outputName, title string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	if outputName == "" {
		outputName = DefaultOutputName
	}
	if title == "" {
		title = DefaultTitle
	}
	return &Config{
		Title:        title,
		SlideDir:     resolveAgainst(cwd, slideDir),
		OutputFile:   filepath.Join(resolveAgainst(cwd, outputDir), outputName),
		TemplateFile: resolveAgainst(cwd, templateFile),
	}, nil
}

func resolveAgainst(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ListSpec selects the slide list strategy: a non-empty include_files list
// takes precedence and bypasses directory scanning entirely.
func (c *Config) ListSpec() deck.ListSpec {
	if len(c.IncludeFiles) > 0 {
		return deck.ExplicitSpec{Names: c.IncludeFiles, BaseDir: c.SlideDir}
	}
	return deck.DiscoverSpec{Dir: c.SlideDir}
}

// OutputDir is the directory that will contain the assembled document;
// rewritten slide paths resolve from here.
func (c *Config) OutputDir() string {
	return filepath.Dir(c.OutputFile)
}

// Validate checks everything that can be checked before any slide I/O: the
// template must be an existing file and the output location must be writable
// into an existing directory.
func (c *Config) Validate() error {
	info, err := os.Stat(c.TemplateFile)
	if err != nil || info.IsDir() {
		return deckerrors.ValidationFailed("template_file",
			fmt.Sprintf("template file does not exist or is not a file: %s", c.TemplateFile))
	}

	if out, err := os.Stat(c.OutputFile); err == nil {
		if out.IsDir() {
			return deckerrors.ValidationFailed("output_file",
				fmt.Sprintf("output file is a directory: %s", c.OutputFile))
		}
		slog.Warn("Output file already exists, will overwrite", "path", c.OutputFile)
	}

	parent, err := os.Stat(c.OutputDir())
	if err != nil || !parent.IsDir() {
		return deckerrors.ValidationFailed("output_file",
			fmt.Sprintf("output directory does not exist: %s", c.OutputDir()))
	}

	return nil
}
