package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# slidedeck configuration
# All relative paths resolve against this file's directory.

title: "My Presentation"

# Directory containing the markdown slide fragments. Files named like
# 1.md, 1a.md, 2.md, 10.md are ordered numerically, then by suffix.
slide_dir: "slides"

# HTML template with {{ title }} and {{ slides }} placeholders.
template_file: "template.html"

# The assembled deck is written here, atomically.
output_file: "output/index.html"

# Optional: pin the exact slides and their order (relative to slide_dir).
# When present, directory scanning is skipped entirely.
#include_files:
#  - 1_intro.md
#  - 2_body.md
#  - 3_closing.md
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}
