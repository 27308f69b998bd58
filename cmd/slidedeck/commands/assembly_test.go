package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/slidedeck/internal/config"
	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>{{ title }}</title></head>
<body><div class="reveal"><div class="slides">
{{ slides }}
</div></div></body>
</html>
`

type fixture struct {
	root     string
	slideDir string
	outDir   string
	template string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:     root,
		slideDir: filepath.Join(root, "slides"),
		outDir:   filepath.Join(root, "build"),
		template: filepath.Join(root, "template.html"),
	}
	require.NoError(t, os.MkdirAll(f.slideDir, 0o755))
	require.NoError(t, os.MkdirAll(f.outDir, 0o755))
	require.NoError(t, os.WriteFile(f.template, []byte(testTemplate), 0o644))
	return f
}

func (f fixture) addSlide(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.slideDir, name), []byte(content), 0o644))
}

func (f fixture) config() *config.Config {
	return &config.Config{
		Title:        "Integration Deck",
		SlideDir:     f.slideDir,
		OutputFile:   filepath.Join(f.outDir, "index.html"),
		TemplateFile: f.template,
	}
}

func TestRunAssembly_FullPipeline(t *testing.T) {
	f := newFixture(t)
	f.addSlide(t, "1.md", "# Intro\n\n![pic](img/pic.png)\n")
	f.addSlide(t, "2.md", "# Second\n")
	f.addSlide(t, "10.md", "# Tenth\n")

	require.NoError(t, RunAssembly(f.config()))

	data, err := os.ReadFile(filepath.Join(f.outDir, "index.html"))
	require.NoError(t, err)
	out := string(data)

	require.Contains(t, out, "<title>Integration Deck</title>")
	require.Equal(t, 3, strings.Count(out, "<section data-markdown>"))

	// Natural order: 2 before 10.
	require.Less(t, strings.Index(out, "# Second"), strings.Index(out, "# Tenth"))

	// The image path now resolves from build/ back into slides/.
	require.Contains(t, out, "![pic](../slides/img/pic.png)")
}

func TestRunAssembly_ExplicitIncludeOrderWins(t *testing.T) {
	f := newFixture(t)
	f.addSlide(t, "a.md", "content of a\n")
	f.addSlide(t, "b.md", "content of b\n")

	cfg := f.config()
	cfg.IncludeFiles = []string{"b.md", "a.md"}

	require.NoError(t, RunAssembly(cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	out := string(data)
	require.Less(t, strings.Index(out, "content of b"), strings.Index(out, "content of a"))
}

func TestRunAssembly_EmptyDirectoryProducesEmptyDeck(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, RunAssembly(f.config()))

	data, err := os.ReadFile(filepath.Join(f.outDir, "index.html"))
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, "<title>Integration Deck</title>")
	require.NotContains(t, out, "<section")
}

func TestRunAssembly_MissingIncludeLeavesOutputUntouched(t *testing.T) {
	f := newFixture(t)
	f.addSlide(t, "a.md", "content of a\n")

	cfg := f.config()
	require.NoError(t, os.WriteFile(cfg.OutputFile, []byte("previous deck"), 0o644))

	cfg.IncludeFiles = []string{"a.md", "missing.md"}
	err := RunAssembly(cfg)
	require.Error(t, err)
	require.True(t, deckerrors.IsCategory(err, deckerrors.CategoryDiscovery))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	require.Equal(t, "previous deck", string(data))
}

func TestRunAssembly_TemplateWithoutPlaceholdersFails(t *testing.T) {
	f := newFixture(t)
	f.addSlide(t, "a.md", "content\n")
	require.NoError(t, os.WriteFile(f.template, []byte("<html>no tokens</html>"), 0o644))

	err := RunAssembly(f.config())
	require.Error(t, err)
	require.True(t, deckerrors.IsCategory(err, deckerrors.CategoryTemplate))
}

func TestRunAssembly_MissingTemplateFails(t *testing.T) {
	f := newFixture(t)
	f.addSlide(t, "a.md", "content\n")

	cfg := f.config()
	cfg.TemplateFile = filepath.Join(f.root, "gone.html")
	require.Error(t, RunAssembly(cfg))
}
