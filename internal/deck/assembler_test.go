package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

func TestAssembleBody_WrapsSlidesInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.md"), []byte("# One\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2.md"), []byte("# Two\n"), 0o644))

	body, err := AssembleBody([]string{
		filepath.Join(dir, "2.md"),
		filepath.Join(dir, "1.md"),
	}, dir)
	require.NoError(t, err)

	// Caller order wins, regardless of read completion order.
	require.Less(t, strings.Index(body, "# Two"), strings.Index(body, "# One"))
	require.Equal(t, 2, strings.Count(body, "<section data-markdown>"))
	require.Equal(t, 2, strings.Count(body, "</section>"))
}

func TestAssembleBody_RewritesRelativePaths(t *testing.T) {
	root := t.TempDir()
	slideDir := filepath.Join(root, "slides")
	outDir := filepath.Join(root, "build")
	require.NoError(t, os.MkdirAll(slideDir, 0o755))
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	slide := filepath.Join(slideDir, "1.md")
	require.NoError(t, os.WriteFile(slide, []byte("![pic](img/pic.png)\n"), 0o644))

	body, err := AssembleBody([]string{slide}, outDir)
	require.NoError(t, err)
	require.Contains(t, body, "![pic](../slides/img/pic.png)")
}

func TestAssembleBody_EmptyInputProducesEmptyBody(t *testing.T) {
	body, err := AssembleBody(nil, t.TempDir())
	require.NoError(t, err)
	require.Empty(t, body)
}

func TestAssembleBody_ReadFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, err := AssembleBody([]string{filepath.Join(dir, "missing.md")}, dir)
	require.Error(t, err)
	require.True(t, deckerrors.IsCategory(err, deckerrors.CategoryAssembly))
	require.True(t, deckerrors.IsFatal(err))
}

func TestAssembleBody_ManySlidesKeepPositionalOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		name := filepath.Join(dir, strings.Repeat("x", i+1)+".md")
		require.NoError(t, os.WriteFile(name, []byte("slide "+strings.Repeat("x", i+1)+"\n"), 0o644))
		paths = append(paths, name)
	}

	body, err := AssembleBody(paths, dir)
	require.NoError(t, err)

	last := -1
	for i := 0; i < 20; i++ {
		idx := strings.Index(body, "slide "+strings.Repeat("x", i+1)+"\n")
		require.Greater(t, idx, last)
		last = idx
	}
}

func TestMissingImageRefs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "ok.png"), []byte{0x89}, 0o644))

	slide := filepath.Join(dir, "1.md")
	content := []byte("![a](img/ok.png)\n![b](img/gone.png)\n![c](https://example.com/x.png)\n")

	missing := MissingImageRefs(slide, content)
	require.Equal(t, []string{"img/gone.png"}, missing)
}
