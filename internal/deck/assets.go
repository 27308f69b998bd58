package deck

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/slidedeck/internal/markdown"
)

// LocalImageRefs extracts the relocation-sensitive image references of one
// slide fragment, as written in its markdown (relative to the fragment's own
// directory).
func LocalImageRefs(content []byte) []string {
	return markdown.LocalLinks(markdown.ExtractImageLinks(content))
}

// MissingImageRefs returns the local image references of a slide that do not
// exist on disk relative to the slide's directory.
func MissingImageRefs(slidePath string, content []byte) []string {
	dir := filepath.Dir(slidePath)
	missing := make([]string, 0)
	for _, ref := range LocalImageRefs(content) {
		target := filepath.Join(dir, filepath.FromSlash(ref))
		if _, err := os.Stat(target); err != nil {
			missing = append(missing, ref)
		}
	}
	return missing
}

// warnMissingImages surfaces dangling image references without failing the
// build; an unresolved image is a render-time concern, not an assembly error.
func warnMissingImages(slidePath string, content []byte) {
	for _, ref := range MissingImageRefs(slidePath, content) {
		slog.Warn("Slide references a local image that does not exist",
			"slide", slidePath,
			"image", ref)
	}
}
