package deck

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
	"git.home.luguber.info/inful/slidedeck/internal/markdown"
)

// Slide section markup understood by reveal.js when the markdown plugin is
// enabled: each fragment becomes one vertical stack of slides.
const (
	sectionOpen  = "<section data-markdown>\n  <textarea data-template>\n"
	sectionClose = "\n  </textarea>\n</section>"
)

// AssembleBody reads each resolved slide in order, rewrites its relative
// resource paths for outputDir, wraps it in the slide section delimiter, and
// concatenates the sections.
//
// Reads and rewrites run concurrently, one goroutine per slide, but the
// result is collected positionally so the body always follows resolved-path
// order. The first read failure aborts the whole assembly.
func AssembleBody(paths []string, outputDir string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}

	type slideResult struct {
		raw     []byte
		content []byte
		err     error
	}

	results := make([]slideResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			raw, err := os.ReadFile(path)
			if err != nil {
				results[i] = slideResult{err: deckerrors.ReadError(path, err)}
				return
			}
			rewritten := markdown.RewritePaths(raw, markdown.RewriteContext{
				SourceDir: filepath.Dir(path),
				OutputDir: outputDir,
			})
			results[i] = slideResult{raw: raw, content: rewritten}
		}(i, path)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return "", r.err
		}
	}

	sections := make([]string, 0, len(paths))
	for i, r := range results {
		slog.Debug("Slide assembled", "path", paths[i], "bytes", len(r.content))
		// Image references are checked against the original fragment; the
		// rewritten ones resolve from the output directory instead.
		warnMissingImages(paths[i], r.raw)
		sections = append(sections, wrapSlideSection(string(r.content)))
	}
	return strings.Join(sections, "\n"), nil
}

func wrapSlideSection(content string) string {
	return sectionOpen + strings.TrimRight(content, "\n") + sectionClose
}
