package deck

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

const markdownExt = ".md"

// SlideFile is one markdown fragment on disk. Identity is the source path;
// content is read later, during assembly.
type SlideFile struct {
	Path string
	Key  OrderKey
}

// isMarkdownFile reports whether a file name carries the recognized markdown
// extension. A single boolean classification, case-insensitive.
func isMarkdownFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), markdownExt)
}

// DiscoverSlides lists the immediate entries of dir, keeps markdown files,
// and returns them sorted by natural order key.
//
// A missing or non-directory path is fatal. An empty result is returned
// together with a warning-severity EmptyDirectory error; callers decide
// whether to proceed with a zero-slide deck.
func DiscoverSlides(dir string) ([]SlideFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, deckerrors.NotADirectory(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, deckerrors.NotADirectory(dir).WithContext("cause", err.Error())
	}

	files := make([]SlideFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			slog.Debug("Skipping directory entry", "name", entry.Name())
			continue
		}
		if !isMarkdownFile(entry.Name()) {
			slog.Debug("Skipping non-markdown entry", "name", entry.Name())
			continue
		}
		files = append(files, SlideFile{
			Path: filepath.Join(dir, entry.Name()),
			Key:  DeriveOrderKey(entry.Name()),
		})
	}

	sortByOrderKey(files)

	if len(files) == 0 {
		return files, deckerrors.EmptyDirectory(dir)
	}
	return files, nil
}
