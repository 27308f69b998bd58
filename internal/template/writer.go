package template

import (
	"os"
	"path/filepath"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

// WriteDocument writes the final document atomically: the content goes to a
// temp file in the destination directory and is renamed into place, so the
// output path only ever holds nothing or the complete document.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".slidedeck-*.tmp")
	if err != nil {
		return deckerrors.WriteError(path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return deckerrors.WriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return deckerrors.WriteError(path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return deckerrors.WriteError(path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return deckerrors.WriteError(path, err)
	}
	return nil
}
