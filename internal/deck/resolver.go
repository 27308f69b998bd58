package deck

import (
	"fmt"
	"os"
	"path/filepath"

	deckerrors "git.home.luguber.info/inful/slidedeck/internal/errors"
)

// ListSpec is the tagged choice between directory scanning and an explicit
// config-driven include list. The resolver dispatches on the concrete type,
// never on which fields happen to be populated.
type ListSpec interface {
	listSpec()
}

// DiscoverSpec scans a directory and orders what it finds.
type DiscoverSpec struct {
	Dir string
}

// ExplicitSpec includes exactly the named files, in the given order,
// resolved against BaseDir. Natural ordering is never consulted.
type ExplicitSpec struct {
	Names   []string
	BaseDir string
}

func (DiscoverSpec) listSpec() {}
func (ExplicitSpec) listSpec() {}

// Resolve turns a ListSpec into the final ordered slide paths.
//
// Explicit mode fails the whole run on the first missing file; there are no
// partial decks. Discover mode may return paths together with a
// warning-severity error (empty directory).
func Resolve(spec ListSpec) ([]string, error) {
	switch s := spec.(type) {
	case DiscoverSpec:
		files, err := DiscoverSlides(s.Dir)
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.Path
		}
		return paths, err
	case ExplicitSpec:
		paths := make([]string, 0, len(s.Names))
		for _, name := range s.Names {
			path := filepath.Join(s.BaseDir, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				return nil, deckerrors.MissingSlideFile(name, path)
			}
			paths = append(paths, path)
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("unknown slide list spec %T", spec)
	}
}
