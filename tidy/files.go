package tidy

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var sourceExts = map[string]bool{
	".c":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".m":   true,
	".mm":  true,
}

var headerExts = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".ipp": true,
	".ixx": true,
}

// FilterFiles keeps the paths clang-tidy should see. Directories are
// walked recursively. Extension matching is case-insensitive. Header
// files are kept only when includeHeaders is set; headers usually need
// a translation unit in the compilation database to be lintable.
func FilterFiles(paths []string, includeHeaders bool) ([]string, error) {
	var kept []string

	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && wanted(path, includeHeaders) {
					kept = append(kept, path)
				}
				return nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "walking %s", p)
			}
			continue
		}

		if wanted(p, includeHeaders) {
			kept = append(kept, p)
		}
	}

	return kept, nil
}

func wanted(path string, includeHeaders bool) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return sourceExts[ext] || (includeHeaders && headerExts[ext])
}
