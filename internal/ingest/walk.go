package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options controls directory walking, adapted from the teacher's
// loader.Options: same exclude-dir set, same shape, extended with the
// target language's source extension.
type Options struct {
	Extension   string   // source file extension, e.g. ".swift"; defaults to ".swift"
	ExcludeDirs []string // basenames to exclude in addition to the defaults
}

var defaultExcludeDirs = map[string]struct{}{
	"vendor":  {},
	".git":    {},
	"testdata": {},
	"build":   {},
}

// Walk collects candidate source files under root, sorted by path so that
// downstream module-name resolution and ID assignment are deterministic
// regardless of the underlying filesystem's directory-entry order.
func Walk(root string, opts Options) ([]string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".swift"
	}

	excluded := map[string]struct{}{}
	for k := range defaultExcludeDirs {
		excluded[k] = struct{}{}
	}
	for _, d := range opts.ExcludeDirs {
		d = strings.TrimSpace(d)
		if d != "" {
			excluded[d] = struct{}{}
		}
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			base := filepath.Base(path)
			if _, skip := excluded[base]; skip || (strings.HasPrefix(base, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
