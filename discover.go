package stopquote

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Exports holds the two classified input files of one run.
type Exports struct {
	Cost  string // holdings export
	Order string // open-orders export
}

// CheckExport verifies that an input file exists and is not empty.
func CheckExport(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file %q not found: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file %q size is zero", path)
	}
	return nil
}

// DiscoverExports finds the two most recently modified files matching
// pattern in dir and tells the holdings export from the orders export by
// looking at their content.
func DiscoverExports(dir, pattern string) (Exports, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return Exports{}, fmt.Errorf("bad export pattern %q: %w", pattern, err)
	}
	if len(matches) < 2 {
		return Exports{}, fmt.Errorf("found %d file(s) matching %q in %s, need 2", len(matches), pattern, dir)
	}

	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).After(modTime(matches[j]))
	})
	newest := matches[:2]
	logger.Debug().Strs("files", newest).Msg("newest exports")

	var exports Exports
	for _, path := range newest {
		order, err := isOrdersExport(path)
		if err != nil {
			return Exports{}, err
		}
		if order {
			exports.Order = path
		} else {
			exports.Cost = path
		}
	}
	if exports.Cost == "" || exports.Order == "" {
		return Exports{}, fmt.Errorf("cannot tell exports apart: %s and %s look like the same kind", newest[0], newest[1])
	}
	return exports, nil
}

// isOrdersExport reports whether the file is an open-orders export. Only the
// orders export mentions stop-quote order rows.
func isOrdersExport(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("cannot read export %q: %w", path, err)
	}
	return bytes.Contains(data, []byte("Stop quote$")), nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
