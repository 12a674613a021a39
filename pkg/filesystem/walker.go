package filesystem

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Entries returns the absolute paths of the immediate entries of dir,
// hidden entries included. Order follows the directory listing.
func Entries(fs types.FS, dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", dir)
	}

	dirEntries, err := fs.ReadDir(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "source directory does not exist: %s", absDir).
				WithDetail("path", absDir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read source directory %s", absDir)
	}

	entries := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		entries = append(entries, filepath.Join(absDir, name))
	}
	return entries, nil
}

// Within cleans rel and reports whether it names something strictly below
// the directory it will be joined to: not absolute, not "." and never
// climbing out through "..".
func Within(rel string) (string, bool) {
	clean := filepath.Clean(rel)
	if clean == "." || !filepath.IsLocal(clean) {
		return clean, false
	}
	return clean, true
}
