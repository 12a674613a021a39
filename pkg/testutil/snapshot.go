package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// Snapshot describes every entry under a directory tree. Symlinks are not
// followed; their value is the raw link target.
type Snapshot map[string]string

// TakeSnapshot walks root and records each entry as kind plus payload
func TakeSnapshot(t *testing.T, root string) Snapshot {
	t.Helper()
	snap := Snapshot{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "link:" + target
		case info.IsDir():
			snap[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = fmt.Sprintf("file:%s", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return snap
}

// Paths returns the snapshot keys in sorted order
func (s Snapshot) Paths() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
