// Package subtree reads the subtree manifest kept inside the managed
// repository. Each line maps a directory prefix to the remote it is
// squash-merged from:
//
//	# comments and blank lines are ignored
//	vim/bundle/fugitive  https://github.com/tpope/vim-fugitive.git
//	vim/bundle/retired
//
// A line with a directory but no URL is a disabled entry. It is kept in the
// manifest so update can report it as skipped.
package subtree

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Entry is one manifest line
type Entry struct {
	Dir  string
	URL  string
	Line int
}

// Disabled reports whether the entry has no remote URL
func (e Entry) Disabled() bool {
	return e.URL == ""
}

// Manifest is the ordered list of subtree entries
type Manifest struct {
	Path    string
	Entries []Entry
}

// ParseManifest parses manifest content from r
func ParseManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, errors.Newf(errors.ErrConfigParse,
				"subtree manifest line %d: expected \"<dir> [<url>]\", got %d fields", lineNo, len(fields)).
				WithDetail("line", lineNo)
		}

		dir, ok := filesystem.Within(fields[0])
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse,
				"subtree manifest line %d: directory must be inside the repository: %s", lineNo, fields[0]).
				WithDetail("line", lineNo)
		}

		entry := Entry{Dir: dir, Line: lineNo}
		if len(fields) == 2 {
			entry.URL = fields[1]
		}
		m.Entries = append(m.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to read subtree manifest")
	}
	return m, nil
}

// LoadManifest reads and parses the manifest at path. A missing file is a
// configuration error.
func LoadManifest(fs types.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfig, "subtree manifest not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read subtree manifest %s", path)
	}

	m, err := ParseManifest(bytes.NewReader(data))
	if err != nil {
		if dlErr, ok := err.(*errors.DotlinkError); ok {
			return nil, dlErr.WithDetail("path", path)
		}
		return nil, err
	}
	m.Path = path
	return m, nil
}
