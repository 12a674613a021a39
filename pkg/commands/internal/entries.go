// Package internal holds the source scan shared by link, unlink and status.
package internal

import (
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linkstate"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// Entry is a classified source entry. Err is set when the home entry could
// not be inspected; such entries are reported as skipped, never mutated.
type Entry struct {
	linkstate.Resolution
	Err error
}

// Result converts the entry into the report form used by every link command
func (e Entry) Result() types.EntryResult {
	r := types.EntryResult{
		Name:   e.Name(),
		Source: e.Source,
		Target: e.Target,
		State:  e.State,
	}
	if e.Err != nil {
		r.Action = types.ActionSkipped
		r.Error = e.Err.Error()
	}
	return r
}

// Name is the base name shared by the source and home entries
func (e Entry) Name() string {
	return filepath.Base(e.Source)
}

// ScanSource lists the source directory and classifies every entry
func ScanSource(fs types.FS, p paths.Paths, logger zerolog.Logger) ([]Entry, error) {
	sources, err := filesystem.Entries(fs, p.Source())
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sources))
	for _, source := range sources {
		res, err := linkstate.Resolve(fs, source, p.Home())
		if err != nil {
			logger.Warn().Err(err).Str("source", source).Msg("Could not classify entry, skipping")
		}
		entries = append(entries, Entry{Resolution: res, Err: err})
	}
	return entries, nil
}
