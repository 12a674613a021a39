// Package status reports how each source entry relates to its home entry
// without changing anything.
package status

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Options holds options for the status command
type Options struct {
	Paths paths.Paths
	FS    types.FS
}

// GetStatus classifies every source entry
func GetStatus(opts Options) (*types.LinkReport, error) {
	logger := logging.GetLogger("commands.status")

	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInternal, "paths are required")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	entries, err := internal.ScanSource(fs, opts.Paths, logger)
	if err != nil {
		return nil, err
	}

	report := &types.LinkReport{
		Command: "status",
		Entries: make([]types.EntryResult, 0, len(entries)),
	}
	for _, entry := range entries {
		report.Entries = append(report.Entries, entry.Result())
	}

	logger.Debug().Int("entries", len(report.Entries)).Msg("Status collected")
	return report, nil
}
