// Package unlink removes the home symlinks created by link. Only entries
// classified as linked, meaning a symlink pointing exactly at its source
// entry, are removed. Regular files, directories and foreign symlinks that
// share a name with a source entry are always left in place.
package unlink

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Options holds options for the unlink command
type Options struct {
	Paths   paths.Paths
	FS      types.FS
	Pretend bool
}

// UnlinkEntries removes each home symlink that points at its source entry
func UnlinkEntries(opts Options) (*types.LinkReport, error) {
	logger := logging.GetLogger("commands.unlink")
	done := logging.LogOperationStart(logger, "unlink")
	defer done()

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
		Command: "unlink",
		Pretend: opts.Pretend,
		Entries: make([]types.EntryResult, 0, len(entries)),
	}

	for _, entry := range entries {
		result := entry.Result()
		if entry.Err != nil {
			report.Entries = append(report.Entries, result)
			continue
		}

		if result.State != types.StateLinked {
			result.Action = types.ActionSkipped
			report.Entries = append(report.Entries, result)
			continue
		}

		result.Action = types.ActionRemoved
		if !opts.Pretend {
			if err := fs.Remove(result.Target); err != nil {
				err = errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", result.Target)
				logger.Error().Err(err).Str("target", result.Target).Msg("Unlink failed")
				result.Action = types.ActionFailed
				result.Error = err.Error()
			} else {
				logger.Debug().Str("target", result.Target).Msg("Removed symlink")
			}
		}
		report.Entries = append(report.Entries, result)
	}

	logger.Info().
		Int("removed", report.Count(types.ActionRemoved)).
		Int("skipped", report.Count(types.ActionSkipped)).
		Bool("pretend", opts.Pretend).
		Msg("Unlink completed")

	return report, nil
}
