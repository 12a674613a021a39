package link

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds options for the link command
type Options struct {
	Paths paths.Paths
	// FS defaults to the OS filesystem
	FS types.FS
	// Force replaces whatever occupies a home entry
	Force bool
	// Pretend classifies and reports without touching the filesystem
	Pretend bool
}

// LinkEntries symlinks every top-level source entry into the home root.
// Nothing at a home entry is ever replaced unless Force is set.
func LinkEntries(opts Options) (*types.LinkReport, error) {
	logger := logging.GetLogger("commands.link")
	done := logging.LogOperationStart(logger, "link")
	defer done()

	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInternal, "paths are required")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	logger.Info().
		Str("source", opts.Paths.Source()).
		Str("home", opts.Paths.Home()).
		Bool("force", opts.Force).
		Bool("pretend", opts.Pretend).
		Msg("Linking entries")

	entries, err := internal.ScanSource(fs, opts.Paths, logger)
	if err != nil {
		return nil, err
	}

	report := &types.LinkReport{
		Command: "link",
		Pretend: opts.Pretend,
		Entries: make([]types.EntryResult, 0, len(entries)),
	}

	for _, entry := range entries {
		result := entry.Result()
		if entry.Err == nil {
			linkEntry(fs, logger, &result, opts.Force, opts.Pretend)
		}
		report.Entries = append(report.Entries, result)
	}

	logger.Info().
		Int("linked", report.Count(types.ActionLinked)).
		Int("forced", report.Count(types.ActionForced)).
		Int("exists", report.Count(types.ActionExists)).
		Int("failed", report.Count(types.ActionFailed)).
		Msg("Link completed")

	return report, nil
}

func linkEntry(fs types.FS, logger zerolog.Logger, result *types.EntryResult, force, pretend bool) {
	switch {
	case result.State == types.StateAbsent:
		result.Action = types.ActionLinked
	case force:
		result.Action = types.ActionForced
	default:
		result.Action = types.ActionExists
		return
	}

	if pretend {
		return
	}

	if result.Action == types.ActionForced {
		if err := fs.RemoveAll(result.Target); err != nil {
			fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", result.Target))
			return
		}
	}

	if err := fs.Symlink(result.Source, result.Target); err != nil {
		fail(logger, result, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", result.Target))
		return
	}

	logger.Debug().
		Str("source", result.Source).
		Str("target", result.Target).
		Str("action", result.Action.String()).
		Msg("Created symlink")
}

func fail(logger zerolog.Logger, result *types.EntryResult, err error) {
	logger.Error().Err(err).Str("target", result.Target).Msg("Link failed")
	result.Action = types.ActionFailed
	result.Error = err.Error()
}
