// Package clone creates the managed repository from a remote URL.
package clone

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/git"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Options holds options for the clone command
type Options struct {
	Paths paths.Paths
	FS    types.FS
	Git   git.Runner
	URL   string
}

// Clone clones URL into the repository path. An existing repository path,
// of any kind, is never touched.
func Clone(ctx context.Context, opts Options) (*types.CloneResult, error) {
	logger := logging.GetLogger("commands.clone")
	done := logging.LogOperationStart(logger, "clone")
	defer done()

	if opts.Paths == nil || opts.Git == nil {
		return nil, errors.New(errors.ErrInternal, "paths and git runner are required")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	if opts.URL == "" {
		return nil, errors.New(errors.ErrValidation, "a repository URL is required")
	}

	repo := opts.Paths.Repository()
	exists, err := filesystem.Exists(fs, repo)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", repo)
	}
	if exists {
		return nil, errors.Newf(errors.ErrPrecondition, "repository path already exists: %s", repo).
			WithDetail("path", repo)
	}

	logger.Info().Str("url", opts.URL).Str("path", repo).Msg("Cloning repository")

	// git creates the final directory itself; its parent must exist
	parent := filepath.Dir(repo)
	if err := fs.MkdirAll(parent, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", parent)
	}

	res, err := opts.Git.Run(ctx, parent, "clone", opts.URL, repo)
	if err != nil {
		return nil, err
	}

	return &types.CloneResult{
		URL:        opts.URL,
		Repository: repo,
		Output:     res.Output,
	}, nil
}
