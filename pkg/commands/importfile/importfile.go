// Package importfile moves an existing home file into the repository source
// directory and leaves a symlink in its place.
//
// The move and the symlink are two separate steps. If the process stops
// between them the file survives only in the repository, and running link
// afterwards restores the home entry.
package importfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Options holds options for the import command
type Options struct {
	Paths paths.Paths
	FS    types.FS
	// Name is the file name relative to the home root
	Name string
}

// ImportFile moves home/Name into the source directory and symlinks it back
func ImportFile(opts Options) (*types.ImportResult, error) {
	logger := logging.GetLogger("commands.import")
	done := logging.LogOperationStart(logger, "import")
	defer done()

	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInternal, "paths are required")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// Shell completion leaves trailing slashes
	name := strings.TrimRight(opts.Name, "/")
	if name == "" {
		return nil, errors.New(errors.ErrValidation, "a file name is required")
	}
	name, ok := filesystem.Within(name)
	if !ok {
		return nil, errors.Newf(errors.ErrValidation, "%s is not a path inside the home directory", opts.Name).
			WithDetail("name", opts.Name)
	}

	homePath := opts.Paths.HomeFile(name)
	repoPath := opts.Paths.SourceEntry(name)

	if err := checkPreconditions(fs, homePath, repoPath); err != nil {
		logger.Warn().Err(err).Str("name", name).Msg("Import rejected")
		return nil, err
	}

	if err := fs.MkdirAll(filepath.Dir(repoPath), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", filepath.Dir(repoPath))
	}

	if err := fs.Rename(homePath, repoPath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileMove, "failed to move %s to %s", homePath, repoPath)
	}
	logger.Debug().Str("from", homePath).Str("to", repoPath).Msg("Moved file into repository")

	if err := fs.Symlink(repoPath, homePath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"moved %s to %s but failed to link it back", homePath, repoPath).
			WithDetail("repoPath", repoPath)
	}

	logger.Info().
		Str("name", name).
		Str("home", homePath).
		Str("repo", repoPath).
		Msg("Imported file")

	return &types.ImportResult{
		Name:     name,
		HomePath: homePath,
		RepoPath: repoPath,
	}, nil
}

func checkPreconditions(fs types.FS, homePath, repoPath string) error {
	info, err := fs.Stat(homePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrPrecondition, "%s does not exist", homePath).
				WithDetail("path", homePath)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", homePath)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrPrecondition, "%s is not a regular file", homePath).
			WithDetail("path", homePath)
	}

	linfo, err := fs.Lstat(homePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", homePath)
	}
	if linfo.Mode()&os.ModeSymlink != 0 {
		return errors.Newf(errors.ErrPrecondition, "%s is already a symlink", homePath).
			WithDetail("path", homePath)
	}

	exists, err := filesystem.Exists(fs, repoPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", repoPath)
	}
	if exists {
		return errors.Newf(errors.ErrPrecondition, "%s already exists in the repository", repoPath).
			WithDetail("path", repoPath)
	}
	return nil
}
