// Package update refreshes the managed repository from its remote and,
// optionally, every subtree listed in the subtree manifest.
//
// The sequence is strictly linear:
//
//	git pull --rebase <remote>
//	for each manifest entry:
//	    disabled             -> skipped
//	    prefix dir missing   -> git subtree add  --prefix=<dir> <url> <branch> --squash
//	    otherwise            -> git subtree pull --prefix=<dir> <url> <branch> --squash
//	    pause
//
// The first failing git command aborts the update. Subtrees merged before
// the failure stay merged.
package update

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/git"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/subtree"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// RepositoryStep is the step name used for the main repository rebase
const RepositoryStep = "repository"

// DefaultBranch is pulled from subtree remotes when Options.Branch is empty
const DefaultBranch = "master"

// Options holds options for the update command
type Options struct {
	Paths paths.Paths
	FS    types.FS
	Git   git.Runner
	// Remote is passed to git pull; empty uses the branch's upstream
	Remote string
	// Subtrees enables the manifest pass
	Subtrees bool
	Branch   string
	// Pause separates consecutive subtree git operations
	Pause time.Duration
	// Sleep defaults to a context-aware time.Sleep
	Sleep func(ctx context.Context, d time.Duration) error
}

// Update pulls the repository and optionally its subtrees. On failure the
// returned report holds the steps completed so far, including the failing
// step's output.
func Update(ctx context.Context, opts Options) (*types.UpdateReport, error) {
	logger := logging.GetLogger("commands.update")
	done := logging.LogOperationStart(logger, "update")
	defer done()

	if opts.Paths == nil || opts.Git == nil {
		return nil, errors.New(errors.ErrInternal, "paths and git runner are required")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	branch := opts.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	repo := opts.Paths.Repository()
	report := &types.UpdateReport{
		Repository: repo,
		Subtrees:   opts.Subtrees,
		Steps:      []types.SyncStep{},
	}

	args := []string{"pull", "--rebase"}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	logger.Info().Str("repository", repo).Strs("args", args).Msg("Updating repository")

	res, err := opts.Git.Run(ctx, repo, args...)
	report.Steps = append(report.Steps, step(RepositoryStep, "", types.ActionUpdated, res, err))
	if err != nil {
		return report, err
	}

	if !opts.Subtrees {
		return report, nil
	}

	manifest, err := subtree.LoadManifest(fs, opts.Paths.Manifest())
	if err != nil {
		return report, err
	}

	ran := false
	for _, entry := range manifest.Entries {
		if entry.Disabled() {
			logger.Info().Str("dir", entry.Dir).Msg("Subtree has no URL, skipping")
			report.Steps = append(report.Steps, types.SyncStep{Name: entry.Dir, Action: types.ActionSkipped})
			continue
		}

		if ran && opts.Pause > 0 {
			if err := sleep(ctx, opts.Pause); err != nil {
				return report, errors.Wrap(err, errors.ErrExternalTool, "update interrupted")
			}
		}
		ran = true

		s, err := syncSubtree(ctx, fs, opts.Git, logger, repo, entry, branch)
		report.Steps = append(report.Steps, s)
		if err != nil {
			logger.Error().Err(err).Str("dir", entry.Dir).Msg("Subtree sync failed, aborting update")
			return report, err
		}
	}

	logger.Info().Int("steps", len(report.Steps)).Msg("Update completed")
	return report, nil
}

func syncSubtree(ctx context.Context, fs types.FS, runner git.Runner, logger zerolog.Logger, repo string, entry subtree.Entry, branch string) (types.SyncStep, error) {
	prefix := filepath.Join(repo, entry.Dir)
	exists, err := filesystem.Exists(fs, prefix)
	if err != nil {
		return types.SyncStep{Name: entry.Dir, URL: entry.URL, Action: types.ActionFailed},
			errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", prefix)
	}

	verb, action := "pull", types.ActionPulled
	if !exists {
		verb, action = "add", types.ActionAdded
	}

	logger.Info().
		Str("dir", entry.Dir).
		Str("url", entry.URL).
		Str("branch", branch).
		Str("verb", verb).
		Msg("Syncing subtree")

	res, err := runner.Run(ctx, repo, "subtree", verb, "--prefix="+filepath.ToSlash(entry.Dir), entry.URL, branch, "--squash")
	return step(entry.Dir, entry.URL, action, res, err), err
}

func step(name, url string, action types.Action, res git.Result, err error) types.SyncStep {
	s := types.SyncStep{Name: name, URL: url, Action: action, Output: res.Output}
	if err != nil {
		s.Action = types.ActionFailed
		if s.Output == "" {
			s.Output = git.Output(err)
		}
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
