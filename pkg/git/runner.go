package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/rs/zerolog"
)

// Result is the outcome of one git invocation
type Result struct {
	Args     []string
	Dir      string
	ExitCode int
	Output   string
}

// Runner executes git with the given arguments in dir
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (Result, error)
}

// ExecRunner runs git as a child process
type ExecRunner struct {
	binary string
	logger zerolog.Logger
}

// NewExecRunner creates a runner for the given git binary
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = "git"
	}
	return &ExecRunner{
		binary: binary,
		logger: logging.GetLogger("git"),
	}
}

// Run executes git and returns its combined output. A non-zero exit status
// or a failure to start the binary yields an ErrExternalTool error; the
// Result is still populated so callers can show what git printed.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (Result, error) {
	logging.LogExternal(r.logger, r.binary, dir, args)

	res := Result{Args: args, Dir: dir}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	res.Output = out.String()

	if err != nil {
		res.ExitCode = -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
		}

		r.logger.Error().
			Err(err).
			Str("dir", dir).
			Strs("args", args).
			Int("exitCode", res.ExitCode).
			Str("output", res.Output).
			Msg("git command failed")

		return res, errors.Wrapf(err, errors.ErrExternalTool, "git %s failed", strings.Join(args, " ")).
			WithDetail("exitCode", res.ExitCode).
			WithDetail("output", res.Output).
			WithDetail("dir", dir)
	}

	r.logger.Debug().
		Str("dir", dir).
		Strs("args", args).
		Msg("git command succeeded")

	return res, nil
}

// Output returns the captured git output stored on an ErrExternalTool error
func Output(err error) string {
	if out, ok := errors.GetErrorDetails(err)["output"].(string); ok {
		return out
	}
	return ""
}
