package git

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Call records one invocation made against a FakeRunner
type Call struct {
	Dir  string
	Args []string
}

// String renders the call as it would appear on a command line, without "git"
func (c Call) String() string {
	return strings.Join(c.Args, " ")
}

// FakeRunner records invocations instead of running git. Responses are
// matched by the space-joined argument prefix; the first match wins.
type FakeRunner struct {
	Calls     []Call
	responses []fakeResponse
}

type fakeResponse struct {
	prefix string
	output string
	fail   bool
}

// NewFakeRunner creates a FakeRunner that succeeds with empty output
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// Respond makes calls whose arguments start with prefix succeed with output
func (f *FakeRunner) Respond(prefix, output string) *FakeRunner {
	f.responses = append(f.responses, fakeResponse{prefix: prefix, output: output})
	return f
}

// Fail makes calls whose arguments start with prefix fail with output
func (f *FakeRunner) Fail(prefix, output string) *FakeRunner {
	f.responses = append(f.responses, fakeResponse{prefix: prefix, output: output, fail: true})
	return f
}

// Run implements Runner
func (f *FakeRunner) Run(ctx context.Context, dir string, args ...string) (Result, error) {
	call := Call{Dir: dir, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)

	res := Result{Args: args, Dir: dir}
	if err := ctx.Err(); err != nil {
		return res, errors.Wrap(err, errors.ErrExternalTool, "git cancelled")
	}

	joined := call.String()
	for _, r := range f.responses {
		if !strings.HasPrefix(joined, r.prefix) {
			continue
		}
		res.Output = r.output
		if r.fail {
			res.ExitCode = 1
			return res, errors.Newf(errors.ErrExternalTool, "git %s failed", joined).
				WithDetail("exitCode", 1).
				WithDetail("output", r.output).
				WithDetail("dir", dir)
		}
		return res, nil
	}
	return res, nil
}

// CommandLines returns the recorded calls as argument strings
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}
