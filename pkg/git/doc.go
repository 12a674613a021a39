// Package git runs the external git tool on behalf of clone and update.
//
// Commands run synchronously with stdout and stderr captured together. The
// captured text is returned raw; indentation for display is left to the
// renderers in pkg/style. A Runner interface lets tests substitute a
// recording fake (see FakeRunner) so sync logic is tested without git.
package git
