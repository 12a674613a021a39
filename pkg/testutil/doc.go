// Package testutil provides isolated environments for dotlink tests.
//
// Symlink semantics matter for every dotlink operation, so environments
// live on the real filesystem inside t.TempDir() rather than in memory.
//
//	env := testutil.NewEnvironment(t)
//	env.SourceFile(".vimrc", "set number")
//	env.HomeFile(".bashrc", "local")
//	report, err := link.LinkEntries(link.Options{Paths: env.Paths, FS: env.FS})
//
// RecordingFS wraps any types.FS and records mutating calls, which is how
// pretend mode is shown to leave the filesystem untouched.
package testutil
