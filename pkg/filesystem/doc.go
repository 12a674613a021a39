// Package filesystem provides the OS-backed types.FS implementation and the
// source directory walker.
//
// The walker lists only the immediate entries of a directory: dotlink links
// top-level files and directories of the source directory as whole units and
// never recurses into them.
package filesystem
