package testutil

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/dotlink/pkg/types"
)

// RecordingFS wraps a types.FS and records every mutating call
type RecordingFS struct {
	types.FS
	Mutations []string
	// Fail makes the named mutating operation fail for the given path
	Fail map[string]error
}

// NewRecordingFS wraps inner
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{FS: inner, Fail: map[string]error{}}
}

// FailOn makes op (e.g. "symlink", "remove") fail for path
func (r *RecordingFS) FailOn(op, path string, err error) *RecordingFS {
	r.Fail[op+" "+path] = err
	return r
}

func (r *RecordingFS) record(op, path string) error {
	r.Mutations = append(r.Mutations, fmt.Sprintf("%s %s", op, path))
	return r.Fail[op+" "+path]
}

func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := r.record("write", name); err != nil {
		return err
	}
	return r.FS.WriteFile(name, data, perm)
}

func (r *RecordingFS) Rename(oldpath, newpath string) error {
	if err := r.record("rename", oldpath); err != nil {
		return err
	}
	return r.FS.Rename(oldpath, newpath)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := r.record("mkdir", path); err != nil {
		return err
	}
	return r.FS.MkdirAll(path, perm)
}

func (r *RecordingFS) Symlink(oldname, newname string) error {
	if err := r.record("symlink", newname); err != nil {
		return err
	}
	return r.FS.Symlink(oldname, newname)
}

func (r *RecordingFS) Remove(name string) error {
	if err := r.record("remove", name); err != nil {
		return err
	}
	return r.FS.Remove(name)
}

func (r *RecordingFS) RemoveAll(path string) error {
	if err := r.record("removeall", path); err != nil {
		return err
	}
	return r.FS.RemoveAll(path)
}
