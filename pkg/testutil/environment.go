package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Environment is a temp home directory plus a managed repository inside it
type Environment struct {
	Root   string
	Home   string
	Config *config.Config
	Paths  paths.Paths
	FS     types.FS

	t *testing.T
}

// NewEnvironment creates the home root, the repository and its source
// directory, and points HOME at the temp home for the duration of the test
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	// macOS temp dirs live behind a /var symlink; resolve so link targets compare equal
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	home := filepath.Join(root, "home")

	cfg := &config.Config{
		Repository: config.Repository{
			Path:     "~/.dotfiles",
			Source:   "home",
			Manifest: ".subtrees",
			Remote:   "origin",
		},
		Subtrees: config.Subtrees{Branch: "master", Pause: 0},
		Git:      config.Git{Binary: "git"},
	}

	p, err := paths.NewWithHome(cfg, home)
	if err != nil {
		t.Fatalf("failed to resolve paths: %v", err)
	}

	for _, dir := range []string{home, p.Source()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	return &Environment{
		Root:   root,
		Home:   home,
		Config: cfg,
		Paths:  p,
		FS:     filesystem.NewOS(),
		t:      t,
	}
}

// SourceFile writes a file into the repository source directory
func (e *Environment) SourceFile(name, content string) string {
	e.t.Helper()
	return e.writeFile(e.Paths.SourceEntry(name), content)
}

// SourceDir creates a directory in the repository source directory
func (e *Environment) SourceDir(name string) string {
	e.t.Helper()
	return e.mkdir(e.Paths.SourceEntry(name))
}

// HomeFile writes a file into the home root
func (e *Environment) HomeFile(name, content string) string {
	e.t.Helper()
	return e.writeFile(e.Paths.HomeFile(name), content)
}

// HomeDir creates a directory in the home root
func (e *Environment) HomeDir(name string) string {
	e.t.Helper()
	return e.mkdir(e.Paths.HomeFile(name))
}

// HomeSymlink creates a symlink named name in the home root pointing at target
func (e *Environment) HomeSymlink(name, target string) string {
	e.t.Helper()
	link := e.Paths.HomeFile(name)
	if err := os.Symlink(target, link); err != nil {
		e.t.Fatalf("failed to create symlink %s: %v", link, err)
	}
	return link
}

// RepoFile writes a file relative to the repository root
func (e *Environment) RepoFile(rel, content string) string {
	e.t.Helper()
	return e.writeFile(filepath.Join(e.Paths.Repository(), rel), content)
}

func (e *Environment) writeFile(path, content string) string {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func (e *Environment) mkdir(path string) string {
	e.t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}

// WithPause returns a copy of the config with a different subtree pause
func (e *Environment) WithPause(d time.Duration) *config.Config {
	cfg := *e.Config
	cfg.Subtrees.Pause = d
	return &cfg
}
