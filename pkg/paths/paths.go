package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Paths provides the resolved locations dotlink operates on
type Paths interface {
	// Home is the directory links are created in
	Home() string
	// Repository is the managed repository working tree
	Repository() string
	// Source is the directory whose top-level entries are linked into Home
	Source() string
	// Manifest is the subtree manifest file
	Manifest() string
	// SourceEntry returns the path of name inside Source
	SourceEntry(name string) string
	// HomeFile returns the path of name inside Home
	HomeFile(name string) string
}

type paths struct {
	home       string
	repository string
	source     string
	manifest   string
}

// New resolves cfg against the current user's home directory
func New(cfg *config.Config) (Paths, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	return NewWithHome(cfg, home)
}

// NewWithHome resolves cfg against an explicit home directory
func NewWithHome(cfg *config.Config, home string) (Paths, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInternal, "configuration is required")
	}
	if home == "" {
		return nil, errors.New(errors.ErrConfig, "home directory is empty")
	}

	absHome, err := filepath.Abs(home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for home %s", home)
	}

	repo, err := filepath.Abs(expandHomeWith(cfg.Repository.Path, absHome))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository %s", cfg.Repository.Path)
	}

	return &paths{
		home:       filepath.Clean(absHome),
		repository: filepath.Clean(repo),
		source:     filepath.Join(repo, cfg.Repository.Source),
		manifest:   filepath.Join(repo, cfg.Repository.Manifest),
	}, nil
}

func (p *paths) Home() string       { return p.home }
func (p *paths) Repository() string { return p.repository }
func (p *paths) Source() string     { return p.source }
func (p *paths) Manifest() string   { return p.manifest }

func (p *paths) SourceEntry(name string) string {
	return filepath.Join(p.source, name)
}

func (p *paths) HomeFile(name string) string {
	return filepath.Join(p.home, name)
}

// GetHomeDirectory returns the user's home directory, preferring $HOME
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ using the current user's home directory
func ExpandHome(path string) string {
	home, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return expandHomeWith(path, home)
}

// expandHomeWith expands ~ and ~/ prefixes; ~user forms are left untouched
func expandHomeWith(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}
