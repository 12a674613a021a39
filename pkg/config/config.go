package config

import (
	"time"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the complete dotlink configuration
type Config struct {
	Repository Repository `koanf:"repository"`
	Subtrees   Subtrees   `koanf:"subtrees"`
	Git        Git        `koanf:"git"`
}

// Repository describes the managed repository layout
type Repository struct {
	Path     string `koanf:"path"`
	Source   string `koanf:"source"`
	Manifest string `koanf:"manifest"`
	Remote   string `koanf:"remote"`
}

// Subtrees controls subtree synchronization during update
type Subtrees struct {
	Branch string        `koanf:"branch"`
	Pause  time.Duration `koanf:"pause"`
}

// Git configures the external version control tool
type Git struct {
	Binary string `koanf:"binary"`
}

// Validate checks the values that would otherwise fail late and confusingly
func (c *Config) Validate() error {
	if c.Repository.Path == "" {
		return errors.New(errors.ErrConfig, "repository.path must not be empty")
	}
	if _, ok := filesystem.Within(c.Repository.Source); !ok {
		return errors.Newf(errors.ErrConfig, "repository.source must be a directory inside the repository, got %q", c.Repository.Source)
	}
	if _, ok := filesystem.Within(c.Repository.Manifest); !ok {
		return errors.Newf(errors.ErrConfig, "repository.manifest must be a file inside the repository, got %q", c.Repository.Manifest)
	}
	if c.Subtrees.Branch == "" {
		return errors.New(errors.ErrConfig, "subtrees.branch must not be empty")
	}
	if c.Subtrees.Pause < 0 {
		return errors.Newf(errors.ErrConfig, "subtrees.pause must not be negative, got %s", c.Subtrees.Pause)
	}
	if c.Git.Binary == "" {
		return errors.New(errors.ErrConfig, "git.binary must not be empty")
	}
	return nil
}

type document struct {
	Repository documentRepository `toml:"repository"`
	Subtrees   documentSubtrees   `toml:"subtrees"`
	Git        documentGit        `toml:"git"`
}

type documentRepository struct {
	Path     string `toml:"path"`
	Source   string `toml:"source"`
	Manifest string `toml:"manifest"`
	Remote   string `toml:"remote"`
}

type documentSubtrees struct {
	Branch string `toml:"branch"`
	Pause  string `toml:"pause"`
}

type documentGit struct {
	Binary string `toml:"binary"`
}

// Document renders the configuration as TOML in the same shape the loader reads
func (c *Config) Document() ([]byte, error) {
	doc := document{
		Repository: documentRepository(c.Repository),
		Subtrees: documentSubtrees{
			Branch: c.Subtrees.Branch,
			Pause:  c.Subtrees.Pause.String(),
		},
		Git: documentGit(c.Git),
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
