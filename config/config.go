// Package config wraps gcfg to read and write the gitdir's INI-style
// config file, and resolves the user identity a commit's author and
// committer lines are built from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/gcfg"

	"github.com/cyucelen/govcs/internal/pathutil"
)

// Config is the parsed contents of a gitdir's config file.
type Config struct {
	Core struct {
		RepositoryFormatVersion int `gcfg:"repositoryformatversion"`
		FileMode                bool
		Bare                    bool
	}
	User struct {
		Name  string
		Email string
	}
}

// NewConfig returns a Config with the defaults a freshly initialized
// repository carries.
func NewConfig() *Config {
	c := &Config{}
	c.Core.FileMode = true
	return c
}

// Unmarshal parses raw INI text into c.
func Unmarshal(raw []byte, c *Config) error {
	return gcfg.ReadStringInto(c, string(raw))
}

// Marshal renders c back to its INI form.
func Marshal(c *Config) []byte {
	return []byte(fmt.Sprintf(
		"[core]\n\trepositoryformatversion = %d\n\tfilemode = %t\n\tbare = %t\n",
		c.Core.RepositoryFormatVersion, c.Core.FileMode, c.Core.Bare,
	))
}

// Identity is the Name/Email pair a commit or tag's signature is built
// from.
type Identity struct {
	Name  string
	Email string
}

// ResolveIdentity looks up the user identity to sign a commit with,
// trying in order: the repository's own config, the user's global git
// config (found via $XDG_CONFIG_HOME/git/config or ~/.gitconfig), then
// the GIT_AUTHOR_NAME/GIT_AUTHOR_EMAIL environment variables.
func ResolveIdentity(repo *Config) (Identity, error) {
	if repo.User.Name != "" && repo.User.Email != "" {
		return Identity{Name: repo.User.Name, Email: repo.User.Email}, nil
	}

	if id, ok := globalIdentity(); ok {
		return id, nil
	}

	name := os.Getenv("GIT_AUTHOR_NAME")
	email := os.Getenv("GIT_AUTHOR_EMAIL")
	if name != "" && email != "" {
		return Identity{Name: name, Email: email}, nil
	}

	return Identity{}, fmt.Errorf("no user identity configured: set user.name and user.email")
}

func globalIdentity() (Identity, bool) {
	for _, path := range globalConfigPaths() {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var c Config
		if err := Unmarshal(raw, &c); err != nil {
			continue
		}

		if c.User.Name != "" && c.User.Email != "" {
			return Identity{Name: c.User.Name, Email: c.User.Email}, true
		}
	}

	return Identity{}, false
}

func globalConfigPaths() []string {
	var paths []string

	if override := os.Getenv("GOVCS_CONFIG_GLOBAL"); override != "" {
		if resolved, err := pathutil.ReplaceTildeWithHome(override); err == nil {
			paths = append(paths, resolved)
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "git", "config"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "git", "config"))
		paths = append(paths, filepath.Join(home, ".gitconfig"))
	}

	return paths
}
