// Package govcs ties the plumbing layer (objects, refs, index, ignore
// rules) together into a repository: the gitdir layout, the working
// tree, and the commands built on top of both.
package govcs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/cyucelen/govcs/config"
	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/format/index"
	"github.com/cyucelen/govcs/storage/filesystem"
)

// GitDir is the name of the directory a repository keeps its object
// store, refs, and config under.
const GitDir = ".govcs"

// DefaultBranch is the branch name a new repository's HEAD points at
// before any commit exists.
const DefaultBranch = "master"

// ErrRepositoryNotExists is returned by Open/Find when no gitdir is
// found.
var ErrRepositoryNotExists = errors.New("repository does not exist")

// ErrRepositoryAlreadyExists is returned by Init when a gitdir already
// exists at the target path.
var ErrRepositoryAlreadyExists = errors.New("repository already exists")

// Repository ties a gitdir's backing store to the working tree it
// mirrors.
type Repository struct {
	Storer *filesystem.Storage

	worktree billy.Filesystem
	gitdir   billy.Filesystem
	root     string
}

// Init lays out a brand-new repository at root: root/.govcs holding
// objects/refs/config, and root itself as the (empty) working tree.
func Init(root string) (*Repository, error) {
	if _, err := os.Stat(filepath.Join(root, GitDir)); err == nil {
		return nil, ErrRepositoryAlreadyExists
	}

	worktree := osfs.New(root)
	gitdir := osfs.New(filepath.Join(root, GitDir))

	storer := filesystem.NewStorage(gitdir, plumbing.NewBranchReferenceName(DefaultBranch))
	if err := storer.Init(); err != nil {
		return nil, err
	}

	cfg := config.NewConfig()
	if f, err := gitdir.Create("config"); err == nil {
		_, _ = f.Write(config.Marshal(cfg))
		_ = f.Close()
	} else {
		return nil, err
	}

	return &Repository{Storer: storer, worktree: worktree, gitdir: gitdir, root: root}, nil
}

// Open opens an existing repository rooted at root (root/.govcs must
// already exist).
func Open(root string) (*Repository, error) {
	gitdirPath := filepath.Join(root, GitDir)
	if _, err := os.Stat(gitdirPath); err != nil {
		return nil, ErrRepositoryNotExists
	}

	worktree := osfs.New(root)
	gitdir := osfs.New(gitdirPath)
	storer := filesystem.NewStorage(gitdir, plumbing.NewBranchReferenceName(DefaultBranch))

	return &Repository{Storer: storer, worktree: worktree, gitdir: gitdir, root: root}, nil
}

// Find walks upward from start looking for a gitdir, the way most
// command-line entry points locate the repository they operate on.
func Find(start string) (*Repository, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, GitDir)); err == nil {
			return Open(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrRepositoryNotExists
		}
		dir = parent
	}
}

// Root returns the working tree's root directory.
func (r *Repository) Root() string { return r.root }

// Config reads the repository's config file.
func (r *Repository) Config() (*config.Config, error) {
	f, err := r.gitdir.Open("config")
	if err != nil {
		return config.NewConfig(), nil
	}
	defer f.Close()

	raw, err := readAll(f)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig()
	if err := config.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Index reads the staging index, returning an empty one if it does not
// exist yet.
func (r *Repository) Index() (*index.Index, error) {
	f, err := r.gitdir.Open("index")
	if err != nil {
		if os.IsNotExist(err) {
			return index.NewIndex(), nil
		}
		return nil, err
	}
	defer f.Close()

	idx := index.NewIndex()
	if err := index.NewDecoder(f).Decode(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// SetIndex overwrites the staging index with idx, atomically.
func (r *Repository) SetIndex(idx *index.Index) error {
	tmp, err := r.gitdir.TempFile("", "tmp-index-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := index.NewEncoder(tmp).Encode(idx); err != nil {
		tmp.Close()
		r.gitdir.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		r.gitdir.Remove(tmpName)
		return err
	}

	return r.gitdir.Rename(tmpName, "index")
}

func readAll(f billy.File) ([]byte, error) {
	return io.ReadAll(f)
}
