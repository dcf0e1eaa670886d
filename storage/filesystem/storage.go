package filesystem

import (
	"github.com/go-git/go-billy/v5"

	"github.com/cyucelen/govcs/plumbing"
)

// Storage is the full on-disk backing store for a repository: the
// object store plus the reference store, both rooted at the same
// gitdir filesystem.
type Storage struct {
	*ObjectStorage
	*ReferenceStorage

	fs            billy.Filesystem
	defaultBranch plumbing.ReferenceName
}

// NewStorage returns a Storage rooted at fs, the gitdir (".govcs" in a
// normal working copy, or the repository root itself for a bare one).
// defaultBranch is the branch Init points an unborn HEAD at.
func NewStorage(fs billy.Filesystem, defaultBranch plumbing.ReferenceName) *Storage {
	return &Storage{
		ObjectStorage:    NewObjectStorage(fs),
		ReferenceStorage: NewReferenceStorage(fs),
		fs:               fs,
		defaultBranch:    defaultBranch,
	}
}

// Init lays out a fresh gitdir: objects/, refs/heads/, refs/tags/, an
// unborn HEAD pointing at the default branch, and an empty
// info/exclude. Implements storer.Initializer.
func (s *Storage) Init() error {
	for _, dir := range []string{objectsDir, "refs/heads", "refs/tags", "info"} {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, s.defaultBranch)
	if err := s.SetReference(head); err != nil {
		return err
	}

	excl, err := s.fs.Create("info/exclude")
	if err != nil {
		return err
	}
	return excl.Close()
}
