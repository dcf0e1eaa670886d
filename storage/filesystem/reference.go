package filesystem

import (
	"bufio"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/cyucelen/govcs/plumbing"
)

// ReferenceStorage stores refs as plain files under the gitdir: HEAD at
// the root, branches under refs/heads/, tags under refs/tags/.
type ReferenceStorage struct {
	fs billy.Filesystem
}

// NewReferenceStorage returns a ReferenceStorage rooted at fs's gitdir.
func NewReferenceStorage(fs billy.Filesystem) *ReferenceStorage {
	return &ReferenceStorage{fs: fs}
}

func refPath(name plumbing.ReferenceName) string {
	return fsJoin(strings.Split(string(name), "/")...)
}

// Reference reads the ref named name without following a symbolic
// target: a "ref: <target>\n" line becomes a SymbolicReference, a bare
// hex hash becomes a HashReference.
func (s *ReferenceStorage) Reference(name plumbing.ReferenceName) (*plumbing.Reference, error) {
	f, err := s.fs.Open(refPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, plumbing.ErrReferenceNotFound
		}
		return nil, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return nil, plumbing.ErrReferenceNotFound
	}
	line = strings.TrimRight(line, "\n")

	if target, ok := strings.CutPrefix(line, "ref: "); ok {
		return plumbing.NewSymbolicReference(name, plumbing.ReferenceName(strings.TrimSpace(target))), nil
	}

	h, ok := plumbing.FromHex(strings.TrimSpace(line))
	if !ok {
		return nil, plumbing.ErrReferenceNotFound
	}
	return plumbing.NewHashReference(name, h), nil
}

// SetReference writes ref to disk atomically via temp-file-then-rename,
// creating any needed parent directories (refs/heads, refs/tags, …).
func (s *ReferenceStorage) SetReference(ref *plumbing.Reference) error {
	path := refPath(ref.Name())
	if dir := parentDir(path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp, err := s.fs.TempFile("", "tmp-ref-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write([]byte(ref.Strings())); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return err
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return err
	}

	return nil
}

// RemoveReference deletes the ref named name, if present.
func (s *ReferenceStorage) RemoveReference(name plumbing.ReferenceName) error {
	err := s.fs.Remove(refPath(name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IterReferences walks every ref file under refs/ (heads, tags, and any
// other ref directory), calling fn for each. Stops and returns fn's error
// if it returns non-nil.
func (s *ReferenceStorage) IterReferences(fn func(*plumbing.Reference) error) error {
	return s.walk("refs", fn)
}

func (s *ReferenceStorage) walk(dir string, fn func(*plumbing.Reference) error) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		path := fsJoin(dir, e.Name())
		if e.IsDir() {
			if err := s.walk(path, fn); err != nil {
				return err
			}
			continue
		}

		ref, err := s.Reference(plumbing.ReferenceName(path))
		if err != nil {
			return err
		}
		if err := fn(ref); err != nil {
			return err
		}
	}

	return nil
}

func parentDir(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}
