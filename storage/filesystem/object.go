// Package filesystem implements the on-disk object store and reference
// store (C1/C3) on top of go-billy, so the gitdir layout (objects/xx/…,
// refs/heads/…, HEAD) is the only thing this package knows about.
package filesystem

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/format/objfile"
)

const objectsDir = "objects"

// ObjectStorage stores and retrieves objects framed and zlib-compressed
// under objects/xx/yyyy…, exactly the way the object store lays them out
// on disk.
type ObjectStorage struct {
	fs billy.Filesystem
}

// NewObjectStorage returns an ObjectStorage rooted at fs's gitdir.
func NewObjectStorage(fs billy.Filesystem) *ObjectStorage {
	return &ObjectStorage{fs: fs}
}

// fsJoin joins with "/" regardless of host OS, matching billy's own path
// convention.
func fsJoin(elem ...string) string {
	return strings.Join(elem, "/")
}

func objectPath(hash plumbing.Hash) string {
	s := hash.String()
	return fsJoin(objectsDir, s[:2], s[2:])
}

// NewEncodedObject hashes obj's framed form and writes it to disk via an
// atomic temp-file-then-rename, skipping the write entirely if the hash
// is already present.
func (s *ObjectStorage) NewEncodedObject(obj plumbing.EncodedObject) (plumbing.Hash, error) {
	h := plumbing.NewHasher(obj.Type, int64(len(obj.Payload)))
	if _, err := h.Write(obj.Payload); err != nil {
		return plumbing.ZeroHash, err
	}
	hash := h.Sum()

	if ok, err := s.HasEncodedObject(hash); err != nil {
		return plumbing.ZeroHash, err
	} else if ok {
		return hash, nil
	}

	path := objectPath(hash)
	if err := s.fs.MkdirAll(fsJoin(objectsDir, hash.String()[:2]), 0o755); err != nil {
		return plumbing.ZeroHash, err
	}

	tmp, err := s.fs.TempFile(objectsDir, "tmp-obj-")
	if err != nil {
		return plumbing.ZeroHash, err
	}
	tmpName := tmp.Name()

	if err := objfile.WriteFrame(tmp, obj.Type, obj.Payload); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return plumbing.ZeroHash, err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return plumbing.ZeroHash, err
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return plumbing.ZeroHash, err
	}

	return hash, nil
}

// EncodedObject reads back and decompresses the object stored at hash.
func (s *ObjectStorage) EncodedObject(hash plumbing.Hash) (plumbing.EncodedObject, error) {
	f, err := s.fs.Open(objectPath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return plumbing.EncodedObject{}, plumbing.ErrObjectNotFound
		}
		return plumbing.EncodedObject{}, err
	}
	defer f.Close()

	t, payload, err := objfile.ReadFrame(f)
	if err != nil {
		return plumbing.EncodedObject{}, err
	}

	return plumbing.EncodedObject{Type: t, Size: int64(len(payload)), Payload: payload}, nil
}

// HasEncodedObject reports whether hash is present on disk, without
// reading or decompressing it.
func (s *ObjectStorage) HasEncodedObject(hash plumbing.Hash) (bool, error) {
	_, err := s.fs.Stat(objectPath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ExpandHash resolves an abbreviated hex prefix (4 to 40 characters)
// against the set of stored objects by scanning the fan-out directory
// the prefix's first two characters name.
func (s *ObjectStorage) ExpandHash(prefix string) (plumbing.Hash, error) {
	if !plumbing.IsHash(prefix) {
		return plumbing.ZeroHash, plumbing.ErrNotAValidName
	}
	prefix = strings.ToLower(prefix)

	if len(prefix) == plumbing.HashSize*2 {
		h, ok := plumbing.FromHex(prefix)
		if !ok {
			return plumbing.ZeroHash, plumbing.ErrNotAValidName
		}
		if has, err := s.HasEncodedObject(h); err != nil {
			return plumbing.ZeroHash, err
		} else if !has {
			return plumbing.ZeroHash, plumbing.ErrObjectNotFound
		}
		return h, nil
	}

	fanout := prefix[:2]
	entries, err := s.fs.ReadDir(fsJoin(objectsDir, fanout))
	if err != nil {
		if os.IsNotExist(err) {
			return plumbing.ZeroHash, plumbing.ErrObjectNotFound
		}
		return plumbing.ZeroHash, err
	}

	var matches []plumbing.Hash
	for _, e := range entries {
		full := fanout + e.Name()
		if !strings.HasPrefix(full, prefix) {
			continue
		}
		if h, ok := plumbing.FromHex(full); ok {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return plumbing.ZeroHash, plumbing.ErrObjectNotFound
	case 1:
		return matches[0], nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("%w: %q", plumbing.ErrAmbiguous, prefix)
	}
}
