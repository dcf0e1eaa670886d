package govcs

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
	"github.com/cyucelen/govcs/plumbing/object"
)

// ErrWorktreeNotEmpty is returned by Checkout when the target directory
// already has files in it.
var ErrWorktreeNotEmpty = errors.New("worktree is not empty")

// Checkout materializes the tree at hash into the working tree, failing
// if the working tree already has any entries (this engine never
// overwrites or merges; it only populates a fresh directory).
func (r *Repository) Checkout(hash plumbing.Hash) error {
	entries, err := r.worktree.ReadDir("")
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, e := range entries {
		if e.Name() != GitDir {
			return ErrWorktreeNotEmpty
		}
	}

	return r.checkoutTree(hash, "")
}

func (r *Repository) checkoutTree(hash plumbing.Hash, prefix string) error {
	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return err
	}
	tree, err := object.DecodeTree(hash, obj)
	if err != nil {
		return err
	}

	for _, e := range tree.Entries {
		path := join(prefix, e.Name)

		switch e.Mode {
		case filemode.Dir:
			if err := r.worktree.MkdirAll(path, 0o755); err != nil {
				return err
			}
			if err := r.checkoutTree(e.Hash, path); err != nil {
				return err
			}

		case filemode.Symlink:
			blob, err := r.readBlob(e.Hash)
			if err != nil {
				return err
			}
			if err := r.worktree.Symlink(string(blob.Bytes()), path); err != nil {
				return err
			}

		case filemode.Submodule:
			placeholder := fmt.Sprintf("Subproject commit %s\n", e.Hash)
			if err := writeFile(r.worktree, path, []byte(placeholder)); err != nil {
				return err
			}

		default: // Regular or Executable
			blob, err := r.readBlob(e.Hash)
			if err != nil {
				return err
			}
			if err := writeFile(r.worktree, path, blob.Bytes()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Repository) readBlob(hash plumbing.Hash) (*object.Blob, error) {
	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return nil, err
	}
	return object.DecodeBlob(hash, obj)
}

func writeFile(fs billy.Filesystem, path string, data []byte) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}
