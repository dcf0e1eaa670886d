package govcs

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
)

// billyFS is the subset of billy.Filesystem the working-tree helpers
// need: open a file, list a directory.
type billyFS interface {
	Open(filename string) (billy.File, error)
	ReadDir(path string) ([]os.FileInfo, error)
}

// errSkipDir, returned from a walkDir visit function, skips descending
// into the directory just visited (the way filepath.SkipDir does).
var errSkipDir = errors.New("skip this directory")

// walkDir recursively visits every directory under root (root itself
// included, as ""), calling visit with the directory's slash-separated
// path relative to root and its direct entries.
func walkDir(fs billyFS, dir string, visit func(dir string, entries []os.FileInfo) error) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	err = visit(dir, entries)
	if err == errSkipDir {
		return nil
	}
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := join(dir, e.Name())
		if err := walkDir(fs, sub, visit); err != nil {
			return err
		}
	}

	return nil
}
