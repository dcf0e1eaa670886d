// Package index implements the binary staging index (DIRC v2): the file
// that mediates between the working tree and the object store.
package index

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
)

// ErrUnsupportedVersion is returned by Decode for anything but version 2;
// this module implements no later extensions.
var ErrUnsupportedVersion = errors.New("unsupported index version")

// ErrEntryNotFound is returned by Index.Entry when no entry matches path.
var ErrEntryNotFound = errors.New("index entry not found")

const supportedVersion uint32 = 2

var signature = [4]byte{'D', 'I', 'R', 'C'}

// Index is the ordered list of staged entries. Order is preserved as
// presented by Decode/Add, and the Encoder writes entries in that same
// order; entries are not sorted by path.
type Index struct {
	Version uint32
	Entries []*Entry
}

// NewIndex returns an empty, version-2 index.
func NewIndex() *Index {
	return &Index{Version: supportedVersion}
}

// Entry is a single staged file (§3's IndexEntry).
type Entry struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	Dev        uint32
	Inode      uint32
	Mode       filemode.FileMode
	UID        uint32
	GID        uint32
	Size       uint32
	Hash       plumbing.Hash
	Name       string
}

// Add appends a new entry for path and returns it for the caller to fill
// in.
func (i *Index) Add(path string) *Entry {
	e := &Entry{Name: filepath.ToSlash(path)}
	i.Entries = append(i.Entries, e)
	return e
}

// Entry returns the entry matching path, if any.
func (i *Index) Entry(path string) (*Entry, error) {
	path = filepath.ToSlash(path)
	for _, e := range i.Entries {
		if e.Name == path {
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}

// Remove deletes the entry matching path and returns it.
func (i *Index) Remove(path string) (*Entry, error) {
	path = filepath.ToSlash(path)
	for idx, e := range i.Entries {
		if e.Name == path {
			i.Entries = append(i.Entries[:idx], i.Entries[idx+1:]...)
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}
