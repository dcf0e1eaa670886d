package object

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
)

// TreeEntry is one line of a tree object: a mode, a name, and the hash
// of the blob or subtree it names.
type TreeEntry struct {
	Name string
	Mode filemode.FileMode
	Hash plumbing.Hash
}

// Tree is an ordered list of entries, each a blob (file) or another tree
// (subdirectory) — one level of a working tree's directory structure.
type Tree struct {
	hash    plumbing.Hash
	Entries []TreeEntry
}

// Hash returns the tree's content hash.
func (t *Tree) Hash() plumbing.Hash { return t.hash }

// Type implements the Object interface.
func (t *Tree) Type() plumbing.ObjectType { return plumbing.TreeObject }

// sortKey orders entries the way a real tree object does: as if every
// directory name carried a trailing slash, so "foo" (a file) sorts
// before "foo.txt" but after "foo/bar" would if "foo" were a directory.
func sortKey(e TreeEntry) string {
	if e.Mode == filemode.Dir {
		return e.Name + "/"
	}
	return e.Name
}

// Sort orders t.Entries directory-aware, in place.
func (t *Tree) Sort() {
	sort.Slice(t.Entries, func(i, j int) bool {
		return sortKey(t.Entries[i]) < sortKey(t.Entries[j])
	})
}

// Encode renders the tree in its canonical on-disk form: for each
// entry, "<mode> <name>\0<20-byte hash>", concatenated in sorted order.
func (t *Tree) Encode() (plumbing.EncodedObject, error) {
	t.Sort()

	var buf bytes.Buffer
	for _, e := range t.Entries {
		buf.WriteString(strconv.FormatUint(uint64(e.Mode), 8))
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.Hash[:])
	}

	payload := buf.Bytes()
	return plumbing.EncodedObject{
		Type:    plumbing.TreeObject,
		Size:    int64(len(payload)),
		Payload: payload,
	}, nil
}

// DecodeTree reconstructs a Tree from its stored frame.
func DecodeTree(hash plumbing.Hash, obj plumbing.EncodedObject) (*Tree, error) {
	if obj.Type != plumbing.TreeObject {
		return nil, plumbing.ErrWrongType
	}

	tr := &Tree{hash: hash}
	data := obj.Payload

	for len(data) > 0 {
		sp := bytes.IndexByte(data, ' ')
		if sp < 0 {
			return nil, fmt.Errorf("%w: missing mode separator", plumbing.ErrCorruptObject)
		}
		modeStr := string(data[:sp])
		data = data[sp+1:]

		nul := bytes.IndexByte(data, 0)
		if nul < 0 {
			return nil, fmt.Errorf("%w: missing name terminator", plumbing.ErrCorruptObject)
		}
		name := string(data[:nul])
		data = data[nul+1:]

		if len(data) < plumbing.HashSize {
			return nil, fmt.Errorf("%w: truncated entry hash", plumbing.ErrCorruptObject)
		}
		var h plumbing.Hash
		copy(h[:], data[:plumbing.HashSize])
		data = data[plumbing.HashSize:]

		mode, err := filemode.New(modeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", plumbing.ErrCorruptObject, err)
		}

		tr.Entries = append(tr.Entries, TreeEntry{Name: name, Mode: mode, Hash: h})
	}

	return tr, nil
}
