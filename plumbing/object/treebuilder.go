package object

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
)

// Leaf is one staged file going into a tree: its full slash-separated
// path relative to the tree root, and the blob hash it resolves to.
// Tree entries for a Leaf are always written with mode 100644,
// regardless of the working-tree executable bit.
type Leaf struct {
	Path string
	Hash plumbing.Hash
}

// Store persists an encodable object and returns its hash, the shape
// storer.EncodedObjectStorer.NewEncodedObject satisfies.
type Store func(obj plumbing.EncodedObject) (plumbing.Hash, error)

// BuildTree assembles the nested tree objects for leaves (the full set
// of staged files) and writes them bottom-up via store, returning the
// hash of the root tree. Children are grouped by first path component
// in a treemap so that, independent of leaves' input order, subtree
// construction proceeds over a deterministic key ordering.
func BuildTree(leaves []Leaf, store Store) (plumbing.Hash, error) {
	t := &Tree{}

	var direct []Leaf
	groups := treemap.NewWith(utils.StringComparator)

	for _, l := range leaves {
		i := strings.IndexByte(l.Path, '/')
		if i < 0 {
			direct = append(direct, l)
			continue
		}

		name, rest := l.Path[:i], l.Path[i+1:]
		var bucket []Leaf
		if v, ok := groups.Get(name); ok {
			bucket = v.([]Leaf)
		}
		bucket = append(bucket, Leaf{Path: rest, Hash: l.Hash})
		groups.Put(name, bucket)
	}

	for _, l := range direct {
		t.Entries = append(t.Entries, TreeEntry{
			Name: l.Path,
			Mode: filemode.Regular,
			Hash: l.Hash,
		})
	}

	it := groups.Iterator()
	for it.Next() {
		name := it.Key().(string)
		bucket := it.Value().([]Leaf)

		subHash, err := BuildTree(bucket, store)
		if err != nil {
			return plumbing.ZeroHash, err
		}

		t.Entries = append(t.Entries, TreeEntry{
			Name: name,
			Mode: filemode.Dir,
			Hash: subHash,
		})
	}

	t.Sort()

	obj, err := t.Encode()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	return store(obj)
}
