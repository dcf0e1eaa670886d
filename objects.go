package govcs

import (
	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/object"
	"github.com/cyucelen/govcs/plumbing/revision"
)

// resolve turns a revision string into a hash, the repository-bound
// counterpart to revision.Resolve.
func (r *Repository) resolve(rev string) (plumbing.Hash, error) {
	return revision.Resolve(r.Storer, rev)
}

// HashObject hashes data as an object of kind t, optionally writing it
// to the store.
func (r *Repository) HashObject(t plumbing.ObjectType, data []byte, write bool) (plumbing.Hash, error) {
	obj := plumbing.EncodedObject{Type: t, Size: int64(len(data)), Payload: data}

	if !write {
		h := plumbing.NewHasher(t, obj.Size)
		h.Write(data)
		return h.Sum(), nil
	}

	return r.Storer.NewEncodedObject(obj)
}

// CatFile reads back the object named by rev and decodes it into its
// concrete kind.
func (r *Repository) CatFile(rev string) (object.Object, error) {
	hash, err := r.resolve(rev)
	if err != nil {
		return nil, err
	}

	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return nil, err
	}

	return object.Decode(hash, obj)
}

// LsTree lists the entries of the tree named by rev. If recursive,
// subtrees are expanded and only blob entries are reported, with paths
// prefixed by their full directory path.
func (r *Repository) LsTree(rev string, recursive bool) ([]object.TreeEntry, error) {
	hash, err := r.treeHashOf(rev)
	if err != nil {
		return nil, err
	}
	return r.lsTree(hash, "", recursive)
}

func (r *Repository) lsTree(hash plumbing.Hash, prefix string, recursive bool) ([]object.TreeEntry, error) {
	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return nil, err
	}
	tree, err := object.DecodeTree(hash, obj)
	if err != nil {
		return nil, err
	}

	var out []object.TreeEntry
	for _, e := range tree.Entries {
		qualified := object.TreeEntry{Name: join(prefix, e.Name), Mode: e.Mode, Hash: e.Hash}

		if e.Mode.IsDir() && recursive {
			sub, err := r.lsTree(e.Hash, qualified.Name, true)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}

		out = append(out, qualified)
	}
	return out, nil
}

// treeHashOf resolves rev to a tree hash, following a commit's tree
// pointer if rev names a commit rather than a tree directly.
func (r *Repository) treeHashOf(rev string) (plumbing.Hash, error) {
	hash, err := r.resolve(rev)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	switch obj.Type {
	case plumbing.TreeObject:
		return hash, nil
	case plumbing.CommitObject:
		commit, err := object.DecodeCommit(hash, obj)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return commit.TreeHash, nil
	default:
		return plumbing.ZeroHash, plumbing.ErrWrongType
	}
}

// LsFiles lists every path currently staged in the index.
func (r *Repository) LsFiles() ([]string, error) {
	idx, err := r.Index()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range idx.Entries {
		paths = append(paths, e.Name)
	}
	return paths, nil
}

// CheckIgnore reports whether each of paths is excluded by the ignore
// rules.
func (r *Repository) CheckIgnore(paths []string) (map[string]bool, error) {
	m, err := r.Ignore()
	if err != nil {
		return nil, err
	}

	result := make(map[string]bool, len(paths))
	for _, p := range paths {
		p = toSlash(p)
		isDir := false
		if info, err := r.worktree.Stat(p); err == nil {
			isDir = info.IsDir()
		}
		result[p] = r.IsIgnored(m, p, isDir)
	}
	return result, nil
}
