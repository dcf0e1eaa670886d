package govcs

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/object"
)

// Log walks the commit ancestry starting at start, first-parent and
// merge parents alike, in a depth-first traversal that follows every
// parent but visits each commit exactly once, the way `git log` does
// for a graph with merges.
func (r *Repository) Log(start plumbing.Hash) ([]*object.Commit, error) {
	visited := linkedhashset.New()
	var order []*object.Commit

	var visit func(hash plumbing.Hash) error
	visit = func(hash plumbing.Hash) error {
		if hash.IsZero() || visited.Contains(hash) {
			return nil
		}
		visited.Add(hash)

		obj, err := r.Storer.EncodedObject(hash)
		if err != nil {
			return err
		}
		commit, err := object.DecodeCommit(hash, obj)
		if err != nil {
			return err
		}

		order = append(order, commit)

		for _, parent := range commit.ParentHashes {
			if err := visit(parent); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(start); err != nil {
		return nil, err
	}
	return order, nil
}
