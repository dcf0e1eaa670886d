package govcs

import (
	"errors"
	"time"

	"github.com/cyucelen/govcs/config"
	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/object"
)

// ErrNothingToCommit is returned by Commit when the index is empty.
var ErrNothingToCommit = errors.New("nothing to commit: the index is empty")

// Commit builds a tree from the current index, wraps it in a commit
// object whose parent is HEAD's current commit (none, for the first
// commit of a history), and advances the branch HEAD points at.
func (r *Repository) Commit(message string) (plumbing.Hash, error) {
	idx, err := r.Index()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if len(idx.Entries) == 0 {
		return plumbing.ZeroHash, ErrNothingToCommit
	}

	cfg, err := r.Config()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	identity, err := config.ResolveIdentity(cfg)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	var leaves []object.Leaf
	for _, e := range idx.Entries {
		leaves = append(leaves, object.Leaf{Path: e.Name, Hash: e.Hash})
	}

	treeHash, err := object.BuildTree(leaves, r.Storer.NewEncodedObject)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	var parents []plumbing.Hash
	branchName, parentHash, err := r.currentBranchHead()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if !parentHash.IsZero() {
		parents = append(parents, parentHash)
	}

	now := time.Now()
	sig := object.Signature{Name: identity.Name, Email: identity.Email, When: now}

	commit := &object.Commit{
		TreeHash:     treeHash,
		ParentHashes: parents,
		Author:       sig,
		Committer:    sig,
		Message:      message,
	}

	obj, err := commit.Encode()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	commitHash, err := r.Storer.NewEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	ref := plumbing.NewHashReference(branchName, commitHash)
	if err := r.Storer.SetReference(ref); err != nil {
		return plumbing.ZeroHash, err
	}

	return commitHash, nil
}

// currentBranchHead returns the branch HEAD points at and the commit it
// currently resolves to (the zero hash for an unborn branch).
func (r *Repository) currentBranchHead() (plumbing.ReferenceName, plumbing.Hash, error) {
	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", plumbing.ZeroHash, err
	}
	if head.Type() != plumbing.SymbolicReference {
		return head.Name(), head.Hash(), nil
	}

	branch, err := r.Storer.Reference(head.Target())
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return head.Target(), plumbing.ZeroHash, nil
		}
		return "", plumbing.ZeroHash, err
	}
	return branch.Name(), branch.Hash(), nil
}
