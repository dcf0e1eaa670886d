// Package revision resolves the revision strings the command surface
// accepts: HEAD, a branch or tag name, or a full or abbreviated object
// hash, into a concrete plumbing.Hash.
package revision

import (
	"fmt"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/storer"
)

// Resolve turns rev into the hash it names. It tries, in order: HEAD
// (following at most one symbolic hop to the branch it points at), a
// literal reference path, a refs/heads/<rev> or refs/tags/<rev>
// branch/tag name, and finally a full or abbreviated object hash.
func Resolve(s storer.Storer, rev string) (plumbing.Hash, error) {
	switch rev {
	case "", "HEAD":
		return resolveHead(s)
	}

	for _, name := range candidateNames(rev) {
		ref, err := s.Reference(name)
		if err == nil {
			return hashOf(s, ref)
		}
		if err != plumbing.ErrReferenceNotFound {
			return plumbing.ZeroHash, err
		}
	}

	if plumbing.IsHash(rev) {
		return s.ExpandHash(rev)
	}

	return plumbing.ZeroHash, plumbing.ErrNotAValidName
}

func candidateNames(rev string) []plumbing.ReferenceName {
	return []plumbing.ReferenceName{
		plumbing.ReferenceName(rev),
		plumbing.NewBranchReferenceName(rev),
		plumbing.NewTagReferenceName(rev),
	}
}

func resolveHead(s storer.Storer) (plumbing.Hash, error) {
	head, err := s.Reference(plumbing.HEAD)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return hashOf(s, head)
}

// hashOf resolves ref to a concrete hash, following exactly one
// symbolic hop (HEAD -> refs/heads/<branch>); a ref chain longer than
// that is not supported.
func hashOf(s storer.Storer, ref *plumbing.Reference) (plumbing.Hash, error) {
	if ref.Type() == plumbing.HashReference {
		return ref.Hash(), nil
	}

	target, err := s.Reference(ref.Target())
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if target.Type() != plumbing.HashReference {
		return plumbing.ZeroHash, fmt.Errorf("%w: %q resolves through more than one symbolic hop", plumbing.ErrNotAValidName, ref.Name())
	}
	return target.Hash(), nil
}
