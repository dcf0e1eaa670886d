package govcs

import (
	"fmt"

	"github.com/cyucelen/govcs/config"
	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/object"
	"github.com/cyucelen/govcs/plumbing/revision"
)

// Branch creates (or, with force, overwrites) a branch named name
// pointing at the commit rev resolves to.
func (r *Repository) Branch(name, rev string, force bool) error {
	refName := plumbing.NewBranchReferenceName(name)

	if !force {
		if _, err := r.Storer.Reference(refName); err == nil {
			return fmt.Errorf("branch %q already exists", name)
		}
	}

	hash, err := revision.Resolve(r.Storer, rev)
	if err != nil {
		return err
	}

	return r.Storer.SetReference(plumbing.NewHashReference(refName, hash))
}

// Tag creates a lightweight tag (a direct ref to a commit) or, with a
// message, an annotated tag object wrapping it.
func (r *Repository) Tag(name, rev, message string) error {
	hash, err := revision.Resolve(r.Storer, rev)
	if err != nil {
		return err
	}

	refName := plumbing.NewTagReferenceName(name)

	if message == "" {
		return r.Storer.SetReference(plumbing.NewHashReference(refName, hash))
	}

	cfg, err := r.Config()
	if err != nil {
		return err
	}
	identity, err := config.ResolveIdentity(cfg)
	if err != nil {
		return err
	}

	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return err
	}

	tag := &object.Tag{
		TargetHash: hash,
		TargetType: obj.Type,
		Name:       name,
		Tagger:     object.Signature{Name: identity.Name, Email: identity.Email},
		Message:    message,
	}

	tagObj, err := tag.Encode()
	if err != nil {
		return err
	}
	tagHash, err := r.Storer.NewEncodedObject(tagObj)
	if err != nil {
		return err
	}

	return r.Storer.SetReference(plumbing.NewHashReference(refName, tagHash))
}

// ShowRefs returns every ref under refs/, plus HEAD's resolved hash if it
// is not unborn.
func (r *Repository) ShowRefs() ([]*plumbing.Reference, error) {
	var refs []*plumbing.Reference

	if head, err := r.Storer.Reference(plumbing.HEAD); err == nil {
		if resolved, err := revision.Resolve(r.Storer, "HEAD"); err == nil {
			refs = append(refs, plumbing.NewHashReference(head.Name(), resolved))
		}
	}

	err := r.Storer.IterReferences(func(ref *plumbing.Reference) error {
		refs = append(refs, ref)
		return nil
	})
	return refs, err
}

// UpdateRef sets name directly to the hash rev resolves to, the low-
// level counterpart to Branch/Tag for arbitrary ref paths.
func (r *Repository) UpdateRef(name plumbing.ReferenceName, rev string) error {
	hash, err := revision.Resolve(r.Storer, rev)
	if err != nil {
		return err
	}
	return r.Storer.SetReference(plumbing.NewHashReference(name, hash))
}
