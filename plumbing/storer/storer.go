// Package storer declares the storage-facing interfaces the object store
// and reference resolver are built against, so the filesystem-backed
// implementation under storage/filesystem is the only place that knows
// about zlib, the DIRC binary layout, or ref files on disk.
package storer

import "github.com/cyucelen/govcs/plumbing"

// EncodedObjectStorer reads and writes the content-addressed object
// store (C1).
type EncodedObjectStorer interface {
	// NewEncodedObject hashes and writes obj, returning its hash. Writing
	// an object whose hash already exists on disk is a no-op.
	NewEncodedObject(obj plumbing.EncodedObject) (plumbing.Hash, error)
	// EncodedObject reads back the object stored at hash.
	EncodedObject(hash plumbing.Hash) (plumbing.EncodedObject, error)
	// HasEncodedObject reports whether hash is present in the store,
	// without reading or decompressing it.
	HasEncodedObject(hash plumbing.Hash) (bool, error)
	// ExpandHash resolves a (possibly abbreviated, 4..40 hex char) prefix
	// against the set of stored object hashes.
	ExpandHash(prefix string) (plumbing.Hash, error)
}

// ReferenceStorer reads and writes refs and HEAD (C3).
type ReferenceStorer interface {
	// Reference reads the ref named name without following a symbolic
	// target.
	Reference(name plumbing.ReferenceName) (*plumbing.Reference, error)
	// SetReference writes ref, replacing any prior value, atomically.
	SetReference(ref *plumbing.Reference) error
	// RemoveReference deletes the ref named name, if present.
	RemoveReference(name plumbing.ReferenceName) error
	// IterReferences walks every ref file under refs/, calling fn for
	// each. Stops and returns fn's error if it returns non-nil.
	IterReferences(fn func(*plumbing.Reference) error) error
}

// Storer is the full backing store a Repository needs: objects plus refs.
type Storer interface {
	EncodedObjectStorer
	ReferenceStorer
}

// Initializer is implemented by storers that need to lay out their
// directory structure before first use (C8's `create`).
type Initializer interface {
	Init() error
}
