package object

import "github.com/cyucelen/govcs/plumbing"

// Object is satisfied by Blob, Tree, Commit, and Tag: anything that can
// be hashed and written to the object store.
type Object interface {
	Hash() plumbing.Hash
	Type() plumbing.ObjectType
	Encode() (plumbing.EncodedObject, error)
}

// Decode dispatches on obj.Type and reconstructs the matching Object.
func Decode(hash plumbing.Hash, obj plumbing.EncodedObject) (Object, error) {
	switch obj.Type {
	case plumbing.BlobObject:
		return DecodeBlob(hash, obj)
	case plumbing.TreeObject:
		return DecodeTree(hash, obj)
	case plumbing.CommitObject:
		return DecodeCommit(hash, obj)
	case plumbing.TagObject:
		return DecodeTag(hash, obj)
	default:
		return nil, plumbing.ErrInvalidType
	}
}
