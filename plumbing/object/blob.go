// Package object implements the four object kinds (blob, tree, commit,
// tag) on top of the plumbing.EncodedObject frame: decoding one out of a
// stored frame, and encoding one back into a frame ready for the object
// store.
package object

import "github.com/cyucelen/govcs/plumbing"

// Blob is an opaque byte payload: a file's content, with no structure
// of its own.
type Blob struct {
	hash plumbing.Hash
	Size int64
	data []byte
}

// NewBlob builds a Blob from raw content, ready to be hashed and
// written to the store.
func NewBlob(data []byte) *Blob {
	return &Blob{Size: int64(len(data)), data: data}
}

// Hash returns the blob's content hash, set when the blob is read back
// with DecodeBlob; a blob built with NewBlob returns the zero hash.
func (b *Blob) Hash() plumbing.Hash { return b.hash }

// Bytes returns the blob's content.
func (b *Blob) Bytes() []byte { return b.data }

// Type implements the Object interface.
func (b *Blob) Type() plumbing.ObjectType { return plumbing.BlobObject }

// Encode renders the blob as a plumbing.EncodedObject, ready to be
// written to the store.
func (b *Blob) Encode() (plumbing.EncodedObject, error) {
	return plumbing.EncodedObject{
		Type:    plumbing.BlobObject,
		Size:    int64(len(b.data)),
		Payload: b.data,
	}, nil
}

// DecodeBlob reconstructs a Blob from its stored frame.
func DecodeBlob(hash plumbing.Hash, obj plumbing.EncodedObject) (*Blob, error) {
	if obj.Type != plumbing.BlobObject {
		return nil, plumbing.ErrWrongType
	}
	return &Blob{hash: hash, Size: obj.Size, data: obj.Payload}, nil
}
