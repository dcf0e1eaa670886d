package filesystem

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s := NewStorage(memfs.New(), plumbing.NewBranchReferenceName("master"))
	require.NoError(t, s.Init())
	return s
}

func TestObjectStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	obj := plumbing.EncodedObject{
		Type:    plumbing.BlobObject,
		Size:    5,
		Payload: []byte("hello"),
	}

	hash, err := s.NewEncodedObject(obj)
	require.NoError(t, err)

	has, err := s.HasEncodedObject(hash)
	require.NoError(t, err)
	assert.True(t, has)

	got, err := s.EncodedObject(hash)
	require.NoError(t, err)
	assert.Equal(t, obj.Payload, got.Payload)
	assert.Equal(t, obj.Type, got.Type)
}

func TestObjectStorageMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.EncodedObject(plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"))
	assert.ErrorIs(t, err, plumbing.ErrObjectNotFound)
}

func TestObjectStorageExpandHashAmbiguous(t *testing.T) {
	s := newTestStorage(t)

	// The blobs "x22" and "x723" hash to 12a76c7b… and 12a7737c…, so the
	// four-character prefix "12a7" names both.
	_, err := s.NewEncodedObject(plumbing.EncodedObject{Type: plumbing.BlobObject, Size: 3, Payload: []byte("x22")})
	require.NoError(t, err)
	_, err = s.NewEncodedObject(plumbing.EncodedObject{Type: plumbing.BlobObject, Size: 4, Payload: []byte("x723")})
	require.NoError(t, err)

	_, err = s.ExpandHash("12a7")
	assert.ErrorIs(t, err, plumbing.ErrAmbiguous)
}

func TestReferenceStorageSetAndGet(t *testing.T) {
	s := newTestStorage(t)

	hash := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName("master"), hash)

	require.NoError(t, s.SetReference(ref))

	got, err := s.Reference(plumbing.NewBranchReferenceName("master"))
	require.NoError(t, err)
	assert.Equal(t, plumbing.HashReference, got.Type())
	assert.Equal(t, hash, got.Hash())
}

func TestReferenceStorageHeadIsSymbolic(t *testing.T) {
	s := newTestStorage(t)

	head, err := s.Reference(plumbing.HEAD)
	require.NoError(t, err)
	assert.Equal(t, plumbing.SymbolicReference, head.Type())
	assert.Equal(t, plumbing.NewBranchReferenceName("master"), head.Target())
}

func TestReferenceStorageIterReferences(t *testing.T) {
	s := newTestStorage(t)

	hash := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, s.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("master"), hash)))
	require.NoError(t, s.SetReference(plumbing.NewHashReference(plumbing.NewTagReferenceName("v1"), hash)))

	var names []string
	err := s.IterReferences(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().String())
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"refs/heads/master", "refs/tags/v1"}, names)
}
