package revision

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/storage/filesystem"
)

func newRepo(t *testing.T) *filesystem.Storage {
	t.Helper()
	s := filesystem.NewStorage(memfs.New(), plumbing.NewBranchReferenceName("master"))
	require.NoError(t, s.Init())
	return s
}

func TestResolveHead(t *testing.T) {
	s := newRepo(t)
	hash := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, s.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("master"), hash)))

	got, err := Resolve(s, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, hash, got)

	got, err = Resolve(s, "")
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestResolveBranchName(t *testing.T) {
	s := newRepo(t)
	hash := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, s.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("master"), hash)))

	got, err := Resolve(s, "master")
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestResolveTagName(t *testing.T) {
	s := newRepo(t)
	hash := plumbing.NewHash("2aae6c35c94fcfb415dbe95f408b9ce91ee846ed")
	require.NoError(t, s.SetReference(plumbing.NewHashReference(plumbing.NewTagReferenceName("v1"), hash)))

	got, err := Resolve(s, "v1")
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestResolveAbbreviatedHash(t *testing.T) {
	s := newRepo(t)
	hash, err := s.NewEncodedObject(plumbing.EncodedObject{Type: plumbing.BlobObject, Payload: []byte("content")})
	require.NoError(t, err)

	got, err := Resolve(s, hash.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestResolveUnbornHeadFails(t *testing.T) {
	s := newRepo(t)

	_, err := Resolve(s, "HEAD")
	assert.ErrorIs(t, err, plumbing.ErrReferenceNotFound)
}

func TestResolveUnknownNameFails(t *testing.T) {
	s := newRepo(t)

	_, err := Resolve(s, "nonexistent")
	assert.ErrorIs(t, err, plumbing.ErrNotAValidName)
}
