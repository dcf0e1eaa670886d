package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
)

func TestTreeEncodeDecodeRoundTrip(t *testing.T) {
	tr := &Tree{Entries: []TreeEntry{
		{Name: "b.txt", Mode: filemode.Regular, Hash: plumbing.NewHash("2aae6c35c94fcfb415dbe95f408b9ce91ee846ed")},
		{Name: "a.txt", Mode: filemode.Regular, Hash: plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")},
	}}

	obj, err := tr.Encode()
	require.NoError(t, err)
	assert.Equal(t, plumbing.TreeObject, obj.Type)

	decoded, err := DecodeTree(plumbing.ZeroHash, obj)
	require.NoError(t, err)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "a.txt", decoded.Entries[0].Name)
	assert.Equal(t, "b.txt", decoded.Entries[1].Name)
}

func TestTreeDirectoryAwareSort(t *testing.T) {
	tr := &Tree{Entries: []TreeEntry{
		{Name: "foo.txt", Mode: filemode.Regular},
		{Name: "foo", Mode: filemode.Dir},
	}}
	tr.Sort()

	// '.' (0x2e) sorts before '/' (0x2f), so the plain file "foo.txt"
	// comes before the directory "foo" once "foo" is compared as "foo/".
	assert.Equal(t, "foo.txt", tr.Entries[0].Name)
	assert.Equal(t, "foo", tr.Entries[1].Name)
}
