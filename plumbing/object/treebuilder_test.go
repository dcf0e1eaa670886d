package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
)

func TestBuildTreeNestedDirectories(t *testing.T) {
	stored := map[plumbing.Hash]plumbing.EncodedObject{}
	store := func(obj plumbing.EncodedObject) (plumbing.Hash, error) {
		h := plumbing.NewHasher(obj.Type, obj.Size)
		h.Write(obj.Payload)
		hash := h.Sum()
		stored[hash] = obj
		return hash, nil
	}

	leaves := []Leaf{
		{Path: "README.md", Hash: plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")},
		{Path: "src/main.go", Hash: plumbing.NewHash("2aae6c35c94fcfb415dbe95f408b9ce91ee846ed")},
		{Path: "src/pkg/util.go", Hash: plumbing.NewHash("356a192b7913b04c54574d18c28d46e6395428ab")},
	}

	rootHash, err := BuildTree(leaves, store)
	require.NoError(t, err)

	rootObj, ok := stored[rootHash]
	require.True(t, ok)

	root, err := DecodeTree(rootHash, rootObj)
	require.NoError(t, err)
	require.Len(t, root.Entries, 2)

	assert.Equal(t, "README.md", root.Entries[0].Name)
	assert.Equal(t, filemode.Regular, root.Entries[0].Mode)

	assert.Equal(t, "src", root.Entries[1].Name)
	assert.Equal(t, filemode.Dir, root.Entries[1].Mode)

	srcObj, ok := stored[root.Entries[1].Hash]
	require.True(t, ok)
	src, err := DecodeTree(root.Entries[1].Hash, srcObj)
	require.NoError(t, err)
	require.Len(t, src.Entries, 2)
	assert.Equal(t, "main.go", src.Entries[0].Name)
	assert.Equal(t, "pkg", src.Entries[1].Name)
	assert.Equal(t, filemode.Dir, src.Entries[1].Mode)
}
