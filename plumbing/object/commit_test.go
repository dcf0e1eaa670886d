package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
)

func TestCommitEncodeDecodeRoundTrip(t *testing.T) {
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &Commit{
		TreeHash: plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"),
		Author:   Signature{Name: "A", Email: "a@example.com", When: when},
		Committer: Signature{
			Name: "A", Email: "a@example.com", When: when,
		},
		Message: "initial commit\n",
	}

	obj, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, plumbing.CommitObject, obj.Type)

	decoded, err := DecodeCommit(plumbing.ZeroHash, obj)
	require.NoError(t, err)
	assert.Equal(t, c.TreeHash, decoded.TreeHash)
	assert.Equal(t, c.Message, decoded.Message)
	assert.Equal(t, 0, decoded.NumParents())
	assert.Equal(t, "initial commit", decoded.MessageSummary())
}

func TestCommitMultipleParents(t *testing.T) {
	p1 := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	p2 := plumbing.NewHash("2aae6c35c94fcfb415dbe95f408b9ce91ee846ed")

	c := &Commit{
		TreeHash:     p1,
		ParentHashes: []plumbing.Hash{p1, p2},
		Message:      "merge\n",
	}

	obj, err := c.Encode()
	require.NoError(t, err)

	decoded, err := DecodeCommit(plumbing.ZeroHash, obj)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.NumParents())
	assert.Equal(t, []plumbing.Hash{p1, p2}, decoded.ParentHashes)
}

func TestDecodeCommitMissingTree(t *testing.T) {
	_, err := DecodeCommit(plumbing.ZeroHash, plumbing.EncodedObject{
		Type:    plumbing.CommitObject,
		Payload: []byte("\nno tree header\n"),
	})
	assert.ErrorIs(t, err, plumbing.ErrCorruptObject)
}
