package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
)

func TestTagEncodeDecodeRoundTrip(t *testing.T) {
	target := plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	tag := &Tag{
		TargetHash: target,
		TargetType: plumbing.CommitObject,
		Name:       "v1.0.0",
		Tagger:     Signature{Name: "A", Email: "a@example.com"},
		Message:    "release\n",
	}

	obj, err := tag.Encode()
	require.NoError(t, err)
	assert.Equal(t, plumbing.TagObject, obj.Type)

	decoded, err := DecodeTag(plumbing.ZeroHash, obj)
	require.NoError(t, err)
	assert.Equal(t, target, decoded.TargetHash)
	assert.Equal(t, plumbing.CommitObject, decoded.TargetType)
	assert.Equal(t, "v1.0.0", decoded.Name)
	assert.Equal(t, "release\n", decoded.Message)
}

func TestDecodeTagUnknownTargetType(t *testing.T) {
	_, err := DecodeTag(plumbing.ZeroHash, plumbing.EncodedObject{
		Type:    plumbing.TagObject,
		Payload: []byte("object 4b825dc642cb6eb9a060e54bf8d69288fbee4904\ntype bogus\ntag v1\n\n"),
	})
	assert.ErrorIs(t, err, plumbing.ErrCorruptObject)
}
