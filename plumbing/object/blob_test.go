package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyucelen/govcs/plumbing"
)

func TestBlobEncodeDecodeRoundTrip(t *testing.T) {
	b := NewBlob([]byte("hello world\n"))

	obj, err := b.Encode()
	require.NoError(t, err)
	assert.Equal(t, plumbing.BlobObject, obj.Type)

	decoded, err := DecodeBlob(plumbing.NewHash("2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"), obj)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), decoded.Bytes())
}

func TestDecodeBlobWrongType(t *testing.T) {
	_, err := DecodeBlob(plumbing.ZeroHash, plumbing.EncodedObject{Type: plumbing.TreeObject})
	assert.ErrorIs(t, err, plumbing.ErrWrongType)
}

func TestEmptyBlobContent(t *testing.T) {
	b := NewBlob(nil)
	obj, err := b.Encode()
	require.NoError(t, err)
	assert.Equal(t, int64(0), obj.Size)
	assert.Empty(t, obj.Payload)
}
