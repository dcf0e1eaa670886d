package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureDecodeEncodeRoundTrip(t *testing.T) {
	var s Signature
	s.Decode("Ada Lovelace <ada@example.com> 1234567890 +0200")

	assert.Equal(t, "Ada Lovelace", s.Name)
	assert.Equal(t, "ada@example.com", s.Email)
	assert.Equal(t, int64(1234567890), s.When.Unix())

	assert.Equal(t, "Ada Lovelace <ada@example.com> 1234567890 +0200", s.String())
}

func TestSignatureDecodeNegativeOffset(t *testing.T) {
	var s Signature
	s.Decode("Grace Hopper <grace@example.com> 1000000000 -0530")

	_, offset := s.When.Zone()
	assert.Equal(t, -(5*3600 + 30*60), offset)
}
