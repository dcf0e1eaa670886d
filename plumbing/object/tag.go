package object

import (
	"fmt"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/format/kvlm"
)

// Tag is an annotated tag: a named, signed-off pointer at another
// object, stored as a KVLM record with "object", "type", "tag", and
// "tagger" headers plus a free-form message body.
type Tag struct {
	hash       plumbing.Hash
	TargetHash plumbing.Hash
	TargetType plumbing.ObjectType
	Name       string
	Tagger     Signature
	Message    string
}

// Hash returns the tag object's content hash.
func (t *Tag) Hash() plumbing.Hash { return t.hash }

// Type implements the Object interface.
func (t *Tag) Type() plumbing.ObjectType { return plumbing.TagObject }

// Encode renders the tag as a KVLM record wrapped in a
// plumbing.EncodedObject.
func (t *Tag) Encode() (plumbing.EncodedObject, error) {
	m := &kvlm.Message{}
	m.Add("object", []byte(t.TargetHash.String()))
	m.Add("type", []byte(t.TargetType.String()))
	m.Add("tag", []byte(t.Name))
	m.Add("tagger", []byte(t.Tagger.String()))
	m.Body = []byte(t.Message)

	payload := kvlm.Encode(m)
	return plumbing.EncodedObject{
		Type:    plumbing.TagObject,
		Size:    int64(len(payload)),
		Payload: payload,
	}, nil
}

// DecodeTag reconstructs a Tag from its stored frame.
func DecodeTag(hash plumbing.Hash, obj plumbing.EncodedObject) (*Tag, error) {
	if obj.Type != plumbing.TagObject {
		return nil, plumbing.ErrWrongType
	}

	m, err := kvlm.Decode(obj.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plumbing.ErrCorruptObject, err)
	}

	t := &Tag{hash: hash, Message: string(m.Body)}

	objVal, ok := m.Get("object")
	if !ok {
		return nil, fmt.Errorf("%w: missing object header", plumbing.ErrCorruptObject)
	}
	t.TargetHash = plumbing.NewHash(string(objVal))

	if typeVal, ok := m.Get("type"); ok {
		tt, ok := plumbing.ParseObjectType(string(typeVal))
		if !ok {
			return nil, fmt.Errorf("%w: unknown target type %q", plumbing.ErrCorruptObject, typeVal)
		}
		t.TargetType = tt
	}

	if nameVal, ok := m.Get("tag"); ok {
		t.Name = string(nameVal)
	}

	if taggerVal, ok := m.Get("tagger"); ok {
		t.Tagger.Decode(string(taggerVal))
	}

	return t, nil
}
