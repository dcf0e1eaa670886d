package plumbing

// ObjectType identifies which of the four object kinds a frame encodes.
type ObjectType int8

const (
	InvalidObject ObjectType = iota
	BlobObject
	TreeObject
	CommitObject
	TagObject
)

// ParseObjectType maps the frame's lowercase kind token to an ObjectType.
// Unknown tokens return (InvalidObject, false).
func ParseObjectType(s string) (ObjectType, bool) {
	switch s {
	case "blob":
		return BlobObject, true
	case "tree":
		return TreeObject, true
	case "commit":
		return CommitObject, true
	case "tag":
		return TagObject, true
	default:
		return InvalidObject, false
	}
}

// String returns the lowercase frame token for t.
func (t ObjectType) String() string {
	switch t {
	case BlobObject:
		return "blob"
	case TreeObject:
		return "tree"
	case CommitObject:
		return "commit"
	case TagObject:
		return "tag"
	default:
		return "invalid"
	}
}

// Bytes returns the frame token as bytes, ready to write.
func (t ObjectType) Bytes() []byte {
	return []byte(t.String())
}

// EncodedObject is the raw, on-disk shape of any of the four object
// kinds: a type tag plus a byte payload. Blob/Tree/Commit/Tag all know how
// to decode themselves from one and encode themselves into one.
type EncodedObject struct {
	Type    ObjectType
	Size    int64
	Payload []byte
}
