package object

import (
	"fmt"
	"strings"

	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/format/kvlm"
)

// Commit is a snapshot of the tree plus its ancestry and authorship,
// stored as a KVLM record: "tree", any number of "parent" lines,
// "author", "committer", optionally "gpgsig", then the message body.
type Commit struct {
	hash      plumbing.Hash
	TreeHash  plumbing.Hash
	ParentHashes []plumbing.Hash
	Author    Signature
	Committer Signature
	Message   string
}

// Hash returns the commit's content hash.
func (c *Commit) Hash() plumbing.Hash { return c.hash }

// Type implements the Object interface.
func (c *Commit) Type() plumbing.ObjectType { return plumbing.CommitObject }

// NumParents returns how many parents the commit has (0 for the first
// commit of a history, 2+ for a merge).
func (c *Commit) NumParents() int { return len(c.ParentHashes) }

// Encode renders the commit as a KVLM record wrapped in a
// plumbing.EncodedObject.
func (c *Commit) Encode() (plumbing.EncodedObject, error) {
	m := &kvlm.Message{}
	m.Add("tree", []byte(c.TreeHash.String()))
	for _, p := range c.ParentHashes {
		m.Add("parent", []byte(p.String()))
	}
	m.Add("author", []byte(c.Author.String()))
	m.Add("committer", []byte(c.Committer.String()))
	m.Body = []byte(c.Message)

	payload := kvlm.Encode(m)
	return plumbing.EncodedObject{
		Type:    plumbing.CommitObject,
		Size:    int64(len(payload)),
		Payload: payload,
	}, nil
}

// DecodeCommit reconstructs a Commit from its stored frame.
func DecodeCommit(hash plumbing.Hash, obj plumbing.EncodedObject) (*Commit, error) {
	if obj.Type != plumbing.CommitObject {
		return nil, plumbing.ErrWrongType
	}

	m, err := kvlm.Decode(obj.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plumbing.ErrCorruptObject, err)
	}

	c := &Commit{hash: hash, Message: string(m.Body)}

	treeVal, ok := m.Get("tree")
	if !ok {
		return nil, fmt.Errorf("%w: missing tree header", plumbing.ErrCorruptObject)
	}
	c.TreeHash = plumbing.NewHash(string(treeVal))

	for _, p := range m.GetAll("parent") {
		c.ParentHashes = append(c.ParentHashes, plumbing.NewHash(string(p)))
	}

	if authorVal, ok := m.Get("author"); ok {
		c.Author.Decode(string(authorVal))
	}
	if committerVal, ok := m.Get("committer"); ok {
		c.Committer.Decode(string(committerVal))
	}

	return c, nil
}

// MessageSummary returns the first line of the commit message, the way
// `git log --oneline` does.
func (c *Commit) MessageSummary() string {
	if i := strings.IndexByte(c.Message, '\n'); i >= 0 {
		return c.Message[:i]
	}
	return c.Message
}
