package plumbing

import "strings"

// ReferenceName is a ref path relative to the gitdir, e.g. "HEAD" or
// "refs/heads/master".
type ReferenceName string

const (
	HEAD ReferenceName = "HEAD"

	refHeadsPrefix   = "refs/heads/"
	refTagsPrefix    = "refs/tags/"
	refRemotesPrefix = "refs/remotes/"
)

// Short strips the refs/heads, refs/tags, or refs/remotes prefix, the way
// `git branch`/`git tag` print names.
func (n ReferenceName) Short() string {
	s := string(n)
	for _, prefix := range []string{refHeadsPrefix, refTagsPrefix, refRemotesPrefix} {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):]
		}
	}
	return s
}

func (n ReferenceName) String() string { return string(n) }

// NewBranchReferenceName builds "refs/heads/<name>".
func NewBranchReferenceName(name string) ReferenceName {
	return ReferenceName(refHeadsPrefix + name)
}

// NewTagReferenceName builds "refs/tags/<name>".
func NewTagReferenceName(name string) ReferenceName {
	return ReferenceName(refTagsPrefix + name)
}

// ReferenceType distinguishes a hash ref from a symbolic one.
type ReferenceType int8

const (
	InvalidReference ReferenceType = iota
	HashReference
	SymbolicReference
)

// Reference is a named pointer: either straight at an object hash, or at
// another reference name (one hop only, per the design's ref resolver).
type Reference struct {
	typ    ReferenceType
	name   ReferenceName
	target ReferenceName
	hash   Hash
}

// NewHashReference builds a Reference that points directly at hash.
func NewHashReference(name ReferenceName, hash Hash) *Reference {
	return &Reference{typ: HashReference, name: name, hash: hash}
}

// NewSymbolicReference builds a Reference that points at another
// reference name, e.g. HEAD -> refs/heads/master.
func NewSymbolicReference(name, target ReferenceName) *Reference {
	return &Reference{typ: SymbolicReference, name: name, target: target}
}

func (r *Reference) Type() ReferenceType   { return r.typ }
func (r *Reference) Name() ReferenceName   { return r.name }
func (r *Reference) Hash() Hash            { return r.hash }
func (r *Reference) Target() ReferenceName { return r.target }

// Strings renders the reference the way it is stored on disk: "ref:
// <target>\n" for a symbolic ref, "<hash>\n" for a hash ref.
func (r *Reference) Strings() string {
	if r.typ == SymbolicReference {
		return "ref: " + string(r.target) + "\n"
	}
	return r.hash.String() + "\n"
}
