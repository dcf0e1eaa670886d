package plumbing

import "errors"

// Sentinel errors shared across the plumbing layer. Callers use errors.Is
// to test for them, and wrap them with fmt.Errorf("...: %w", err) for
// context.
var (
	// ErrObjectNotFound is returned when a hash does not resolve to a
	// stored object.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidType is returned when an object kind token is not one of
	// blob, tree, commit, tag.
	ErrInvalidType = errors.New("invalid object type")
	// ErrWrongType is returned when an object was found but does not
	// match the kind the caller required.
	ErrWrongType = errors.New("unexpected object type")
	// ErrCorruptObject is returned when a stored object's framed form
	// cannot be parsed.
	ErrCorruptObject = errors.New("corrupt object")
	// ErrReferenceNotFound is returned when a ref name does not resolve
	// to any file under the gitdir.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrAmbiguous is returned when an abbreviated hash matches more
	// than one object.
	ErrAmbiguous = errors.New("ambiguous object name")
	// ErrNotAValidName is returned when a revision string is neither a
	// hash, HEAD, nor a resolvable ref name.
	ErrNotAValidName = errors.New("not a valid object name")
)
