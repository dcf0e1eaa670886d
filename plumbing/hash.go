package plumbing

import (
	"encoding/hex"
	"hash"
	"sort"
	"strconv"

	"github.com/pjbgf/sha1cd"
)

// HashSize is the length in bytes of a Hash.
const HashSize = 20

// Hash is a SHA-1 object id, the 20 raw bytes that name every object in
// the store.
type Hash [HashSize]byte

// ZeroHash is the zero value of Hash, used to represent "no object" (an
// unborn HEAD, or a missing parent).
var ZeroHash Hash

// NewHash parses a hexadecimal string into a Hash. Invalid input results in
// the zero hash, mirroring the teacher's lenient NewHash.
func NewHash(s string) Hash {
	h, _ := FromHex(s)
	return h
}

// FromHex parses a 40 character hexadecimal string into a Hash.
func FromHex(s string) (Hash, bool) {
	var h Hash
	if len(s) != HashSize*2 {
		return h, false
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return h, false
	}

	copy(h[:], b)
	return h, true
}

// IsHash reports whether s looks like a (possibly abbreviated) hex object
// id: 4 to 40 lowercase or uppercase hex characters.
func IsHash(s string) bool {
	if len(s) < 4 || len(s) > HashSize*2 {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}

// String returns the 40 character lowercase hex representation of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// Compare compares h against the raw bytes in b.
func (h Hash) Compare(b []byte) int {
	var other Hash
	copy(other[:], b)
	for i := range h {
		if h[i] != other[i] {
			if h[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// HashesSort sorts a slice of Hashes in increasing order.
func HashesSort(a []Hash) {
	sort.Slice(a, func(i, j int) bool {
		return string(a[i][:]) < string(a[j][:])
	})
}

// Hasher computes the SHA-1 sum of a framed object: kind, size, and
// payload, in the exact layout that gets written to disk (minus the zlib
// wrapper). It uses sha1cd, the collision-detecting SHA-1 go-git itself
// depends on, rather than crypto/sha1.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a Hasher primed with the "<kind> SP <size> NUL" frame
// header; subsequent Write calls append the payload.
func NewHasher(t ObjectType, size int64) *Hasher {
	hh := &Hasher{h: sha1cd.New()}
	hh.h.Write(t.Bytes())
	hh.h.Write([]byte(" "))
	hh.h.Write([]byte(strconv.FormatInt(size, 10)))
	hh.h.Write([]byte{0})
	return hh
}

func (h *Hasher) Write(p []byte) (int, error) { return h.h.Write(p) }

// Sum returns the computed Hash.
func (h *Hasher) Sum() Hash {
	var out Hash
	copy(out[:], h.h.Sum(nil))
	return out
}
