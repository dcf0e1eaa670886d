// Package kvlm implements the Key-Value List with Message format used by
// commit and tag object payloads: an ordered header multimap, a blank
// line, then a free-form body.
package kvlm

import (
	"bytes"
	"errors"
)

// ErrMalformed is returned by Decode when a header line has no space
// separator, or the blank line before the body is missing while header
// bytes remain.
var ErrMalformed = errors.New("malformed kvlm record")

// Pair is one key/value header entry. Order and duplicate keys (multiple
// "parent" lines on a merge commit) are both preserved.
type Pair struct {
	Key   string
	Value []byte
}

// Message is an ordered header multimap plus a body.
type Message struct {
	Headers []Pair
	Body    []byte
}

// Get returns the value of the first header with the given key.
func (m *Message) Get(key string) ([]byte, bool) {
	for _, p := range m.Headers {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// GetAll returns the values of every header with the given key, in order.
func (m *Message) GetAll(key string) [][]byte {
	var out [][]byte
	for _, p := range m.Headers {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// Add appends a header pair, preserving any earlier pairs with the same
// key (used for multi-parent commits).
func (m *Message) Add(key string, value []byte) {
	m.Headers = append(m.Headers, Pair{Key: key, Value: value})
}

// Decode parses raw into a Message. An empty input yields an empty
// Message (no headers, no body).
func Decode(raw []byte) (*Message, error) {
	m := &Message{}
	if len(raw) == 0 {
		return m, nil
	}

	i := 0
	for {
		if i >= len(raw) {
			return nil, ErrMalformed
		}

		if raw[i] == '\n' {
			m.Body = raw[i+1:]
			return m, nil
		}

		sp := bytes.IndexByte(raw[i:], ' ')
		nl := bytes.IndexByte(raw[i:], '\n')
		if sp < 0 || (nl >= 0 && nl < sp) {
			return nil, ErrMalformed
		}

		key := string(raw[i : i+sp])
		i += sp + 1

		var value bytes.Buffer
		for {
			lineEnd := bytes.IndexByte(raw[i:], '\n')
			if lineEnd < 0 {
				return nil, ErrMalformed
			}
			value.Write(raw[i : i+lineEnd])
			i += lineEnd + 1

			// A continuation line starts with a single leading space,
			// which is stripped; the LF that preceded it is kept.
			if i < len(raw) && raw[i] == ' ' {
				value.WriteByte('\n')
				i++
				continue
			}
			break
		}

		m.Headers = append(m.Headers, Pair{Key: key, Value: value.Bytes()})
	}
}

// Encode serializes m back into its raw form: headers, blank line, body.
func Encode(m *Message) []byte {
	var buf bytes.Buffer
	for _, p := range m.Headers {
		buf.WriteString(p.Key)
		buf.WriteByte(' ')
		buf.Write(bytes.ReplaceAll(p.Value, []byte("\n"), []byte("\n ")))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(m.Body)
	return buf.Bytes()
}
