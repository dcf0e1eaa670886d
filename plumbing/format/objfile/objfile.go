// Package objfile implements the on-disk object frame: zlib(<kind> SP
// <size> NUL <payload>), the format every blob, tree, commit, and tag is
// stored as under objects/xx/yyyy….
package objfile

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strconv"

	"github.com/cyucelen/govcs/plumbing"
)

// WriteFrame zlib-compresses the framed form of an object (kind, size,
// payload) and writes it to w.
func WriteFrame(w io.Writer, t plumbing.ObjectType, payload []byte) error {
	zw := zlib.NewWriter(w)

	if _, err := zw.Write(t.Bytes()); err != nil {
		return err
	}
	if _, err := zw.Write([]byte(" ")); err != nil {
		return err
	}
	if _, err := zw.Write([]byte(strconv.Itoa(len(payload)))); err != nil {
		return err
	}
	if _, err := zw.Write([]byte{0}); err != nil {
		return err
	}
	if _, err := zw.Write(payload); err != nil {
		return err
	}

	return zw.Close()
}

// ReadFrame zlib-decompresses r and parses the frame, returning the kind
// and the payload bytes. It rejects an unknown kind token, a missing NUL
// separator, and a payload whose length does not match the declared size.
func ReadFrame(r io.Reader) (plumbing.ObjectType, []byte, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: %v", plumbing.ErrCorruptObject, err)
	}
	defer zr.Close()

	br := bufio.NewReader(zr)

	kindTok, err := br.ReadString(' ')
	if err != nil {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: missing kind separator", plumbing.ErrCorruptObject)
	}
	kindTok = kindTok[:len(kindTok)-1]

	t, ok := plumbing.ParseObjectType(kindTok)
	if !ok {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: unknown kind %q", plumbing.ErrInvalidType, kindTok)
	}

	lenTok, err := br.ReadString(0)
	if err != nil {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: missing NUL separator", plumbing.ErrCorruptObject)
	}
	lenTok = lenTok[:len(lenTok)-1]

	size, err := strconv.Atoi(lenTok)
	if err != nil || size < 0 {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: invalid length %q", plumbing.ErrCorruptObject, lenTok)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(br, payload); err != nil {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: truncated payload", plumbing.ErrCorruptObject)
	}

	if n, _ := br.Read(make([]byte, 1)); n != 0 {
		return plumbing.InvalidObject, nil, fmt.Errorf("%w: length mismatch", plumbing.ErrCorruptObject)
	}

	return t, payload, nil
}

// Frame returns the uncompressed pre-hash bytes for an object: the same
// bytes WriteFrame compresses and plumbing.Hasher digests.
func Frame(t plumbing.ObjectType, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Write(t.Bytes())
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(payload)))
	buf.WriteByte(0)
	buf.Write(payload)
	return buf.Bytes()
}
