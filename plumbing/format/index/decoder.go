package index

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cyucelen/govcs/plumbing/filemode"
)

// ErrMalformedSignature is returned when the file does not start with
// "DIRC", and is wrapped when an entry's path is not NUL-terminated.
var ErrMalformedSignature = errors.New("malformed index signature")

const (
	entryHeaderLength = 62
	nameMask          = 0xfff
)

// Decoder reads an Index from its binary DIRC v2 form.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads a whole index file into idx. It does not implement the
// trailing checksum or TREE/REUC extensions (spec.md §4.4 non-goal).
func (d *Decoder) Decode(idx *Index) error {
	var header [4]byte
	if _, err := io.ReadFull(d.r, header[:]); err != nil {
		return err
	}
	if header != signature {
		return ErrMalformedSignature
	}

	version, err := readUint32(d.r)
	if err != nil {
		return err
	}
	if version != supportedVersion {
		return ErrUnsupportedVersion
	}
	idx.Version = version

	count, err := readUint32(d.r)
	if err != nil {
		return err
	}

	idx.Entries = make([]*Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		e, err := d.readEntry()
		if err != nil {
			return fmt.Errorf("index entry %d: %w", i, err)
		}
		idx.Entries = append(idx.Entries, e)
	}

	return nil
}

func (d *Decoder) readEntry() (*Entry, error) {
	e := &Entry{}

	var sec, nsec, msec, mnsec, mode uint32
	fields := []*uint32{&sec, &nsec, &msec, &mnsec, &e.Dev, &e.Inode, &mode, &e.UID, &e.GID, &e.Size}
	for _, f := range fields {
		v, err := readUint32(d.r)
		if err != nil {
			return nil, err
		}
		*f = v
	}
	e.Mode = filemode.FileMode(mode)

	if sec != 0 || nsec != 0 {
		e.CreatedAt = time.Unix(int64(sec), int64(nsec))
	}
	if msec != 0 || mnsec != 0 {
		e.ModifiedAt = time.Unix(int64(msec), int64(mnsec))
	}

	if _, err := io.ReadFull(d.r, e.Hash[:]); err != nil {
		return nil, err
	}

	flags, err := readUint16(d.r)
	if err != nil {
		return nil, err
	}
	nameLen := int(flags & nameMask)

	name, err := d.readName(nameLen)
	if err != nil {
		return nil, err
	}
	e.Name = name

	read := entryHeaderLength + len(name)
	pad := (8 - read%8) % 8
	if _, err := io.CopyN(io.Discard, d.r, int64(pad)); err != nil {
		return nil, err
	}

	return e, nil
}

// readName reads a NUL-terminated path. If the declared length hit the
// 0xFFF cap, the name may be longer than nameLen, so it keeps reading
// until the NUL either way.
func (d *Decoder) readName(nameLen int) (string, error) {
	if nameLen < nameMask {
		buf := make([]byte, nameLen+1)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return "", err
		}
		if buf[nameLen] != 0 {
			return "", fmt.Errorf("%w: path not NUL-terminated", ErrMalformedSignature)
		}
		return string(buf[:nameLen]), nil
	}

	raw, err := d.r.ReadBytes(0)
	if err != nil {
		return "", err
	}
	return string(raw[:len(raw)-1]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func readUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}
