package index

import (
	"encoding/binary"
	"io"
)

// Encoder writes an Index to its binary DIRC v2 form.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode rewrites the whole file from scratch (no incremental update, per
// the design), in idx.Entries' own order, so Decode(Encode(idx)) round-
// trips field-for-field.
func (e *Encoder) Encode(idx *Index) error {
	if err := e.writeHeader(len(idx.Entries)); err != nil {
		return err
	}

	for _, entry := range idx.Entries {
		if err := e.writeEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) writeHeader(count int) error {
	if _, err := e.w.Write(signature[:]); err != nil {
		return err
	}
	if err := writeUint32(e.w, supportedVersion); err != nil {
		return err
	}
	return writeUint32(e.w, uint32(count))
}

func (e *Encoder) writeEntry(entry *Entry) error {
	var sec, nsec, msec, mnsec uint32
	if !entry.CreatedAt.IsZero() {
		sec, nsec = uint32(entry.CreatedAt.Unix()), uint32(entry.CreatedAt.Nanosecond())
	}
	if !entry.ModifiedAt.IsZero() {
		msec, mnsec = uint32(entry.ModifiedAt.Unix()), uint32(entry.ModifiedAt.Nanosecond())
	}

	fields := []uint32{
		sec, nsec, msec, mnsec,
		entry.Dev, entry.Inode, uint32(entry.Mode), entry.UID, entry.GID, entry.Size,
	}
	for _, f := range fields {
		if err := writeUint32(e.w, f); err != nil {
			return err
		}
	}

	if _, err := e.w.Write(entry.Hash[:]); err != nil {
		return err
	}

	nameLen := len(entry.Name)
	flags := uint16(nameLen)
	if nameLen > nameMask {
		flags = nameMask
	}
	if err := writeUint16(e.w, flags); err != nil {
		return err
	}

	if _, err := io.WriteString(e.w, entry.Name); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte{0}); err != nil {
		return err
	}

	read := entryHeaderLength + nameLen
	pad := (8 - read%8) % 8
	if pad > 0 {
		if _, err := e.w.Write(make([]byte, pad)); err != nil {
			return err
		}
	}

	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
