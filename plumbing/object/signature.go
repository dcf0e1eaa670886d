package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signature is an author or committer line: "Name <email> <unix-seconds>
// <tz-offset>".
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Decode parses one signature line, as found in a commit or tag's KVLM
// header.
func (s *Signature) Decode(line string) {
	openIdx := strings.LastIndexByte(line, '<')
	closeIdx := strings.LastIndexByte(line, '>')
	if openIdx < 0 || closeIdx < openIdx {
		s.Name = strings.TrimSpace(line)
		return
	}

	s.Name = strings.TrimSpace(line[:openIdx])
	s.Email = line[openIdx+1 : closeIdx]

	rest := strings.TrimSpace(line[closeIdx+1:])
	fields := strings.Fields(rest)
	if len(fields) < 1 {
		return
	}

	sec, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return
	}

	loc := time.UTC
	if len(fields) >= 2 {
		if l, err := parseTZ(fields[1]); err == nil {
			loc = l
		}
	}

	s.When = time.Unix(sec, 0).In(loc)
}

// String renders the signature back to its on-disk form.
func (s *Signature) String() string {
	var buf bytes.Buffer
	buf.WriteString(s.Name)
	buf.WriteString(" <")
	buf.WriteString(s.Email)
	buf.WriteString("> ")
	buf.WriteString(strconv.FormatInt(s.When.Unix(), 10))
	buf.WriteByte(' ')
	buf.WriteString(s.When.Format("-0700"))
	return buf.String()
}

// parseTZ turns a "+0300"/"-0700" offset into a fixed-zone Location.
func parseTZ(s string) (*time.Location, error) {
	if len(s) != 5 || (s[0] != '+' && s[0] != '-') {
		return nil, fmt.Errorf("malformed timezone offset %q", s)
	}
	hh, err := strconv.Atoi(s[1:3])
	if err != nil {
		return nil, err
	}
	mm, err := strconv.Atoi(s[3:5])
	if err != nil {
		return nil, err
	}
	offset := hh*3600 + mm*60
	if s[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(s, offset), nil
}
