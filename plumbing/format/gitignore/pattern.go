// Package gitignore implements pattern parsing and matching for ignore
// rules, scoped (per-directory .gitignore) and absolute (info/exclude,
// user config).
package gitignore

import (
	"path/filepath"
	"strings"
)

// MatchResult is the outcome of matching a path against one Pattern.
type MatchResult int8

const (
	NoMatch MatchResult = iota
	Exclude
	Include
)

// Pattern is one parsed ignore rule: a shell glob, optionally anchored to
// a directory (domain), optionally inverted with a leading "!", and
// optionally restricted to directories with a trailing "/".
type Pattern struct {
	domain   []string
	pattern  []string
	inverse  bool
	dirOnly  bool
	anchored bool
}

// ParsePattern parses a single raw ignore line (as it appears in a
// .gitignore or info/exclude file, with comments and blank lines already
// filtered out by the caller) scoped under domain, the slice of path
// components of the directory the rule file lives in.
func ParsePattern(line string, domain []string) *Pattern {
	p := &Pattern{domain: domain}

	if strings.HasPrefix(line, "!") {
		p.inverse = true
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) || strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") && !strings.HasSuffix(line, `\/`) {
		p.dirOnly = true
		line = line[:len(line)-1]
	}

	if strings.HasPrefix(line, "/") {
		p.anchored = true
		line = line[1:]
	} else if strings.Contains(line, "/") {
		p.anchored = true
	}

	p.pattern = strings.Split(line, "/")

	return p
}

// Match reports how this pattern relates to path (a slice of path
// components relative to the repository root). isDir indicates whether
// the final component names a directory.
func (p *Pattern) Match(path []string, isDir bool) MatchResult {
	if len(p.domain) > len(path) {
		return NoMatch
	}
	for i, dir := range p.domain {
		if path[i] != dir {
			return NoMatch
		}
	}

	rel := path[len(p.domain):]

	if !p.matches(rel, isDir) {
		return NoMatch
	}

	if p.inverse {
		return Include
	}
	return Exclude
}

func (p *Pattern) matches(rel []string, isDir bool) bool {
	n := len(p.pattern)

	if p.anchored {
		return p.matchesAt(rel, 0, isDir)
	}

	for start := 0; start+n <= len(rel); start++ {
		if p.matchesAt(rel, start, isDir) {
			return true
		}
	}
	return false
}

// matchesAt tests whether p.pattern matches rel beginning at start,
// allowing rel to extend further (the pattern having matched an ancestor
// directory, whose contents are ignored too).
func (p *Pattern) matchesAt(rel []string, start int, isDir bool) bool {
	n := len(p.pattern)
	if start+n > len(rel) {
		return false
	}

	for i, seg := range p.pattern {
		if !p.matchSegment(seg, rel[start+i]) {
			return false
		}
	}

	isFinal := start+n == len(rel)
	if isFinal && p.dirOnly && !isDir {
		return false
	}

	return true
}

func (p *Pattern) matchSegment(glob, name string) bool {
	ok, err := filepath.Match(glob, name)
	return err == nil && ok
}
