package gitignore

import "strings"

// Matcher holds the scoped rule sets (one per directory that carries a
// .gitignore) and the absolute rule sets (info/exclude, user config),
// in precedence order, and resolves check_ignore queries against them.
type Matcher struct {
	scoped   map[string][]*Pattern
	absolute [][]*Pattern
}

// NewMatcher returns an empty Matcher. Use AddScoped/AddAbsolute to
// populate it before calling Match.
func NewMatcher() *Matcher {
	return &Matcher{scoped: make(map[string][]*Pattern)}
}

// AddScoped registers the patterns found in the .gitignore file located
// in dir (a slash-separated path relative to the repository root, ""
// for the root itself).
func (m *Matcher) AddScoped(dir string, patterns []*Pattern) {
	if len(patterns) == 0 {
		return
	}
	m.scoped[dir] = append(m.scoped[dir], patterns...)
}

// AddAbsolute registers an absolute rule set (e.g. info/exclude or the
// user's global gitignore) at the next lowest precedence.
func (m *Matcher) AddAbsolute(patterns []*Pattern) {
	if len(patterns) == 0 {
		return
	}
	m.absolute = append(m.absolute, patterns)
}

// Match resolves whether path (slash-separated, relative to the
// repository root) is ignored. It walks from the path's parent
// directory upward to the root; at the first directory carrying a
// scoped rule set, the last matching rule in that set wins outright.
// Failing that, it tries each absolute rule set in registration order
// and returns the polarity of the first one with a match. Otherwise the
// path is not ignored.
func (m *Matcher) Match(path string, isDir bool) MatchResult {
	parts := strings.Split(path, "/")

	for depth := len(parts) - 1; depth >= 0; depth-- {
		dir := strings.Join(parts[:depth], "/")
		rules, ok := m.scoped[dir]
		if !ok {
			continue
		}
		if res := matchLastWins(rules, parts, isDir); res != NoMatch {
			return res
		}
	}

	for _, rules := range m.absolute {
		if res := matchLastWins(rules, parts, isDir); res != NoMatch {
			return res
		}
	}

	return NoMatch
}

// matchLastWins evaluates rules in file order and keeps the last one
// that matches, per gitignore precedence within a single rule set.
func matchLastWins(rules []*Pattern, path []string, isDir bool) MatchResult {
	result := NoMatch
	for _, p := range rules {
		if r := p.Match(path, isDir); r != NoMatch {
			result = r
		}
	}
	return result
}
