package gitignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_scopedWinsOverAbsolute(t *testing.T) {
	m := NewMatcher()
	m.AddAbsolute([]*Pattern{ParsePattern("*.log", nil)})
	m.AddScoped("", []*Pattern{ParsePattern("!debug.log", nil)})

	assert.Equal(t, Include, m.Match("debug.log", false))
}

func TestMatcher_lastMatchWinsWithinScope(t *testing.T) {
	m := NewMatcher()
	m.AddScoped("", []*Pattern{
		ParsePattern("*.log", nil),
		ParsePattern("!important.log", nil),
	})

	assert.Equal(t, Include, m.Match("important.log", false))
	assert.Equal(t, Exclude, m.Match("debug.log", false))
}

func TestMatcher_fallsThroughToAncestorScope(t *testing.T) {
	m := NewMatcher()
	m.AddScoped("", []*Pattern{ParsePattern("*.log", nil)})
	m.AddScoped("sub", []*Pattern{ParsePattern("*.tmp", nil)})

	assert.Equal(t, Exclude, m.Match("sub/debug.log", false))
	assert.Equal(t, Exclude, m.Match("sub/scratch.tmp", false))
	assert.Equal(t, NoMatch, m.Match("sub/readme.md", false))
}

func TestMatcher_fallsThroughToAbsolute(t *testing.T) {
	m := NewMatcher()
	m.AddScoped("", []*Pattern{ParsePattern("*.tmp", nil)})
	m.AddAbsolute([]*Pattern{ParsePattern("*.log", nil)})

	assert.Equal(t, Exclude, m.Match("debug.log", false))
}

func TestMatcher_absolutePrecedenceOrder(t *testing.T) {
	m := NewMatcher()
	m.AddAbsolute([]*Pattern{ParsePattern("*.log", nil)})
	m.AddAbsolute([]*Pattern{ParsePattern("!debug.log", nil)})

	assert.Equal(t, Exclude, m.Match("debug.log", false))
}

func TestMatcher_notIgnored(t *testing.T) {
	m := NewMatcher()
	m.AddScoped("", []*Pattern{ParsePattern("*.log", nil)})

	assert.Equal(t, NoMatch, m.Match("readme.md", false))
}
