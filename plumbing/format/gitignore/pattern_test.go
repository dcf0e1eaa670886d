package gitignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSimpleMatch_atStart(t *testing.T) {
	p := ParsePattern("value", nil)
	assert.Equal(t, Exclude, p.Match([]string{"value", "tail"}, false))
}

func TestPatternSimpleMatch_inTheMiddle(t *testing.T) {
	p := ParsePattern("value", nil)
	assert.Equal(t, Exclude, p.Match([]string{"head", "value", "tail"}, false))
}

func TestPatternSimpleMatch_atEnd(t *testing.T) {
	p := ParsePattern("value", nil)
	assert.Equal(t, Exclude, p.Match([]string{"head", "value"}, false))
}

func TestPatternSimpleMatch_atStart_dirWanted(t *testing.T) {
	p := ParsePattern("value/", nil)
	assert.Equal(t, Exclude, p.Match([]string{"value", "tail"}, false))
}

func TestPatternSimpleMatch_inTheMiddle_dirWanted(t *testing.T) {
	p := ParsePattern("value/", nil)
	assert.Equal(t, Exclude, p.Match([]string{"head", "value", "tail"}, false))
}

func TestPatternSimpleMatch_atEnd_dirWanted_mismatch(t *testing.T) {
	p := ParsePattern("value/", nil)
	assert.Equal(t, NoMatch, p.Match([]string{"head", "value"}, false))
}

func TestPatternSimpleMatch_atEnd_dirWanted(t *testing.T) {
	p := ParsePattern("value/", nil)
	assert.Equal(t, Exclude, p.Match([]string{"head", "value"}, true))
}

func TestPatternSimpleMatch_withDomain(t *testing.T) {
	p := ParsePattern("middle/", []string{"value", "volcano"})
	assert.Equal(t, Exclude, p.Match([]string{"value", "volcano", "middle", "tail"}, false))
}

func TestPatternSimpleMatch_onlyMatchInDomain_mismatch(t *testing.T) {
	p := ParsePattern("volcano/", []string{"value", "volcano"})
	assert.Equal(t, NoMatch, p.Match([]string{"value", "volcano", "tail"}, true))
}

func TestPatternMatch_domainLonger_mismatch(t *testing.T) {
	p := ParsePattern("value", []string{"head", "middle", "tail"})
	assert.Equal(t, NoMatch, p.Match([]string{"head", "middle"}, false))
}

func TestPatternMatch_domainSameLength_mismatch(t *testing.T) {
	p := ParsePattern("value", []string{"head", "middle", "tail"})
	assert.Equal(t, NoMatch, p.Match([]string{"head", "middle", "tail"}, false))
}

func TestPatternMatch_domainMismatch_mismatch(t *testing.T) {
	p := ParsePattern("value", []string{"head", "middle", "tail"})
	assert.Equal(t, NoMatch, p.Match([]string{"head", "middle", "_tail_", "value"}, false))
}

func TestPatternMatch_anchoredAtRoot(t *testing.T) {
	p := ParsePattern("/value", nil)
	assert.Equal(t, Exclude, p.Match([]string{"value"}, false))
	assert.Equal(t, NoMatch, p.Match([]string{"head", "value"}, false))
}

func TestPatternMatch_anchoredDescendant(t *testing.T) {
	p := ParsePattern("/value/", nil)
	assert.Equal(t, Exclude, p.Match([]string{"value", "tail"}, false))
}

func TestPatternMatch_multiSegmentAnchored(t *testing.T) {
	p := ParsePattern("a/b", nil)
	assert.Equal(t, Exclude, p.Match([]string{"a", "b"}, false))
	assert.Equal(t, Exclude, p.Match([]string{"a", "b", "c"}, false))
	assert.Equal(t, NoMatch, p.Match([]string{"x", "a", "b"}, false))
}

func TestPatternMatch_inverse(t *testing.T) {
	p := ParsePattern("!value", nil)
	assert.Equal(t, Include, p.Match([]string{"value"}, false))
}

func TestPatternMatch_glob(t *testing.T) {
	p := ParsePattern("*.log", nil)
	assert.Equal(t, Exclude, p.Match([]string{"debug.log"}, false))
	assert.Equal(t, NoMatch, p.Match([]string{"debug.txt"}, false))
}
