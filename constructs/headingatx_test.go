package constructs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/mdflow/token"
)

// These three ports of tests/heading_atx.rs's closing-sequence cases all
// exercise the same rule: a trailing run of '#' only counts as a closing
// sequence when it is preceded by whitespace (or starts the text); a
// backslash immediately before it is never whitespace, so the run stays
// literal text in every case below, backslash and all.
func TestHeadingAtx_escapedClosingSequenceTripleHash(t *testing.T) {
	want := []kt{
		{token.Enter, token.HeadingAtx},
		{token.Enter, token.HeadingAtxSequence},
		{token.Exit, token.HeadingAtxSequence},
		{token.Enter, token.Whitespace},
		{token.Exit, token.Whitespace},
		{token.Enter, token.HeadingAtxText},
		{token.Exit, token.HeadingAtxText},
		{token.Exit, token.HeadingAtx},
	}
	got := events(t, `### foo \###`)
	assert.Equal(t, want, got)
	assert.Equal(t, `foo \###`, text(t, `### foo \###`, 5, 6))
}

func TestHeadingAtx_escapedClosingSequenceInteriorHash(t *testing.T) {
	got := events(t, `## foo #\##`)
	assert.Equal(t, `foo #\##`, text(t, `## foo #\##`, 5, 6))
	var sawText bool
	for _, e := range got {
		if e.Type == token.HeadingAtxText {
			sawText = true
		}
	}
	assert.True(t, sawText)
}

func TestHeadingAtx_escapedClosingSequenceSingleHash(t *testing.T) {
	got := events(t, `# foo \#`)
	assert.Equal(t, `foo \#`, text(t, `# foo \#`, 5, 6))
	var sawText bool
	for _, e := range got {
		if e.Type == token.HeadingAtxText {
			sawText = true
		}
	}
	assert.True(t, sawText)
}
