package constructs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/token"
)

type kt struct {
	Kind token.Kind
	Type token.Type
}

func events(t *testing.T, input string) []kt {
	t.Helper()
	tok, err := constructs.Tokenize([]byte(input))
	require.NoError(t, err)
	out := make([]kt, len(tok.Events))
	for i, e := range tok.Events {
		out[i] = kt{e.Kind, e.Type}
	}
	return out
}

func text(t *testing.T, input string, enterIdx, exitIdx int) string {
	t.Helper()
	tok, err := constructs.Tokenize([]byte(input))
	require.NoError(t, err)
	return charcode.Text(tok.Codes[tok.Events[enterIdx].Index:tok.Events[exitIdx].Index])
}

func TestHeadingAtx_simple(t *testing.T) {
	got := events(t, "# foo")
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
	assert.Equal(t, want, got)
	assert.Equal(t, "foo", text(t, "# foo", 5, 6))
}

func TestHeadingAtx_emptyText(t *testing.T) {
	// "## " has a sequence, trailing whitespace, and an empty text span.
	got := events(t, "## ")
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
	assert.Equal(t, want, got)
	assert.Equal(t, "", text(t, "## ", 5, 6))
}

func TestThematicBreak_simple(t *testing.T) {
	got := events(t, "***\n")
	want := []kt{
		{token.Enter, token.ThematicBreak},
		{token.Enter, token.ThematicBreakSequence},
		{token.Exit, token.ThematicBreakSequence},
		{token.Exit, token.ThematicBreak},
		{token.Enter, token.LineEnding},
		{token.Exit, token.LineEnding},
	}
	assert.Equal(t, want, got)
}

func TestBlankLine_betweenParagraphs(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("a\n\nb"))
	require.NoError(t, err)

	var types []token.Type
	for _, e := range tok.Events {
		if e.Kind == token.Enter {
			types = append(types, e.Type)
		}
	}
	want := []token.Type{token.Content, token.ChunkContent, token.LineEnding, token.BlankLineEnding, token.Content, token.ChunkContent}
	assert.Equal(t, want, types)
}

func TestDefinition_literalDestinationWithTitle(t *testing.T) {
	tok, err := constructs.Tokenize([]byte(`[foo]: <bar> "baz"`))
	require.NoError(t, err)

	var types []token.Type
	for _, e := range tok.Events {
		if e.Kind == token.Enter {
			types = append(types, e.Type)
		}
	}
	assert.Contains(t, types, token.Definition)
	assert.Contains(t, types, token.DefinitionDestinationLiteral)
	assert.Contains(t, types, token.DefinitionTitle)
}

func TestCodeFenced_infoString(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("```go\nfmt.Println()\n```\n"))
	require.NoError(t, err)

	var sawInfo, sawChunk bool
	for i, e := range tok.Events {
		if e.Kind == token.Enter && e.Type == token.CodeFencedFenceInfo {
			sawInfo = true
			assert.Equal(t, "go", charcode.Text(tok.Codes[e.Index:tok.Events[i+1].Index]))
		}
		if e.Kind == token.Enter && e.Type == token.CodeFlowChunk {
			sawChunk = true
		}
	}
	assert.True(t, sawInfo, "expected a CodeFencedFenceInfo span")
	assert.True(t, sawChunk, "expected a CodeFlowChunk span")
}
