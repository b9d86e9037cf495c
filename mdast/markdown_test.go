package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/mdast"
)

func render(t *testing.T, input string) string {
	t.Helper()
	tok, err := constructs.Tokenize([]byte(input))
	require.NoError(t, err)
	root, defs, err := mdast.Build(tok)
	require.NoError(t, err)
	return string(mdast.RenderMarkdown(root, defs))
}

func TestRenderMarkdown_heading(t *testing.T) {
	got := render(t, "# foo")
	assert.Contains(t, got, "# foo")
}

func TestRenderMarkdown_paragraph(t *testing.T) {
	got := render(t, "Foo bar\n")
	assert.Contains(t, got, "Foo bar")
}

func TestRenderMarkdown_thematicBreak(t *testing.T) {
	got := render(t, "***\n")
	assert.Contains(t, got, "***")
}

func TestRenderMarkdown_definitionAppendedAfterBody(t *testing.T) {
	got := render(t, "# foo\n\n[bar]: /baz \"qux\"\n")
	assert.Contains(t, got, "# foo")
	assert.Contains(t, got, "[bar]: /baz \"qux\"")
}

// TestRenderMarkdown_roundTripsThroughRetokenization exercises the
// tokenize -> build -> render -> tokenize -> build round trip property: a
// heading's level and text survive being fed back through the same
// pipeline that produced it.
func TestRenderMarkdown_roundTripsThroughRetokenization(t *testing.T) {
	first := render(t, "## hello")
	second := render(t, first)
	assert.Equal(t, first, second, "re-rendering an already-rendered document should be a fixed point")
}
