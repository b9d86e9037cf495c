package subtoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/subtoken"
	"github.com/jcorbin/mdflow/token"
)

// wrapWhole is a trivial InnerTokenizer: it wraps the entire chunk in one
// Content span, so each spliced chunk gains exactly one Enter/Exit pair.
func wrapWhole(codes []charcode.Code) ([]token.Event, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	return []token.Event{
		{Kind: token.Enter, Type: token.Content, Index: 0},
		{Kind: token.Exit, Type: token.Content, Index: len(codes)},
	}, nil
}

func TestRun_splicesUnlinkedChunkContent(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("hello\n"))
	require.NoError(t, err)

	before := len(tok.Events)
	require.NoError(t, subtoken.Run(tok, wrapWhole))

	// One ChunkContent span for a single-line paragraph gains one spliced
	// Enter/Exit(Content) pair. The second pass skips that chunk, since its
	// Enter and Exit are no longer adjacent, so Run stops after one splice.
	assert.Equal(t, before+2, len(tok.Events))

	var sawContent, inChunk bool
	for _, e := range tok.Events {
		if e.Type == token.ChunkContent {
			inChunk = e.Kind == token.Enter
			continue
		}
		if inChunk && e.Kind == token.Enter && e.Type == token.Content {
			sawContent = true
		}
	}
	assert.True(t, sawContent, "expected a spliced Content span")
}

func TestRun_ignoresNonChunkSpans(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("# foo"))
	require.NoError(t, err)
	before := len(tok.Events)

	// HeadingAtxText is not ChunkContent, so nothing should be spliced.
	require.NoError(t, subtoken.Run(tok, wrapWhole))
	assert.Equal(t, before, len(tok.Events))
}

// chunkContentEnters returns every Enter(ChunkContent) event, in log order.
func chunkContentEnters(events []token.Event) []token.Event {
	var out []token.Event
	for _, e := range events {
		if e.Kind == token.Enter && e.Type == token.ChunkContent {
			out = append(out, e)
		}
	}
	return out
}

func TestRun_concatenatesLinkedParagraphChunks(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("foo\nbar\n"))
	require.NoError(t, err)

	chunks := chunkContentEnters(tok.Events)
	require.Len(t, chunks, 2, "a two-line paragraph should produce two ChunkContent chunks")
	require.Nil(t, chunks[0].Previous)
	require.NotNil(t, chunks[0].Next)
	require.NotNil(t, chunks[1].Previous)
	require.Nil(t, chunks[1].Next)

	before := len(tok.Events)
	require.NoError(t, subtoken.Run(tok, wrapWhole))

	// wrapWhole runs once over "foo"+"bar" concatenated (the line ending
	// between the two chunks is not part of either ChunkContent span), so
	// exactly one Enter/Exit(Content) pair is spliced across the chain,
	// split at the chunk boundary rather than duplicated per chunk.
	assert.Equal(t, before+2, len(tok.Events))

	// Only the spliced pair counts, not the paragraph's own Content span
	// around the chunks.
	var enterIdx, exitIdx int = -1, -1
	inChunk := false
	for _, e := range tok.Events {
		if e.Type == token.ChunkContent {
			inChunk = e.Kind == token.Enter
			continue
		}
		if e.Type != token.Content || !inChunk {
			continue
		}
		if e.Kind == token.Enter {
			enterIdx = e.Index
		} else {
			exitIdx = e.Index
		}
	}
	require.NotEqual(t, -1, enterIdx)
	require.NotEqual(t, -1, exitIdx)
	assert.Equal(t, "foo\nbar", charcode.Text(tok.Codes[enterIdx:exitIdx]))
}

func TestRun_noInnerEventsLeavesLogUnchanged(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("hello\n"))
	require.NoError(t, err)
	before := len(tok.Events)

	noop := func(codes []charcode.Code) ([]token.Event, error) { return nil, nil }
	require.NoError(t, subtoken.Run(tok, noop))
	assert.Equal(t, before, len(tok.Events))
}
