package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/token"
)

func TestSetextHeading_promotesParagraph(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("Foo\n===\n"))
	require.NoError(t, err)

	type kt struct {
		Kind token.Kind
		Type token.Type
	}
	got := make([]kt, len(tok.Events))
	for i, e := range tok.Events {
		got[i] = kt{e.Kind, e.Type}
	}

	want := []kt{
		{token.Enter, token.HeadingSetext},
		{token.Enter, token.HeadingSetextText},
		{token.Exit, token.HeadingSetextText},
		{token.Enter, token.LineEnding},
		{token.Exit, token.LineEnding},
		{token.Enter, token.HeadingSetextUnderline},
		{token.Enter, token.HeadingSetextUnderlineSequence},
		{token.Exit, token.HeadingSetextUnderlineSequence},
		{token.Exit, token.HeadingSetextUnderline},
		{token.Enter, token.LineEnding},
		{token.Exit, token.LineEnding},
		{token.Exit, token.HeadingSetext},
	}
	assert.Equal(t, want, got)
}

func TestSetextHeading_leavesPlainParagraphAlone(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("Foo bar\n"))
	require.NoError(t, err)

	for _, e := range tok.Events {
		assert.NotEqual(t, token.HeadingSetext, e.Type)
	}
}
