package constructs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/constructs"
	"github.com/jcorbin/mdflow/token"
)

func TestDefinition_multiLineLabel(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("[a\nb]: /url\n"))
	require.NoError(t, err)

	var types []token.Type
	for _, e := range tok.Events {
		if e.Kind == token.Enter {
			types = append(types, e.Type)
		}
	}
	require.Contains(t, types, token.Definition)
	require.Contains(t, types, token.DefinitionLabelString)

	for i, e := range tok.Events {
		if e.Kind == token.Enter && e.Type == token.DefinitionLabelString {
			text := charcode.Text(tok.Codes[e.Index:tok.Events[i+1].Index])
			assert.Equal(t, "a\nb", text)
		}
	}
}

func TestDefinition_blankLineInLabelFails(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("[a\n\nb]: /url\n"))
	require.NoError(t, err)

	for _, e := range tok.Events {
		assert.NotEqual(t, token.Definition, e.Type)
	}
}

func TestDefinition_multiLineTitle(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("[a]: /url \"first\nsecond\"\n"))
	require.NoError(t, err)

	var sawTitle bool
	for i, e := range tok.Events {
		if e.Kind == token.Enter && e.Type == token.DefinitionTitleString {
			sawTitle = true
			text := charcode.Text(tok.Codes[e.Index:tok.Events[i+1].Index])
			assert.Equal(t, "first\nsecond", text)
		}
	}
	assert.True(t, sawTitle, "expected a DefinitionTitleString span")
}

func TestDefinition_blankLineInTitleFailsDefinition(t *testing.T) {
	tok, err := constructs.Tokenize([]byte("[a]: /url \"first\n\nsecond\"\n"))
	require.NoError(t, err)

	// The quoted text contains a blank line, so it cannot be a title; since
	// the unconsumed quote then leaves non-blank trailing content on the
	// destination's line, the whole definition fails to match.
	for _, e := range tok.Events {
		assert.NotEqual(t, token.Definition, e.Type)
	}
}
