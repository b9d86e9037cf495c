package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// matchChar returns a StateFn that matches exactly one occurrence of r,
// wrapping it in an Enter/Exit(typ) pair, and fails (with nothing
// consumed or emitted) on any other code.
func matchChar(r rune, typ token.Type) tokenizer.StateFn {
	return func(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
		if code.Kind != charcode.Char || code.Char != r {
			return tokenizer.Nok(), nil
		}
		t.Enter(typ)
		t.Consume(code)
		t.Exit(typ)
		return tokenizer.Ok(), nil
	}
}

func terminal(state tokenizer.State) tokenizer.StateFn {
	return func(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
		return state, nil
	}
}

func TestAttempt_commitsOnOk(t *testing.T) {
	tok := tokenizer.New()
	start := tok.Attempt(matchChar('a', token.Content), func(ok bool) tokenizer.StateFn {
		require.True(t, ok)
		return terminal(tokenizer.Ok())
	})

	state, err := tok.Feed(charcode.Decode([]byte("a")), start, true)
	require.NoError(t, err)
	assert.True(t, state.IsOk())
	require.Len(t, tok.Events, 2)
	assert.Equal(t, token.Enter, tok.Events[0].Kind)
	assert.Equal(t, token.Content, tok.Events[0].Type)
}

func TestAttempt_rollsBackOnNok(t *testing.T) {
	tok := tokenizer.New()
	start := tok.Attempt(matchChar('a', token.Content), func(ok bool) tokenizer.StateFn {
		require.False(t, ok)
		return terminal(tokenizer.Nok())
	})

	state, err := tok.Feed(charcode.Decode([]byte("b")), start, true)
	require.NoError(t, err)
	assert.True(t, state.IsNok())
	assert.Empty(t, tok.Events, "failed Attempt must leave no trace in the event log")
	assert.Equal(t, 0, tok.Index(), "failed Attempt must not advance the cursor")
}

func TestCheck_alwaysRollsBack(t *testing.T) {
	tok := tokenizer.New()
	var gotOk bool
	start := tok.Check(matchChar('a', token.Content), func(ok bool) tokenizer.StateFn {
		gotOk = ok
		return terminal(tokenizer.Ok())
	})

	state, err := tok.Feed(charcode.Decode([]byte("a")), start, true)
	require.NoError(t, err)
	assert.True(t, state.IsOk())
	assert.True(t, gotOk, "Check must still report the construct's own success")
	assert.Empty(t, tok.Events, "Check must roll back even on success")
	assert.Equal(t, 0, tok.Index())
}

func TestAttemptN_firstMatchWins(t *testing.T) {
	tok := tokenizer.New()
	candidates := []tokenizer.StateFn{
		matchChar('x', token.Content),
		matchChar('a', token.Whitespace),
		matchChar('a', token.LineEnding), // would also match, but never tried
	}
	start := tok.AttemptN(candidates, func(ok bool) tokenizer.StateFn {
		require.True(t, ok)
		return terminal(tokenizer.Ok())
	})

	state, err := tok.Feed(charcode.Decode([]byte("a")), start, true)
	require.NoError(t, err)
	assert.True(t, state.IsOk())
	require.Len(t, tok.Events, 2)
	assert.Equal(t, token.Whitespace, tok.Events[0].Type, "second candidate should have matched")
}

func TestAttemptN_noneMatchLeavesNoTrace(t *testing.T) {
	tok := tokenizer.New()
	candidates := []tokenizer.StateFn{
		matchChar('x', token.Content),
		matchChar('y', token.Whitespace),
	}
	start := tok.AttemptN(candidates, func(ok bool) tokenizer.StateFn {
		require.False(t, ok)
		return terminal(tokenizer.Nok())
	})

	state, err := tok.Feed(charcode.Decode([]byte("z")), start, true)
	require.NoError(t, err)
	assert.True(t, state.IsNok())
	assert.Empty(t, tok.Events)
}

func TestExit_mismatchedTypePanicsAsInvariantError(t *testing.T) {
	tok := tokenizer.New()
	bad := func(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
		t.Enter(token.Content)
		t.Exit(token.Whitespace) // wrong type: top of stack is Content
		return tokenizer.Ok(), nil
	}

	_, err := tok.Feed(charcode.Decode([]byte("a")), bad, true)
	require.Error(t, err)
	var ie *tokenizer.InvariantError
	assert.ErrorAs(t, err, &ie)
}
