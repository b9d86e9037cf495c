package safe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdflow/safe"
	"github.com/jcorbin/mdflow/tokenizer"
)

func TestEscape_labelBrackets(t *testing.T) {
	got, err := safe.Escape([]tokenizer.Name{tokenizer.Definition, tokenizer.Label}, "foo[bar]", safe.Config{})
	require.NoError(t, err)
	assert.Equal(t, `foo\[bar\]`, got)
}

func TestEscape_titleQuote(t *testing.T) {
	got, err := safe.Escape([]tokenizer.Name{tokenizer.Definition, tokenizer.TitleQuote}, `say "hi"`, safe.Config{})
	require.NoError(t, err)
	assert.Equal(t, `say \"hi\"`, got)
}

func TestEscape_plainTextUntouched(t *testing.T) {
	got, err := safe.Escape([]tokenizer.Name{tokenizer.Phrasing}, "just words", safe.Config{})
	require.NoError(t, err)
	assert.Equal(t, "just words", got)
}

func TestEscape_encodeOnlyDestination(t *testing.T) {
	got, err := safe.Escape(nil, "/a b(c)", safe.Config{EncodeOnly: true})
	require.NoError(t, err)
	// Raw URL destinations percent-encode parens, not spaces.
	assert.Equal(t, "/a b%28c%29", got)
}

func TestEscape_encodeOnlyWithOpenTitleQuoteErrors(t *testing.T) {
	_, err := safe.Escape([]tokenizer.Name{tokenizer.Definition, tokenizer.TitleQuote}, "hi", safe.Config{EncodeOnly: true})
	require.Error(t, err)
	var safeErr *safe.Error
	require.ErrorAs(t, err, &safeErr)
	assert.Equal(t, tokenizer.TitleQuote, safeErr.Construct)
}

func TestQuoteFor(t *testing.T) {
	assert.Equal(t, tokenizer.TitleQuote, safe.QuoteFor("plain"))
	assert.Equal(t, tokenizer.TitleApostrophe, safe.QuoteFor(`has "quotes"`))
	assert.Equal(t, tokenizer.TitleParen, safe.QuoteFor(`has "both" and 'quotes'`))
}
