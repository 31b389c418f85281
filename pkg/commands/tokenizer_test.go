package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_QuotedRunIsLiteral(t *testing.T) {
	alias, args, ok := Tokenize(`.cmd "a b" c`, ".")
	require.True(t, ok)
	assert.Equal(t, "cmd", alias)
	assert.Equal(t, []Token{{Text: "a b", Literal: true}, {Text: "c"}}, args)
}

func TestTokenize_SingleQuotes(t *testing.T) {
	_, args, ok := Tokenize(`.say 'hello there' 'x'`, ".")
	require.True(t, ok)
	assert.Equal(t, []Token{{Text: "hello there", Literal: true}, {Text: "x", Literal: true}}, args)
}

func TestTokenize_LoneCommand(t *testing.T) {
	alias, args, ok := Tokenize(".help", ".")
	require.True(t, ok)
	assert.Equal(t, "help", alias)
	assert.Empty(t, args)
}

func TestTokenize_NotACommand(t *testing.T) {
	_, _, ok := Tokenize("help me", ".")
	assert.False(t, ok)

	_, _, ok = Tokenize("", ".")
	assert.False(t, ok)
}

func TestTokenize_CatalystIgnoresCase(t *testing.T) {
	alias, args, ok := Tokenize("GO:ping 1", "go:")
	require.True(t, ok)
	assert.Equal(t, "ping", alias)
	assert.Equal(t, []Token{{Text: "1"}}, args)
}

func TestTokenize_UnmatchedQuoteIsDropped(t *testing.T) {
	_, args, ok := Tokenize(`.cmd "abc def`, ".")
	require.True(t, ok)
	assert.Equal(t, []Token{{Text: "abc"}, {Text: "def"}}, args)
}

func TestTokenize_QuotesSplitWords(t *testing.T) {
	_, args, ok := Tokenize(`.cmd a"b c"d`, ".")
	require.True(t, ok)
	assert.Equal(t, []Token{{Text: "a"}, {Text: "b c", Literal: true}, {Text: "d"}}, args)
}

func TestTokenize_EmptyQuotesGiveEmptyLiteral(t *testing.T) {
	_, args, ok := Tokenize(`.cmd ""   x`, ".")
	require.True(t, ok)
	assert.Equal(t, []Token{{Text: "", Literal: true}, {Text: "x"}}, args)
}

func TestTokenize_CatalystFoldsAcrossEncodings(t *testing.T) {
	// U+212A KELVIN SIGN folds to "k" but takes three bytes.
	alias, args, ok := Tokenize("\u212Aping 1", "k")
	require.True(t, ok)
	assert.Equal(t, "ping", alias)
	assert.Equal(t, []Token{{Text: "1"}}, args)
	assert.True(t, HasCatalyst("\u212A", "k"))
	assert.False(t, HasCatalyst("", "k"))
}
