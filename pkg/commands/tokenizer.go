package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one argument extracted from a command line. Literal tokens came
// from a quoted run and are always treated as strings.
type Token struct {
	Text    string
	Literal bool
}

// HasCatalyst reports whether raw begins with catalyst, ignoring case.
func HasCatalyst(raw, catalyst string) bool {
	_, ok := catalystLen(raw, catalyst)
	return ok
}

// catalystLen returns the byte length of the prefix of raw that matches
// catalyst. Case variants may differ in encoded length, so the prefix is
// measured in runes.
func catalystLen(raw, catalyst string) (int, bool) {
	n := utf8.RuneCountInString(catalyst)
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(raw) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(raw[end:])
		end += size
	}
	if !strings.EqualFold(raw[:end], catalyst) {
		return 0, false
	}
	return end, true
}

// Tokenize splits a command line into its alias and argument tokens.
// ok is false when raw does not start with the catalyst.
func Tokenize(raw, catalyst string) (alias string, args []Token, ok bool) {
	n, ok := catalystLen(raw, catalyst)
	if !ok {
		return "", nil, false
	}
	rest := raw[n:]

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return rest, nil, true
	}
	return rest[:end], splitArgs(rest[end:]), true
}

// splitArgs scans whitespace-separated words and quoted runs. A quote with no
// matching partner is dropped and acts as a separator.
func splitArgs(s string) []Token {
	var out []Token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '"' || r == '\'':
			closing := strings.IndexRune(s[i+1:], r)
			if closing < 0 {
				i += size
				continue
			}
			out = append(out, Token{Text: s[i+1 : i+1+closing], Literal: true})
			i += closing + 2
		default:
			j := i
			for j < len(s) {
				r, size := utf8.DecodeRuneInString(s[j:])
				if unicode.IsSpace(r) || r == '"' || r == '\'' {
					break
				}
				j += size
			}
			out = append(out, Token{Text: s[i:j]})
			i = j
		}
	}
	return out
}

func tokenTexts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
