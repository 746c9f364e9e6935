package obfuscate

import (
	"strings"

	"github.com/cmangle/cmangle/internal/ctoken"
)

// stripComments drops comment tokens and keeps everything else in order.
func stripComments(toks []ctoken.Token) []ctoken.Token {
	out := make([]ctoken.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != ctoken.Comment {
			out = append(out, t)
		}
	}
	return out
}

// compressWhitespace rewrites whitespace tokens according to the level.
//
// Mild and moderate collapse every run to one newline when the run contained
// a newline, else one space. Extreme drops whitespace entirely except for a
// newline keeping a preprocessor directive on its own line, and a space
// keeping two adjacent word-like tokens from merging into one lexeme.
func compressWhitespace(toks []ctoken.Token, level Level) []ctoken.Token {
	out := make([]ctoken.Token, 0, len(toks))
	for i, t := range toks {
		if t.Kind != ctoken.Space {
			out = append(out, t)
			continue
		}
		if level != Extreme {
			if strings.ContainsRune(t.Text, '\n') {
				t.Text = "\n"
			} else {
				t.Text = " "
			}
			out = append(out, t)
			continue
		}

		var prev, next ctoken.Token
		if len(out) > 0 {
			prev = out[len(out)-1]
		}
		if i+1 < len(toks) {
			next = toks[i+1]
		}
		switch {
		case prev.Kind == ctoken.Directive || next.Kind == ctoken.Directive:
			out = append(out, ctoken.Token{Kind: ctoken.Space, Text: "\n"})
		case wordLike(prev.Kind) && wordLike(next.Kind):
			out = append(out, ctoken.Token{Kind: ctoken.Space, Text: " "})
		}
	}
	return out
}

// wordLike reports whether tokens of this kind would merge with a neighbor
// of a word-like kind if the whitespace between them were removed.
func wordLike(k ctoken.Kind) bool {
	return k == ctoken.Ident || k == ctoken.Number
}
