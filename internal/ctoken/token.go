// Package ctoken splits C source text into lexeme-preserving tokens.
//
// The scanner covers the lexical subset needed for token-level rewriting:
// comments, string and character literals, line-anchored preprocessor
// directives, numeric literals, identifiers, operators, punctuation and
// whitespace runs. It does not expand the preprocessor or understand types.
package ctoken

import "strings"

// Kind classifies a token.
type Kind int

const (
	Invalid Kind = iota
	Comment
	String
	CharLit
	Directive
	Number
	Ident
	Op
	Punct
	Space
)

var kindNames = [...]string{
	Invalid:   "invalid",
	Comment:   "comment",
	String:    "string",
	CharLit:   "charlit",
	Directive: "directive",
	Number:    "number",
	Ident:     "ident",
	Op:        "op",
	Punct:     "punct",
	Space:     "space",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Token is one scanned unit. Text holds the exact matched source substring,
// so joining a freshly scanned stream reproduces the input byte for byte.
type Token struct {
	Kind Kind
	Text string
}

// Join concatenates token lexemes in order. It is the single place where a
// token stream becomes text again.
func Join(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}
