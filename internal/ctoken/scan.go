package ctoken

import (
	"fmt"
	"strings"
)

// multiOps lists multi-character operators, longest first. The scanner tries
// these in order before falling back to single characters, so "<<=" wins over
// "<<" which wins over "<".
var multiOps = []string{
	"<<=", ">>=",
	"<<", ">>", "->", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"==", "!=", "<=", ">=",
}

const (
	singleOps = "+-*/%&|^~!<>=?:"
	puncts    = "{}()[];,."
)

type scanner struct {
	src string
	pos int
}

// Scan splits src into tokens. Every input byte lands in exactly one token;
// a byte that starts no alternative fails the whole scan, because silently
// dropping text would break the round-trip guarantee later passes rely on.
func Scan(src string) ([]Token, error) {
	s := &scanner{src: src}
	var toks []Token
	for s.pos < len(s.src) {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (s *scanner) next() (Token, error) {
	c := s.src[s.pos]
	switch {
	case c == '/' && s.peekAt(1) == '*':
		if tok, ok := s.blockComment(); ok {
			return tok, nil
		}
		// Unterminated block comment: "/" and "*" degrade to operators.
	case c == '/' && s.peekAt(1) == '/':
		return s.lineComment(), nil
	case c == '"':
		return s.quoted('"', String)
	case c == '\'':
		return s.quoted('\'', CharLit)
	case c == '#':
		if s.pos == 0 || s.src[s.pos-1] == '\n' {
			return s.directive(), nil
		}
		return Token{}, fmt.Errorf("unscannable byte %q at offset %d: directives must start a line", c, s.pos)
	case isDigit(c):
		return s.number(), nil
	case isIdentStart(c):
		return s.ident(), nil
	case isSpace(c):
		return s.space(), nil
	}
	if tok, ok := s.operator(); ok {
		return tok, nil
	}
	if strings.IndexByte(puncts, c) >= 0 {
		s.pos++
		return Token{Kind: Punct, Text: string(c)}, nil
	}
	return Token{}, fmt.Errorf("unscannable byte %q at offset %d", c, s.pos)
}

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanner) blockComment() (Token, bool) {
	rel := strings.Index(s.src[s.pos+2:], "*/")
	if rel < 0 {
		return Token{}, false
	}
	stop := s.pos + 2 + rel + 2
	tok := Token{Kind: Comment, Text: s.src[s.pos:stop]}
	s.pos = stop
	return tok, true
}

func (s *scanner) lineComment() Token {
	length := strings.IndexByte(s.src[s.pos:], '\n')
	if length < 0 {
		length = len(s.src) - s.pos
	}
	tok := Token{Kind: Comment, Text: s.src[s.pos : s.pos+length]}
	s.pos += length
	return tok
}

// quoted scans a string or character literal delimited by quote. Backslash
// escapes the next byte, including the delimiter.
func (s *scanner) quoted(quote byte, kind Kind) (Token, error) {
	i := s.pos + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '\\':
			i += 2
		case quote:
			tok := Token{Kind: kind, Text: s.src[s.pos : i+1]}
			s.pos = i + 1
			return tok, nil
		default:
			i++
		}
	}
	return Token{}, fmt.Errorf("unterminated %s literal at offset %d", kind, s.pos)
}

func (s *scanner) directive() Token {
	length := strings.IndexByte(s.src[s.pos:], '\n')
	if length < 0 {
		length = len(s.src) - s.pos
	}
	tok := Token{Kind: Directive, Text: s.src[s.pos : s.pos+length]}
	s.pos += length
	return tok
}

// number scans hex, octal, or decimal (with optional fraction and exponent).
// The alternatives are tried in that order rather than by overall length, so
// "0778" scans as the octal "077" followed by a second number "8".
func (s *scanner) number() Token {
	start := s.pos
	if s.src[s.pos] == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') && isHexDigit(s.peekAt(2)) {
		s.pos += 2
		for s.pos < len(s.src) && isHexDigit(s.src[s.pos]) {
			s.pos++
		}
		return Token{Kind: Number, Text: s.src[start:s.pos]}
	}
	if s.src[s.pos] == '0' && isOctalDigit(s.peekAt(1)) {
		s.pos++
		for s.pos < len(s.src) && isOctalDigit(s.src[s.pos]) {
			s.pos++
		}
		return Token{Kind: Number, Text: s.src[start:s.pos]}
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	// The exponent is consumed only when at least one digit follows the
	// optional sign; otherwise "1e" stays a number followed by an identifier.
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		j := s.pos + 1
		if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
			j++
		}
		if j < len(s.src) && isDigit(s.src[j]) {
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
			s.pos = j
		}
	}
	return Token{Kind: Number, Text: s.src[start:s.pos]}
}

func (s *scanner) ident() Token {
	start := s.pos
	for s.pos < len(s.src) && isWordByte(s.src[s.pos]) {
		s.pos++
	}
	return Token{Kind: Ident, Text: s.src[start:s.pos]}
}

func (s *scanner) space() Token {
	start := s.pos
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	return Token{Kind: Space, Text: s.src[start:s.pos]}
}

func (s *scanner) operator() (Token, bool) {
	rest := s.src[s.pos:]
	for _, op := range multiOps {
		if strings.HasPrefix(rest, op) {
			s.pos += len(op)
			return Token{Kind: Op, Text: op}, true
		}
	}
	c := s.src[s.pos]
	if strings.IndexByte(singleOps, c) >= 0 {
		s.pos++
		return Token{Kind: Op, Text: string(c)}, true
	}
	return Token{}, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
