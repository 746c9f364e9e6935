package obfuscate

import "strings"

// transformOutsideStrings applies fn to every region of code lying outside
// double-quoted string literals, walking the text once. Escaped quotes stay
// inside their literal. A quote with no closing partner is treated as plain
// code rather than swallowing the rest of the file.
func transformOutsideStrings(code string, fn func(string) string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(code); {
		if code[i] != '"' {
			i++
			continue
		}
		end := closingQuote(code, i)
		if end < 0 {
			break
		}
		b.WriteString(fn(code[start:i]))
		b.WriteString(code[i : end+1])
		start = end + 1
		i = start
	}
	b.WriteString(fn(code[start:]))
	return b.String()
}

// closingQuote returns the index of the double quote closing the literal
// opened at open, or -1 when the literal never closes.
func closingQuote(code string, open int) int {
	for i := open + 1; i < len(code); {
		switch code[i] {
		case '\\':
			i += 2
		case '"':
			return i
		default:
			i++
		}
	}
	return -1
}
