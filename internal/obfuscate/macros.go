package obfuscate

import (
	"regexp"
	"strings"
)

// macroBlock is inserted once per run. Only the first three macros are wired
// to substitutions; the comparison and negation macros exist so the
// obfuscated program can reference them by hand.
var macroBlock = []string{
	"#define _OB_A(a,b) ((a)+(b))",
	"#define _OB_S(a,b) ((a)-(b))",
	"#define _OB_M(a,b) ((a)*(b))",
	"#define _OB_LT(a,b) ((a)<(b))",
	"#define _OB_GT(a,b) ((a)>(b))",
	"#define _OB_EQ(a,b) ((a)==(b))",
	"#define _OB_N(a) (!(a))",
}

// binaryRewrites run in this fixed order, each as a single textual pass, so
// an operator inside a call produced by an earlier rewrite is never
// revisited. Making this recursive could loop on overlapping patterns.
var binaryRewrites = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\b(\w+)\s*\+\s*(\w+)\b`), `_OB_A(${1},${2})`},
	{regexp.MustCompile(`\b(\w+)\s*-\s*(\w+)\b`), `_OB_S(${1},${2})`},
	{regexp.MustCompile(`\b(\w+)\s*\*\s*(\w+)\b`), `_OB_M(${1},${2})`},
}

// injectMacros rewrites simple word-operator-word expressions into macro
// calls and inserts the macro definitions as one contiguous block after the
// last top-level #include, or at the very start when no include exists.
// String literal contents are never touched.
func injectMacros(code string) string {
	code = transformOutsideStrings(code, func(segment string) string {
		for _, rw := range binaryRewrites {
			segment = rw.pattern.ReplaceAllString(segment, rw.replace)
		}
		return segment
	})

	lines := strings.Split(code, "\n")
	insert := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#include") {
			insert = i + 1
		}
	}

	out := make([]string, 0, len(lines)+len(macroBlock))
	out = append(out, lines[:insert]...)
	out = append(out, macroBlock...)
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n")
}
