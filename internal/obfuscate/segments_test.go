package obfuscate

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func upperOutside(code string) string {
	return transformOutsideStrings(code, strings.ToUpper)
}

func TestTransformOutsideStrings(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a "b" c`, `A "b" C`},
		{`no strings here`, `NO STRINGS HERE`},
		{`"only a string"`, `"only a string"`},
		{`x "esc \" quote" y`, `X "esc \" quote" Y`},
		{`a "one" b "two" c`, `A "one" B "two" C`},
		{``, ``},
	}
	for _, tc := range cases {
		qt.Assert(t, qt.Equals(upperOutside(tc.in), tc.want), qt.Commentf("input %q", tc.in))
	}
}

func TestTransformOutsideStringsUnterminatedQuote(t *testing.T) {
	// An unclosed quote is plain code, not a string swallowing the rest.
	qt.Assert(t, qt.Equals(upperOutside(`a " b`), `A " B`))
}
