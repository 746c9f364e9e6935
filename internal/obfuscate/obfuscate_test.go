package obfuscate

import (
	mathrand "math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func seededRand(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

const sumSource = "int add(int a, int b) { return a + b; } // sum\n"

func TestObfuscateMild(t *testing.T) {
	res, err := Obfuscate(sumSource, Options{Level: Mild, Rand: seededRand(11)})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsFalse(strings.Contains(res.Code, "//")))
	qt.Assert(t, qt.Equals(res.Renames.Len(), 3))
	qt.Assert(t, qt.StringContains(res.Code, "int"))
	qt.Assert(t, qt.StringContains(res.Code, "return"))
	qt.Assert(t, qt.IsFalse(strings.Contains(res.Code, "_OB_")))

	// add appears once, a and b twice each; a and b outrank add.
	qt.Assert(t, qt.Equals(res.Renames.Pairs()[2].From, "add"))

	seen := make(map[string]bool)
	for _, p := range res.Renames.Pairs() {
		qt.Assert(t, qt.IsFalse(seen[p.To]), qt.Commentf("generated name %q reused", p.To))
		seen[p.To] = true
	}
}

func TestObfuscateModerate(t *testing.T) {
	res, err := Obfuscate(sumSource, Options{Level: Moderate, Rand: seededRand(11)})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.StringContains(res.Code, "_OB_A("))
	// No include in the source, so the macro block leads the file.
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(res.Code, "#define _OB_A(a,b) ((a)+(b))")))
	qt.Assert(t, qt.Equals(strings.Count(res.Code, "#define _OB_A"), 1))
}

func TestObfuscateExtremeNumberAndFlattening(t *testing.T) {
	src := "#include <stdio.h>\nint main(void) {\n    int r = 9;\n    return 2;\n}\n"
	res, err := Obfuscate(src, Options{Level: Extreme, Rand: seededRand(21)})
	qt.Assert(t, qt.IsNil(err))

	numberForm := regexp.MustCompile(`return (2|0x2|02|\(0xFF&0x2\)|\(1\+1\)|\(1<<1\))[;)]`)
	qt.Assert(t, qt.IsTrue(numberForm.MatchString(res.Code)),
		qt.Commentf("no respelled return literal in %q", res.Code))

	// Everything after the directives collapses onto single lines.
	for _, line := range strings.Split(res.Code, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		qt.Assert(t, qt.IsFalse(strings.Contains(line, "#")),
			qt.Commentf("directive merged into %q", line))
	}
}

func TestObfuscateExtremeStringLiteralSafety(t *testing.T) {
	src := "#include <stdio.h>\nint main(void) {\n    printf(\"1 + 2\");\n    return 0;\n}\n"
	res, err := Obfuscate(src, Options{Level: Extreme, Rand: seededRand(4)})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.StringContains(res.Code, `"1 + 2"`))
}

func TestObfuscateSeededDeterminism(t *testing.T) {
	src := "#include <stdio.h>\nint twice(int n) { return n + n; }\nint main(void) { return twice(21); }\n"
	a, err := Obfuscate(src, Options{Level: Extreme, Rand: seededRand(77)})
	qt.Assert(t, qt.IsNil(err))
	b, err := Obfuscate(src, Options{Level: Extreme, Rand: seededRand(77)})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.Equals(a.Code, b.Code))
	qt.Assert(t, qt.DeepEquals(a.Renames.Pairs(), b.Renames.Pairs()))
}

func TestObfuscateDefaultsToModerate(t *testing.T) {
	res, err := Obfuscate(sumSource, Options{Rand: seededRand(2)})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(res.Code, "_OB_A("))
	qt.Assert(t, qt.IsFalse(strings.Contains(res.Code, "(1<<")))
}

func TestObfuscateFailsOnUnscannableInput(t *testing.T) {
	_, err := Obfuscate("int x = 1 @ 2;", Options{Level: Mild, Rand: seededRand(1)})
	qt.Assert(t, qt.ErrorMatches(err, `obfuscate: tokenize step failed: unscannable byte .*`))
}

func TestObfuscateExtraReserved(t *testing.T) {
	res, err := Obfuscate("int api_call(int v) { return api_call(v); }\n",
		Options{Level: Mild, Rand: seededRand(6), Reserved: []string{"api_call"}})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.StringContains(res.Code, "api_call"))
	qt.Assert(t, qt.Equals(res.Renames.Len(), 1))
}

func TestObfuscateReportsStages(t *testing.T) {
	var stages []string
	_, err := Obfuscate("int x;\n", Options{
		Level:    Mild,
		Rand:     seededRand(1),
		Observer: func(step string) { stages = append(stages, step) },
	})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.DeepEquals(stages, []string{
		"tokenize", "strip-comments", "rename-identifiers",
		"compress-whitespace", "serialize", "flatten-lines",
		"inject-macros", "obfuscate-numbers",
	}))
}

func TestLevelParsing(t *testing.T) {
	for _, name := range []string{"mild", "moderate", "extreme"} {
		level, err := ParseLevel(name)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(level.String(), name))
	}
	_, err := ParseLevel("nuclear")
	qt.Assert(t, qt.ErrorMatches(err, `unknown level "nuclear".*`))
}
