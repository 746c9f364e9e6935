// Package namegen produces pools of replacement identifiers for renaming.
package namegen

import (
	"fmt"
	mathrand "math/rand"
)

// Style selects the flavor of generated names.
type Style int

const (
	// Short yields terse lowercase names like "x" or "q7".
	Short Style = iota
	// Underscore yields underscore-prefixed names like "__k" or "_q4".
	Underscore
	// Confusable yields visually ambiguous mixes of O/0, l/1/I and o.
	Confusable
)

const (
	shortLetters = "xyzqwkjvnmftbpdr"
	pairLetters  = "xyzqw"
	digits       = "0123456789"
	// Underscore names draw their tails from letters and digits alike.
	underscoreAlphabet = shortLetters + digits
)

var underscorePrefixes = []string{"_", "__", "___"}

// confusables are valid C identifiers built from glyphs that are easy to
// mistake for one another in most fonts.
var confusables = []string{
	"O0", "l1", "Il", "lI", "O0l", "l1I", "I1l", "OO0", "ll1", "Ill", "lll", "III",
	"oO0", "O0o", "_O", "_0", "_l", "_I", "__O", "__0", "__l", "__I", "O_0", "l_1",
	"I_l", "_O0", "_l1", "_Il", "OOO", "lll1", "IlI", "lIl", "IIl", "O0O0", "l1l1",
	"IlIl", "O00O", "l11l", "oOoO", "Oo0O", "oO0o", "lO0l", "IlO0", "OlIl", "lIO0",
	"O0Il", "Il0O", "lO0I",
}

var confusableSuffixes = []string{"_", "0", "1"}

// Pool returns n distinct replacement names in random order. The same rng
// state always yields the same pool, which is what makes seeded runs
// reproducible.
func Pool(n int, style Style, rng *mathrand.Rand) []string {
	var pool []string
	switch style {
	case Short:
		pool = shortPool(n)
	case Underscore:
		pool = underscorePool(n)
	default:
		pool = confusablePool(n, rng)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

// shortPool starts from 16 single letters, then letter+digit pairs. Past
// that the digit tail widens until the pool is large enough.
func shortPool(n int) []string {
	pool := make([]string, 0, max(n, len(shortLetters)+len(pairLetters)*len(digits)))
	for _, c := range shortLetters {
		pool = append(pool, string(c))
	}
	for _, a := range pairLetters {
		for _, d := range digits {
			pool = append(pool, string(a)+string(d))
		}
	}
	for width := 2; len(pool) < n; width++ {
		for _, a := range pairLetters {
			appendDigitTails(&pool, string(a), width)
		}
	}
	return pool
}

// underscorePool crosses one, two and three leading underscores with single
// alphabet characters, widening the tail past the base 78 combinations.
func underscorePool(n int) []string {
	pool := make([]string, 0, max(n, len(underscorePrefixes)*len(underscoreAlphabet)))
	for _, p := range underscorePrefixes {
		for _, c := range underscoreAlphabet {
			pool = append(pool, p+string(c))
		}
	}
	for width := 2; len(pool) < n; width++ {
		for _, p := range underscorePrefixes {
			appendAlphabetTails(&pool, p, underscoreAlphabet, width)
		}
	}
	return pool
}

// confusablePool extends the curated list by appending random suffix
// characters to random entries. A used-set guarantees every entry is
// distinct no matter how far past the curated list the pool grows.
func confusablePool(n int, rng *mathrand.Rand) []string {
	pool := append([]string(nil), confusables...)
	if n <= len(pool) {
		return pool
	}
	used := make(map[string]bool, n)
	for _, name := range pool {
		used[name] = true
	}
	for len(pool) < n {
		name := confusables[rng.Intn(len(confusables))]
		for used[name] {
			name += confusableSuffixes[rng.Intn(len(confusableSuffixes))]
		}
		used[name] = true
		pool = append(pool, name)
	}
	return pool
}

func appendDigitTails(pool *[]string, prefix string, width int) {
	count := 1
	for i := 0; i < width; i++ {
		count *= len(digits)
	}
	for i := 0; i < count; i++ {
		*pool = append(*pool, fmt.Sprintf("%s%0*d", prefix, width, i))
	}
}

func appendAlphabetTails(pool *[]string, prefix, alphabet string, width int) {
	if width == 0 {
		*pool = append(*pool, prefix)
		return
	}
	for _, c := range alphabet {
		appendAlphabetTails(pool, prefix+string(c), alphabet, width-1)
	}
}
