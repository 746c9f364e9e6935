package obfuscate

import (
	"fmt"
	"math/bits"
	mathrand "math/rand"
	"regexp"
	"strconv"
)

// integerWord matches standalone decimal integers. Hex and octal literals
// never match as a whole because their leading "0" has no word boundary
// against the following character.
var integerWord = regexp.MustCompile(`\b\d+\b`)

// obfuscateNumbers replaces every standalone decimal integer outside string
// literals with a randomly chosen equivalent spelling. Occurrences of the
// same value are chosen independently.
func obfuscateNumbers(code string, rng *mathrand.Rand) string {
	return transformOutsideStrings(code, func(segment string) string {
		return integerWord.ReplaceAllStringFunc(segment, func(lit string) string {
			n, err := strconv.Atoi(lit)
			if err != nil {
				// Wider than int; leave the literal alone.
				return lit
			}
			spellings := numberSpellings(n, rng)
			return spellings[rng.Intn(len(spellings))]
		})
	})
}

// numberSpellings builds the candidate respellings of n: its decimal and hex
// forms always, a C octal and a hex-masked form for byte-sized values, one
// random additive split for anything above 1, and a shift form for powers
// of two.
func numberSpellings(n int, rng *mathrand.Rand) []string {
	spellings := []string{strconv.Itoa(n), fmt.Sprintf("%#x", n)}
	if n > 0 && n < 256 {
		spellings = append(spellings,
			fmt.Sprintf("0%o", n),
			fmt.Sprintf("(0xFF&%#x)", n))
	}
	if n > 1 {
		a := 1 + rng.Intn(n-1)
		spellings = append(spellings, fmt.Sprintf("(%d+%d)", a, n-a))
	}
	if n > 0 && n&(n-1) == 0 {
		spellings = append(spellings, fmt.Sprintf("(1<<%d)", bits.Len(uint(n))-1))
	}
	return spellings
}
