package obfuscate

import (
	mathrand "math/rand"
	"sort"

	"github.com/cmangle/cmangle/internal/ctoken"
	"github.com/cmangle/cmangle/internal/namegen"
)

// RenamePair records one identifier rename.
type RenamePair struct {
	From string
	To   string
}

// RenameMap holds the renames of one run, ordered by descending occurrence
// count with ties broken by first appearance. It is immutable once built.
type RenameMap struct {
	pairs []RenamePair
	index map[string]string
}

// Len reports the number of renamed identifiers.
func (m *RenameMap) Len() int { return len(m.pairs) }

// Pairs returns the renames in frequency order. Callers must not modify the
// returned slice.
func (m *RenameMap) Pairs() []RenamePair { return m.pairs }

// Lookup returns the generated name for an original identifier.
func (m *RenameMap) Lookup(orig string) (string, bool) {
	to, ok := m.index[orig]
	return to, ok
}

// renameIdentifiers tallies every non-reserved identifier, ranks the distinct
// names by descending count, and assigns each one a pool entry positionally.
// The pool is shuffled before assignment so the most frequent identifier does
// not predictably receive the shortest name.
func renameIdentifiers(toks []ctoken.Token, style namegen.Style, reserved map[string]bool, rng *mathrand.Rand) ([]ctoken.Token, *RenameMap) {
	freq := make(map[string]int)
	var firstSeen []string
	for _, t := range toks {
		if t.Kind != ctoken.Ident || reserved[t.Text] {
			continue
		}
		if _, seen := freq[t.Text]; !seen {
			firstSeen = append(firstSeen, t.Text)
		}
		freq[t.Text]++
	}

	ranked := append([]string(nil), firstSeen...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return freq[ranked[i]] > freq[ranked[j]]
	})

	pool := namegen.Pool(len(ranked), style, rng)
	m := &RenameMap{index: make(map[string]string, len(ranked))}
	for i, orig := range ranked {
		m.pairs = append(m.pairs, RenamePair{From: orig, To: pool[i]})
		m.index[orig] = pool[i]
	}

	out := make([]ctoken.Token, len(toks))
	for i, t := range toks {
		if t.Kind == ctoken.Ident {
			if to, ok := m.index[t.Text]; ok {
				t.Text = to
			}
		}
		out[i] = t
	}
	return out, m
}
