// Package obfuscate turns C source text into a semantically equivalent but
// harder-to-read variant.
//
// A run tokenizes the source, rewrites the token stream (comment stripping,
// identifier renaming, whitespace compression), serializes it, and then
// applies string-literal-safe text passes (line flattening, macro injection,
// numeric respelling). The level gates which passes do work.
package obfuscate

import (
	mathrand "math/rand"
	"time"

	"github.com/cmangle/cmangle/internal/ctoken"
	"github.com/cmangle/cmangle/internal/namegen"
	"github.com/cmangle/cmangle/internal/pipeline"
)

// Options configures one run.
type Options struct {
	// Level selects intensity; zero means Moderate.
	Level Level

	// Rand drives name-pool shuffling and numeric respelling. Equal sources
	// give byte-identical output; nil means a time-seeded source.
	Rand *mathrand.Rand

	// Reserved lists extra identifiers to protect beyond the builtin
	// keyword and libc set.
	Reserved []string

	// Observer, when set, receives each stage name before the stage runs.
	Observer pipeline.Observer
}

// Result is the outcome of one run.
type Result struct {
	// Code is the transformed source.
	Code string
	// Renames records every identifier rename, most frequent first.
	Renames *RenameMap
}

// run carries working state between pipeline stages.
type run struct {
	level    Level
	rng      *mathrand.Rand
	reserved map[string]bool
	tokens   []ctoken.Token
	code     string
	renames  *RenameMap
}

// Obfuscate transforms src at the requested level. It fails only when the
// source contains bytes the scanner cannot attribute to a token; the later
// text passes are best-effort and pass unmatched constructs through.
func Obfuscate(src string, opts Options) (Result, error) {
	level := opts.Level
	if level == 0 {
		level = Moderate
	}
	rng := opts.Rand
	if rng == nil {
		rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	r := &run{
		level:    level,
		rng:      rng,
		reserved: reservedSet(opts.Reserved),
	}

	pipe := pipeline.New[*run]("obfuscate")
	pipe.OnStep(opts.Observer)
	pipe.Add("tokenize", func(r *run) error {
		toks, err := ctoken.Scan(src)
		if err != nil {
			return err
		}
		r.tokens = toks
		return nil
	})
	pipe.Add("strip-comments", func(r *run) error {
		r.tokens = stripComments(r.tokens)
		return nil
	})
	pipe.Add("rename-identifiers", func(r *run) error {
		r.tokens, r.renames = renameIdentifiers(r.tokens, styleFor(r.level), r.reserved, r.rng)
		return nil
	})
	pipe.Add("compress-whitespace", func(r *run) error {
		r.tokens = compressWhitespace(r.tokens, r.level)
		return nil
	})
	pipe.Add("serialize", func(r *run) error {
		r.code = ctoken.Join(r.tokens)
		return nil
	})
	pipe.Add("flatten-lines", func(r *run) error {
		if r.level == Extreme {
			r.code = flattenLines(r.code)
		}
		return nil
	})
	pipe.Add("inject-macros", func(r *run) error {
		if r.level >= Moderate {
			r.code = injectMacros(r.code)
		}
		return nil
	})
	pipe.Add("obfuscate-numbers", func(r *run) error {
		if r.level == Extreme {
			r.code = obfuscateNumbers(r.code, r.rng)
		}
		return nil
	})

	if err := pipe.Execute(r); err != nil {
		return Result{}, err
	}
	return Result{Code: r.code, Renames: r.renames}, nil
}

func styleFor(l Level) namegen.Style {
	switch l {
	case Mild:
		return namegen.Short
	case Moderate:
		return namegen.Underscore
	default:
		return namegen.Confusable
	}
}
