package obfuscate

import "fmt"

// Level selects obfuscation intensity. Every pass active at a level stays
// active at higher levels; only the whitespace policy changes shape instead
// of simply adding work.
type Level int

const (
	// Mild renames identifiers, strips comments and collapses whitespace.
	Mild Level = iota + 1
	// Moderate adds macro-based operator rewriting.
	Moderate
	// Extreme adds numeric respelling, line flattening and aggressive
	// whitespace removal.
	Extreme
)

var levelNames = map[Level]string{
	Mild:     "mild",
	Moderate: "moderate",
	Extreme:  "extreme",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a user-facing level name to its Level.
func ParseLevel(name string) (Level, error) {
	for l := Mild; l <= Extreme; l++ {
		if levelNames[l] == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (valid levels: mild, moderate, extreme)", name)
}
