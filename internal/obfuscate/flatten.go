package obfuscate

import "strings"

// flattenLines joins every run of non-directive lines into one long line.
// Blank lines disappear, and each preprocessor directive keeps a line of its
// own because directives are line-oriented. Inter-token spacing must already
// be safe when this runs.
func flattenLines(code string) string {
	var out []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
	}

	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
		case strings.HasPrefix(stripped, "#"):
			flush()
			out = append(out, stripped)
		default:
			buf.WriteByte(' ')
			buf.WriteString(stripped)
		}
	}
	flush()
	return strings.Join(out, "\n")
}
