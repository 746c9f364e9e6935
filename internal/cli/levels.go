package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLevelsCmd creates the levels command.
func NewLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the obfuscation levels",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Obfuscation levels:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %s      rename identifiers, strip comments, compress whitespace\n", heading("mild"))
			fmt.Fprintf(out, "  %s  mild plus macro-based operator rewriting\n", heading("moderate"))
			fmt.Fprintf(out, "  %s   moderate plus integer respelling, line flattening and\n", heading("extreme"))
			fmt.Fprintf(out, "           aggressive whitespace removal %s\n", dim("(visually confusable names)"))
		},
	}
}
