// Package cli implements the cmangle command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var (
	successIcon = color.New(color.FgGreen).Sprint("✓")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	heading = color.New(color.Bold).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
	arrow   = color.New(color.FgCyan).Sprint("→")
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "cmangle [input]",
		Short: "Obfuscate C source code",
		Long: `Cmangle rewrites C source into a harder-to-read equivalent.

It strips comments, renames identifiers by frequency, compresses whitespace,
and at higher levels rewrites operators into macros, respells integer
literals, and flattens lines. Input comes from a file argument or stdin;
output goes to stdout or a file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runObfuscate(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write result to this file instead of stdout")
	flags.StringVarP(&opts.level, "level", "l", "", "obfuscation level: mild, moderate or extreme (default moderate)")
	flags.BoolVar(&opts.showMap, "map", false, "print the identifier rename table")
	flags.StringVar(&opts.seed, "seed", "", "seed string for reproducible output (empty = OS entropy)")
	flags.StringVar(&opts.configPath, "config", "", "config file path (default .cmangle.yaml if present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report pipeline stages on stderr")

	rootCmd.AddCommand(NewLevelsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cmangle %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		return err
	}
	return nil
}
