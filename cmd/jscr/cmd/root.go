package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jscr",
	Short: "JScr lexer, parser, and AST inspector",
	Long: `jscr is a Go implementation of the JScr scripting language frontend.

JScr is a lightweight, C-family scripting language with:
  - A fixed set of primitive types (dynamic, void, bool, int, float, double, string, char)
  - Object and enum declarations
  - Lambda expressions and instant-return functions
  - Attribute-style annotations ('@Name(args)')

This tool covers the frontend only: tokenizing, parsing, and reporting
on the resulting Abstract Syntax Tree. There is no interpreter here.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
