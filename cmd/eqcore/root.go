/*
Copyright © 2026 nominal-types
*/

// Package eqcore is the cobra command tree for the eqcore diagnostic
// CLI: a thin shell over the types/subtype/occurrence packages for
// exploring subtyping and narrowing decisions without embedding them
// in a full compiler front end.
package eqcore

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/types"
)

var (
	gradualTyping       bool
	unlimitedRefinement bool
)

var rootCmd = &cobra.Command{
	Use:   "eqcore",
	Short: "Explore gradual subtyping and occurrence typing decisions",
	Long: `eqcore is a diagnostic CLI over a gradual type system's subtyping and
occurrence typing engines. It does not parse a real program — each
subcommand takes one or more type expressions in a small textual
syntax (for example: eqcore subtype "'ok'" "atom()") and reports what the
engines decide about them.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&gradualTyping, "gradual", true, "enable gradual-mode subtyping widenings")
	rootCmd.PersistentFlags().BoolVar(&unlimitedRefinement, "unlimited-refinement", false, "lift the occurrence engine's clause-count refinement cap")
}

func currentContext() types.Context {
	return types.Context{GradualTyping: gradualTyping, UnlimitedRefinement: unlimitedRefinement}
}
