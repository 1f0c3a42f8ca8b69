/*
Copyright © 2026 nominal-types
*/
package eqcore

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/occurrence"
)

var explainCmd = &cobra.Command{
	Use:   "explain GUARD",
	Short: "Reduce a guard expression to its proposition and DNF cubes",
	Long: `explain parses a small guard grammar (is_atom(V), is_tuple(V),
is_record(V,name), V=='ok', not(G), and(G,...), or(G,...)) and prints
the proposition it denotes plus its disjunctive-normal-form cubes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parseGuard(args[0])
		if err != nil {
			return err
		}
		p, cubes := occurrence.ExplainGuard(g)
		fmt.Printf("proposition: %s\n", p)
		fmt.Printf("cubes (%d):\n", len(cubes))
		for i, c := range cubes {
			fmt.Printf("  [%d] %# v\n", i, pretty.Formatter(c))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
