/*
Copyright © 2026 nominal-types
*/
package eqcore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/internal/fixtures"
	"github.com/nominal-types/eqcore/occurrence"
)

var narrowNegate bool

var narrowCmd = &cobra.Command{
	Use:   "narrow CURRENT ASSERTED",
	Short: "Narrow CURRENT after a positive (or, with --negate, negative) test against ASSERTED",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cur, err := parseType(args[0])
		if err != nil {
			return err
		}
		asserted, err := parseType(args[1])
		if err != nil {
			return err
		}
		reg := fixtures.Sample()
		cfg := currentContext()
		if narrowNegate {
			fmt.Println(occurrence.NarrowNegative(reg, cfg, cur, asserted))
		} else {
			fmt.Println(occurrence.NarrowPositive(reg, cfg, cur, asserted))
		}
		return nil
	},
}

func init() {
	narrowCmd.Flags().BoolVar(&narrowNegate, "negate", false, "narrow as if the test failed instead of succeeded")
	rootCmd.AddCommand(narrowCmd)
}
