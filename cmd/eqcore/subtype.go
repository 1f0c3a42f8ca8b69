/*
Copyright © 2026 nominal-types
*/
package eqcore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/internal/fixtures"
	"github.com/nominal-types/eqcore/subtype"
)

var subtypeCmd = &cobra.Command{
	Use:   "subtype T1 T2",
	Short: "Decide whether T1 is a subtype of T2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t1, err := parseType(args[0])
		if err != nil {
			return err
		}
		t2, err := parseType(args[1])
		if err != nil {
			return err
		}
		reg := fixtures.Sample()
		ok := subtype.SubType(reg, currentContext(), t1, t2)
		fmt.Printf("%s <: %s => %v\n", t1, t2, ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subtypeCmd)
}
