/*
Copyright © 2026 nominal-types
*/
package eqcore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/subtype"
	"github.com/nominal-types/eqcore/types"
)

var joinCmd = &cobra.Command{
	Use:   "join T1 [T2 ...]",
	Short: "Compute the least upper bound of one or more types",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts := make([]types.Type, len(args))
		for i, a := range args {
			t, err := parseType(a)
			if err != nil {
				return err
			}
			ts[i] = t
		}
		fmt.Println(subtype.JoinAll(ts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)
}
