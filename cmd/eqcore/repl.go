/*
Copyright © 2026 nominal-types
*/
package eqcore

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/nominal-types/eqcore/internal/fixtures"
	"github.com/nominal-types/eqcore/subtype"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively evaluate 'T1 <: T2' subtyping queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	reg := fixtures.Sample()
	fmt.Println("eqcore repl — enter 'T1 <: T2', or 'quit'")

	for {
		input, err := line.Prompt("eqcore> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err.Error() == "EOF" {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if input == "quit" || input == "exit" {
			return nil
		}

		parts := strings.SplitN(input, "<:", 2)
		if len(parts) != 2 {
			fmt.Println("eqcore: expected 'T1 <: T2'")
			continue
		}
		t1, err := parseType(strings.TrimSpace(parts[0]))
		if err != nil {
			fmt.Println(err)
			continue
		}
		t2, err := parseType(strings.TrimSpace(parts[1]))
		if err != nil {
			fmt.Println(err)
			continue
		}
		ok := subtype.SubType(reg, currentContext(), t1, t2)
		fmt.Printf("%v\n", ok)
	}
}
