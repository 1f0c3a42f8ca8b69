/*
Copyright © 2026 nominal-types
*/
package main

import (
	"github.com/nominal-types/eqcore/cmd/eqcore"
)

func main() {
	eqcore.Execute()
}
