// SPDX-License-Identifier: MIT

// Command exact is a calculator for exact rational arithmetic, fixed-point
// approximations and matrices of fractions.
package main

import (
	"os"

	"github.com/katalvlaran/exact/cmd/exact/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
