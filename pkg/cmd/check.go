// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-lgroup/pkg/formula"
	"github.com/consensys/go-lgroup/pkg/util/source"
	"github.com/consensys/go-lgroup/pkg/validity"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] formula",
	Short: "Check a given formula for validity in all lattice-ordered groups.",
	Long: `Check a given formula for validity in all lattice-ordered groups.
	The exit code is 0 when the formula is valid, 1 when it is not, and
	2 when it fails to parse.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(4)
		}
		// Configure log level
		configure(cmd)
		//
		os.Exit(checkFormula(args[0]))
	},
}

// checkFormula decides a single formula, printing the verdict and returning
// the corresponding exit code.
func checkFormula(input string) int {
	f, err := formula.Parse(input)
	//
	if err != nil {
		reportSyntaxError(err)
		return 2
	}
	//
	valid, err := validity.IsValid(f)
	//
	if err != nil {
		fmt.Printf("internal error: %s\n", err)
		return 3
	}
	//
	if valid {
		fmt.Println("valid")
		return 0
	}
	//
	fmt.Println("invalid")
	//
	return 1
}

// reportSyntaxError prints a syntax error along with the enclosing line of
// input and a marker underneath the offending span.
func reportSyntaxError(err error) {
	syntaxErr, ok := err.(*source.SyntaxError)
	//
	if !ok {
		fmt.Println(err)
		return
	}
	//
	line := syntaxErr.FirstEnclosingLine()
	span := syntaxErr.Span()
	// Offset of the span within its line.
	offset := span.Start() - line.Start()
	width := max(1, min(span.Length(), line.Length()-offset))
	//
	fmt.Printf("error: %s\n", syntaxErr.Message())
	fmt.Println(line.String())
	//
	for i := 0; i < offset; i++ {
		fmt.Print(" ")
	}
	//
	for i := 0; i < width; i++ {
		fmt.Print("^")
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
