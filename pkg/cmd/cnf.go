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

	"github.com/consensys/go-lgroup/pkg/cnf"
	"github.com/consensys/go-lgroup/pkg/formula"
	"github.com/consensys/go-lgroup/pkg/validity"
	"github.com/spf13/cobra"
)

// cnfCmd represents the cnf command
var cnfCmd = &cobra.Command{
	Use:   "cnf [flags] formula",
	Short: "Print the normal forms used to decide a given formula.",
	Long: `Print the normal forms used to decide a given formula.
	For each direction of the formula this shows the reduced term t of the
	equivalent inequation e <= t, its conjunctive normal form, and the
	3-CNF obtained by shortening long atoms.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(4)
		}
		//
		configure(cmd)
		//
		f, err := formula.Parse(args[0])
		//
		if err != nil {
			reportSyntaxError(err)
			os.Exit(2)
		}
		//
		directions, err := validity.Directions(f)
		//
		if err != nil {
			fmt.Printf("internal error: %s\n", err)
			os.Exit(3)
		}
		// One counter for the whole formula, mirroring the decision
		// procedure.
		fresh := cnf.NewCounter()
		//
		for _, t := range directions {
			fmt.Printf("inequation: e <= %s\n", t)
			//
			normal, err := cnf.NewCNF(t, fresh)
			//
			if err != nil {
				fmt.Printf("internal error: %s\n", err)
				os.Exit(3)
			}
			//
			fmt.Printf("cnf:        %s\n", normal)
			//
			short, err := cnf.NewThreeCNF(t, fresh)
			//
			if err != nil {
				fmt.Printf("internal error: %s\n", err)
				os.Exit(3)
			}
			//
			fmt.Printf("3-cnf:      %s\n", short)
		}
	},
}

func init() {
	rootCmd.AddCommand(cnfCmd)
}
