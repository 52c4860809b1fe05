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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Check formulas interactively.",
	Long: `Check formulas interactively, one per line, until end-of-file or
	"quit".  When standard input is a terminal, lines are read with
	history and editing support.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		//
		var err error
		//
		if xterm.IsTerminal(int(os.Stdin.Fd())) {
			err = interactiveLoop()
		} else {
			err = pipedLoop(os.Stdin)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
	},
}

// interactiveLoop reads formulas with line editing and history.
func interactiveLoop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "lgroup> ",
	})
	//
	if err != nil {
		return err
	}
	//
	defer rl.Close()
	//
	for {
		line, err := rl.Readline()
		//
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		//
		if !evalLine(line) {
			return nil
		}
	}
}

// pipedLoop reads formulas from a generic input stream.
func pipedLoop(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	//
	for scanner.Scan() {
		if !evalLine(scanner.Text()) {
			return nil
		}
	}
	//
	return scanner.Err()
}

// evalLine decides one line of input, returning false when the loop should
// stop.
func evalLine(line string) bool {
	line = strings.TrimSpace(line)
	//
	switch line {
	case "":
		return true
	case "quit", "exit":
		return false
	}
	//
	checkFormula(line)
	//
	return true
}

func init() {
	rootCmd.AddCommand(replCmd)
}
