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

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config captures defaults which may be supplied via a toml file instead of
// on the command line.  Flags given explicitly take precedence.
type Config struct {
	// Verbose enables the debug trace of the decision procedure.
	Verbose bool `toml:"verbose"`
}

// configure applies the configuration file (if any) and the persistent flags
// of a command, in particular switching logrus to debug level when verbose
// output is requested.
func configure(cmd *cobra.Command) {
	var cfg Config
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if _, err := toml.DecodeFile(filename, &cfg); err != nil {
			fmt.Printf("reading config file %s: %s\n", filename, err)
			os.Exit(4)
		}
	}
	//
	verbose := cfg.Verbose
	//
	if cmd.Flags().Changed("verbose") {
		verbose = GetFlag(cmd, "verbose")
	}
	//
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
