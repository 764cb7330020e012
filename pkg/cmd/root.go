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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// NewRootCmd constructs the base command along with all of its subcommands.
// Every invocation produces a fresh command tree, such that flag values never
// leak from one execution into another.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitkit",
		Short: "A toolkit for bit-level manipulation of 32-bit words.",
		Long: `A toolkit for bit-level manipulation of 32-bit words.  This converts
numerals to and from words, packs and extracts bytes and nibbles, and
inspects words as 32-bit vectors.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprint(cmd.OutOrStdout(), "bitkit ")
				if Version != "" {
					// Built via "make"
					fmt.Fprintf(cmd.OutOrStdout(), "%s", Version)
				} else if info, ok := debug.ReadBuildInfo(); ok {
					// Built via "go install"
					fmt.Fprintf(cmd.OutOrStdout(), "%s", info.Main.Version)
				} else {
					// Unknown, perhaps "go run"
					fmt.Fprintf(cmd.OutOrStdout(), "(unknown version)")
				}
				fmt.Fprintln(cmd.OutOrStdout())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
			}
		},
	}
	//
	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().String("colour", "auto", "when to highlight output (auto, always or never)")
	// Numeral commands
	root.AddCommand(newDecodeCmd(), newEncodeCmd(), newConvertCmd())
	// Packing commands
	root.AddCommand(newSetByteCmd(), newGetByteCmd(), newNibbleCmd(), newPackCmd(), newUnpackCmd())
	root.AddCommand(newRangeCmd(), newXorCmd(), newPow2Cmd())
	// Vector commands
	root.AddCommand(newVectorCmd())
	//
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
