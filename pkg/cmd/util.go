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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bitkit/pkg/numeral"
	"github.com/consensys/go-bitkit/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUints gets an expected list of unsigned integers, or exits if an error
// arises.
func GetUints(cmd *cobra.Command, flag string) []uint {
	r, err := cmd.Flags().GetUintSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetBase gets an expected numeral base, or exits if an error arises.
func GetBase(cmd *cobra.Command, flag string) numeral.Base {
	base, err := numeral.ParseBase(GetString(cmd, flag))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return base
}

// GetColourMode gets the colour mode in effect, or exits if an error arises.
func GetColourMode(cmd *cobra.Command) termio.ColourMode {
	mode, err := termio.ParseColourMode(GetString(cmd, "colour"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return mode
}

// Run a command body which writes to the command's output, exiting on error.
func run(cmd *cobra.Command, args []string, body func(io.Writer, []string) error) {
	log.Debugf("running %s with arguments %s", cmd.Name(), strings.Join(args, " "))
	//
	if err := body(cmd.OutOrStdout(), args); err != nil {
		log.Error(err)
		os.Exit(2)
	}
}

// Parse a (possibly negative) decimal integer argument.
func parseSigned(arg string) (int32, error) {
	var (
		negative = strings.HasPrefix(arg, "-")
		n        int32
		err      error
	)
	//
	if negative {
		n, err = numeral.ParseDecimal(arg[1:])
	} else {
		n, err = numeral.ParseDecimal(arg)
	}
	//
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", arg)
	} else if negative {
		return -n, nil
	}
	//
	return n, nil
}

// Parse a word argument, given as hexadecimal digits.  For convenience, a
// leading "0x" is permitted.
func parseWord(arg string) (int32, error) {
	n, err := numeral.ParseHex(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid word %q", arg)
	}
	//
	return n, nil
}

// Parse an index argument, given in decimal, which must be below a given
// bound.
func parseIndex(arg string, bound int32) (int32, error) {
	n, err := numeral.ParseDecimal(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid index %q", arg)
	} else if n < 0 || n >= bound {
		return 0, errors.Errorf("index %s out of range [0,%d)", arg, bound)
	}
	//
	return n, nil
}

// Format a word as (unprefixed) hexadecimal digits.
func formatWord(w int32) string {
	return numeral.EncodeHex(w)
}
