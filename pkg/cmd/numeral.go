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

	"github.com/consensys/go-bitkit/pkg/numeral"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [flags] numeral1 numeral2 ...",
		Short: "decode numerals into (signed) decimal words.",
		Long: `Decode one or more numerals of a given base into 32-bit words, which are
printed in signed decimal.  Magnitudes which exceed the word wrap silently.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, decodeNumerals(GetBase(cmd, "base")))
		},
	}
	//
	cmd.Flags().StringP("base", "b", "dec", "base of the given numerals (dec, bin or hex)")
	//
	return cmd
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [flags] n1 n2 ...",
		Short: "encode decimal integers as numerals.",
		Long: `Encode one or more (possibly negative) decimal integers as minimal numerals
of a given base.  Negative integers are encoded as their unsigned 32-bit pattern.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, encodeIntegers(GetBase(cmd, "base")))
		},
	}
	//
	cmd.Flags().StringP("base", "b", "hex", "base of the resulting numerals (dec, bin or hex)")
	//
	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] numeral1 numeral2 ...",
		Short: "convert numerals from one base to another.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, convertNumerals(GetBase(cmd, "from"), GetBase(cmd, "to")))
		},
	}
	//
	cmd.Flags().String("from", "dec", "base of the given numerals")
	cmd.Flags().String("to", "hex", "base of the resulting numerals")
	//
	return cmd
}

func decodeNumerals(base numeral.Base) func(io.Writer, []string) error {
	return func(out io.Writer, args []string) error {
		for _, arg := range args {
			n, err := numeral.Parse(base, arg)
			if err != nil {
				return err
			}
			//
			fmt.Fprintln(out, n)
		}
		//
		return nil
	}
}

func encodeIntegers(base numeral.Base) func(io.Writer, []string) error {
	return func(out io.Writer, args []string) error {
		for _, arg := range args {
			n, err := parseSigned(arg)
			if err != nil {
				return err
			}
			//
			fmt.Fprintln(out, numeral.Encode(base, n))
		}
		//
		return nil
	}
}

func convertNumerals(from, to numeral.Base) func(io.Writer, []string) error {
	return func(out io.Writer, args []string) error {
		for _, arg := range args {
			n, err := numeral.Parse(from, arg)
			if err != nil {
				return errors.Wrapf(err, "cannot convert to %s", to)
			}
			//
			log.Debugf("%s numeral %s is word %d", from, arg, n)
			//
			fmt.Fprintln(out, numeral.Encode(to, n))
		}
		//
		return nil
	}
}
