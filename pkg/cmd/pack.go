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

	"github.com/consensys/go-bitkit/pkg/pack"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// All words given to (or printed by) the packing commands are hexadecimal,
// whilst indices are decimal.

func newSetByteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setbyte word byte index",
		Short: "replace the byte of a word at a given index.",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, setByte)
		},
	}
}

func newGetByteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getbyte word index",
		Short: "extract the byte of a word at a given index.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, getByte)
		},
	}
}

func newNibbleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nibble word index",
		Short: "extract the nibble of a word at a given index.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, getNibble)
		},
	}
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack b3 b2 b1 b0",
		Short: "pack four bytes into a word (most significant first).",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, packBytes)
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack word",
		Short: "split a word into its four bytes (most significant first).",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, unpackWord)
		},
	}
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range word start count",
		Short: "extract a sign-extended range of bits from a word.",
		Long: `Extract count bits from a word, starting at bit start.  The extracted field
is interpreted as a two's complement number and printed in signed decimal.`,
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, bitRange)
		},
	}
}

func newXorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor word1 word2",
		Short: "compute the exclusive-or of two words.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, xorWords)
		},
	}
}

func newPow2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow2 n1 n2 ...",
		Short: "check whether decimal integers are powers of two.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args, powerOf2)
		},
	}
}

func setByte(out io.Writer, args []string) error {
	var (
		word, value, index int32
		err                error
	)
	//
	if word, err = parseWord(args[0]); err != nil {
		return err
	} else if value, err = parseByte(args[1]); err != nil {
		return err
	} else if index, err = parseIndex(args[2], 4); err != nil {
		return err
	}
	//
	fmt.Fprintln(out, formatWord(pack.SetByte(word, value, index)))
	//
	return nil
}

func getByte(out io.Writer, args []string) error {
	var (
		word, index int32
		err         error
	)
	//
	if word, err = parseWord(args[0]); err != nil {
		return err
	} else if index, err = parseIndex(args[1], 4); err != nil {
		return err
	}
	//
	fmt.Fprintln(out, formatWord(pack.GetByte(word, index)))
	//
	return nil
}

func getNibble(out io.Writer, args []string) error {
	var (
		word, index int32
		err         error
	)
	//
	if word, err = parseWord(args[0]); err != nil {
		return err
	} else if index, err = parseIndex(args[1], 8); err != nil {
		return err
	}
	//
	fmt.Fprintln(out, formatWord(pack.GetNibble(word, index)))
	//
	return nil
}

func packBytes(out io.Writer, args []string) error {
	var bytes [4]int32
	//
	for i, arg := range args {
		b, err := parseByte(arg)
		if err != nil {
			return err
		}
		//
		bytes[i] = b
	}
	//
	fmt.Fprintln(out, formatWord(pack.Pack(bytes[0], bytes[1], bytes[2], bytes[3])))
	//
	return nil
}

func unpackWord(out io.Writer, args []string) error {
	word, err := parseWord(args[0])
	if err != nil {
		return err
	}
	//
	b3, b2, b1, b0 := pack.Unpack(word)
	fmt.Fprintf(out, "%02X %02X %02X %02X\n", b3, b2, b1, b0)
	//
	return nil
}

func bitRange(out io.Writer, args []string) error {
	var (
		word, start, count int32
		err                error
	)
	//
	if word, err = parseWord(args[0]); err != nil {
		return err
	} else if start, err = parseIndex(args[1], 32); err != nil {
		return err
	} else if count, err = parseIndex(args[2], 32); err != nil {
		return err
	} else if count == 0 || start+count > 32 {
		return errors.Errorf("cannot extract %d bits from bit %d of a 32-bit word", count, start)
	}
	//
	fmt.Fprintln(out, pack.BitRange(word, start, count))
	//
	return nil
}

func xorWords(out io.Writer, args []string) error {
	var (
		a, b int32
		err  error
	)
	//
	if a, err = parseWord(args[0]); err != nil {
		return err
	} else if b, err = parseWord(args[1]); err != nil {
		return err
	}
	//
	fmt.Fprintln(out, formatWord(pack.Xor(a, b)))
	//
	return nil
}

func powerOf2(out io.Writer, args []string) error {
	for _, arg := range args {
		n, err := parseSigned(arg)
		if err != nil {
			return err
		}
		//
		fmt.Fprintf(out, "%s %t\n", arg, pack.PowerOf2(n))
	}
	//
	return nil
}

// Parse a byte argument, given as at most two hexadecimal digits.
func parseByte(arg string) (int32, error) {
	b, err := parseWord(arg)
	if err != nil {
		return 0, err
	} else if b < 0 || b > 0xFF {
		return 0, errors.Errorf("byte %s out of range", arg)
	}
	//
	return b, nil
}
