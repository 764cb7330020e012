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

	"github.com/consensys/go-bitkit/pkg/bitvector"
	"github.com/consensys/go-bitkit/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// VectorConfig determines which operations are applied to a bit vector, and
// how it is subsequently reported.
type VectorConfig struct {
	// Indices of bits to set.
	Set []uint
	// Indices of bits to clear (applied after setting).
	Clear []uint
	// Indices of bits to toggle (applied after clearing).
	Toggle []uint
	// Indices of bits to query (applied last).
	Query []uint
	// Colour mode for highlighting set bits.
	Colour termio.ColourMode
}

func newVectorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vector [flags] [word]",
		Short: "manipulate and inspect a 32-bit vector.",
		Long: `Manipulate a 32-bit vector, initially holding a given (hexadecimal) word or
zero, by setting, clearing and toggling bits.  The resulting vector is then
reported along with its statistics.  Indices beyond bit 31 are ignored by
mutations, and are always reported as clear by queries.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := VectorConfig{
				Set:    GetUints(cmd, "set"),
				Clear:  GetUints(cmd, "clear"),
				Toggle: GetUints(cmd, "toggle"),
				Query:  GetUints(cmd, "query"),
				Colour: GetColourMode(cmd),
			}
			//
			run(cmd, args, config.apply)
		},
	}
	//
	cmd.Flags().UintSlice("set", nil, "indices of bits to set")
	cmd.Flags().UintSlice("clear", nil, "indices of bits to clear")
	cmd.Flags().UintSlice("toggle", nil, "indices of bits to toggle")
	cmd.Flags().UintSlice("query", nil, "indices of bits to query")
	//
	return cmd
}

func (p *VectorConfig) apply(out io.Writer, args []string) error {
	var vec = bitvector.New()
	//
	if len(args) == 1 {
		word, err := parseWord(args[0])
		if err != nil {
			return err
		}
		//
		vec = bitvector.FromWord(uint32(word))
	}
	//
	mutate("set", p.Set, vec.Set)
	mutate("clear", p.Clear, vec.Clear)
	mutate("toggle", p.Toggle, vec.Toggle)
	// Only highlight when writing to a terminal (or forced)
	file, _ := out.(*os.File)
	//
	writeVector(out, vec, p.Colour.Enabled(file))
	//
	for _, i := range p.Query {
		if vec.IsSet(i) {
			fmt.Fprintf(out, "bit %d: set\n", i)
		} else {
			fmt.Fprintf(out, "bit %d: clear\n", i)
		}
	}
	//
	return nil
}

func mutate(name string, indices []uint, fn func(uint)) {
	for _, i := range indices {
		if i >= bitvector.Width {
			log.Warnf("cannot %s bit %d beyond register (ignored)", name, i)
		}
		//
		fn(i)
	}
}

func writeVector(out io.Writer, vec *bitvector.BitVector, colour bool) {
	var bits = vec.String()
	//
	if colour {
		var (
			builder   strings.Builder
			highlight = termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN)
		)
		//
		for _, c := range bits {
			if c == '1' {
				builder.WriteString(highlight.Highlight("1"))
			} else {
				builder.WriteRune(c)
			}
		}
		//
		bits = builder.String()
	}
	//
	fmt.Fprintf(out, "bits  %s\n", bits)
	fmt.Fprintf(out, "word  %08X\n", vec.Word())
	fmt.Fprintf(out, "ones  %d\n", vec.OnesCount())
	fmt.Fprintf(out, "zeros %d\n", vec.ZerosCount())
	fmt.Fprintf(out, "size  %d\n", vec.Size())
}
