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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/consensys/go-bitkit/pkg/numeral"
	"github.com/consensys/go-bitkit/pkg/util/termio"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cmd_Decode_00(t *testing.T) {
	checkExecute(t, "123\n", "decode", "123")
	checkExecute(t, "7\n-1\n", "decode", "--base", "bin", "111", "11111111111111111111111111111111")
	checkExecute(t, "166\n", "decode", "-b", "hex", "A6")
}

func Test_Cmd_Encode_00(t *testing.T) {
	checkExecute(t, "A6\n", "encode", "166")
	checkExecute(t, "0\n111\n", "encode", "--base", "bin", "0", "7")
	checkExecute(t, "FFFFFFFF\n", "encode", "--", "-1")
}

func Test_Cmd_Convert_00(t *testing.T) {
	checkExecute(t, "DEADBEEF\n", "convert", "--from", "dec", "--to", "hex", "3735928559")
	checkExecute(t, "10100110\n", "convert", "--from", "hex", "--to", "bin", "A6")
}

func Test_Cmd_Pack_00(t *testing.T) {
	checkExecute(t, "AAA517C6\n", "setbyte", "AAA5BBC6", "17", "1")
	checkExecute(t, "44B218F9\n", "setbyte", "0x56B218F9", "44", "3")
	checkExecute(t, "BE\n", "getbyte", "DEADBEEF", "1")
	checkExecute(t, "1\n", "nibble", "56781234", "3")
	checkExecute(t, "F\n", "nibble", "FF254545", "7")
	checkExecute(t, "DEADBEEF\n", "pack", "DE", "AD", "BE", "EF")
	checkExecute(t, "DE AD BE EF\n", "unpack", "DEADBEEF")
	checkExecute(t, "42\n", "range", "55555555", "5", "7")
	checkExecute(t, "-1\n", "range", "F0", "4", "4")
	checkExecute(t, "95511559\n", "xor", "12345678", "87654321")
	checkExecute(t, "1024 true\n23 false\n0 false\n-8 false\n", "pow2", "1024", "23", "0", "--", "-8")
}

func Test_Cmd_Vector_00(t *testing.T) {
	expected := strings.Join([]string{
		"bits  00000000000000000000000000010000",
		"word  00000010",
		"ones  1",
		"zeros 31",
		"size  5",
		"bit 4: set",
		"bit 40: clear",
		"",
	}, "\n")
	//
	checkExecute(t, expected, "vector", "--colour", "never", "--set", "4,40", "--query", "4,40")
}

func Test_Cmd_Vector_01(t *testing.T) {
	expected := strings.Join([]string{
		"bits  00000000000000000000000001110001",
		"word  00000071",
		"ones  4",
		"zeros 28",
		"size  7",
		"",
	}, "\n")
	//
	checkExecute(t, expected, "vector", "--toggle", "0", "--toggle", "7", "--clear", "99", "F0")
}

func Test_Cmd_Vector_02(t *testing.T) {
	var (
		out    bytes.Buffer
		config = VectorConfig{Set: []uint{0}, Colour: termio.COLOUR_ALWAYS}
	)
	//
	require.NoError(t, config.apply(&out, nil))
	assert.Contains(t, out.String(), "0\033[1;32m1\033[0m\n")
}

func Test_Cmd_Errors_00(t *testing.T) {
	tests := []struct {
		body func(io.Writer, []string) error
		args []string
	}{
		{decodeNumerals(numeral.Binary), []string{"102"}},
		{decodeNumerals(numeral.Hex), []string{"a6"}},
		{encodeIntegers(numeral.Hex), []string{"1.5"}},
		{convertNumerals(numeral.Decimal, numeral.Hex), []string{""}},
		{setByte, []string{"AAA5BBC6", "17", "4"}},
		{setByte, []string{"AAA5BBC6", "100", "1"}},
		{getByte, []string{"AAA5BBC6", "-1"}},
		{getNibble, []string{"AAA5BBC6", "8"}},
		{packBytes, []string{"DE", "AD", "BE", "EFF"}},
		{unpackWord, []string{"XYZ"}},
		{bitRange, []string{"55555555", "5", "0"}},
		{bitRange, []string{"55555555", "30", "3"}},
		{xorWords, []string{"12345678", "0y1"}},
		{powerOf2, []string{"two"}},
	}
	//
	for _, tt := range tests {
		err := tt.body(io.Discard, tt.args)
		assert.Error(t, err, "arguments %v", tt.args)
	}
}

func Test_Cmd_Parse_00(t *testing.T) {
	n, err := parseSigned("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), n)
	//
	_, err = parseSigned("-")
	assert.Equal(t, numeral.ErrEmpty, errors.Cause(err))
	//
	w, err := parseWord("0xDEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", formatWord(w))
	//
	_, err = parseIndex("3", 3)
	assert.Error(t, err)
}

// ===================================================================
// Test Helpers
// ===================================================================

// Execute a fresh command tree with the given arguments, and check the output
// matches.
func checkExecute(t *testing.T, expected string, args ...string) {
	var (
		out  bytes.Buffer
		root = NewRootCmd()
	)
	//
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), "arguments %v", args)
	assert.Equal(t, expected, out.String(), "arguments %v", args)
}
