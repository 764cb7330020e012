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
package termio

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ColourMode determines when formatted (i.e. coloured) output is produced.
type ColourMode uint8

const (
	// COLOUR_AUTO produces formatted output only when writing to a terminal.
	COLOUR_AUTO ColourMode = iota
	// COLOUR_ALWAYS produces formatted output regardless of destination.
	COLOUR_ALWAYS
	// COLOUR_NEVER produces plain output regardless of destination.
	COLOUR_NEVER
)

// ParseColourMode parses a colour mode from its name ("auto", "always" or
// "never").
func ParseColourMode(name string) (ColourMode, error) {
	switch strings.ToLower(name) {
	case "auto":
		return COLOUR_AUTO, nil
	case "always":
		return COLOUR_ALWAYS, nil
	case "never":
		return COLOUR_NEVER, nil
	}
	//
	return COLOUR_NEVER, errors.Errorf("unknown colour mode %q", name)
}

// Enabled determines whether formatted output should be written to a given
// file under this mode.
func (m ColourMode) Enabled(file *os.File) bool {
	switch m {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return file != nil && term.IsTerminal(int(file.Fd()))
	}
}
