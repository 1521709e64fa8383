/*
 * Loom - A compact agent-oriented programming language
 *
 * Copyright Loom Language Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loomlang/loom/pretty"
)

// RenderMode selects the output format of Render
type RenderMode uint

const (
	// RenderModeHuman is the annotated-excerpt format for terminals
	RenderModeHuman RenderMode = iota
	// RenderModeMachine is a JSON array, one object per diagnostic,
	// for toolchains and agent feedback loops
	RenderModeMachine
)

// RenderOptions configures Render
type RenderOptions struct {
	Mode RenderMode
	// Location names the source in human output, e.g. a file name
	Location string
	// Color enables ANSI colors in human output
	Color bool
}

// Render renders the diagnostics against the source they were found in.
//
// The same diagnostics render in either mode: rendering never drops
// or reorders findings.
func Render(
	diagnostics []Diagnostic,
	code string,
	options RenderOptions,
) (string, error) {

	switch options.Mode {
	case RenderModeHuman:
		return renderHuman(diagnostics, code, options)

	case RenderModeMachine:
		return renderMachine(diagnostics)
	}

	return "", fmt.Errorf("unknown render mode: %d", options.Mode)
}

func renderHuman(
	diagnostics []Diagnostic,
	code string,
	options RenderOptions,
) (string, error) {

	location := options.Location
	if location == "" {
		location = "program"
	}

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, options.Color)

	for i, diagnostic := range diagnostics {
		if i > 0 {
			sb.WriteByte('\n')
		}
		err := printer.PrettyPrintError(diagnostic, location, code)
		if err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

func renderMachine(diagnostics []Diagnostic) (string, error) {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}

	encoded, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeMachine decodes machine-mode output back into diagnostics,
// e.g. on the consuming side of an agent feedback loop
func DecodeMachine(data []byte) ([]Diagnostic, error) {
	var diagnostics []Diagnostic
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, fmt.Errorf("invalid machine diagnostics: %w", err)
	}
	return diagnostics, nil
}
