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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/errors"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `fn f(): Number { 1 }`
	lineCount := len(strings.Split(code, "\n"))

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		"test",
		code,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   let x = 1"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 9,
				},
			},
		},
		"test",
		code,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   let x = 1\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

type testNote struct {
	message string
	ast.Range
}

func (n testNote) Message() string {
	return n.message
}

type testCodedError struct {
	ast.Range
}

func (testCodedError) Error() string {
	return "cannot find variable in this scope: `naem`"
}

func (testCodedError) SecondaryError() string {
	return "there is a variable named `name`"
}

func (testCodedError) DiagnosticCode() string {
	return "T004"
}

func (e testCodedError) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		testNote{
			message: "declared here",
			Range: ast.Range{
				StartPos: ast.Position{Line: 2, Column: 4},
				EndPos:   ast.Position{Line: 2, Column: 7},
			},
		},
	}
}

func TestPrintCodeAndNotes(t *testing.T) {

	t.Parallel()

	const code = "let x = naem\nlet name = 1"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testCodedError{
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 8},
				EndPos:   ast.Position{Line: 1, Column: 11},
			},
		},
		"plan.loom",
		code,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error[T004]: cannot find variable in this scope: `naem`\n"+
			" --> plan.loom:1:8\n"+
			"  |\n"+
			"1 | let x = naem\n"+
			"  |         ^^^^ there is a variable named `name`\n"+
			"  |\n"+
			"2 | let name = 1\n"+
			"  |     ---- declared here\n",
		sb.String(),
	)
}

type testWarning struct {
	ast.Range
}

func (testWarning) Error() string {
	return "unused variable: `x`"
}

func (testWarning) IsWarning() bool {
	return true
}

func TestPrintWarning(t *testing.T) {

	t.Parallel()

	const code = "let x = 1"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testWarning{
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 4},
				EndPos:   ast.Position{Line: 1, Column: 4},
			},
		},
		"test",
		code,
	)
	require.NoError(t, err)
	require.Equal(t,
		"warning: unused variable: `x`\n"+
			" --> test:1:4\n"+
			"  |\n"+
			"1 | let x = 1\n"+
			"  |     ^\n",
		sb.String(),
	)
}
