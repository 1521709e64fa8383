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

// Package loom verifies Loom programs: agent plans written in a small
// typed language, checked statically against the schemas of the tools
// they may call.
package loom

import (
	"fmt"

	"github.com/loomlang/loom/analysis"
	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/sema"
	"github.com/loomlang/loom/stdlib"
	"github.com/loomlang/loom/toolschema"
)

// Verify runs one verification pass over the program:
// all declarations are collected, all tool schemas bound,
// and every function body checked.
//
// Verify never panics on malformed input. An internal fault surfaces
// as a single diagnostic with code T000, and a best-effort symbol table.
//
// The inputs are not mutated, so concurrent passes may share them.
func Verify(
	program *ast.Program,
	code string,
	tools []toolschema.ToolSchema,
) (
	table *sema.SymbolTable,
	diagnostics []analysis.Diagnostic,
) {

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		var message string
		switch recovered := recovered.(type) {
		case error:
			message = recovered.Error()
		default:
			message = fmt.Sprintf("%v", recovered)
		}

		diagnostics = append(
			diagnostics,
			analysis.Diagnostic{
				Code:     "T000",
				Severity: analysis.SeverityError,
				Message:  fmt.Sprintf("internal fault: %s", message),
			},
		)
	}()

	checker, err := sema.NewChecker(
		program,
		tools,
		&sema.Config{
			PredeclaredFunctions: stdlib.DefaultBuiltinFunctions(),
		},
	)
	if err != nil {
		return nil, []analysis.Diagnostic{
			{
				Code:     "T000",
				Severity: analysis.SeverityError,
				Message:  err.Error(),
			},
		}
	}

	checkErr := checker.Check()

	table = checker.SymbolTable()
	diagnostics = analysis.Collect(checkErr, checker.Hints(), code)

	return table, diagnostics
}

// Render renders diagnostics produced by Verify
func Render(
	diagnostics []analysis.Diagnostic,
	code string,
	options analysis.RenderOptions,
) (string, error) {
	return analysis.Render(diagnostics, code, options)
}
