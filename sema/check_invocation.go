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

package sema

import (
	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
)

func (c *Checker) checkInvocationExpression(
	invocation *ast.InvocationExpression,
) Type {

	// arguments are always checked, even when the callee is unknown
	// or the argument count is wrong: their own faults must surface
	argumentTypes := make([]Type, 0, len(invocation.Arguments))
	for _, argument := range invocation.Arguments {
		argumentTypes = append(
			argumentTypes,
			c.checkExpression(argument),
		)
	}

	name := invocation.Callee.Identifier

	symbol := c.symbols.Find(name)
	if symbol == nil || !symbol.Kind.IsCallableDeclaration() {
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindFunction,
			Name:         name,
			Candidates:   c.symbols.callableNames(),
			Pos:          invocation.Callee.Pos,
		})
		return UnknownType
	}

	if symbol.checkArgumentTypes != nil {
		return symbol.checkArgumentTypes(
			invocation,
			argumentTypes,
			c.report,
		)
	}

	functionType := symbol.FunctionType
	if functionType == nil {
		// a signature can be missing when the declaration
		// lost its name in a collision
		return UnknownType
	}

	parameters := functionType.Parameters

	if len(argumentTypes) != len(parameters) {
		c.report(&ArgumentCountError{
			FunctionName:   name,
			ParameterCount: len(parameters),
			ArgumentCount:  len(argumentTypes),
			FunctionType:   functionType,
			Range:          ast.NewRangeFromPositioned(invocation),
		})
	}

	count := len(argumentTypes)
	if len(parameters) < count {
		count = len(parameters)
	}

	for i := 0; i < count; i++ {
		parameter := parameters[i]
		argumentType := argumentTypes[i]

		if IsCompatible(argumentType, parameter.TypeAnnotation) {
			continue
		}

		c.report(&ArgumentTypeMismatchError{
			FunctionName:  name,
			ParameterName: parameter.Identifier,
			Index:         i,
			ExpectedType:  parameter.TypeAnnotation,
			ActualType:    argumentType,
			Range:         ast.NewRangeFromPositioned(invocation.Arguments[i]),
		})
	}

	return functionType.ReturnType
}
