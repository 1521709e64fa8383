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

// Package stdlib declares the built-in functions that are available
// to every program without a declaration.
package stdlib

import (
	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/sema"
)

// DefaultBuiltinFunctions returns the predeclared functions
// of the language, in a fixed order
func DefaultBuiltinFunctions() []sema.PredeclaredFunction {
	return []sema.PredeclaredFunction{
		{
			Name:               "len",
			CheckArgumentTypes: checkLenInvocation,
		},
		{
			Name: "str",
			FunctionType: sema.NewFunctionType(
				[]sema.Parameter{
					{Identifier: "value", TypeAnnotation: sema.NumberType},
				},
				sema.TextType,
			),
		},
		{
			Name: "num",
			FunctionType: sema.NewFunctionType(
				[]sema.Parameter{
					{Identifier: "value", TypeAnnotation: sema.TextType},
				},
				sema.NewResultType(sema.NumberType, sema.TextType),
			),
		},
		numberFunction("abs"),
		numberFunction("floor"),
		numberFunction("ceil"),
		binaryNumberFunction("min"),
		binaryNumberFunction("max"),
		{
			Name: "get",
			FunctionType: sema.NewFunctionType(
				[]sema.Parameter{
					{Identifier: "url", TypeAnnotation: sema.TextType},
				},
				sema.NewResultType(sema.TextType, sema.TextType),
			),
		},
		{
			Name:               "slice",
			CheckArgumentTypes: checkSliceInvocation,
		},
	}
}

func numberFunction(name string) sema.PredeclaredFunction {
	return sema.PredeclaredFunction{
		Name: name,
		FunctionType: sema.NewFunctionType(
			[]sema.Parameter{
				{Identifier: "value", TypeAnnotation: sema.NumberType},
			},
			sema.NumberType,
		),
	}
}

func binaryNumberFunction(name string) sema.PredeclaredFunction {
	return sema.PredeclaredFunction{
		Name: name,
		FunctionType: sema.NewFunctionType(
			[]sema.Parameter{
				{Identifier: "a", TypeAnnotation: sema.NumberType},
				{Identifier: "b", TypeAnnotation: sema.NumberType},
			},
			sema.NumberType,
		),
	}
}

// checkLenInvocation checks `len`, which accepts a list or a text
func checkLenInvocation(
	invocation *ast.InvocationExpression,
	argumentTypes []sema.Type,
	report func(error),
) sema.Type {

	if len(argumentTypes) != 1 {
		report(&sema.ArgumentCountError{
			FunctionName:   "len",
			ParameterCount: 1,
			ArgumentCount:  len(argumentTypes),
			Range:          ast.NewRangeFromPositioned(invocation),
		})
		return sema.NumberType
	}

	checkListOrText(
		"len",
		argumentTypes[0],
		invocation.Arguments[0],
		report,
	)

	return sema.NumberType
}

// checkSliceInvocation checks `slice`, which takes a list or a text
// and two number bounds, and returns its first operand's type
func checkSliceInvocation(
	invocation *ast.InvocationExpression,
	argumentTypes []sema.Type,
	report func(error),
) sema.Type {

	if len(argumentTypes) != 3 {
		report(&sema.ArgumentCountError{
			FunctionName:   "slice",
			ParameterCount: 3,
			ArgumentCount:  len(argumentTypes),
			Range:          ast.NewRangeFromPositioned(invocation),
		})
		if len(argumentTypes) == 0 {
			return sema.UnknownType
		}
	}

	resultType := checkListOrText(
		"slice",
		argumentTypes[0],
		invocation.Arguments[0],
		report,
	)

	boundNames := []string{"from", "to"}
	for i := 1; i < len(argumentTypes) && i < 3; i++ {
		if sema.IsCompatible(argumentTypes[i], sema.NumberType) {
			continue
		}
		report(&sema.ArgumentTypeMismatchError{
			FunctionName:  "slice",
			ParameterName: boundNames[i-1],
			Index:         i,
			ExpectedType:  sema.NumberType,
			ActualType:    argumentTypes[i],
			Range:         ast.NewRangeFromPositioned(invocation.Arguments[i]),
		})
	}

	return resultType
}

// checkListOrText reports a mismatch unless the argument
// is a list, a text, or already poisoned.
// It returns the argument's type, which is also the result type
// of the polymorphic built-ins.
func checkListOrText(
	functionName string,
	argumentType sema.Type,
	argument ast.Expression,
	report func(error),
) sema.Type {

	switch argumentType.(type) {
	case *sema.ListType:
		return argumentType
	}

	if argumentType == sema.TextType || argumentType == sema.UnknownType {
		return argumentType
	}

	report(&sema.TypeMismatchWithDescriptionError{
		ExpectedTypeDescription: "a list or a text",
		ActualType:              argumentType,
		Range:                   ast.NewRangeFromPositioned(argument),
	})
	return sema.UnknownType
}
