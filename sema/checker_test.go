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

package sema_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
	"github.com/loomlang/loom/sema"
	"github.com/loomlang/loom/stdlib"
	"github.com/loomlang/loom/test_utils"
	"github.com/loomlang/loom/toolschema"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// test helpers

func pos(offset int) ast.Position {
	return ast.Position{Offset: offset, Line: 1, Column: offset}
}

func span(start, end int) ast.Range {
	return ast.Range{StartPos: pos(start), EndPos: pos(end)}
}

func id(name string, offset int) ast.Identifier {
	return ast.NewIdentifier(name, pos(offset))
}

func nominal(name string) *ast.NominalType {
	return ast.NewNominalType(id(name, 0))
}

func resultAnnotation(okType, errType ast.Type) *ast.ResultType {
	return ast.NewResultType(okType, errType, span(0, 0))
}

func listAnnotation(element ast.Type) *ast.ListType {
	return ast.NewListType(element, span(0, 0))
}

func number(value float64) *ast.NumberExpression {
	return ast.NewNumberExpression(value, span(0, 0))
}

func text(value string) *ast.StringExpression {
	return ast.NewStringExpression(value, span(0, 0))
}

func boolean(value bool) *ast.BoolExpression {
	return ast.NewBoolExpression(value, span(0, 0))
}

func variable(name string, offset int) *ast.IdentifierExpression {
	return ast.NewIdentifierExpression(id(name, offset))
}

func call(callee string, arguments ...ast.Expression) *ast.InvocationExpression {
	return ast.NewInvocationExpression(id(callee, 0), arguments, span(0, 0))
}

func propagate(expression ast.Expression) *ast.PropagateExpression {
	return ast.NewPropagateExpression(expression, pos(0))
}

func exprStmt(expression ast.Expression) *ast.ExpressionStatement {
	return ast.NewExpressionStatement(expression)
}

func letStmt(name string, value ast.Expression) *ast.VariableDeclaration {
	return ast.NewVariableDeclaration(id(name, 0), value, span(0, 0))
}

func param(name string, annotation ast.Type) *ast.Parameter {
	return ast.NewParameter(id(name, 0), annotation, span(0, 0))
}

func fun(
	name string,
	parameters []*ast.Parameter,
	returnAnnotation ast.Type,
	statements ...ast.Statement,
) *ast.FunctionDeclaration {
	return ast.NewFunctionDeclaration(
		id(name, 0),
		ast.NewParameterList(parameters, span(0, 0)),
		returnAnnotation,
		ast.NewBlock(statements, span(0, 0)),
		span(0, 0),
	)
}

func record(name string, fields ...*ast.FieldDeclaration) *ast.RecordDeclaration {
	return ast.NewRecordDeclaration(id(name, 0), fields, span(0, 0))
}

func field(name string, annotation ast.Type) *ast.FieldDeclaration {
	return ast.NewFieldDeclaration(id(name, 0), annotation, span(0, 0))
}

func enum(name string, variants ...*ast.EnumVariantDeclaration) *ast.EnumDeclaration {
	return ast.NewEnumDeclaration(id(name, 0), variants, span(0, 0))
}

func enumVariant(name string, payload ast.Type) *ast.EnumVariantDeclaration {
	return ast.NewEnumVariantDeclaration(id(name, 0), payload, span(0, 0))
}

func alias(name string, annotation ast.Type) *ast.AliasDeclaration {
	return ast.NewAliasDeclaration(id(name, 0), annotation, span(0, 0))
}

func program(declarations ...ast.Declaration) *ast.Program {
	return &ast.Program{Declarations: declarations}
}

func checkProgram(
	t *testing.T,
	program *ast.Program,
	tools ...toolschema.ToolSchema,
) (*sema.Checker, error) {
	t.Helper()

	checker, err := sema.NewChecker(
		program,
		tools,
		&sema.Config{
			PredeclaredFunctions: stdlib.DefaultBuiltinFunctions(),
		},
	)
	require.NoError(t, err)

	return checker, checker.Check()
}

func RequireCheckerErrors(t *testing.T, err error, count int) []error {
	t.Helper()

	if count == 0 {
		require.NoError(t, err)
		return nil
	}

	require.Error(t, err)

	var checkerErr sema.CheckerError
	require.ErrorAs(t, err, &checkerErr)

	errs := checkerErr.Errors
	require.Len(t, errs, count)

	for _, err := range errs {
		test_utils.RequireError(t, err)
	}

	return errs
}

// declarations

func TestCheckRedeclaration(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"), exprStmt(number(1))),
			fun("f", nil, nominal("Number"), exprStmt(number(2))),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var redeclarationErr *sema.RedeclarationError
	require.ErrorAs(t, errs[0], &redeclarationErr)

	assert.Equal(t, "f", redeclarationErr.Name)
	assert.NotNil(t, redeclarationErr.PreviousPos)
	assert.Len(t, redeclarationErr.ErrorNotes(), 1)
}

func TestCheckCyclicAlias(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			alias("A", nominal("B")),
			alias("B", nominal("A")),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var cyclicErr *sema.CyclicAliasError
	require.ErrorAs(t, errs[0], &cyclicErr)

	assert.Equal(t, "A", cyclicErr.Name)
	assert.Equal(t, []string{"A", "B"}, cyclicErr.Cycle)
}

func TestCheckNotDeclaredType(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f",
				[]*ast.Parameter{
					param("value", nominal("Nubmer")),
				},
				nominal("Number"),
				exprStmt(number(1)),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredTypeError
	require.ErrorAs(t, errs[0], &notDeclaredErr)

	assert.Equal(t, "Nubmer", notDeclaredErr.Name)
	assert.Equal(t,
		"there is a type named `Number`",
		notDeclaredErr.SecondaryError(),
	)
}

// variables and poisoning

func TestCheckNotDeclaredVariableSuggestion(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				letStmt("name", number(1)),
				exprStmt(variable("naem", 20)),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)

	assert.Equal(t, "naem", notDeclaredErr.Name)

	// a transposition is a single edit, so `name` is close enough,
	// and the suggestion is phrased as a statement
	assert.Equal(t,
		"there is a variable named `name`",
		notDeclaredErr.SecondaryError(),
	)

	fixes := notDeclaredErr.SuggestFixes("")
	require.Len(t, fixes, 1)
	require.Len(t, fixes[0].TextEdits, 1)
	assert.Equal(t, "name", fixes[0].TextEdits[0].Replacement)
	assert.Equal(t,
		span(20, 23),
		fixes[0].TextEdits[0].Range,
	)
}

func TestCheckSuggestionThresholdCountsRunes(t *testing.T) {

	t.Parallel()

	// `時間` is two edits away from `日時`:
	// within the threshold for the six bytes, outside it for the two runes
	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				letStmt("時間", number(1)),
				exprStmt(
					ast.NewBinaryExpression(
						ast.OperationPlus,
						variable("時間", 20),
						variable("日時", 26),
					),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)

	assert.Equal(t, "日時", notDeclaredErr.Name)
	assert.Equal(t,
		"not found in this scope",
		notDeclaredErr.SecondaryError(),
	)
	assert.Empty(t, notDeclaredErr.SuggestFixes(""))
}

func TestCheckPoisoningReportsRootCauseOnce(t *testing.T) {

	t.Parallel()

	// the undefined variable is consumed by an operator
	// and a variable declaration, neither may re-report it
	checker, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				letStmt("x",
					ast.NewBinaryExpression(
						ast.OperationPlus,
						variable("naem", 10),
						number(1),
					),
				),
				exprStmt(variable("x", 30)),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)

	assert.Empty(t, checker.Hints())
}

func TestCheckRepeatedUseOfUndefinedVariable(t *testing.T) {

	t.Parallel()

	sum := func(left, right ast.Expression) *ast.BinaryExpression {
		return ast.NewBinaryExpression(ast.OperationPlus, left, right)
	}

	// four references, one root cause
	checker, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				exprStmt(
					sum(
						sum(variable("x", 10), variable("x", 14)),
						sum(variable("x", 20), variable("x", 24)),
					),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)
	assert.Equal(t, "x", notDeclaredErr.Name)
	assert.Equal(t, pos(10), notDeclaredErr.Pos)

	assert.Empty(t, checker.Hints())
}

func TestCheckUnusedVariableHint(t *testing.T) {

	t.Parallel()

	checker, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				letStmt("unused", number(1)),
				exprStmt(number(2)),
			),
		),
	)

	RequireCheckerErrors(t, err, 0)

	hints := checker.Hints()
	require.Len(t, hints, 1)

	var unusedHint *sema.UnusedVariableHint
	require.IsType(t, unusedHint, hints[0])
	assert.Equal(t, "unused", hints[0].(*sema.UnusedVariableHint).Name)
}

// invocations

func TestCheckInvocationChecksAllArguments(t *testing.T) {

	t.Parallel()

	// a wrong argument count must not short-circuit:
	// the undefined variable and the mismatched first argument
	// are reported as well
	_, err := checkProgram(t,
		program(
			fun("g",
				[]*ast.Parameter{
					param("a", nominal("Number")),
				},
				nominal("Number"),
				exprStmt(variable("a", 0)),
			),
			fun("caller", nil, nominal("Number"),
				exprStmt(call("g", boolean(true), variable("nope", 40))),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 3)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)
	assert.Equal(t, "nope", notDeclaredErr.Name)

	var countErr *sema.ArgumentCountError
	require.ErrorAs(t, errs[1], &countErr)
	assert.Equal(t, 1, countErr.ParameterCount)
	assert.Equal(t, 2, countErr.ArgumentCount)

	var mismatchErr *sema.ArgumentTypeMismatchError
	require.ErrorAs(t, errs[2], &mismatchErr)
	assert.Equal(t, 0, mismatchErr.Index)
	assert.Equal(t, sema.NumberType, mismatchErr.ExpectedType)
	assert.Equal(t, sema.BoolType, mismatchErr.ActualType)
}

func TestCheckCallableSuggestion(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("calculate", nil, nominal("Number"), exprStmt(number(1))),
			fun("caller", nil, nominal("Number"),
				exprStmt(call("calclate")),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)

	assert.Equal(t,
		"there is a function named `calculate`",
		notDeclaredErr.SecondaryError(),
	)
}

// operators

func TestCheckInvalidBinaryOperands(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Number"),
				exprStmt(
					ast.NewBinaryExpression(
						ast.OperationPlus,
						number(1),
						boolean(true),
					),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var operandsErr *sema.InvalidBinaryOperandsError
	require.ErrorAs(t, errs[0], &operandsErr)

	assert.Equal(t, sema.NumberType, operandsErr.LeftType)
	assert.Equal(t, sema.BoolType, operandsErr.RightType)
}

func TestCheckTextConcatenation(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Text"),
				exprStmt(
					ast.NewBinaryExpression(
						ast.OperationPlus,
						text("a"),
						text("b"),
					),
				),
			),
		),
	)

	RequireCheckerErrors(t, err, 0)
}

func TestCheckReturnTypeMismatch(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("k", nil, nominal("Number"), exprStmt(text("x"))),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var returnErr *sema.ReturnTypeMismatchError
	require.ErrorAs(t, errs[0], &returnErr)

	assert.Equal(t, "k", returnErr.FunctionName)
	assert.Equal(t, sema.NumberType, returnErr.ExpectedType)
	assert.Equal(t, sema.TextType, returnErr.ActualType)
}

// statements

func TestCheckGuardConditionMustBeBool(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			fun("f", nil, nominal("Unit"),
				ast.NewGuardStatement(
					number(1),
					ast.NewBlock(nil, span(0, 0)),
					span(0, 0),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var mismatchErr *sema.TypeMismatchError
	require.ErrorAs(t, errs[0], &mismatchErr)
	assert.Equal(t, sema.BoolType, mismatchErr.ExpectedType)
}

func TestCheckForLoopRequiresList(t *testing.T) {

	t.Parallel()

	checker, err := checkProgram(t,
		program(
			fun("f",
				[]*ast.Parameter{
					param("xs", listAnnotation(nominal("Number"))),
				},
				nominal("Unit"),
				ast.NewForStatement(
					id("x", 0),
					variable("xs", 0),
					ast.NewBlock(
						[]ast.Statement{
							exprStmt(variable("x", 0)),
						},
						span(0, 0),
					),
					span(0, 0),
				),
			),
			fun("g", nil, nominal("Unit"),
				ast.NewForStatement(
					id("x", 0),
					number(2),
					ast.NewBlock(nil, span(0, 0)),
					span(0, 0),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var iterableErr *sema.NotIterableError
	require.ErrorAs(t, errs[0], &iterableErr)
	assert.Equal(t, sema.NumberType, iterableErr.Type)

	// the loop variable of the second loop is never read
	require.Len(t, checker.Hints(), 1)
}

// records

func TestCheckRecordConstructionMissingFields(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			record("Point",
				field("x", nominal("Number")),
				field("y", nominal("Number")),
			),
			fun("f", nil, nominal("Number"),
				letStmt("p",
					ast.NewRecordExpression(
						id("Point", 0),
						[]ast.RecordField{
							{Identifier: id("x", 0), Value: number(1)},
						},
						span(0, 0),
					),
				),
				exprStmt(
					ast.NewMemberExpression(
						variable("p", 0),
						id("x", 0),
						pos(0),
					),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var missingErr *sema.MissingFieldsError
	require.ErrorAs(t, errs[0], &missingErr)
	assert.Equal(t, []string{"y"}, missingErr.MissingFields)
}

func TestCheckFieldAccessSuggestion(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			record("Point",
				field("x", nominal("Number")),
				field("y", nominal("Number")),
			),
			fun("f", nil, nominal("Number"),
				letStmt("p",
					ast.NewRecordExpression(
						id("Point", 0),
						[]ast.RecordField{
							{Identifier: id("x", 0), Value: number(1)},
							{Identifier: id("y", 0), Value: number(2)},
						},
						span(0, 0),
					),
				),
				exprStmt(
					ast.NewMemberExpression(
						variable("p", 0),
						id("z", 0),
						pos(0),
					),
				),
			),
		),
	)

	errs := RequireCheckerErrors(t, err, 1)

	var memberErr *sema.NotDeclaredMemberError
	require.ErrorAs(t, errs[0], &memberErr)

	assert.Equal(t,
		"there is a field named `x`",
		memberErr.SecondaryError(),
	)
}

func TestCheckRecordUpdate(t *testing.T) {

	t.Parallel()

	_, err := checkProgram(t,
		program(
			record("Point",
				field("x", nominal("Number")),
				field("y", nominal("Number")),
			),
			fun("f",
				[]*ast.Parameter{
					param("p", nominal("Point")),
				},
				nominal("Point"),
				exprStmt(
					ast.NewUpdateExpression(
						variable("p", 0),
						[]ast.RecordField{
							{Identifier: id("x", 0), Value: number(3)},
						},
						span(0, 0),
					),
				),
			),
		),
	)

	RequireCheckerErrors(t, err, 0)
}

// propagation

func TestCheckPropagation(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("p", nil,
					resultAnnotation(nominal("Number"), nominal("Text")),
					exprStmt(
						ast.NewOkExpression(
							propagate(call("num", text("4"))),
							pos(0),
						),
					),
				),
			),
		)

		RequireCheckerErrors(t, err, 0)
	})

	t.Run("outside fallible context", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("q", nil, nominal("Number"),
					exprStmt(propagate(call("num", text("4")))),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var propagationErr *sema.PropagationOutsideFallibleContextError
		require.ErrorAs(t, errs[0], &propagationErr)
		assert.Equal(t, "q", propagationErr.FunctionName)
	})

	t.Run("non-Result operand", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("r", nil,
					resultAnnotation(nominal("Number"), nominal("Text")),
					exprStmt(
						ast.NewOkExpression(
							propagate(number(1)),
							pos(0),
						),
					),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var operandErr *sema.InvalidPropagationOperandError
		require.ErrorAs(t, errs[0], &operandErr)
		assert.Equal(t, sema.NumberType, operandErr.Type)
	})
}

// built-ins

func TestCheckBuiltins(t *testing.T) {

	t.Parallel()

	t.Run("polymorphic slice", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("f", nil, nominal("Text"),
					exprStmt(call("slice", text("abc"), number(0), number(1))),
				),
			),
		)

		RequireCheckerErrors(t, err, 0)
	})

	t.Run("len rejects numbers", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("f", nil, nominal("Number"),
					exprStmt(call("len", number(1))),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var mismatchErr *sema.TypeMismatchWithDescriptionError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t,
			"expected a list or a text, got `Number`",
			mismatchErr.SecondaryError(),
		)
	})

	t.Run("get returns a fallible text", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("f", nil,
					resultAnnotation(nominal("Text"), nominal("Text")),
					exprStmt(
						ast.NewOkExpression(
							propagate(call("get", text("https://example.com/data"))),
							pos(0),
						),
					),
				),
			),
		)

		RequireCheckerErrors(t, err, 0)
	})

	t.Run("get takes a text", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(
				fun("f", nil,
					resultAnnotation(nominal("Text"), nominal("Text")),
					exprStmt(call("get", number(1))),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var mismatchErr *sema.ArgumentTypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, "url", mismatchErr.ParameterName)
		assert.Equal(t, sema.TextType, mismatchErr.ExpectedType)
	})
}

// determinism

func TestCheckDeterministicErrorOrder(t *testing.T) {

	t.Parallel()

	buggy := func() *ast.Program {
		return program(
			record("Point",
				field("x", nominal("Number")),
			),
			fun("f", nil, nominal("Number"),
				exprStmt(variable("nope", 10)),
			),
			fun("g", nil, nominal("Number"),
				exprStmt(
					ast.NewBinaryExpression(
						ast.OperationMinus,
						text("a"),
						number(1),
					),
				),
			),
			fun("h", nil, nominal("Number"),
				exprStmt(
					ast.NewRecordExpression(id("Point", 0), nil, span(0, 0)),
				),
			),
		)
	}

	// `h` is buggy twice over: the construction misses `x`,
	// and the resulting `Point` does not match the return type
	messages := func() []string {
		_, err := checkProgram(t, buggy())
		errs := RequireCheckerErrors(t, err, 4)

		var messages []string
		for _, err := range errs {
			messages = append(messages, err.Error())
		}
		return messages
	}

	first := messages()
	for i := 0; i < 10; i++ {
		test_utils.AssertEqualWithDiff(t, first, messages())
	}
}

func TestSymbolTableRegistrationOrder(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property(
		"registration keeps first occurrence and insertion order",
		prop.ForAll(
			func(names []string) bool {
				table := sema.NewSymbolTable()

				var expected []string
				seen := map[string]bool{}

				for _, name := range names {
					existing := table.Register(&sema.Symbol{
						Name: name,
						Kind: common.DeclarationKindFunction,
					})

					if seen[name] {
						if existing == nil {
							return false
						}
						continue
					}
					if existing != nil {
						return false
					}
					seen[name] = true
					expected = append(expected, name)
				}

				actual := table.Names()
				if len(actual) != len(expected) {
					return false
				}
				for i, name := range expected {
					if actual[i] != name {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.Identifier()),
		),
	)

	properties.TestingRun(t)
}
