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
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
	"github.com/loomlang/loom/errors"
)

// CheckerError

// CheckerError is the batched result of one verification pass:
// all faults found in the program, in reporting order.
// The pass never stops at the first fault.
type CheckerError struct {
	Errors []error
}

var _ errors.UserError = CheckerError{}
var _ errors.ParentError = CheckerError{}

func (CheckerError) IsUserError() {}

func (e CheckerError) Error() string {
	var sb strings.Builder
	sb.WriteString("checking failed:")
	for _, err := range e.Errors {
		sb.WriteString("\n- ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e CheckerError) ChildErrors() []error {
	return e.Errors
}

func (e CheckerError) Unwrap() []error {
	return e.Errors
}

// SemanticError

type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// Suggestions

// transpositionDistance returns the number of edits if the two names
// differ only by swaps of adjacent characters, and -1 otherwise
func transpositionDistance(a, b []rune) int {
	if len(a) != len(b) {
		return -1
	}
	swaps := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if i+1 < len(a) && a[i] == b[i+1] && a[i+1] == b[i] {
			swaps++
			i++
			continue
		}
		return -1
	}
	return swaps
}

// nameDistance is an edit distance where an adjacent transposition
// counts as a single edit, so common typos like `naem` stay close
// to the intended `name`
func nameDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)

	if distance := transpositionDistance(aRunes, bRunes); distance >= 0 {
		return distance
	}

	// substitutions must cost one edit, like insertions and deletions
	return levenshtein.DistanceForStrings(
		aRunes,
		bRunes,
		levenshtein.DefaultOptionsWithSub,
	)
}

// closestName searches the candidate names for the one with the smallest
// edit distance from the given name. In cases of typos, this provides
// a helpful suggestion.
//
// Candidates must be given in declaration order:
// ties are broken in favor of the earlier declaration.
// Names further away than max(1, len/3) edits are never suggested.
func closestName(name string, candidates []string) (closest string) {
	// the distance is counted in runes, so the threshold is too
	maxDistance := len([]rune(name)) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	closestDistance := maxDistance + 1

	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		distance := nameDistance(name, candidate)
		if distance < closestDistance {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}

// RedeclarationError

// RedeclarationError is reported when a name is declared more than once
// in the flat global namespace, including a tool colliding with
// a local declaration. The first declaration is kept.
type RedeclarationError struct {
	Kind         common.DeclarationKind
	PreviousKind common.DeclarationKind
	Name         string
	Pos          ast.Position
	PreviousPos  *ast.Position
}

var _ SemanticError = &RedeclarationError{}
var _ errors.UserError = &RedeclarationError{}
var _ errors.ErrorNotes = &RedeclarationError{}

func (*RedeclarationError) isSemanticError() {}

func (*RedeclarationError) IsUserError() {}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf(
		"cannot redeclare %s: `%s` is already declared",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *RedeclarationError) SecondaryError() string {
	if e.PreviousKind != e.Kind {
		return fmt.Sprintf(
			"`%s` is already declared as a %s",
			e.Name,
			e.PreviousKind.Name(),
		)
	}
	return "all top-level names share one namespace"
}

func (e *RedeclarationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *RedeclarationError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

func (e *RedeclarationError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil || e.PreviousPos.Line < 1 {
		return nil
	}

	previousStartPos := *e.PreviousPos
	length := len(e.Name)
	previousEndPos := previousStartPos.Shifted(length - 1)

	return []errors.ErrorNote{
		&RedeclarationNote{
			Range: ast.Range{
				StartPos: previousStartPos,
				EndPos:   previousEndPos,
			},
		},
	}
}

// RedeclarationNote

type RedeclarationNote struct {
	ast.Range
}

func (n RedeclarationNote) Message() string {
	return "previously declared here"
}

// NotDeclaredError

// NotDeclaredError is reported when a referenced name
// cannot be found in scope
type NotDeclaredError struct {
	ExpectedKind common.DeclarationKind
	Name         string
	Candidates   []string
	Pos          ast.Position
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.UserError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf(
		"cannot find %s in this scope: `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

func (e *NotDeclaredError) SecondaryError() string {
	closest := closestName(e.Name, e.Candidates)
	if closest != "" {
		return fmt.Sprintf(
			"there is a %s named `%s`",
			e.ExpectedKind.Name(),
			closest,
		)
	}
	return "not found in this scope"
}

func (e *NotDeclaredError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	closest := closestName(e.Name, e.Candidates)
	if closest == "" {
		return nil
	}

	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("replace with `%s`", closest),
			TextEdits: []ast.TextEdit{
				{
					Replacement: closest,
					Range: ast.Range{
						StartPos: e.StartPosition(),
						EndPos:   e.EndPosition(),
					},
				},
			},
		},
	}
}

func (e *NotDeclaredError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NotDeclaredError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

// NotDeclaredTypeError

// NotDeclaredTypeError is reported when a type expression
// names an undeclared type. The reference resolves to Unknown.
type NotDeclaredTypeError struct {
	Name       string
	Candidates []string
	ast.Range
}

var _ SemanticError = &NotDeclaredTypeError{}
var _ errors.UserError = &NotDeclaredTypeError{}
var _ errors.SecondaryError = &NotDeclaredTypeError{}

func (*NotDeclaredTypeError) isSemanticError() {}

func (*NotDeclaredTypeError) IsUserError() {}

func (e *NotDeclaredTypeError) Error() string {
	return fmt.Sprintf("cannot find type in this scope: `%s`", e.Name)
}

func (e *NotDeclaredTypeError) SecondaryError() string {
	closest := closestName(e.Name, e.Candidates)
	if closest != "" {
		return fmt.Sprintf("there is a type named `%s`", closest)
	}
	return "not found in this scope"
}

// CyclicAliasError

// CyclicAliasError is reported when expanding a type alias
// reaches the alias itself again. The alias resolves to Unknown
// so resolution terminates.
type CyclicAliasError struct {
	Name  string
	Cycle []string
	ast.Range
}

var _ SemanticError = &CyclicAliasError{}
var _ errors.UserError = &CyclicAliasError{}
var _ errors.SecondaryError = &CyclicAliasError{}

func (*CyclicAliasError) isSemanticError() {}

func (*CyclicAliasError) IsUserError() {}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic type alias: `%s`", e.Name)
}

func (e *CyclicAliasError) SecondaryError() string {
	return fmt.Sprintf(
		"expanding this alias loops: %s",
		strings.Join(append(e.Cycle, e.Name), " -> "),
	)
}

// NotDeclaredMemberError

// NotDeclaredMemberError is reported for an access of a field or
// enum variant that the accessed type does not declare
type NotDeclaredMemberError struct {
	MemberKind string
	Name       string
	Candidates []string
	Type       Type
	ast.Range
}

var _ SemanticError = &NotDeclaredMemberError{}
var _ errors.UserError = &NotDeclaredMemberError{}
var _ errors.SecondaryError = &NotDeclaredMemberError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &NotDeclaredMemberError{}

func (*NotDeclaredMemberError) isSemanticError() {}

func (*NotDeclaredMemberError) IsUserError() {}

func (e *NotDeclaredMemberError) Error() string {
	return fmt.Sprintf(
		"`%s` has no %s `%s`",
		e.Type,
		e.MemberKind,
		e.Name,
	)
}

func (e *NotDeclaredMemberError) SecondaryError() string {
	closest := closestName(e.Name, e.Candidates)
	if closest != "" {
		return fmt.Sprintf(
			"there is a %s named `%s`",
			e.MemberKind,
			closest,
		)
	}
	return fmt.Sprintf("unknown %s", e.MemberKind)
}

func (e *NotDeclaredMemberError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	closest := closestName(e.Name, e.Candidates)
	if closest == "" {
		return nil
	}

	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("replace with `%s`", closest),
			TextEdits: []ast.TextEdit{
				{
					Replacement: closest,
					Range: ast.Range{
						StartPos: e.StartPos,
						EndPos:   e.EndPos,
					},
				},
			},
		},
	}
}

// ArgumentCountError

// ArgumentCountError is reported when a call's argument count differs
// from the callee's parameter count. All arguments are still checked
// individually.
type ArgumentCountError struct {
	FunctionName   string
	ParameterCount int
	ArgumentCount  int
	FunctionType   *FunctionType
	ast.Range
}

var _ SemanticError = &ArgumentCountError{}
var _ errors.UserError = &ArgumentCountError{}
var _ errors.SecondaryError = &ArgumentCountError{}

func (*ArgumentCountError) isSemanticError() {}

func (*ArgumentCountError) IsUserError() {}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf(
		"incorrect number of arguments in call to `%s`: expected %d, got %d",
		e.FunctionName,
		e.ParameterCount,
		e.ArgumentCount,
	)
}

func (e *ArgumentCountError) SecondaryError() string {
	if e.FunctionType == nil {
		return fmt.Sprintf(
			"`%s` takes %d argument(s)",
			e.FunctionName,
			e.ParameterCount,
		)
	}
	return fmt.Sprintf(
		"`%s` has type %s",
		e.FunctionName,
		e.FunctionType,
	)
}

// ArgumentTypeMismatchError

// ArgumentTypeMismatchError is reported when an argument's type does not
// match the corresponding parameter's type exactly.
// There is no implicit widening and no structural subtyping
// between distinct record types.
type ArgumentTypeMismatchError struct {
	FunctionName  string
	ParameterName string
	// Index is the zero-based argument position
	Index        int
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &ArgumentTypeMismatchError{}
var _ errors.UserError = &ArgumentTypeMismatchError{}
var _ errors.SecondaryError = &ArgumentTypeMismatchError{}

func (*ArgumentTypeMismatchError) isSemanticError() {}

func (*ArgumentTypeMismatchError) IsUserError() {}

func (e *ArgumentTypeMismatchError) Error() string {
	return fmt.Sprintf(
		"mismatched type for argument %d of `%s`",
		e.Index+1,
		e.FunctionName,
	)
}

func (e *ArgumentTypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"parameter `%s` expects `%s`, got `%s`",
		e.ParameterName,
		e.ExpectedType,
		e.ActualType,
	)
}

// TypeMismatchError

// TypeMismatchError is the general mismatch between an expected
// and an actual type, e.g. for record field values, guard conditions,
// list elements, and match arm results
type TypeMismatchError struct {
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &TypeMismatchError{}
var _ errors.UserError = &TypeMismatchError{}
var _ errors.SecondaryError = &TypeMismatchError{}

func (*TypeMismatchError) isSemanticError() {}

func (*TypeMismatchError) IsUserError() {}

func (e *TypeMismatchError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"expected `%s`, got `%s`",
		e.ExpectedType,
		e.ActualType,
	)
}

// TypeMismatchWithDescriptionError

// TypeMismatchWithDescriptionError is a type mismatch where the
// expected side is a family of types rather than a single one,
// e.g. the list-or-text operands of polymorphic built-ins
type TypeMismatchWithDescriptionError struct {
	ExpectedTypeDescription string
	ActualType              Type
	ast.Range
}

var _ SemanticError = &TypeMismatchWithDescriptionError{}
var _ errors.UserError = &TypeMismatchWithDescriptionError{}
var _ errors.SecondaryError = &TypeMismatchWithDescriptionError{}

func (*TypeMismatchWithDescriptionError) isSemanticError() {}

func (*TypeMismatchWithDescriptionError) IsUserError() {}

func (e *TypeMismatchWithDescriptionError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchWithDescriptionError) SecondaryError() string {
	return fmt.Sprintf(
		"expected %s, got `%s`",
		e.ExpectedTypeDescription,
		e.ActualType,
	)
}

// ReturnTypeMismatchError

// ReturnTypeMismatchError is reported when the type of a function body's
// final expression differs from the declared return type
type ReturnTypeMismatchError struct {
	FunctionName string
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &ReturnTypeMismatchError{}
var _ errors.UserError = &ReturnTypeMismatchError{}
var _ errors.SecondaryError = &ReturnTypeMismatchError{}

func (*ReturnTypeMismatchError) isSemanticError() {}

func (*ReturnTypeMismatchError) IsUserError() {}

func (e *ReturnTypeMismatchError) Error() string {
	return fmt.Sprintf(
		"mismatched return type in function `%s`",
		e.FunctionName,
	)
}

func (e *ReturnTypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"declared `%s`, got `%s`",
		e.ExpectedType,
		e.ActualType,
	)
}

// InvalidBinaryOperandsError

// InvalidBinaryOperandsError is reported when the operand types of a
// binary operator match no rule of the fixed operator table.
// Operators are never overloadable.
type InvalidBinaryOperandsError struct {
	Operation ast.Operation
	LeftType  Type
	RightType Type
	ast.Range
}

var _ SemanticError = &InvalidBinaryOperandsError{}
var _ errors.UserError = &InvalidBinaryOperandsError{}
var _ errors.SecondaryError = &InvalidBinaryOperandsError{}

func (*InvalidBinaryOperandsError) isSemanticError() {}

func (*InvalidBinaryOperandsError) IsUserError() {}

func (e *InvalidBinaryOperandsError) Error() string {
	return fmt.Sprintf(
		"invalid types for operator `%s`: `%s` and `%s`",
		e.Operation.Symbol(),
		e.LeftType,
		e.RightType,
	)
}

func (e *InvalidBinaryOperandsError) SecondaryError() string {
	switch e.Operation {
	case ast.OperationPlus:
		return "`+` combines two numbers, two texts, or two lists of the same type"
	case ast.OperationAppend:
		return "append expects a list on the left and an element of its type on the right"
	default:
		return fmt.Sprintf("%s is not defined for these types", e.Operation.Name())
	}
}

// InvalidUnaryOperandError

type InvalidUnaryOperandError struct {
	Operation    ast.Operation
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &InvalidUnaryOperandError{}
var _ errors.UserError = &InvalidUnaryOperandError{}
var _ errors.SecondaryError = &InvalidUnaryOperandError{}

func (*InvalidUnaryOperandError) isSemanticError() {}

func (*InvalidUnaryOperandError) IsUserError() {}

func (e *InvalidUnaryOperandError) Error() string {
	return fmt.Sprintf(
		"invalid type for operator `%s`: `%s`",
		e.Operation.Symbol(),
		e.ActualType,
	)
}

func (e *InvalidUnaryOperandError) SecondaryError() string {
	return fmt.Sprintf("expected `%s`", e.ExpectedType)
}

// InvalidFieldAccessError

// InvalidFieldAccessError is reported for a field access
// on a value that is not a record
type InvalidFieldAccessError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &InvalidFieldAccessError{}
var _ errors.UserError = &InvalidFieldAccessError{}

func (*InvalidFieldAccessError) isSemanticError() {}

func (*InvalidFieldAccessError) IsUserError() {}

func (e *InvalidFieldAccessError) Error() string {
	return fmt.Sprintf(
		"cannot access field on value which has type: `%s`",
		e.Type,
	)
}

// NotIndexableTypeError

type NotIndexableTypeError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotIndexableTypeError{}
var _ errors.UserError = &NotIndexableTypeError{}

func (*NotIndexableTypeError) isSemanticError() {}

func (*NotIndexableTypeError) IsUserError() {}

func (e *NotIndexableTypeError) Error() string {
	return fmt.Sprintf(
		"cannot index into value which has type: `%s`",
		e.Type,
	)
}

// NotIterableError

// NotIterableError is reported for a `for` loop over a non-list value
type NotIterableError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotIterableError{}
var _ errors.UserError = &NotIterableError{}
var _ errors.SecondaryError = &NotIterableError{}

func (*NotIterableError) isSemanticError() {}

func (*NotIterableError) IsUserError() {}

func (e *NotIterableError) Error() string {
	return fmt.Sprintf(
		"cannot iterate over value which has type: `%s`",
		e.Type,
	)
}

func (e *NotIterableError) SecondaryError() string {
	return "loops iterate over lists"
}

// NotConstructibleTypeError

// NotConstructibleTypeError is reported for a record construction
// or record update whose target type is not a record
type NotConstructibleTypeError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotConstructibleTypeError{}
var _ errors.UserError = &NotConstructibleTypeError{}

func (*NotConstructibleTypeError) isSemanticError() {}

func (*NotConstructibleTypeError) IsUserError() {}

func (e *NotConstructibleTypeError) Error() string {
	return fmt.Sprintf(
		"cannot construct value of type: `%s`",
		e.Type,
	)
}

// InvalidPropagationOperandError

// InvalidPropagationOperandError is reported when the propagation
// operator is applied to a non-Result value
type InvalidPropagationOperandError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &InvalidPropagationOperandError{}
var _ errors.UserError = &InvalidPropagationOperandError{}
var _ errors.SecondaryError = &InvalidPropagationOperandError{}

func (*InvalidPropagationOperandError) isSemanticError() {}

func (*InvalidPropagationOperandError) IsUserError() {}

func (e *InvalidPropagationOperandError) Error() string {
	return fmt.Sprintf(
		"cannot propagate value which has type: `%s`",
		e.Type,
	)
}

func (e *InvalidPropagationOperandError) SecondaryError() string {
	return "propagation unwraps a successful Result and passes an error on"
}

// PropagationOutsideFallibleContextError

// PropagationOutsideFallibleContextError is reported when propagation
// is used in a function whose return type cannot carry
// the propagated error
type PropagationOutsideFallibleContextError struct {
	FunctionName string
	ReturnType   Type
	ast.Range
}

var _ SemanticError = &PropagationOutsideFallibleContextError{}
var _ errors.UserError = &PropagationOutsideFallibleContextError{}
var _ errors.SecondaryError = &PropagationOutsideFallibleContextError{}

func (*PropagationOutsideFallibleContextError) isSemanticError() {}

func (*PropagationOutsideFallibleContextError) IsUserError() {}

func (e *PropagationOutsideFallibleContextError) Error() string {
	return fmt.Sprintf(
		"cannot propagate error out of function `%s`",
		e.FunctionName,
	)
}

func (e *PropagationOutsideFallibleContextError) SecondaryError() string {
	return fmt.Sprintf(
		"`%s` returns `%s`, which cannot carry the propagated error",
		e.FunctionName,
		e.ReturnType,
	)
}

// NonExhaustiveMatchError

// NonExhaustiveMatchError is reported when a match does not cover
// every case its scrutinee's type can produce
type NonExhaustiveMatchError struct {
	ScrutineeType Type
	MissingTags   []string
	ast.Range
}

var _ SemanticError = &NonExhaustiveMatchError{}
var _ errors.UserError = &NonExhaustiveMatchError{}
var _ errors.SecondaryError = &NonExhaustiveMatchError{}

func (*NonExhaustiveMatchError) isSemanticError() {}

func (*NonExhaustiveMatchError) IsUserError() {}

func (e *NonExhaustiveMatchError) Error() string {
	return fmt.Sprintf(
		"match on `%s` is not exhaustive: missing %s",
		e.ScrutineeType,
		joinBackticked(e.MissingTags),
	)
}

func (e *NonExhaustiveMatchError) SecondaryError() string {
	return "add the missing arms, or a wildcard arm"
}

func joinBackticked(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, fmt.Sprintf("`%s`", name))
	}
	return strings.Join(quoted, ", ")
}

// InvalidPatternError

// InvalidPatternError is reported when an arm's pattern cannot apply
// to the scrutinee's type, e.g. an Ok pattern on a non-Result
type InvalidPatternError struct {
	PatternDescription string
	ScrutineeType      Type
	ast.Range
}

var _ SemanticError = &InvalidPatternError{}
var _ errors.UserError = &InvalidPatternError{}

func (*InvalidPatternError) isSemanticError() {}

func (*InvalidPatternError) IsUserError() {}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf(
		"%s pattern cannot match value which has type: `%s`",
		e.PatternDescription,
		e.ScrutineeType,
	)
}

// MissingFieldsError

// MissingFieldsError is reported when a record construction
// does not provide every declared field
type MissingFieldsError struct {
	RecordType    *RecordType
	MissingFields []string
	ast.Range
}

var _ SemanticError = &MissingFieldsError{}
var _ errors.UserError = &MissingFieldsError{}
var _ errors.SecondaryError = &MissingFieldsError{}

func (*MissingFieldsError) isSemanticError() {}

func (*MissingFieldsError) IsUserError() {}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf(
		"missing fields in construction of `%s`: %s",
		e.RecordType,
		joinBackticked(e.MissingFields),
	)
}

func (e *MissingFieldsError) SecondaryError() string {
	return fmt.Sprintf(
		"`%s` declares %s",
		e.RecordType.Identifier,
		e.RecordType.QualifiedString(),
	)
}

// UnsupportedSchemaError

// UnsupportedSchemaError is reported when an external tool schema
// uses a shape outside the supported subset
// (object/string/number/boolean/array).
// The tool is skipped; binding fails closed, never silently.
type UnsupportedSchemaError struct {
	ToolName string
	Path     string
	Detail   string
}

var _ SemanticError = &UnsupportedSchemaError{}
var _ errors.UserError = &UnsupportedSchemaError{}
var _ errors.SecondaryError = &UnsupportedSchemaError{}

func (*UnsupportedSchemaError) isSemanticError() {}

func (*UnsupportedSchemaError) IsUserError() {}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf(
		"cannot bind tool `%s`: unsupported schema at %s",
		e.ToolName,
		e.Path,
	)
}

func (e *UnsupportedSchemaError) SecondaryError() string {
	return e.Detail
}

// Tool schemas have no source occurrence, so the error has no position

func (*UnsupportedSchemaError) StartPosition() ast.Position {
	return ast.Position{}
}

func (*UnsupportedSchemaError) EndPosition() ast.Position {
	return ast.Position{}
}

// InvalidASTError

// InvalidASTError is reported when the handed-over AST violates
// an internal invariant, e.g. a node kind the verifier does not know.
// It is a diagnostic, not a crash: the sole halt condition of a pass.
type InvalidASTError struct {
	Detail string
	ast.Range
}

var _ SemanticError = &InvalidASTError{}
var _ errors.UserError = &InvalidASTError{}
var _ errors.SecondaryError = &InvalidASTError{}

func (*InvalidASTError) isSemanticError() {}

func (*InvalidASTError) IsUserError() {}

func (e *InvalidASTError) Error() string {
	return "malformed AST"
}

func (e *InvalidASTError) SecondaryError() string {
	return e.Detail
}
