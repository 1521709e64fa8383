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

package ast

// Expression

type Expression interface {
	HasPosition
	isExpression()
}

// NumberExpression

type NumberExpression struct {
	Value float64
	Range
}

var _ Expression = &NumberExpression{}

func NewNumberExpression(value float64, astRange Range) *NumberExpression {
	return &NumberExpression{
		Value: value,
		Range: astRange,
	}
}

func (*NumberExpression) isExpression() {}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func NewStringExpression(value string, astRange Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: astRange,
	}
}

func (*StringExpression) isExpression() {}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func NewBoolExpression(value bool, astRange Range) *BoolExpression {
	return &BoolExpression{
		Value: value,
		Range: astRange,
	}
}

func (*BoolExpression) isExpression() {}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier Identifier) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// InvocationExpression

// InvocationExpression is a call of a named callable: a function, a builtin,
// or a bound tool. Callees are always plain names, there are no
// function values.
type InvocationExpression struct {
	Callee    Identifier
	Arguments []Expression
	Range
}

var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	callee Identifier,
	arguments []Expression,
	astRange Range,
) *InvocationExpression {
	return &InvocationExpression{
		Callee:    callee,
		Arguments: arguments,
		Range:     astRange,
	}
}

func (*InvocationExpression) isExpression() {}

// PropagateExpression

// PropagateExpression is the auto-unwrap operator `!`:
// it unwraps a successful Result value, and otherwise propagates the error
// out of the enclosing function
type PropagateExpression struct {
	Expression Expression
	EndPos     Position
}

var _ Expression = &PropagateExpression{}

func NewPropagateExpression(expression Expression, endPos Position) *PropagateExpression {
	return &PropagateExpression{
		Expression: expression,
		EndPos:     endPos,
	}
}

func (*PropagateExpression) isExpression() {}

func (e *PropagateExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *PropagateExpression) EndPosition() Position {
	return e.EndPos
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	operation Operation,
	left, right Expression,
) *BinaryExpression {
	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position
}

var _ Expression = &UnaryExpression{}

func NewUnaryExpression(
	operation Operation,
	expression Expression,
	startPos Position,
) *UnaryExpression {
	return &UnaryExpression{
		Operation:  operation,
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
	AccessPos  Position
}

var _ Expression = &MemberExpression{}

func NewMemberExpression(
	expression Expression,
	identifier Identifier,
	accessPos Position,
) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
		AccessPos:  accessPos,
	}
}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// IndexExpression

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	Range
}

var _ Expression = &IndexExpression{}

func NewIndexExpression(
	target, index Expression,
	astRange Range,
) *IndexExpression {
	return &IndexExpression{
		TargetExpression:   target,
		IndexingExpression: index,
		Range:              astRange,
	}
}

func (*IndexExpression) isExpression() {}

// ListExpression

type ListExpression struct {
	Values []Expression
	Range
}

var _ Expression = &ListExpression{}

func NewListExpression(values []Expression, astRange Range) *ListExpression {
	return &ListExpression{
		Values: values,
		Range:  astRange,
	}
}

func (*ListExpression) isExpression() {}

// RecordField

// RecordField is one `name: value` entry of a record construction
// or record update
type RecordField struct {
	Identifier Identifier
	Value      Expression
}

func (f RecordField) StartPosition() Position {
	return f.Identifier.StartPosition()
}

func (f RecordField) EndPosition() Position {
	return f.Value.EndPosition()
}

// RecordExpression

// RecordExpression constructs a record value, naming every field
type RecordExpression struct {
	Identifier Identifier
	Fields     []RecordField
	Range
}

var _ Expression = &RecordExpression{}

func NewRecordExpression(
	identifier Identifier,
	fields []RecordField,
	astRange Range,
) *RecordExpression {
	return &RecordExpression{
		Identifier: identifier,
		Fields:     fields,
		Range:      astRange,
	}
}

func (*RecordExpression) isExpression() {}

// UpdateExpression

// UpdateExpression is a functional record update (`with`):
// a copy of the target with the given fields replaced
type UpdateExpression struct {
	Expression Expression
	Updates    []RecordField
	Range
}

var _ Expression = &UpdateExpression{}

func NewUpdateExpression(
	expression Expression,
	updates []RecordField,
	astRange Range,
) *UpdateExpression {
	return &UpdateExpression{
		Expression: expression,
		Updates:    updates,
		Range:      astRange,
	}
}

func (*UpdateExpression) isExpression() {}

// OkExpression

type OkExpression struct {
	Expression Expression
	StartPos   Position
}

var _ Expression = &OkExpression{}

func NewOkExpression(expression Expression, startPos Position) *OkExpression {
	return &OkExpression{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*OkExpression) isExpression() {}

func (e *OkExpression) StartPosition() Position {
	return e.StartPos
}

func (e *OkExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

// ErrExpression

type ErrExpression struct {
	Expression Expression
	StartPos   Position
}

var _ Expression = &ErrExpression{}

func NewErrExpression(expression Expression, startPos Position) *ErrExpression {
	return &ErrExpression{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*ErrExpression) isExpression() {}

func (e *ErrExpression) StartPosition() Position {
	return e.StartPos
}

func (e *ErrExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

// VariantExpression

// VariantExpression constructs an enum value, e.g. `Status.Done`
// or `Status.Failed(reason)`
type VariantExpression struct {
	Enum    Identifier
	Variant Identifier
	Payload Expression
	Range
}

var _ Expression = &VariantExpression{}

func NewVariantExpression(
	enum, variant Identifier,
	payload Expression,
	astRange Range,
) *VariantExpression {
	return &VariantExpression{
		Enum:    enum,
		Variant: variant,
		Payload: payload,
		Range:   astRange,
	}
}

func (*VariantExpression) isExpression() {}

// MatchExpression

// MatchExpression matches a scrutinee against ordered arms,
// first match wins
type MatchExpression struct {
	Expression Expression
	Arms       []*MatchArm
	Range
}

var _ Expression = &MatchExpression{}

func NewMatchExpression(
	expression Expression,
	arms []*MatchArm,
	astRange Range,
) *MatchExpression {
	return &MatchExpression{
		Expression: expression,
		Arms:       arms,
		Range:      astRange,
	}
}

func (*MatchExpression) isExpression() {}
