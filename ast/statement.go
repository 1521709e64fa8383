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

// Statement

type Statement interface {
	HasPosition
	isStatement()
}

// Block

type Block struct {
	Statements []Statement
	Range
}

func NewBlock(statements []Statement, astRange Range) *Block {
	return &Block{
		Statements: statements,
		Range:      astRange,
	}
}

// VariableDeclaration

// VariableDeclaration is a `let` binding.
// The variable's type is inferred from the value; there is no annotation.
type VariableDeclaration struct {
	Identifier Identifier
	Value      Expression
	Range
}

var _ Statement = &VariableDeclaration{}

func NewVariableDeclaration(
	identifier Identifier,
	value Expression,
	astRange Range,
) *VariableDeclaration {
	return &VariableDeclaration{
		Identifier: identifier,
		Value:      value,
		Range:      astRange,
	}
}

func (*VariableDeclaration) isStatement() {}

// ExpressionStatement

// ExpressionStatement is an expression in statement position.
// The value of the last statement of a function body is the function's
// return value.
type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

// ForStatement

// ForStatement iterates over a list, binding each element
type ForStatement struct {
	Identifier Identifier
	Value      Expression
	Block      *Block
	Range
}

var _ Statement = &ForStatement{}

func NewForStatement(
	identifier Identifier,
	value Expression,
	block *Block,
	astRange Range,
) *ForStatement {
	return &ForStatement{
		Identifier: identifier,
		Value:      value,
		Block:      block,
		Range:      astRange,
	}
}

func (*ForStatement) isStatement() {}

// GuardStatement

// GuardStatement runs its block when the condition holds,
// and otherwise falls through to the following statements
type GuardStatement struct {
	Condition Expression
	Block     *Block
	Range
}

var _ Statement = &GuardStatement{}

func NewGuardStatement(
	condition Expression,
	block *Block,
	astRange Range,
) *GuardStatement {
	return &GuardStatement{
		Condition: condition,
		Block:     block,
		Range:     astRange,
	}
}

func (*GuardStatement) isStatement() {}
