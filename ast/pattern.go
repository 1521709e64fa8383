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

// Pattern

type Pattern interface {
	HasPosition
	isPattern()
}

// MatchArm

type MatchArm struct {
	Pattern    Pattern
	Expression Expression
	Range
}

func NewMatchArm(pattern Pattern, expression Expression, astRange Range) *MatchArm {
	return &MatchArm{
		Pattern:    pattern,
		Expression: expression,
		Range:      astRange,
	}
}

// LiteralPattern

// LiteralPattern matches a single literal value.
// The expression is always a literal: number, text, or bool.
type LiteralPattern struct {
	Expression Expression
}

var _ Pattern = &LiteralPattern{}

func NewLiteralPattern(expression Expression) *LiteralPattern {
	return &LiteralPattern{
		Expression: expression,
	}
}

func (*LiteralPattern) isPattern() {}

func (p *LiteralPattern) StartPosition() Position {
	return p.Expression.StartPosition()
}

func (p *LiteralPattern) EndPosition() Position {
	return p.Expression.EndPosition()
}

// OkPattern

// OkPattern matches the success case of a Result, binding the value
type OkPattern struct {
	Identifier Identifier
	Range
}

var _ Pattern = &OkPattern{}

func NewOkPattern(identifier Identifier, astRange Range) *OkPattern {
	return &OkPattern{
		Identifier: identifier,
		Range:      astRange,
	}
}

func (*OkPattern) isPattern() {}

// ErrPattern

// ErrPattern matches the error case of a Result, binding the error
type ErrPattern struct {
	Identifier Identifier
	Range
}

var _ Pattern = &ErrPattern{}

func NewErrPattern(identifier Identifier, astRange Range) *ErrPattern {
	return &ErrPattern{
		Identifier: identifier,
		Range:      astRange,
	}
}

func (*ErrPattern) isPattern() {}

// VariantPattern

// VariantPattern matches one enum variant by tag,
// optionally binding its payload
type VariantPattern struct {
	Variant Identifier
	Binding *Identifier
	Range
}

var _ Pattern = &VariantPattern{}

func NewVariantPattern(
	variant Identifier,
	binding *Identifier,
	astRange Range,
) *VariantPattern {
	return &VariantPattern{
		Variant: variant,
		Binding: binding,
		Range:   astRange,
	}
}

func (*VariantPattern) isPattern() {}

// WildcardPattern

// WildcardPattern matches anything and binds nothing
type WildcardPattern struct {
	Range
}

var _ Pattern = &WildcardPattern{}

func NewWildcardPattern(astRange Range) *WildcardPattern {
	return &WildcardPattern{
		Range: astRange,
	}
}

func (*WildcardPattern) isPattern() {}
