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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextEditApplyReplacement(t *testing.T) {

	t.Parallel()

	const code = "let x = naem"

	edit := TextEdit{
		Replacement: "name",
		Range: Range{
			StartPos: Position{Offset: 8, Line: 1, Column: 8},
			EndPos:   Position{Offset: 11, Line: 1, Column: 11},
		},
	}

	assert.Equal(t, "let x = name", edit.ApplyTo(code))
}

func TestTextEditApplyInsertion(t *testing.T) {

	t.Parallel()

	const code = "let x = name"

	edit := TextEdit{
		Insertion: "my_",
		Range: Range{
			StartPos: Position{Offset: 8, Line: 1, Column: 8},
			EndPos:   Position{Offset: 8, Line: 1, Column: 8},
		},
	}

	assert.Equal(t, "let x = my_name", edit.ApplyTo(code))
}

func TestPositionShifted(t *testing.T) {

	t.Parallel()

	position := Position{Offset: 10, Line: 2, Column: 4}
	shifted := position.Shifted(3)

	assert.Equal(t,
		Position{Offset: 13, Line: 2, Column: 7},
		shifted,
	)
}

func TestPositionCompare(t *testing.T) {

	t.Parallel()

	earlier := Position{Offset: 3, Line: 1, Column: 3}
	later := Position{Offset: 7, Line: 2, Column: 0}

	assert.Equal(t, -1, earlier.Compare(later))
	assert.Equal(t, 1, later.Compare(earlier))
	assert.Equal(t, 0, earlier.Compare(earlier))
}

func TestIdentifierEndPosition(t *testing.T) {

	t.Parallel()

	identifier := NewIdentifier(
		"name",
		Position{Offset: 8, Line: 1, Column: 8},
	)

	assert.Equal(t,
		Position{Offset: 11, Line: 1, Column: 11},
		identifier.EndPosition(),
	)
}

func TestTypeString(t *testing.T) {

	t.Parallel()

	number := NewNominalType(NewIdentifier("Number", Position{}))
	text := NewNominalType(NewIdentifier("Text", Position{}))

	assert.Equal(t, "Number", number.String())

	assert.Equal(t,
		"List<Number>",
		NewListType(number, EmptyRange).String(),
	)

	assert.Equal(t,
		"Result<Number, Text>",
		NewResultType(number, text, EmptyRange).String(),
	)
}

func TestOperationSymbols(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "+", OperationPlus.Symbol())
	assert.Equal(t, "+=", OperationAppend.Symbol())
	assert.Equal(t, "!", OperationNot.Symbol())
	assert.Equal(t, "-", OperationNegate.Symbol())

	assert.Equal(t, "addition", OperationPlus.Name())
	assert.Equal(t, "negation", OperationNegate.Name())
}
