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
	"strings"

	"github.com/turbolent/prettier"
)

const prettierMaxLineWidth = 80

// Prettier pretty-prints the given documentable element to a string
func Prettier(element interface{ Doc() prettier.Doc }) string {
	var sb strings.Builder
	prettier.Prettier(&sb, element.Doc(), prettierMaxLineWidth, "    ")
	return sb.String()
}

// Type is a textual/structural type expression, as written in the program.
// The verifier resolves type expressions to canonical sema types.
type Type interface {
	HasPosition
	isType()
	Doc() prettier.Doc
	String() string
}

// NominalType is a named type expression, e.g. `Number` or `Point`
type NominalType struct {
	Identifier Identifier
}

var _ Type = &NominalType{}

func NewNominalType(identifier Identifier) *NominalType {
	return &NominalType{
		Identifier: identifier,
	}
}

func (*NominalType) isType() {}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	return t.Identifier.EndPosition()
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.Identifier.Identifier)
}

func (t *NominalType) String() string {
	return Prettier(t)
}

// ListType is a homogeneous list type expression, e.g. `List<Number>`
type ListType struct {
	Element Type
	Range
}

var _ Type = &ListType{}

func NewListType(element Type, astRange Range) *ListType {
	return &ListType{
		Element: element,
		Range:   astRange,
	}
}

func (*ListType) isType() {}

func (t *ListType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("List<"),
		t.Element.Doc(),
		prettier.Text(">"),
	}
}

func (t *ListType) String() string {
	return Prettier(t)
}

// ResultType is a success-or-error type expression, e.g. `Result<Number, Text>`
type ResultType struct {
	OkType  Type
	ErrType Type
	Range
}

var _ Type = &ResultType{}

func NewResultType(okType, errType Type, astRange Range) *ResultType {
	return &ResultType{
		OkType:  okType,
		ErrType: errType,
		Range:   astRange,
	}
}

func (*ResultType) isType() {}

func (t *ResultType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("Result<"),
		t.OkType.Doc(),
		prettier.Text(", "),
		t.ErrType.Doc(),
		prettier.Text(">"),
	}
}

func (t *ResultType) String() string {
	return Prettier(t)
}
