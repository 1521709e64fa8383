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
	"github.com/loomlang/loom/common"
)

// Declaration is a top-level declaration.
// The namespace is flat: all declarations share one scope.
type Declaration interface {
	HasPosition
	isDeclaration()
	DeclarationIdentifier() Identifier
	DeclarationKind() common.DeclarationKind
}

// Parameter

type Parameter struct {
	Identifier     Identifier
	TypeAnnotation Type
	Range
}

func NewParameter(identifier Identifier, typeAnnotation Type, astRange Range) *Parameter {
	return &Parameter{
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Range:          astRange,
	}
}

// ParameterList

type ParameterList struct {
	Parameters []*Parameter
	Range
}

func NewParameterList(parameters []*Parameter, astRange Range) *ParameterList {
	return &ParameterList{
		Parameters: parameters,
		Range:      astRange,
	}
}

// FunctionDeclaration

type FunctionDeclaration struct {
	Identifier           Identifier
	ParameterList        *ParameterList
	ReturnTypeAnnotation Type
	Body                 *Block
	Range
}

var _ Declaration = &FunctionDeclaration{}

func NewFunctionDeclaration(
	identifier Identifier,
	parameterList *ParameterList,
	returnTypeAnnotation Type,
	body *Block,
	declarationRange Range,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		Identifier:           identifier,
		ParameterList:        parameterList,
		ReturnTypeAnnotation: returnTypeAnnotation,
		Body:                 body,
		Range:                declarationRange,
	}
}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) DeclarationIdentifier() Identifier {
	return d.Identifier
}

func (*FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

// FieldDeclaration

type FieldDeclaration struct {
	Identifier     Identifier
	TypeAnnotation Type
	Range
}

func NewFieldDeclaration(identifier Identifier, typeAnnotation Type, astRange Range) *FieldDeclaration {
	return &FieldDeclaration{
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Range:          astRange,
	}
}

// RecordDeclaration

type RecordDeclaration struct {
	Identifier Identifier
	Fields     []*FieldDeclaration
	Range
}

var _ Declaration = &RecordDeclaration{}

func NewRecordDeclaration(
	identifier Identifier,
	fields []*FieldDeclaration,
	declarationRange Range,
) *RecordDeclaration {
	return &RecordDeclaration{
		Identifier: identifier,
		Fields:     fields,
		Range:      declarationRange,
	}
}

func (*RecordDeclaration) isDeclaration() {}

func (d *RecordDeclaration) DeclarationIdentifier() Identifier {
	return d.Identifier
}

func (*RecordDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindRecord
}

// EnumVariantDeclaration

// EnumVariantDeclaration is one variant of an enum declaration,
// with an optional payload type
type EnumVariantDeclaration struct {
	Identifier  Identifier
	PayloadType Type
	Range
}

func NewEnumVariantDeclaration(
	identifier Identifier,
	payloadType Type,
	astRange Range,
) *EnumVariantDeclaration {
	return &EnumVariantDeclaration{
		Identifier:  identifier,
		PayloadType: payloadType,
		Range:       astRange,
	}
}

// EnumDeclaration

type EnumDeclaration struct {
	Identifier Identifier
	Variants   []*EnumVariantDeclaration
	Range
}

var _ Declaration = &EnumDeclaration{}

func NewEnumDeclaration(
	identifier Identifier,
	variants []*EnumVariantDeclaration,
	declarationRange Range,
) *EnumDeclaration {
	return &EnumDeclaration{
		Identifier: identifier,
		Variants:   variants,
		Range:      declarationRange,
	}
}

func (*EnumDeclaration) isDeclaration() {}

func (d *EnumDeclaration) DeclarationIdentifier() Identifier {
	return d.Identifier
}

func (*EnumDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnum
}

// AliasDeclaration

type AliasDeclaration struct {
	Identifier     Identifier
	TypeAnnotation Type
	Range
}

var _ Declaration = &AliasDeclaration{}

func NewAliasDeclaration(
	identifier Identifier,
	typeAnnotation Type,
	declarationRange Range,
) *AliasDeclaration {
	return &AliasDeclaration{
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Range:          declarationRange,
	}
}

func (*AliasDeclaration) isDeclaration() {}

func (d *AliasDeclaration) DeclarationIdentifier() Identifier {
	return d.Identifier
}

func (*AliasDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindAlias
}
