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

	"github.com/loomlang/loom/common/orderedmap"
)

// Type is the closed set of canonical Loom types.
// A canonical type is fully resolved: aliases are expanded,
// and every component is itself canonical.
type Type interface {
	isType()
	String() string
	// Equal returns true if the given type is equal to this type
	Equal(other Type) bool
	// IsUnknownType returns true if the type,
	// or any of its component types, is the Unknown type
	IsUnknownType() bool
}

// IsCompatible returns true if a value of one type is acceptable
// where the other type is required.
//
// Unknown is compatible with everything, in every position:
// this is the mechanism that keeps one root-cause error
// from cascading into many.
// All other types must be structurally equal,
// with nominal identity for records and enums.
func IsCompatible(a, b Type) bool {
	if a == UnknownType || b == UnknownType {
		return true
	}

	switch a := a.(type) {
	case *SimpleType:
		return a.Equal(b)

	case *ListType:
		b, ok := b.(*ListType)
		return ok && IsCompatible(a.ElementType, b.ElementType)

	case *ResultType:
		b, ok := b.(*ResultType)
		return ok &&
			IsCompatible(a.OkType, b.OkType) &&
			IsCompatible(a.ErrType, b.ErrType)

	case *RecordType:
		b, ok := b.(*RecordType)
		return ok && a.Identifier == b.Identifier

	case *EnumType:
		b, ok := b.(*EnumType)
		return ok && a.Identifier == b.Identifier
	}

	return false
}

// SimpleType is a non-composite type: Number, Text, Bool, or Unit
type SimpleType struct {
	Name string
}

var _ Type = &SimpleType{}

// NumberType represents 64-bit floating point numbers
var NumberType = &SimpleType{Name: "Number"}

// TextType represents UTF-8 strings
var TextType = &SimpleType{Name: "Text"}

// BoolType represents booleans
var BoolType = &SimpleType{Name: "Bool"}

// UnitType represents the absence of a value,
// e.g. the value of a `let` statement
var UnitType = &SimpleType{Name: "Unit"}

func (*SimpleType) isType() {}

func (t *SimpleType) String() string {
	return t.Name
}

func (t *SimpleType) Equal(other Type) bool {
	return t == other
}

func (*SimpleType) IsUnknownType() bool {
	return false
}

// UnknownType

type unknownType struct{}

// UnknownType is the wildcard type: it is compatible with every other type,
// and is never writable by a user.
// It is substituted for the type of an erroneous expression,
// so expressions consuming the erroneous one are poisoned silently
// instead of producing redundant diagnostics.
var UnknownType Type = unknownType{}

func (unknownType) isType() {}

func (unknownType) String() string {
	return "Unknown"
}

func (unknownType) Equal(other Type) bool {
	return other == UnknownType
}

func (unknownType) IsUnknownType() bool {
	return true
}

// ListType is a homogeneous list
type ListType struct {
	ElementType Type
}

var _ Type = &ListType{}

func NewListType(elementType Type) *ListType {
	return &ListType{
		ElementType: elementType,
	}
}

func (*ListType) isType() {}

func (t *ListType) String() string {
	return fmt.Sprintf("List<%s>", t.ElementType)
}

func (t *ListType) Equal(other Type) bool {
	otherList, ok := other.(*ListType)
	return ok && t.ElementType.Equal(otherList.ElementType)
}

func (t *ListType) IsUnknownType() bool {
	return t.ElementType.IsUnknownType()
}

// ResultType is the success-or-error type
type ResultType struct {
	OkType  Type
	ErrType Type
}

var _ Type = &ResultType{}

func NewResultType(okType, errType Type) *ResultType {
	return &ResultType{
		OkType:  okType,
		ErrType: errType,
	}
}

func (*ResultType) isType() {}

func (t *ResultType) String() string {
	return fmt.Sprintf("Result<%s, %s>", t.OkType, t.ErrType)
}

func (t *ResultType) Equal(other Type) bool {
	otherResult, ok := other.(*ResultType)
	return ok &&
		t.OkType.Equal(otherResult.OkType) &&
		t.ErrType.Equal(otherResult.ErrType)
}

func (t *ResultType) IsUnknownType() bool {
	return t.OkType.IsUnknownType() ||
		t.ErrType.IsUnknownType()
}

// RecordType is a named record with ordered, immutable fields.
// Identity is nominal: two record types with the same fields
// but different names are distinct.
type RecordType struct {
	Identifier string
	Fields     *orderedmap.OrderedMap[string, Type]
}

var _ Type = &RecordType{}

func NewRecordType(identifier string) *RecordType {
	return &RecordType{
		Identifier: identifier,
		Fields:     orderedmap.New[string, Type](0),
	}
}

func (*RecordType) isType() {}

func (t *RecordType) String() string {
	return t.Identifier
}

func (t *RecordType) Equal(other Type) bool {
	otherRecord, ok := other.(*RecordType)
	return ok && t.Identifier == otherRecord.Identifier
}

func (*RecordType) IsUnknownType() bool {
	return false
}

// FieldNames returns the record's field names in declaration order
func (t *RecordType) FieldNames() []string {
	return t.Fields.Keys()
}

// QualifiedString renders the record with its full field list,
// e.g. `Point{x: Number, y: Number}`
func (t *RecordType) QualifiedString() string {
	var sb strings.Builder
	sb.WriteString(t.Identifier)
	sb.WriteByte('{')
	first := true
	t.Fields.Foreach(func(name string, fieldType Type) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(fieldType.String())
	})
	sb.WriteByte('}')
	return sb.String()
}

// EnumVariant is one variant of an enum type,
// with an optional payload type (nil if the variant carries no payload)
type EnumVariant struct {
	Identifier  string
	PayloadType Type
}

// EnumType is a named enum with ordered variants.
// Identity is nominal.
type EnumType struct {
	Identifier string
	Variants   []*EnumVariant
}

var _ Type = &EnumType{}

func NewEnumType(identifier string) *EnumType {
	return &EnumType{
		Identifier: identifier,
	}
}

func (*EnumType) isType() {}

func (t *EnumType) String() string {
	return t.Identifier
}

func (t *EnumType) Equal(other Type) bool {
	otherEnum, ok := other.(*EnumType)
	return ok && t.Identifier == otherEnum.Identifier
}

func (*EnumType) IsUnknownType() bool {
	return false
}

// VariantByName returns the variant with the given name,
// and its index in declaration order
func (t *EnumType) VariantByName(name string) (variant *EnumVariant, index int) {
	for i, v := range t.Variants {
		if v.Identifier == name {
			return v, i
		}
	}
	return nil, -1
}

// VariantNames returns the enum's variant names in declaration order
func (t *EnumType) VariantNames() []string {
	names := make([]string, 0, len(t.Variants))
	for _, v := range t.Variants {
		names = append(names, v.Identifier)
	}
	return names
}

// Parameter is one named parameter of a function signature
type Parameter struct {
	Identifier     string
	TypeAnnotation Type
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s: %s", p.Identifier, p.TypeAnnotation)
}

// FunctionType is the signature of a callable:
// a local function, a built-in function, or a bound tool.
// Functions are not values in Loom,
// so FunctionType is not part of the Type sum.
type FunctionType struct {
	Parameters []Parameter
	ReturnType Type
}

func NewFunctionType(parameters []Parameter, returnType Type) *FunctionType {
	return &FunctionType{
		Parameters: parameters,
		ReturnType: returnType,
	}
}

func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, parameter := range t.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(parameter.String())
	}
	sb.WriteString("): ")
	sb.WriteString(t.ReturnType.String())
	return sb.String()
}
