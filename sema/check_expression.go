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
	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
)

// checkExpression determines the type of the given expression,
// reporting any faults found along the way.
// An erroneous expression has the Unknown type:
// consumers accept it silently, so each root cause
// is reported exactly once.
func (c *Checker) checkExpression(expression ast.Expression) Type {
	switch expression := expression.(type) {
	case *ast.NumberExpression:
		return NumberType

	case *ast.StringExpression:
		return TextType

	case *ast.BoolExpression:
		return BoolType

	case *ast.IdentifierExpression:
		return c.checkIdentifierExpression(expression)

	case *ast.InvocationExpression:
		return c.checkInvocationExpression(expression)

	case *ast.BinaryExpression:
		return c.checkBinaryExpression(expression)

	case *ast.UnaryExpression:
		return c.checkUnaryExpression(expression)

	case *ast.MemberExpression:
		return c.checkMemberExpression(expression)

	case *ast.IndexExpression:
		return c.checkIndexExpression(expression)

	case *ast.ListExpression:
		return c.checkListExpression(expression)

	case *ast.RecordExpression:
		return c.checkRecordExpression(expression)

	case *ast.UpdateExpression:
		return c.checkUpdateExpression(expression)

	case *ast.OkExpression:
		return NewResultType(
			c.checkExpression(expression.Expression),
			UnknownType,
		)

	case *ast.ErrExpression:
		return NewResultType(
			UnknownType,
			c.checkExpression(expression.Expression),
		)

	case *ast.VariantExpression:
		return c.checkVariantExpression(expression)

	case *ast.PropagateExpression:
		return c.checkPropagateExpression(expression)

	case *ast.MatchExpression:
		return c.checkMatchExpression(expression)

	case nil:
		c.report(&InvalidASTError{
			Detail: "missing expression",
		})
		return UnknownType

	default:
		c.report(&InvalidASTError{
			Detail: "unknown expression kind",
			Range:  ast.NewRangeFromPositioned(expression),
		})
		return UnknownType
	}
}

func (c *Checker) checkIdentifierExpression(
	expression *ast.IdentifierExpression,
) Type {
	name := expression.Identifier.Identifier

	variable := c.valueActivations.Find(name)
	if variable != nil {
		variable.Used = true
		return variable.Type
	}

	c.report(&NotDeclaredError{
		ExpectedKind: common.DeclarationKindVariable,
		Name:         name,
		Candidates:   c.valueActivations.Names(),
		Pos:          expression.Identifier.Pos,
	})

	// bind the name to Unknown, so further references
	// resolve silently instead of re-reporting the root cause
	c.valueActivations.Set(
		name,
		&Variable{
			Identifier: name,
			Type:       UnknownType,
			Kind:       common.DeclarationKindVariable,
			Pos:        expression.Identifier.Pos,
			Used:       true,
		},
	)

	return UnknownType
}

func (c *Checker) checkMemberExpression(expression *ast.MemberExpression) Type {
	targetType := c.checkExpression(expression.Expression)

	if targetType == UnknownType {
		return UnknownType
	}

	record, ok := targetType.(*RecordType)
	if !ok {
		c.report(&InvalidFieldAccessError{
			Type:  targetType,
			Range: ast.NewRangeFromPositioned(expression),
		})
		return UnknownType
	}

	fieldName := expression.Identifier.Identifier

	if fieldType, ok := record.Fields.Get(fieldName); ok {
		return fieldType
	}

	c.report(&NotDeclaredMemberError{
		MemberKind: "field",
		Name:       fieldName,
		Candidates: record.FieldNames(),
		Type:       record,
		Range:      ast.NewRangeFromPositioned(expression.Identifier),
	})
	return UnknownType
}

func (c *Checker) checkIndexExpression(expression *ast.IndexExpression) Type {
	targetType := c.checkExpression(expression.TargetExpression)
	indexType := c.checkExpression(expression.IndexingExpression)

	if !IsCompatible(indexType, NumberType) {
		c.report(&TypeMismatchError{
			ExpectedType: NumberType,
			ActualType:   indexType,
			Range:        ast.NewRangeFromPositioned(expression.IndexingExpression),
		})
	}

	if targetType == UnknownType {
		return UnknownType
	}

	list, ok := targetType.(*ListType)
	if !ok {
		c.report(&NotIndexableTypeError{
			Type:  targetType,
			Range: ast.NewRangeFromPositioned(expression.TargetExpression),
		})
		return UnknownType
	}

	return list.ElementType
}

func (c *Checker) checkListExpression(expression *ast.ListExpression) Type {
	if len(expression.Values) == 0 {
		// the element type is determined by the context the list is used in
		return NewListType(UnknownType)
	}

	elementType := c.checkExpression(expression.Values[0])

	for _, value := range expression.Values[1:] {
		valueType := c.checkExpression(value)

		if !IsCompatible(valueType, elementType) {
			c.report(&TypeMismatchError{
				ExpectedType: elementType,
				ActualType:   valueType,
				Range:        ast.NewRangeFromPositioned(value),
			})
		}
	}

	return NewListType(elementType)
}

func (c *Checker) checkRecordExpression(expression *ast.RecordExpression) Type {
	name := expression.Identifier.Identifier

	symbol := c.symbols.Find(name)
	if symbol == nil || !symbol.Kind.IsTypeDeclaration() {
		c.report(&NotDeclaredTypeError{
			Name:       name,
			Candidates: c.symbols.typeNames(),
			Range:      ast.NewRangeFromPositioned(expression.Identifier),
		})
		return UnknownType
	}

	if symbol.Type == UnknownType {
		return UnknownType
	}

	record, ok := symbol.Type.(*RecordType)
	if !ok {
		c.report(&NotConstructibleTypeError{
			Type:  symbol.Type,
			Range: ast.NewRangeFromPositioned(expression.Identifier),
		})
		return UnknownType
	}

	c.checkRecordFields(record, expression.Fields, true, expression.Range)

	return record
}

func (c *Checker) checkUpdateExpression(expression *ast.UpdateExpression) Type {
	targetType := c.checkExpression(expression.Expression)

	if targetType == UnknownType {
		for _, update := range expression.Updates {
			c.checkExpression(update.Value)
		}
		return UnknownType
	}

	record, ok := targetType.(*RecordType)
	if !ok {
		c.report(&NotConstructibleTypeError{
			Type:  targetType,
			Range: ast.NewRangeFromPositioned(expression.Expression),
		})
		for _, update := range expression.Updates {
			c.checkExpression(update.Value)
		}
		return UnknownType
	}

	c.checkRecordFields(record, expression.Updates, false, expression.Range)

	return record
}

// checkRecordFields checks the given `name: value` entries against
// the record's declared fields.
// A construction must provide every field exactly once,
// an update may provide any subset.
func (c *Checker) checkRecordFields(
	record *RecordType,
	fields []ast.RecordField,
	requireAll bool,
	expressionRange ast.Range,
) {
	provided := map[string]ast.Position{}

	for _, field := range fields {
		fieldName := field.Identifier.Identifier

		valueType := c.checkExpression(field.Value)

		if previousPos, ok := provided[fieldName]; ok {
			pos := previousPos
			c.report(&RedeclarationError{
				Kind:         common.DeclarationKindField,
				PreviousKind: common.DeclarationKindField,
				Name:         fieldName,
				Pos:          field.Identifier.Pos,
				PreviousPos:  &pos,
			})
			continue
		}
		provided[fieldName] = field.Identifier.Pos

		fieldType, ok := record.Fields.Get(fieldName)
		if !ok {
			c.report(&NotDeclaredMemberError{
				MemberKind: "field",
				Name:       fieldName,
				Candidates: record.FieldNames(),
				Type:       record,
				Range:      ast.NewRangeFromPositioned(field.Identifier),
			})
			continue
		}

		if !IsCompatible(valueType, fieldType) {
			c.report(&TypeMismatchError{
				ExpectedType: fieldType,
				ActualType:   valueType,
				Range:        ast.NewRangeFromPositioned(field.Value),
			})
		}
	}

	if !requireAll {
		return
	}

	var missing []string
	record.Fields.Foreach(func(fieldName string, _ Type) {
		if _, ok := provided[fieldName]; !ok {
			missing = append(missing, fieldName)
		}
	})

	if len(missing) > 0 {
		c.report(&MissingFieldsError{
			RecordType:    record,
			MissingFields: missing,
			Range:         expressionRange,
		})
	}
}

func (c *Checker) checkVariantExpression(expression *ast.VariantExpression) Type {
	enumName := expression.Enum.Identifier

	symbol := c.symbols.Find(enumName)
	if symbol == nil || !symbol.Kind.IsTypeDeclaration() {
		c.report(&NotDeclaredTypeError{
			Name:       enumName,
			Candidates: c.symbols.typeNames(),
			Range:      ast.NewRangeFromPositioned(expression.Enum),
		})
		if expression.Payload != nil {
			c.checkExpression(expression.Payload)
		}
		return UnknownType
	}

	if symbol.Type == UnknownType {
		if expression.Payload != nil {
			c.checkExpression(expression.Payload)
		}
		return UnknownType
	}

	enum, ok := symbol.Type.(*EnumType)
	if !ok {
		c.report(&NotConstructibleTypeError{
			Type:  symbol.Type,
			Range: ast.NewRangeFromPositioned(expression.Enum),
		})
		if expression.Payload != nil {
			c.checkExpression(expression.Payload)
		}
		return UnknownType
	}

	variantName := expression.Variant.Identifier

	variant, _ := enum.VariantByName(variantName)
	if variant == nil {
		c.report(&NotDeclaredMemberError{
			MemberKind: "variant",
			Name:       variantName,
			Candidates: enum.VariantNames(),
			Type:       enum,
			Range:      ast.NewRangeFromPositioned(expression.Variant),
		})
		if expression.Payload != nil {
			c.checkExpression(expression.Payload)
		}
		return enum
	}

	switch {
	case variant.PayloadType == nil && expression.Payload != nil:
		payloadType := c.checkExpression(expression.Payload)
		c.report(&TypeMismatchError{
			ExpectedType: UnitType,
			ActualType:   payloadType,
			Range:        ast.NewRangeFromPositioned(expression.Payload),
		})

	case variant.PayloadType != nil && expression.Payload == nil:
		c.report(&TypeMismatchError{
			ExpectedType: variant.PayloadType,
			ActualType:   UnitType,
			Range:        ast.NewRangeFromPositioned(expression.Variant),
		})

	case expression.Payload != nil:
		payloadType := c.checkExpression(expression.Payload)
		if !IsCompatible(payloadType, variant.PayloadType) {
			c.report(&TypeMismatchError{
				ExpectedType: variant.PayloadType,
				ActualType:   payloadType,
				Range:        ast.NewRangeFromPositioned(expression.Payload),
			})
		}
	}

	return enum
}

func (c *Checker) checkPropagateExpression(
	expression *ast.PropagateExpression,
) Type {
	operandType := c.checkExpression(expression.Expression)

	if operandType == UnknownType {
		return UnknownType
	}

	result, ok := operandType.(*ResultType)
	if !ok {
		c.report(&InvalidPropagationOperandError{
			Type:  operandType,
			Range: ast.NewRangeFromPositioned(expression),
		})
		return UnknownType
	}

	if c.currentFunction == nil {
		c.report(&InvalidASTError{
			Detail: "propagation outside of a function body",
			Range:  ast.NewRangeFromPositioned(expression),
		})
		return result.OkType
	}

	returnResult, ok := c.currentFunction.returnType.(*ResultType)
	if c.currentFunction.returnType != UnknownType &&
		(!ok || !IsCompatible(result.ErrType, returnResult.ErrType)) {

		c.report(&PropagationOutsideFallibleContextError{
			FunctionName: c.currentFunction.name,
			ReturnType:   c.currentFunction.returnType,
			Range:        ast.NewRangeFromPositioned(expression),
		})
	}

	return result.OkType
}
