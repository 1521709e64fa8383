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
	"github.com/loomlang/loom/errors"
)

// checkBinaryExpression checks the operands of a binary operator
// against the fixed operator table. Operators are not overloadable.
//
// A poisoned operand disables the check: the operator's fault, if any,
// was already reported at the operand's root cause.
func (c *Checker) checkBinaryExpression(expression *ast.BinaryExpression) Type {
	leftType := c.checkExpression(expression.Left)
	rightType := c.checkExpression(expression.Right)

	operation := expression.Operation

	poisoned := leftType.IsUnknownType() || rightType.IsUnknownType()

	reportInvalidOperands := func() {
		if poisoned {
			return
		}
		c.report(&InvalidBinaryOperandsError{
			Operation: operation,
			LeftType:  leftType,
			RightType: rightType,
			Range:     ast.NewRangeFromPositioned(expression),
		})
	}

	switch operation {
	case ast.OperationPlus:
		// concatenation and addition share one symbol
		switch {
		case IsCompatible(leftType, NumberType) &&
			IsCompatible(rightType, NumberType):
			return NumberType

		case IsCompatible(leftType, TextType) &&
			IsCompatible(rightType, TextType):
			return TextType
		}

		leftList, leftOk := leftType.(*ListType)
		_, rightOk := rightType.(*ListType)
		if leftOk && rightOk && IsCompatible(leftType, rightType) {
			return leftList
		}

		if poisoned {
			return UnknownType
		}
		reportInvalidOperands()
		return UnknownType

	case ast.OperationMinus,
		ast.OperationMul,
		ast.OperationDiv:

		if IsCompatible(leftType, NumberType) &&
			IsCompatible(rightType, NumberType) {
			return NumberType
		}
		reportInvalidOperands()
		return poison(NumberType, poisoned)

	case ast.OperationLess,
		ast.OperationGreater,
		ast.OperationLessEqual,
		ast.OperationGreaterEqual:

		// ordering is defined for numbers and for texts
		numbers := IsCompatible(leftType, NumberType) &&
			IsCompatible(rightType, NumberType)
		texts := IsCompatible(leftType, TextType) &&
			IsCompatible(rightType, TextType)

		if !numbers && !texts {
			reportInvalidOperands()
		}
		return BoolType

	case ast.OperationEqual,
		ast.OperationNotEqual:

		if !IsCompatible(leftType, rightType) {
			reportInvalidOperands()
		}
		return BoolType

	case ast.OperationAnd,
		ast.OperationOr:

		if !IsCompatible(leftType, BoolType) ||
			!IsCompatible(rightType, BoolType) {
			reportInvalidOperands()
		}
		return BoolType

	case ast.OperationAppend:
		if leftList, ok := leftType.(*ListType); ok {
			if !IsCompatible(rightType, leftList.ElementType) {
				reportInvalidOperands()
			}
			return leftList
		}
		if leftType == UnknownType {
			return UnknownType
		}
		reportInvalidOperands()
		return UnknownType
	}

	panic(errors.NewUnreachableError())
}

// poison returns Unknown instead of the operator's result type
// when an operand was already erroneous
func poison(resultType Type, poisoned bool) Type {
	if poisoned {
		return UnknownType
	}
	return resultType
}

func (c *Checker) checkUnaryExpression(expression *ast.UnaryExpression) Type {
	operandType := c.checkExpression(expression.Expression)

	var expectedType Type
	switch expression.Operation {
	case ast.OperationNegate:
		expectedType = NumberType
	case ast.OperationNot:
		expectedType = BoolType
	default:
		c.report(&InvalidASTError{
			Detail: "unknown unary operation",
			Range:  ast.NewRangeFromPositioned(expression),
		})
		return UnknownType
	}

	if !IsCompatible(operandType, expectedType) {
		c.report(&InvalidUnaryOperandError{
			Operation:    expression.Operation,
			ExpectedType: expectedType,
			ActualType:   operandType,
			Range:        ast.NewRangeFromPositioned(expression),
		})
	}

	return expectedType
}
