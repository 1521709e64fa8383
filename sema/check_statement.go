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

// checkFunctionBodies checks every function declaration's body
// against its registered signature, in source order
func (c *Checker) checkFunctionBodies() {
	for _, declaration := range c.Program.Declarations {
		function, ok := declaration.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		c.checkFunctionDeclaration(function)
	}
}

func (c *Checker) checkFunctionDeclaration(function *ast.FunctionDeclaration) {
	name := function.Identifier.Identifier

	symbol := c.symbols.Find(name)

	var functionType *FunctionType
	if symbol != nil &&
		symbol.HasPos &&
		symbol.Pos == function.Identifier.Pos {

		functionType = symbol.FunctionType
	} else {
		// the function lost its name in a collision,
		// the body is still checked
		functionType = c.convertFunctionSignature(function)
	}

	c.currentFunction = &functionContext{
		name:       name,
		returnType: functionType.ReturnType,
	}
	defer func() {
		c.currentFunction = nil
	}()

	c.enterValueScope()
	defer c.leaveValueScope()

	if function.ParameterList != nil {
		for i, parameter := range function.ParameterList.Parameters {
			var parameterType Type = UnknownType
			if i < len(functionType.Parameters) {
				parameterType = functionType.Parameters[i].TypeAnnotation
			}
			c.declareVariable(
				parameter.Identifier,
				parameterType,
				common.DeclarationKindParameter,
			)
		}
	}

	if function.Body == nil {
		c.report(&InvalidASTError{
			Detail: "function declaration without a body",
			Range:  ast.NewRangeFromPositioned(function.Identifier),
		})
		return
	}

	bodyType, resultRange := c.checkBlock(function.Body)

	if !IsCompatible(bodyType, functionType.ReturnType) {
		c.report(&ReturnTypeMismatchError{
			FunctionName: name,
			ExpectedType: functionType.ReturnType,
			ActualType:   bodyType,
			Range:        resultRange,
		})
	}
}

// checkBlock checks the statements of a block in a fresh scope
// and returns the block's value type:
// the value of a final expression statement, and Unit otherwise.
// The returned range locates the value for diagnostics.
func (c *Checker) checkBlock(block *ast.Block) (Type, ast.Range) {
	c.enterValueScope()
	defer c.leaveValueScope()

	blockType := Type(UnitType)
	resultRange := ast.NewRangeFromPositioned(block)

	for i, statement := range block.Statements {
		statementType := c.checkStatement(statement)

		last := i == len(block.Statements)-1
		if !last {
			continue
		}

		if _, ok := statement.(*ast.ExpressionStatement); ok {
			blockType = statementType
			resultRange = ast.NewRangeFromPositioned(statement)
		}
	}

	return blockType, resultRange
}

// checkStatement returns the statement's value type:
// the expression's type for an expression statement, Unit otherwise
func (c *Checker) checkStatement(statement ast.Statement) Type {
	switch statement := statement.(type) {
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(statement)

	case *ast.ExpressionStatement:
		return c.checkExpression(statement.Expression)

	case *ast.ForStatement:
		c.checkForStatement(statement)

	case *ast.GuardStatement:
		c.checkGuardStatement(statement)

	case nil:
		c.report(&InvalidASTError{
			Detail: "missing statement",
		})

	default:
		c.report(&InvalidASTError{
			Detail: "unknown statement kind",
			Range:  ast.NewRangeFromPositioned(statement),
		})
	}

	return UnitType
}

func (c *Checker) checkVariableDeclaration(declaration *ast.VariableDeclaration) {
	valueType := c.checkExpression(declaration.Value)

	// re-binding a name in the same scope shadows the earlier binding
	c.declareVariable(
		declaration.Identifier,
		valueType,
		common.DeclarationKindVariable,
	)
}

func (c *Checker) checkForStatement(statement *ast.ForStatement) {
	valueType := c.checkExpression(statement.Value)

	elementType := Type(UnknownType)
	switch valueType := valueType.(type) {
	case *ListType:
		elementType = valueType.ElementType
	default:
		if valueType != UnknownType {
			c.report(&NotIterableError{
				Type:  valueType,
				Range: ast.NewRangeFromPositioned(statement.Value),
			})
		}
	}

	c.enterValueScope()
	defer c.leaveValueScope()

	c.declareVariable(
		statement.Identifier,
		elementType,
		common.DeclarationKindVariable,
	)

	if statement.Block != nil {
		c.checkBlock(statement.Block)
	}
}

func (c *Checker) checkGuardStatement(statement *ast.GuardStatement) {
	conditionType := c.checkExpression(statement.Condition)

	if !IsCompatible(conditionType, BoolType) {
		c.report(&TypeMismatchError{
			ExpectedType: BoolType,
			ActualType:   conditionType,
			Range:        ast.NewRangeFromPositioned(statement.Condition),
		})
	}

	if statement.Block != nil {
		c.checkBlock(statement.Block)
	}
}
