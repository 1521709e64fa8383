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

// predeclaredTypes are the type names that are always in scope
var predeclaredTypes = map[string]Type{
	"Number": NumberType,
	"Text":   TextType,
	"Bool":   BoolType,
	"Unit":   UnitType,
}

// predeclaredTypeNames, in a fixed order for suggestion candidates
var predeclaredTypeNames = []string{
	"Number",
	"Text",
	"Bool",
	"Unit",
}

// ConvertType resolves a type expression to a canonical type.
// A reference to an undeclared type is reported
// and converts to Unknown, so one bad annotation
// produces exactly one diagnostic.
func (c *Checker) ConvertType(t ast.Type) Type {
	switch t := t.(type) {
	case *ast.NominalType:
		return c.convertNominalType(t)

	case *ast.ListType:
		return NewListType(c.ConvertType(t.Element))

	case *ast.ResultType:
		return NewResultType(
			c.ConvertType(t.OkType),
			c.ConvertType(t.ErrType),
		)

	case nil:
		c.report(&InvalidASTError{
			Detail: "missing type annotation",
		})
		return UnknownType

	default:
		c.report(&InvalidASTError{
			Detail: "unknown type annotation kind",
			Range:  ast.NewRangeFromPositioned(t),
		})
		return UnknownType
	}
}

func (c *Checker) convertNominalType(t *ast.NominalType) Type {
	name := t.Identifier.Identifier

	if predeclared, ok := predeclaredTypes[name]; ok {
		return predeclared
	}

	symbol := c.symbols.Find(name)
	if symbol != nil && symbol.Kind.IsTypeDeclaration() {

		if symbol.Kind == common.DeclarationKindAlias {
			// nil until resolution: reachable while resolving
			// the aliases themselves
			resolved := c.resolveAlias(name)
			return resolved
		}

		return symbol.Type
	}

	candidates := append(
		c.symbols.typeNames(),
		predeclaredTypeNames...,
	)

	c.report(&NotDeclaredTypeError{
		Name:       name,
		Candidates: candidates,
		Range:      ast.NewRangeFromPositioned(t),
	})
	return UnknownType
}
