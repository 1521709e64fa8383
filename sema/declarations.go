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
	"github.com/loomlang/loom/errors"
)

// collectDeclarations registers every top-level declaration by name,
// in source order, before anything is resolved.
// Type declarations get shell types, so mutually recursive references
// between records and enums resolve in the next phase.
// On a collision, the first declaration is kept.
func (c *Checker) collectDeclarations() {
	for _, declaration := range c.Program.Declarations {

		identifier := declaration.DeclarationIdentifier()
		kind := declaration.DeclarationKind()

		symbol := &Symbol{
			Name:       identifier.Identifier,
			Kind:       kind,
			Provenance: ProvenanceLocal,
			Pos:        identifier.Pos,
			HasPos:     true,
		}

		switch declaration := declaration.(type) {
		case *ast.FunctionDeclaration:
			// signature is registered after type resolution

		case *ast.RecordDeclaration:
			symbol.Type = NewRecordType(identifier.Identifier)

		case *ast.EnumDeclaration:
			symbol.Type = NewEnumType(identifier.Identifier)

		case *ast.AliasDeclaration:
			// target is resolved on demand, cycles included.
			// on a redeclaration the first alias wins here too
			if _, ok := c.aliasDeclarations[identifier.Identifier]; !ok {
				c.aliasDeclarations[identifier.Identifier] = declaration
			}

		default:
			c.report(&InvalidASTError{
				Detail: "unknown declaration kind",
				Range:  ast.NewRangeFromPositioned(declaration),
			})
			continue
		}

		if existing := c.symbols.Register(symbol); existing != nil {
			c.reportRedeclaration(kind, identifier, existing)
		}
	}
}

func (c *Checker) reportRedeclaration(
	kind common.DeclarationKind,
	identifier ast.Identifier,
	existing *Symbol,
) {
	var previousPos *ast.Position
	if existing.HasPos {
		pos := existing.Pos
		previousPos = &pos
	}

	c.report(&RedeclarationError{
		Kind:         kind,
		PreviousKind: existing.Kind,
		Name:         identifier.Identifier,
		Pos:          identifier.Pos,
		PreviousPos:  previousPos,
	})
}

// resolveTypeDeclarations turns the collected type shells into
// fully resolved types: alias targets are expanded,
// record fields and enum variant payloads are converted
func (c *Checker) resolveTypeDeclarations() {

	// resolve all aliases first, so field and payload types
	// written through an alias land on the canonical type
	for _, declaration := range c.Program.Declarations {
		alias, ok := declaration.(*ast.AliasDeclaration)
		if !ok {
			continue
		}

		name := alias.Identifier.Identifier
		resolved := c.resolveAlias(name)

		symbol := c.symbols.Find(name)
		if symbol != nil && symbol.Kind == common.DeclarationKindAlias {
			symbol.Type = resolved
		}
	}

	for _, declaration := range c.Program.Declarations {
		switch declaration := declaration.(type) {
		case *ast.RecordDeclaration:
			c.resolveRecordDeclaration(declaration)

		case *ast.EnumDeclaration:
			c.resolveEnumDeclaration(declaration)
		}
	}
}

func (c *Checker) resolveRecordDeclaration(declaration *ast.RecordDeclaration) {
	recordType := c.declaredType(declaration.Identifier)
	record, ok := recordType.(*RecordType)
	if !ok {
		// the record lost its name in a collision
		return
	}

	for _, field := range declaration.Fields {
		fieldName := field.Identifier.Identifier

		if record.Fields.Contains(fieldName) {
			previousPos := c.fieldPosition(declaration, fieldName)
			c.report(&RedeclarationError{
				Kind:         common.DeclarationKindField,
				PreviousKind: common.DeclarationKindField,
				Name:         fieldName,
				Pos:          field.Identifier.Pos,
				PreviousPos:  previousPos,
			})
			continue
		}

		record.Fields.Set(fieldName, c.ConvertType(field.TypeAnnotation))
	}
}

func (c *Checker) fieldPosition(
	declaration *ast.RecordDeclaration,
	name string,
) *ast.Position {
	for _, field := range declaration.Fields {
		if field.Identifier.Identifier == name {
			pos := field.Identifier.Pos
			return &pos
		}
	}
	return nil
}

func (c *Checker) resolveEnumDeclaration(declaration *ast.EnumDeclaration) {
	enumType := c.declaredType(declaration.Identifier)
	enum, ok := enumType.(*EnumType)
	if !ok {
		return
	}

	for _, variant := range declaration.Variants {
		variantName := variant.Identifier.Identifier

		if existing, _ := enum.VariantByName(variantName); existing != nil {
			c.report(&RedeclarationError{
				Kind:         common.DeclarationKindEnumVariant,
				PreviousKind: common.DeclarationKindEnumVariant,
				Name:         variantName,
				Pos:          variant.Identifier.Pos,
			})
			continue
		}

		var payloadType Type
		if variant.PayloadType != nil {
			payloadType = c.ConvertType(variant.PayloadType)
		}

		enum.Variants = append(
			enum.Variants,
			&EnumVariant{
				Identifier:  variantName,
				PayloadType: payloadType,
			},
		)
	}
}

// declaredType returns the resolved type a declaration's name refers to,
// or nil if the name was lost to a collision
func (c *Checker) declaredType(identifier ast.Identifier) Type {
	symbol := c.symbols.Find(identifier.Identifier)
	if symbol == nil || !symbol.HasPos || symbol.Pos != identifier.Pos {
		return nil
	}
	return symbol.Type
}

// resolveAlias expands the alias with the given name to a canonical type.
// An expansion that reaches the alias itself again is reported
// and resolves to Unknown, so resolution always terminates.
func (c *Checker) resolveAlias(name string) Type {
	if resolved, ok := c.aliasResolved[name]; ok {
		return resolved
	}

	for i, onStack := range c.aliasStack {
		if onStack != name {
			continue
		}

		declaration := c.aliasDeclarations[name]
		cycle := make([]string, len(c.aliasStack)-i)
		copy(cycle, c.aliasStack[i:])

		c.report(&CyclicAliasError{
			Name:  name,
			Cycle: cycle,
			Range: ast.NewRangeFromPositioned(declaration.Identifier),
		})

		c.aliasResolved[name] = UnknownType
		return UnknownType
	}

	declaration, ok := c.aliasDeclarations[name]
	if !ok {
		panic(errors.NewUnreachableError())
	}

	c.aliasStack = append(c.aliasStack, name)
	resolved := c.ConvertType(declaration.TypeAnnotation)
	c.aliasStack = c.aliasStack[:len(c.aliasStack)-1]

	c.aliasResolved[name] = resolved
	return resolved
}

// registerFunctionSignatures converts every function declaration's
// parameter and return types and attaches the signature to its symbol.
// Bodies are not checked yet: all signatures must be known first,
// since functions may call functions declared later.
func (c *Checker) registerFunctionSignatures() {
	for _, declaration := range c.Program.Declarations {
		function, ok := declaration.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}

		functionType := c.convertFunctionSignature(function)

		symbol := c.symbols.Find(function.Identifier.Identifier)
		if symbol == nil ||
			!symbol.HasPos ||
			symbol.Pos != function.Identifier.Pos {

			// the function lost its name in a collision
			continue
		}

		symbol.FunctionType = functionType
	}
}

func (c *Checker) convertFunctionSignature(
	function *ast.FunctionDeclaration,
) *FunctionType {

	var parameters []Parameter
	if function.ParameterList != nil {
		seen := map[string]ast.Position{}

		for _, parameter := range function.ParameterList.Parameters {
			name := parameter.Identifier.Identifier

			if previousPos, ok := seen[name]; ok {
				pos := previousPos
				c.report(&RedeclarationError{
					Kind:         common.DeclarationKindParameter,
					PreviousKind: common.DeclarationKindParameter,
					Name:         name,
					Pos:          parameter.Identifier.Pos,
					PreviousPos:  &pos,
				})
			} else {
				seen[name] = parameter.Identifier.Pos
			}

			parameters = append(
				parameters,
				Parameter{
					Identifier:     name,
					TypeAnnotation: c.ConvertType(parameter.TypeAnnotation),
				},
			)
		}
	}

	returnType := Type(UnitType)
	if function.ReturnTypeAnnotation != nil {
		returnType = c.ConvertType(function.ReturnTypeAnnotation)
	}

	return NewFunctionType(parameters, returnType)
}
