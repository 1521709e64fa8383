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

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
	"github.com/loomlang/loom/toolschema"
)

// bindTools turns every tool schema into a callable symbol.
//
// Tools can fail at runtime, so a bound tool always returns a Result:
// the output type on success, and Text (the transport error message)
// on failure.
//
// Binding fails closed: a tool whose schema falls outside the supported
// subset is reported and not bound, so a call of it is an error
// rather than an unchecked invocation.
func (c *Checker) bindTools() {
	for _, tool := range c.Tools {
		c.bindTool(tool)
	}
}

func (c *Checker) bindTool(tool toolschema.ToolSchema) {
	if tool.Name == "" {
		c.report(&UnsupportedSchemaError{
			ToolName: "(unnamed)",
			Path:     "name",
			Detail:   "a tool must have a name",
		})
		return
	}

	binder := &toolBinder{tool: tool}

	parameters := binder.bindParameters(tool.InputSchema)

	outputType := Type(TextType)
	if tool.OutputSchema != nil {
		outputType = binder.bindType(tool.OutputSchema, "outputSchema")
	}

	if binder.err != nil {
		c.report(binder.err)
		return
	}

	symbol := &Symbol{
		Name:       tool.Name,
		Kind:       common.DeclarationKindTool,
		Provenance: ProvenanceTool,
		FunctionType: NewFunctionType(
			parameters,
			NewResultType(outputType, TextType),
		),
		Description: tool.Description,
	}

	if existing := c.symbols.Register(symbol); existing != nil {
		var previousPos *ast.Position
		if existing.HasPos {
			pos := existing.Pos
			previousPos = &pos
		}

		c.report(&RedeclarationError{
			Kind:         common.DeclarationKindTool,
			PreviousKind: existing.Kind,
			Name:         tool.Name,
			PreviousPos:  previousPos,
		})
	}
}

// toolBinder converts one tool's schemas.
// The first unsupported construct poisons the whole binding.
type toolBinder struct {
	tool toolschema.ToolSchema
	err  *UnsupportedSchemaError
}

func (b *toolBinder) fail(path, detail string) {
	if b.err != nil {
		return
	}
	b.err = &UnsupportedSchemaError{
		ToolName: b.tool.Name,
		Path:     path,
		Detail:   detail,
	}
}

// bindParameters converts the input schema's properties to parameters,
// in property order. A tool without an input schema takes no arguments.
func (b *toolBinder) bindParameters(schema *toolschema.Schema) []Parameter {
	if schema == nil {
		return nil
	}

	const path = "inputSchema"

	if !b.checkSupported(schema, path) {
		return nil
	}

	if schema.Type != "object" {
		b.fail(path, fmt.Sprintf(
			"the input schema must be an object, got %q",
			schema.Type,
		))
		return nil
	}

	var parameters []Parameter
	for _, property := range schema.Properties {
		parameters = append(
			parameters,
			Parameter{
				Identifier: property.Name,
				TypeAnnotation: b.bindType(
					property.Schema,
					path+".properties."+property.Name,
				),
			},
		)
	}
	return parameters
}

// bindType converts one schema node to a type
func (b *toolBinder) bindType(schema *toolschema.Schema, path string) Type {
	if schema == nil {
		b.fail(path, "missing schema")
		return UnknownType
	}

	if !b.checkSupported(schema, path) {
		return UnknownType
	}

	switch schema.Type {
	case "string":
		return TextType

	case "number", "integer":
		return NumberType

	case "boolean":
		return BoolType

	case "array":
		if schema.Items == nil {
			b.fail(path, "an array schema must declare its items")
			return UnknownType
		}
		return NewListType(b.bindType(schema.Items, path+".items"))

	case "object":
		return b.bindObjectType(schema, path)

	default:
		b.fail(path, fmt.Sprintf("unsupported schema type %q", schema.Type))
		return UnknownType
	}
}

// bindObjectType synthesizes a record type for a nested object schema.
// The record is named after the tool and the schema's place in it,
// e.g. `get_weather.outputSchema`.
// Synthesized records are not registered as declared types:
// their values come only from tool results.
func (b *toolBinder) bindObjectType(
	schema *toolschema.Schema,
	path string,
) Type {
	record := NewRecordType(b.tool.Name + "." + path)

	for _, property := range schema.Properties {
		record.Fields.Set(
			property.Name,
			b.bindType(
				property.Schema,
				path+".properties."+property.Name,
			),
		)
	}

	return record
}

// checkSupported fails on the schema constructs
// outside the supported subset
func (b *toolBinder) checkSupported(
	schema *toolschema.Schema,
	path string,
) bool {
	switch {
	case schema.Ref != "":
		b.fail(path, "$ref is not supported")

	case len(schema.OneOf) > 0:
		b.fail(path, "oneOf is not supported")

	case len(schema.AnyOf) > 0:
		b.fail(path, "anyOf is not supported")

	case len(schema.AllOf) > 0:
		b.fail(path, "allOf is not supported")

	default:
		return true
	}

	return false
}
