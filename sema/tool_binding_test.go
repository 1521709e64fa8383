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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/sema"
	"github.com/loomlang/loom/toolschema"
)

func stringSchema() *toolschema.Schema {
	return &toolschema.Schema{Type: "string"}
}

func numberSchema() *toolschema.Schema {
	return &toolschema.Schema{Type: "number"}
}

func schemaProperty(name string, schema *toolschema.Schema) *toolschema.Property {
	return &toolschema.Property{
		Name:   name,
		Schema: schema,
	}
}

func objectSchema(properties ...*toolschema.Property) *toolschema.Schema {
	return &toolschema.Schema{
		Type:       "object",
		Properties: properties,
	}
}

func TestBindTool(t *testing.T) {

	t.Parallel()

	t.Run("bound tool returns a Result", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(
				fun("plan",
					[]*ast.Parameter{
						param("city", nominal("Text")),
					},
					resultAnnotation(nominal("Text"), nominal("Text")),
					exprStmt(
						ast.NewOkExpression(
							propagate(call("get_weather", variable("city", 0))),
							pos(0),
						),
					),
				),
			),
			toolschema.ToolSchema{
				Name:         "get_weather",
				Description:  "Current weather for a city",
				InputSchema:  objectSchema(schemaProperty("location", stringSchema())),
				OutputSchema: stringSchema(),
			},
		)

		RequireCheckerErrors(t, err, 0)

		table := checker.SymbolTable()

		symbol := table.Find("get_weather")
		require.NotNil(t, symbol)

		assert.Equal(t, sema.ProvenanceTool, symbol.Provenance)
		assert.Equal(t, "Current weather for a city", symbol.Description)
		assert.Equal(t,
			"(location: Text): Result<Text, Text>",
			symbol.FunctionType.String(),
		)

		// built-in functions are registered but not counted
		assert.Equal(t, 2, table.FunctionCount())
		assert.Greater(t, table.Len(), 2)
	})

	t.Run("no output schema defaults to Text", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(),
			toolschema.ToolSchema{Name: "ping"},
		)

		RequireCheckerErrors(t, err, 0)

		symbol := checker.SymbolTable().Find("ping")
		require.NotNil(t, symbol)

		assert.Equal(t,
			"(): Result<Text, Text>",
			symbol.FunctionType.String(),
		)
	})

	t.Run("nested object output synthesizes a record", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(),
			toolschema.ToolSchema{
				Name: "get_user",
				OutputSchema: objectSchema(
					schemaProperty("name", stringSchema()),
					schemaProperty("age", numberSchema()),
				),
			},
		)

		RequireCheckerErrors(t, err, 0)

		symbol := checker.SymbolTable().Find("get_user")
		require.NotNil(t, symbol)

		result, ok := symbol.FunctionType.ReturnType.(*sema.ResultType)
		require.True(t, ok)

		record, ok := result.OkType.(*sema.RecordType)
		require.True(t, ok)

		assert.Equal(t, "get_user.outputSchema", record.Identifier)
		assert.Equal(t, []string{"name", "age"}, record.FieldNames())

		nameType, _ := record.Fields.Get("name")
		assert.Equal(t, sema.TextType, nameType)

		ageType, _ := record.Fields.Get("age")
		assert.Equal(t, sema.NumberType, ageType)
	})

	t.Run("array parameter becomes a list", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(),
			toolschema.ToolSchema{
				Name: "tag_all",
				InputSchema: objectSchema(
					schemaProperty("tags", &toolschema.Schema{
						Type:  "array",
						Items: stringSchema(),
					}),
				),
			},
		)

		RequireCheckerErrors(t, err, 0)

		symbol := checker.SymbolTable().Find("tag_all")
		require.NotNil(t, symbol)

		require.Len(t, symbol.FunctionType.Parameters, 1)
		assert.Equal(t,
			"List<Text>",
			symbol.FunctionType.Parameters[0].TypeAnnotation.String(),
		)
	})

	t.Run("unsupported schema fails closed", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(
				fun("caller", nil, nominal("Text"),
					exprStmt(propagate(call("fancy", text("x")))),
				),
			),
			toolschema.ToolSchema{
				Name: "fancy",
				InputSchema: objectSchema(
					schemaProperty("choice", &toolschema.Schema{
						OneOf: []*toolschema.Schema{
							stringSchema(),
							numberSchema(),
						},
					}),
				),
			},
		)

		errs := RequireCheckerErrors(t, err, 2)

		var schemaErr *sema.UnsupportedSchemaError
		require.ErrorAs(t, errs[0], &schemaErr)
		assert.Equal(t, "fancy", schemaErr.ToolName)
		assert.Equal(t, "inputSchema.properties.choice", schemaErr.Path)

		// the tool is not bound, so the call does not resolve
		var notDeclaredErr *sema.NotDeclaredError
		require.ErrorAs(t, errs[1], &notDeclaredErr)
		assert.Equal(t, "fancy", notDeclaredErr.Name)

		assert.Nil(t, checker.SymbolTable().Find("fancy"))
	})

	t.Run("collision with a declared function", func(t *testing.T) {
		t.Parallel()

		checker, err := checkProgram(t,
			program(
				fun("get_data", nil, nominal("Number"), exprStmt(number(1))),
			),
			toolschema.ToolSchema{Name: "get_data"},
		)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, "get_data", redeclarationErr.Name)

		// the source declaration wins
		symbol := checker.SymbolTable().Find("get_data")
		require.NotNil(t, symbol)
		assert.Equal(t, sema.ProvenanceLocal, symbol.Provenance)
	})

	t.Run("unnamed tool", func(t *testing.T) {
		t.Parallel()

		_, err := checkProgram(t,
			program(),
			toolschema.ToolSchema{},
		)

		errs := RequireCheckerErrors(t, err, 1)

		var schemaErr *sema.UnsupportedSchemaError
		require.ErrorAs(t, errs[0], &schemaErr)
		assert.Equal(t, "(unnamed)", schemaErr.ToolName)
	})
}
