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

package toolschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyNames(schema *Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for _, property := range schema.Properties {
		names = append(names, property.Name)
	}
	return names
}

func TestDecodeToolsPreservesPropertyOrder(t *testing.T) {

	t.Parallel()

	// properties deliberately not in alphabetical order:
	// their order determines the bound parameter order
	tools, err := DecodeTools([]byte(`[
		{
			"name": "send_message",
			"description": "Send a message to a channel",
			"inputSchema": {
				"type": "object",
				"properties": {
					"channel": {"type": "string"},
					"body": {"type": "string"},
					"urgent": {"type": "boolean"}
				},
				"required": ["channel", "body"]
			},
			"outputSchema": {"type": "string"}
		}
	]`))
	require.NoError(t, err)
	require.Len(t, tools, 1)

	tool := tools[0]
	assert.Equal(t, "send_message", tool.Name)
	assert.Equal(t, "Send a message to a channel", tool.Description)

	input := tool.InputSchema
	require.NotNil(t, input)
	assert.Equal(t, "object", input.Type)
	assert.Equal(t,
		[]string{"channel", "body", "urgent"},
		propertyNames(input),
	)

	assert.True(t, input.IsRequired("channel"))
	assert.True(t, input.IsRequired("body"))
	assert.False(t, input.IsRequired("urgent"))

	urgent := input.PropertyByName("urgent")
	require.NotNil(t, urgent)
	assert.Equal(t, "boolean", urgent.Schema.Type)

	assert.Nil(t, input.PropertyByName("nope"))

	require.NotNil(t, tool.OutputSchema)
	assert.Equal(t, "string", tool.OutputSchema.Type)
}

func TestDecodeNestedSchemas(t *testing.T) {

	t.Parallel()

	tools, err := DecodeTools([]byte(`[
		{
			"name": "list_users",
			"inputSchema": {
				"type": "object",
				"properties": {
					"ids": {
						"type": "array",
						"items": {"type": "integer"}
					},
					"filter": {
						"type": "object",
						"properties": {
							"active": {"type": "boolean"}
						}
					}
				}
			}
		}
	]`))
	require.NoError(t, err)
	require.Len(t, tools, 1)

	input := tools[0].InputSchema
	require.NotNil(t, input)

	ids := input.PropertyByName("ids")
	require.NotNil(t, ids)
	assert.Equal(t, "array", ids.Schema.Type)
	require.NotNil(t, ids.Schema.Items)
	assert.Equal(t, "integer", ids.Schema.Items.Type)

	filter := input.PropertyByName("filter")
	require.NotNil(t, filter)
	assert.Equal(t, []string{"active"}, propertyNames(filter.Schema))
}

func TestDecodeSkipsAnnotations(t *testing.T) {

	t.Parallel()

	tools, err := DecodeTools([]byte(`[
		{
			"name": "echo",
			"inputSchema": {
				"type": "object",
				"properties": {
					"text": {
						"type": "string",
						"default": "hello",
						"examples": ["hi", "hey"],
						"maxLength": 100
					}
				}
			}
		}
	]`))
	require.NoError(t, err)
	require.Len(t, tools, 1)

	text := tools[0].InputSchema.PropertyByName("text")
	require.NotNil(t, text)
	assert.Equal(t, "string", text.Schema.Type)
}

func TestDecodeKeepsUnsupportedConstructs(t *testing.T) {

	t.Parallel()

	tools, err := DecodeTools([]byte(`[
		{
			"name": "fancy",
			"inputSchema": {
				"type": "object",
				"properties": {
					"ref": {"$ref": "#/definitions/thing"},
					"choice": {
						"oneOf": [
							{"type": "string"},
							{"type": "number"}
						]
					}
				}
			}
		}
	]`))
	require.NoError(t, err)
	require.Len(t, tools, 1)

	input := tools[0].InputSchema

	ref := input.PropertyByName("ref")
	require.NotNil(t, ref)
	assert.Equal(t, "#/definitions/thing", ref.Schema.Ref)

	choice := input.PropertyByName("choice")
	require.NotNil(t, choice)
	require.Len(t, choice.Schema.OneOf, 2)
	assert.Equal(t, "string", choice.Schema.OneOf[0].Type)
	assert.Equal(t, "number", choice.Schema.OneOf[1].Type)
}

func TestDecodeInvalidSchema(t *testing.T) {

	t.Parallel()

	t.Run("schema is not an object", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeTools([]byte(`[
			{
				"name": "broken",
				"inputSchema": ["not", "a", "schema"]
			}
		]`))
		require.Error(t, err)
	})

	t.Run("truncated document", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeTools([]byte(`[{"name": "broken", "inputSchema": {`))
		require.Error(t, err)
	})
}

func TestDecodeManifest(t *testing.T) {

	t.Parallel()

	manifest, err := DecodeManifest([]byte(`{
		"tools": [
			{"name": "ping"},
			{"name": "pong"}
		]
	}`))
	require.NoError(t, err)

	tools, err := manifest.ListTools()
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "ping", tools[0].Name)
	assert.Equal(t, "pong", tools[1].Name)
}

func TestDecodeManifestYAML(t *testing.T) {

	t.Parallel()

	manifest, err := DecodeManifestYAML([]byte(`
tools:
  - name: get_weather
    description: Current weather for a city
    inputSchema:
      type: object
      properties:
        location:
          type: string
        unit:
          type: string
    outputSchema:
      type: string
`))
	require.NoError(t, err)

	tools, err := manifest.ListTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)

	tool := tools[0]
	assert.Equal(t, "get_weather", tool.Name)

	require.NotNil(t, tool.InputSchema)
	assert.Equal(t,
		[]string{"location", "unit"},
		propertyNames(tool.InputSchema),
	)
}
