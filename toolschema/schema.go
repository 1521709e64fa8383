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

// Package toolschema decodes external tool descriptions:
// a tool's name and its input/output shapes, given as JSON Schema.
//
// Only the subset of JSON Schema that maps onto the type system is
// representable: object, string, number, integer, boolean, and array.
// Constructs outside the subset ($ref, oneOf, anyOf, allOf) are
// decoded but never bound; binding fails closed on them.
package toolschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ToolSchema describes one invokable tool
type ToolSchema struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	InputSchema  *Schema `json:"inputSchema,omitempty"`
	OutputSchema *Schema `json:"outputSchema,omitempty"`
}

// Property is one named property of an object schema
type Property struct {
	Name   string
	Schema *Schema
}

// Schema is one JSON Schema node.
//
// Object properties keep their declaration order:
// property order determines parameter order of the bound signature,
// so it must survive decoding.
type Schema struct {
	Type        string
	Description string
	Properties  []*Property
	Items       *Schema
	Required    []string

	// unsupported constructs, kept so binding can fail closed on them
	Ref   string
	OneOf []*Schema
	AnyOf []*Schema
	AllOf []*Schema
}

// PropertyByName returns the named property, or nil
func (s *Schema) PropertyByName(name string) *Property {
	for _, property := range s.Properties {
		if property.Name == name {
			return property
		}
	}
	return nil
}

// IsRequired returns true if the named property is listed as required
func (s *Schema) IsRequired(name string) bool {
	for _, required := range s.Required {
		if required == name {
			return true
		}
	}
	return false
}

var _ json.Unmarshaler = &Schema{}

// UnmarshalJSON decodes a schema node with a token stream
// instead of a map, preserving the order of object properties
func (s *Schema) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := expectDelim(decoder, '{'); err != nil {
		return err
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid schema key: %v", token)
		}

		switch key {
		case "type":
			err = decoder.Decode(&s.Type)

		case "description":
			err = decoder.Decode(&s.Description)

		case "properties":
			err = s.decodeProperties(decoder)

		case "items":
			s.Items = &Schema{}
			err = decoder.Decode(s.Items)

		case "required":
			err = decoder.Decode(&s.Required)

		case "$ref":
			err = decoder.Decode(&s.Ref)

		case "oneOf":
			err = decoder.Decode(&s.OneOf)

		case "anyOf":
			err = decoder.Decode(&s.AnyOf)

		case "allOf":
			err = decoder.Decode(&s.AllOf)

		default:
			// annotations like `default` or `examples` are irrelevant
			// to binding and skipped
			var ignored json.RawMessage
			err = decoder.Decode(&ignored)
		}

		if err != nil {
			return fmt.Errorf("invalid schema value for %q: %w", key, err)
		}
	}

	// closing brace
	_, err := decoder.Token()
	return err
}

func (s *Schema) decodeProperties(decoder *json.Decoder) error {
	if err := expectDelim(decoder, '{'); err != nil {
		return err
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		name, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid property name: %v", token)
		}

		property := &Schema{}
		if err := decoder.Decode(property); err != nil {
			return err
		}

		s.Properties = append(
			s.Properties,
			&Property{
				Name:   name,
				Schema: property,
			},
		)
	}

	// closing brace
	_, err := decoder.Token()
	return err
}

func expectDelim(decoder *json.Decoder, delim json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if token != delim {
		return fmt.Errorf("expected %q, got %v", delim.String(), token)
	}
	return nil
}
