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
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Provider supplies the tool schemas of one verification pass,
// e.g. a static manifest or an agent runtime's tool listing
type Provider interface {
	ListTools() ([]ToolSchema, error)
}

// Manifest is a tool manifest document: a named list of tools
type Manifest struct {
	Tools []ToolSchema `json:"tools"`
}

var _ Provider = Manifest{}

func (m Manifest) ListTools() ([]ToolSchema, error) {
	return m.Tools, nil
}

// DecodeTools decodes a JSON array of tool schemas
func DecodeTools(data []byte) ([]ToolSchema, error) {
	var tools []ToolSchema
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("invalid tool list: %w", err)
	}
	return tools, nil
}

// DecodeManifest decodes a JSON tool manifest document
func DecodeManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid tool manifest: %w", err)
	}
	return &manifest, nil
}

// DecodeManifestYAML decodes a YAML tool manifest document.
// The document is converted to JSON first:
// the conversion preserves mapping order,
// which the schema decoding depends on.
func DecodeManifestYAML(data []byte) (*Manifest, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tool manifest: %w", err)
	}
	return DecodeManifest(jsonData)
}
