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
	"github.com/loomlang/loom/common/orderedmap"
)

// Variable is a binding in a lexical scope:
// a parameter, a `let` binding, a loop binding, or a pattern binding
type Variable struct {
	Identifier string
	Type       Type
	Kind       common.DeclarationKind
	Pos        ast.Position

	// Used is set once the binding is read
	Used bool
}

// VariableActivations is a stack of lexical scopes.
// Scopes use ordered maps so candidate lists for suggestions
// iterate in declaration order, keeping output deterministic.
type VariableActivations struct {
	scopes []*orderedmap.OrderedMap[string, *Variable]
}

func NewVariableActivations() *VariableActivations {
	activations := &VariableActivations{}
	activations.Enter()
	return activations
}

// Enter pushes a new scope
func (a *VariableActivations) Enter() {
	a.scopes = append(
		a.scopes,
		orderedmap.New[string, *Variable](0),
	)
}

// Leave pops the current scope
func (a *VariableActivations) Leave() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

// Set declares a variable in the current scope.
// Re-declaring a name shadows an outer binding
// and replaces one in the same scope.
func (a *VariableActivations) Set(name string, variable *Variable) {
	a.scopes[len(a.scopes)-1].Set(name, variable)
}

// Current returns the innermost scope
func (a *VariableActivations) Current() *orderedmap.OrderedMap[string, *Variable] {
	return a.scopes[len(a.scopes)-1]
}

// Find looks a name up through all scopes, innermost first
func (a *VariableActivations) Find(name string) *Variable {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if variable, ok := a.scopes[i].Get(name); ok {
			return variable
		}
	}
	return nil
}

// Names returns all visible names, innermost scope first,
// in declaration order within each scope
func (a *VariableActivations) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for i := len(a.scopes) - 1; i >= 0; i-- {
		a.scopes[i].Foreach(func(name string, _ *Variable) {
			if _, ok := seen[name]; ok {
				return
			}
			seen[name] = struct{}{}
			names = append(names, name)
		})
	}
	return names
}
