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
	"github.com/loomlang/loom/errors"
)

// Provenance states where a symbol came from
type Provenance uint

const (
	// ProvenanceLocal is a declaration written in the verified program
	ProvenanceLocal Provenance = iota
	// ProvenanceTool is a signature bound from an external tool schema
	ProvenanceTool
	// ProvenanceBuiltin is a predeclared built-in function
	ProvenanceBuiltin
)

func (p Provenance) Name() string {
	switch p {
	case ProvenanceLocal:
		return "local"
	case ProvenanceTool:
		return "tool"
	case ProvenanceBuiltin:
		return "built-in"
	}

	panic(errors.NewUnreachableError())
}

// Symbol is one entry of the symbol table:
// a function, record, enum, alias, built-in, or bound tool
type Symbol struct {
	Name       string
	Kind       common.DeclarationKind
	Provenance Provenance

	// FunctionType is set for callable symbols
	FunctionType *FunctionType

	// Type is set for type symbols:
	// the record type, the enum type, or the alias target
	Type Type

	// Description is set for tools, from the tool schema
	Description string

	// checkArgumentTypes overrides per-parameter type checking
	// for polymorphic built-ins
	checkArgumentTypes ArgumentTypesCheckerFunc

	// Pos is the declaration position.
	// Symbols without a source occurrence (tools, built-ins)
	// have no position.
	Pos    ast.Position
	HasPos bool
}

// SymbolTable is the flat global namespace of one verification pass.
// There are no modules and no shadowing between top-level names:
// a collision of any kind is an error.
// Iteration order is registration order, which keeps all derived
// output deterministic.
type SymbolTable struct {
	symbols *orderedmap.OrderedMap[string, *Symbol]
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: orderedmap.New[string, *Symbol](0),
	}
}

// Find returns the symbol with the given name, or nil
func (t *SymbolTable) Find(name string) *Symbol {
	symbol, _ := t.symbols.Get(name)
	return symbol
}

// Register adds the symbol under its name.
// If the name is already taken, the existing symbol is kept
// and returned: the caller reports the collision.
func (t *SymbolTable) Register(symbol *Symbol) (existing *Symbol) {
	if existing, ok := t.symbols.Get(symbol.Name); ok {
		return existing
	}
	t.symbols.Set(symbol.Name, symbol)
	return nil
}

// Foreach iterates over all symbols in registration order
func (t *SymbolTable) Foreach(f func(name string, symbol *Symbol)) {
	t.symbols.Foreach(f)
}

// Names returns all symbol names in registration order
func (t *SymbolTable) Names() []string {
	return t.symbols.Keys()
}

// Len returns the number of symbols
func (t *SymbolTable) Len() int {
	return t.symbols.Len()
}

// FunctionCount returns the number of callable symbols
// that originate from the program or from bound tools.
// Predeclared built-ins are not counted.
func (t *SymbolTable) FunctionCount() int {
	count := 0
	t.symbols.Foreach(func(_ string, symbol *Symbol) {
		if symbol.Kind.IsCallableDeclaration() &&
			symbol.Provenance != ProvenanceBuiltin {

			count++
		}
	})
	return count
}

// callableNames returns the names of all callable symbols
// in registration order, for suggestion candidates
func (t *SymbolTable) callableNames() []string {
	var names []string
	t.symbols.Foreach(func(name string, symbol *Symbol) {
		if symbol.Kind.IsCallableDeclaration() {
			names = append(names, name)
		}
	})
	return names
}

// typeNames returns the names of all type symbols
// in registration order, for suggestion candidates
func (t *SymbolTable) typeNames() []string {
	var names []string
	t.symbols.Foreach(func(name string, symbol *Symbol) {
		if symbol.Kind.IsTypeDeclaration() {
			names = append(names, name)
		}
	})
	return names
}
