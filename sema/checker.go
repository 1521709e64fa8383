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
	"github.com/loomlang/loom/toolschema"
)

// ArgumentTypesCheckerFunc overrides the standard per-parameter type check
// of an invocation. Built-ins that accept more than one operand type
// (e.g. `len` over lists and texts) use it to check arguments and
// determine the result type.
type ArgumentTypesCheckerFunc func(
	invocation *ast.InvocationExpression,
	argumentTypes []Type,
	report func(error),
) Type

// PredeclaredFunction is a function that is available
// without a declaration in the program
type PredeclaredFunction struct {
	Name         string
	FunctionType *FunctionType
	// CheckArgumentTypes, if set, replaces the standard argument type check
	CheckArgumentTypes ArgumentTypesCheckerFunc
}

// Config holds the configuration of a Checker
type Config struct {
	// PredeclaredFunctions are the built-in functions
	PredeclaredFunctions []PredeclaredFunction
}

// Checker verifies one program against one set of tool schemas.
//
// A Checker is single-use: construct, call Check once, read the results.
// Neither the program nor the tool schemas are mutated,
// so separate Checkers may run concurrently over shared inputs.
type Checker struct {
	Program *ast.Program
	Tools   []toolschema.ToolSchema

	config *Config

	symbols          *SymbolTable
	valueActivations *VariableActivations

	aliasDeclarations map[string]*ast.AliasDeclaration
	aliasResolved     map[string]Type
	aliasStack        []string

	currentFunction *functionContext

	errors []error
	hints  []Hint
}

// functionContext is the checking state of the enclosing function body
type functionContext struct {
	name       string
	returnType Type
}

func NewChecker(
	program *ast.Program,
	tools []toolschema.ToolSchema,
	config *Config,
) (*Checker, error) {
	if program == nil {
		return nil, errors.NewDefaultUserError("program must not be nil")
	}
	if config == nil {
		config = &Config{}
	}

	return &Checker{
		Program:           program,
		Tools:             tools,
		config:            config,
		symbols:           NewSymbolTable(),
		valueActivations:  NewVariableActivations(),
		aliasDeclarations: map[string]*ast.AliasDeclaration{},
		aliasResolved:     map[string]Type{},
	}, nil
}

// SymbolTable returns the symbol table built by Check
func (c *Checker) SymbolTable() *SymbolTable {
	return c.symbols
}

// Hints returns the non-fatal findings gathered by Check
func (c *Checker) Hints() []Hint {
	return c.hints
}

// Check runs the whole verification pass:
// declaration collection, type resolution, tool binding,
// and the checking of every function body.
// It gathers all faults and returns them batched in a CheckerError.
func (c *Checker) Check() error {
	c.registerPredeclaredFunctions()

	c.collectDeclarations()
	c.resolveTypeDeclarations()
	c.registerFunctionSignatures()

	c.bindTools()

	c.checkFunctionBodies()

	if len(c.errors) > 0 {
		return CheckerError{
			Errors: c.errors,
		}
	}
	return nil
}

func (c *Checker) report(err error) {
	if err == nil {
		return
	}
	c.errors = append(c.errors, err)
}

func (c *Checker) reportHint(hint Hint) {
	c.hints = append(c.hints, hint)
}

func (c *Checker) registerPredeclaredFunctions() {
	for _, function := range c.config.PredeclaredFunctions {
		c.symbols.Register(&Symbol{
			Name:               function.Name,
			Kind:               common.DeclarationKindBuiltinFunction,
			Provenance:         ProvenanceBuiltin,
			FunctionType:       function.FunctionType,
			checkArgumentTypes: function.CheckArgumentTypes,
		})
	}
}

// enterValueScope pushes a new lexical scope
func (c *Checker) enterValueScope() {
	c.valueActivations.Enter()
}

// leaveValueScope reports unused `let` bindings of the scope being left,
// then pops it
func (c *Checker) leaveValueScope() {
	scope := c.valueActivations.Current()
	scope.Foreach(func(name string, variable *Variable) {
		if variable.Used ||
			variable.Kind != common.DeclarationKindVariable ||
			name == "_" {

			return
		}

		endPos := variable.Pos.Shifted(len(name) - 1)
		c.reportHint(&UnusedVariableHint{
			Name: name,
			Range: ast.Range{
				StartPos: variable.Pos,
				EndPos:   endPos,
			},
		})
	})

	c.valueActivations.Leave()
}

func (c *Checker) declareVariable(
	identifier ast.Identifier,
	ty Type,
	kind common.DeclarationKind,
) {
	c.valueActivations.Set(
		identifier.Identifier,
		&Variable{
			Identifier: identifier.Identifier,
			Type:       ty,
			Kind:       kind,
			Pos:        identifier.Pos,
		},
	)
}
