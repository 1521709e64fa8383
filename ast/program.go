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

package ast

// Program is a complete parsed program: a flat list of top-level declarations
type Program struct {
	Declarations []Declaration
}

func NewProgram(declarations []Declaration) *Program {
	return &Program{
		Declarations: declarations,
	}
}

func (p *Program) FunctionDeclarations() []*FunctionDeclaration {
	var declarations []*FunctionDeclaration
	for _, declaration := range p.Declarations {
		if functionDeclaration, ok := declaration.(*FunctionDeclaration); ok {
			declarations = append(declarations, functionDeclaration)
		}
	}
	return declarations
}

func (p *Program) RecordDeclarations() []*RecordDeclaration {
	var declarations []*RecordDeclaration
	for _, declaration := range p.Declarations {
		if recordDeclaration, ok := declaration.(*RecordDeclaration); ok {
			declarations = append(declarations, recordDeclaration)
		}
	}
	return declarations
}

func (p *Program) EnumDeclarations() []*EnumDeclaration {
	var declarations []*EnumDeclaration
	for _, declaration := range p.Declarations {
		if enumDeclaration, ok := declaration.(*EnumDeclaration); ok {
			declarations = append(declarations, enumDeclaration)
		}
	}
	return declarations
}

func (p *Program) AliasDeclarations() []*AliasDeclaration {
	var declarations []*AliasDeclaration
	for _, declaration := range p.Declarations {
		if aliasDeclaration, ok := declaration.(*AliasDeclaration); ok {
			declarations = append(declarations, aliasDeclaration)
		}
	}
	return declarations
}
