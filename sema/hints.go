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
)

// Hint is a non-fatal finding: the program is still accepted,
// but the code is likely not what the author meant
type Hint interface {
	Hint() string
	ast.HasPosition
	isHint()
}

// UnreachableArmHint

// UnreachableArmHint is reported for a match arm that can never be
// selected, because earlier arms already cover everything it matches
type UnreachableArmHint struct {
	ast.Range
}

var _ Hint = &UnreachableArmHint{}

func (h *UnreachableArmHint) Hint() string {
	return "unreachable match arm: earlier arms already cover this case"
}

func (*UnreachableArmHint) isHint() {}

// UnusedVariableHint

// UnusedVariableHint is reported for a `let` or loop binding
// that no later expression reads
type UnusedVariableHint struct {
	Name string
	ast.Range
}

var _ Hint = &UnusedVariableHint{}

func (h *UnusedVariableHint) Hint() string {
	return fmt.Sprintf("unused variable: `%s`", h.Name)
}

func (*UnusedVariableHint) isHint() {}
