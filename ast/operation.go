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

import (
	"github.com/loomlang/loom/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationAppend
	OperationNegate
	OperationNot
)

func (s Operation) Symbol() string {
	switch s {
	case OperationOr:
		return "||"
	case OperationAnd:
		return "&&"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationLessEqual:
		return "<="
	case OperationGreaterEqual:
		return ">="
	case OperationPlus:
		return "+"
	case OperationMinus, OperationNegate:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationAppend:
		return "+="
	case OperationNot:
		return "!"
	case OperationUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) Name() string {
	switch s {
	case OperationOr:
		return "logical disjunction"
	case OperationAnd:
		return "logical conjunction"
	case OperationEqual:
		return "equality"
	case OperationNotEqual:
		return "inequality"
	case OperationLess:
		return "less than"
	case OperationGreater:
		return "greater than"
	case OperationLessEqual:
		return "less than or equal"
	case OperationGreaterEqual:
		return "greater than or equal"
	case OperationPlus:
		return "addition"
	case OperationMinus:
		return "subtraction"
	case OperationMul:
		return "multiplication"
	case OperationDiv:
		return "division"
	case OperationAppend:
		return "append"
	case OperationNegate:
		return "negation"
	case OperationNot:
		return "logical negation"
	case OperationUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}
