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

package common

import (
	"github.com/loomlang/loom/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindFunction
	DeclarationKindRecord
	DeclarationKindEnum
	DeclarationKindEnumVariant
	DeclarationKindAlias
	DeclarationKindTool
	DeclarationKindBuiltinFunction
	DeclarationKindParameter
	DeclarationKindVariable
	DeclarationKindField
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindRecord,
		DeclarationKindEnum,
		DeclarationKindAlias:
		return true
	default:
		return false
	}
}

func (k DeclarationKind) IsCallableDeclaration() bool {
	switch k {
	case DeclarationKindFunction,
		DeclarationKindTool,
		DeclarationKindBuiltinFunction:
		return true
	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindUnknown:
		return "unknown"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindRecord:
		return "record"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindEnumVariant:
		return "enum variant"
	case DeclarationKindAlias:
		return "type alias"
	case DeclarationKindTool:
		return "tool"
	case DeclarationKindBuiltinFunction:
		return "built-in function"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindField:
		return "field"
	}

	panic(errors.NewUnreachableError())
}
