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

// Package analysis turns the checker's findings into diagnostics:
// stable-coded, ordered, and renderable for humans or machines.
package analysis

import (
	"sort"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/errors"
	"github.com/loomlang/loom/sema"
)

// Severity of a diagnostic
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Suggestion is a proposed fix: a message and the text edits applying it
type Suggestion struct {
	Message   string         `json:"message"`
	TextEdits []ast.TextEdit `json:"textEdits,omitempty"`
}

// Note points at a related location,
// e.g. the previous declaration of a redeclared name
type Note struct {
	Message string    `json:"message"`
	Range   ast.Range `json:"range"`
}

// Diagnostic is one finding of a verification pass.
//
// Every diagnostic carries a stable code (e.g. T004), so integrations
// match on codes rather than message texts, which may change.
type Diagnostic struct {
	Code             string       `json:"code"`
	Severity         Severity     `json:"severity"`
	Message          string       `json:"message"`
	SecondaryMessage string       `json:"secondaryMessage,omitempty"`
	Range            ast.Range    `json:"range"`
	HasRange         bool         `json:"hasRange"`
	SourceLine       string       `json:"sourceLine,omitempty"`
	Notes            []Note       `json:"notes,omitempty"`
	Suggestions      []Suggestion `json:"suggestions,omitempty"`
}

var _ error = Diagnostic{}
var _ ast.HasPosition = Diagnostic{}
var _ errors.SecondaryError = Diagnostic{}

func (d Diagnostic) Error() string {
	return d.Message
}

func (d Diagnostic) SecondaryError() string {
	return d.SecondaryMessage
}

func (d Diagnostic) StartPosition() ast.Position {
	if !d.HasRange {
		return ast.Position{}
	}
	return d.Range.StartPos
}

func (d Diagnostic) EndPosition() ast.Position {
	if !d.HasRange {
		return ast.Position{}
	}
	return d.Range.EndPos
}

// DiagnosticCode makes the code part of the rendered header,
// e.g. `error[T004]: ...`
func (d Diagnostic) DiagnosticCode() string {
	return d.Code
}

// IsWarning reports the severity to the renderer
func (d Diagnostic) IsWarning() bool {
	return d.Severity == SeverityWarning
}

// ErrorNotes exposes the notes to the renderer
func (d Diagnostic) ErrorNotes() []errors.ErrorNote {
	notes := make([]errors.ErrorNote, 0, len(d.Notes))
	for _, note := range d.Notes {
		notes = append(notes, diagnosticNote{note})
	}
	return notes
}

type diagnosticNote struct {
	note Note
}

func (n diagnosticNote) Message() string {
	return n.note.Message
}

func (n diagnosticNote) StartPosition() ast.Position {
	return n.note.Range.StartPos
}

func (n diagnosticNote) EndPosition() ast.Position {
	return n.note.Range.EndPos
}

// diagnosticCode returns the stable code of a checker error
func diagnosticCode(err error) string {
	switch err := err.(type) {
	case *sema.RedeclarationError:
		return "T001"
	case *sema.NotDeclaredTypeError:
		return "T002"
	case *sema.CyclicAliasError:
		return "T003"
	case *sema.NotDeclaredError:
		if err.ExpectedKind.IsCallableDeclaration() {
			return "T005"
		}
		return "T004"
	case *sema.NotDeclaredMemberError:
		return "T006"
	case *sema.ArgumentCountError:
		return "T007"
	case *sema.ArgumentTypeMismatchError:
		return "T008"
	case *sema.ReturnTypeMismatchError:
		return "T009"
	case *sema.TypeMismatchError,
		*sema.TypeMismatchWithDescriptionError:
		return "T010"
	case *sema.InvalidBinaryOperandsError:
		return "T011"
	case *sema.InvalidUnaryOperandError:
		return "T012"
	case *sema.InvalidFieldAccessError:
		return "T013"
	case *sema.NotIndexableTypeError:
		return "T014"
	case *sema.InvalidPropagationOperandError:
		return "T015"
	case *sema.PropagationOutsideFallibleContextError:
		return "T016"
	case *sema.NonExhaustiveMatchError:
		return "T017"
	case *sema.MissingFieldsError:
		return "T019"
	case *sema.InvalidPatternError:
		return "T020"
	case *sema.UnsupportedSchemaError:
		return "T021"
	case *sema.NotIterableError:
		return "T022"
	case *sema.NotConstructibleTypeError:
		return "T023"
	}

	// internal faults and malformed ASTs
	return "T000"
}

func hintCode(hint sema.Hint) string {
	switch hint.(type) {
	case *sema.UnreachableArmHint:
		return "T018"
	case *sema.UnusedVariableHint:
		return "T024"
	}
	return "T018"
}

// Collect converts a Check result into ordered diagnostics.
//
// The order is deterministic: diagnostics without a source range
// (tool binding faults) come first, the rest follow in source order.
func Collect(checkerErr error, hints []sema.Hint, code string) []Diagnostic {
	var diagnostics []Diagnostic

	lines := splitLines(code)

	if checkerErr != nil {
		var checkerErrors []error
		if parent, ok := checkerErr.(errors.ParentError); ok {
			checkerErrors = parent.ChildErrors()
		} else {
			checkerErrors = []error{checkerErr}
		}

		for _, err := range checkerErrors {
			diagnostics = append(
				diagnostics,
				convertError(err, code, lines),
			)
		}
	}

	for _, hint := range hints {
		diagnostics = append(
			diagnostics,
			convertHint(hint, lines),
		)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		a := diagnostics[i]
		b := diagnostics[j]

		if a.HasRange != b.HasRange {
			return !a.HasRange
		}
		if a.Range.StartPos.Offset != b.Range.StartPos.Offset {
			return a.Range.StartPos.Offset < b.Range.StartPos.Offset
		}
		return a.Code < b.Code
	})

	return diagnostics
}

func convertError(err error, code string, lines []string) Diagnostic {
	diagnostic := Diagnostic{
		Code:     diagnosticCode(err),
		Severity: SeverityError,
		Message:  err.Error(),
	}

	if secondary, ok := err.(errors.SecondaryError); ok {
		diagnostic.SecondaryMessage = secondary.SecondaryError()
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		startPos := positioned.StartPosition()
		if startPos.Line >= 1 {
			diagnostic.Range = ast.Range{
				StartPos: startPos,
				EndPos:   positioned.EndPosition(),
			}
			diagnostic.HasRange = true
			diagnostic.SourceLine = sourceLine(lines, startPos.Line)
		}
	}

	if noting, ok := err.(errors.ErrorNotes); ok {
		for _, note := range noting.ErrorNotes() {
			var noteRange ast.Range
			if positioned, ok := note.(ast.HasPosition); ok {
				noteRange = ast.NewRangeFromPositioned(positioned)
			}
			diagnostic.Notes = append(
				diagnostic.Notes,
				Note{
					Message: note.Message(),
					Range:   noteRange,
				},
			)
		}
	}

	if fixable, ok := err.(errors.HasSuggestedFixes[ast.TextEdit]); ok {
		for _, fix := range fixable.SuggestFixes(code) {
			diagnostic.Suggestions = append(
				diagnostic.Suggestions,
				Suggestion{
					Message:   fix.Message,
					TextEdits: fix.TextEdits,
				},
			)
		}
	}

	return diagnostic
}

func convertHint(hint sema.Hint, lines []string) Diagnostic {
	startPos := hint.StartPosition()

	diagnostic := Diagnostic{
		Code:     hintCode(hint),
		Severity: SeverityWarning,
		Message:  hint.Hint(),
	}

	if startPos.Line >= 1 {
		diagnostic.Range = ast.Range{
			StartPos: startPos,
			EndPos:   hint.EndPosition(),
		}
		diagnostic.HasRange = true
		diagnostic.SourceLine = sourceLine(lines, startPos.Line)
	}

	return diagnostic
}

func splitLines(code string) []string {
	if code == "" {
		return nil
	}
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(code); i++ {
		if code[i] == '\n' {
			lines = append(lines, code[start:i])
			start = i + 1
		}
	}
	return append(lines, code[start:])
}

func sourceLine(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
