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

// Package pretty renders diagnostics for humans:
//
//	error[T004]: cannot find variable in this scope: `naem`
//	 --> plan.loom:3:8
//	  |
//	3 |     let x = naem
//	  |             ^^^^ there is a variable named `name`
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/errors"
)

const errorPrefix = "error"
const warningPrefix = "warning"
const excerptArrow = "--> "

// Warning marks a finding that does not fail verification
type Warning interface {
	IsWarning() bool
}

// HasCode provides the stable diagnostic code,
// rendered in the header as `error[T004]: ...`
type HasCode interface {
	DiagnosticCode() string
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintError renders the given error against the source it was
// found in. Batched errors are unwrapped and rendered one by one,
// separated by blank lines.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location string,
	code string,
) error {

	if parent, ok := err.(errors.ParentError); ok {
		for i, childErr := range parent.ChildErrors() {
			if i > 0 {
				if err := p.writeString("\n"); err != nil {
					return err
				}
			}
			if err := p.PrettyPrintError(childErr, location, code); err != nil {
				return err
			}
		}
		return nil
	}

	return p.prettyPrintError(err, location, code)
}

func (p ErrorPrettyPrinter) prettyPrintError(
	err error,
	location string,
	code string,
) error {

	prefix := errorPrefix
	isWarning := false
	if warning, ok := err.(Warning); ok && warning.IsWarning() {
		prefix = warningPrefix
		isWarning = true
	}

	if coded, ok := err.(HasCode); ok && coded.DiagnosticCode() != "" {
		prefix = fmt.Sprintf("%s[%s]", prefix, coded.DiagnosticCode())
	}

	message := err.Error()

	if err := p.writeString(fmt.Sprintf(
		"%s %s\n",
		p.colorizeSeverity(prefix+":", isWarning),
		p.colorizeMessage(message),
	)); err != nil {
		return err
	}

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		return nil
	}

	startPos := positioned.StartPosition()
	endPos := positioned.EndPosition()

	if startPos.Line < 1 {
		return nil
	}

	if err := p.writeString(fmt.Sprintf(
		" %s%s:%d:%d\n",
		p.colorizeMeta(excerptArrow),
		location,
		startPos.Line,
		startPos.Column,
	)); err != nil {
		return err
	}

	lines := strings.Split(code, "\n")
	if startPos.Line > len(lines) {
		return nil
	}

	var secondaryMessage string
	if secondary, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondary.SecondaryError()
	}

	excerpts := []excerpt{
		{
			startPos: startPos,
			endPos:   endPos,
			message:  secondaryMessage,
		},
	}

	if noting, ok := err.(errors.ErrorNotes); ok {
		for _, note := range noting.ErrorNotes() {
			// notes without a source position cannot be excerpted
			positioned, ok := note.(ast.HasPosition)
			if !ok {
				continue
			}
			notePos := positioned.StartPosition()
			if notePos.Line < 1 || notePos.Line > len(lines) {
				continue
			}
			excerpts = append(
				excerpts,
				excerpt{
					startPos: notePos,
					endPos:   positioned.EndPosition(),
					message:  note.Message(),
					isNote:   true,
				},
			)
		}
	}

	gutterWidth := 0
	for _, e := range excerpts {
		width := len(strconv.Itoa(e.startPos.Line))
		if width > gutterWidth {
			gutterWidth = width
		}
	}

	for _, e := range excerpts {
		err := p.writeCodeExcerpt(lines, e, isWarning, gutterWidth)
		if err != nil {
			return err
		}
	}

	return nil
}

// excerpt is one highlighted span of the source
type excerpt struct {
	startPos ast.Position
	endPos   ast.Position
	message  string
	isNote   bool
}

func (p ErrorPrettyPrinter) writeCodeExcerpt(
	lines []string,
	e excerpt,
	isWarning bool,
	gutterWidth int,
) error {

	line := lines[e.startPos.Line-1]

	emptyGutter := strings.Repeat(" ", gutterWidth)

	// empty gutter line
	if err := p.writeString(fmt.Sprintf(
		"%s %s\n",
		emptyGutter,
		p.colorizeMeta("|"),
	)); err != nil {
		return err
	}

	// source line
	lineNumber := strconv.Itoa(e.startPos.Line)
	if err := p.writeString(fmt.Sprintf(
		"%s%s %s %s\n",
		strings.Repeat(" ", gutterWidth-len(lineNumber)),
		p.colorizeMeta(lineNumber),
		p.colorizeMeta("|"),
		line,
	)); err != nil {
		return err
	}

	// underline line.
	// tabs in the indentation are kept, so the carets line up
	// under the highlighted span regardless of the tab width
	lineRunes := []rune(line)

	startColumn := e.startPos.Column
	if startColumn > len(lineRunes) {
		startColumn = len(lineRunes)
	}

	endColumn := e.endPos.Column
	if e.endPos.Line != e.startPos.Line || endColumn >= len(lineRunes) {
		endColumn = len(lineRunes) - 1
	}

	var indent strings.Builder
	for _, r := range lineRunes[:startColumn] {
		if r == '\t' {
			indent.WriteRune('\t')
		} else {
			indent.WriteRune(' ')
		}
	}

	caretWidth := 1
	if endColumn >= startColumn {
		highlighted := string(lineRunes[startColumn : endColumn+1])
		caretWidth = uniseg.StringWidth(highlighted)
		if caretWidth < 1 {
			caretWidth = 1
		}
	}

	underline := strings.Repeat("^", caretWidth)
	if e.isNote {
		underline = strings.Repeat("-", caretWidth)
	}

	underlined := fmt.Sprintf("%s%s", indent.String(), underline)
	if e.message != "" {
		underlined = fmt.Sprintf("%s %s", underlined, e.message)
	}

	return p.writeString(fmt.Sprintf(
		"%s %s %s\n",
		emptyGutter,
		p.colorizeMeta("|"),
		p.colorizeHighlight(underlined, isWarning, e.isNote),
	))
}

func (p ErrorPrettyPrinter) colorizeSeverity(s string, isWarning bool) string {
	if !p.useColor {
		return s
	}
	if isWarning {
		return aurora.Yellow(s).Bold().String()
	}
	return aurora.Red(s).Bold().String()
}

func (p ErrorPrettyPrinter) colorizeMessage(message string) string {
	if !p.useColor {
		return message
	}
	return aurora.Bold(message).String()
}

func (p ErrorPrettyPrinter) colorizeMeta(meta string) string {
	if !p.useColor {
		return meta
	}
	return aurora.Blue(meta).String()
}

func (p ErrorPrettyPrinter) colorizeHighlight(
	highlight string,
	isWarning bool,
	isNote bool,
) string {
	if !p.useColor {
		return highlight
	}
	switch {
	case isNote:
		return aurora.Blue(highlight).String()
	case isWarning:
		return aurora.Yellow(highlight).String()
	}
	return aurora.Red(highlight).String()
}
