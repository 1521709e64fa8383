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

	"github.com/bits-and-blooms/bitset"

	"github.com/loomlang/loom/ast"
	"github.com/loomlang/loom/common"
)

const (
	resultTagOk = iota
	resultTagErr
)

const (
	boolTagFalse = iota
	boolTagTrue
)

// matchCoverage tracks which cases of the scrutinee's type
// the arms seen so far cover.
//
// Finite scrutinee types have one tag per case:
// enum variants in declaration order, Ok/Err for Results,
// false/true for Bools.
// Infinite types (numbers, texts, lists, records) are only
// covered by a wildcard; their literal tags merely detect
// duplicate arms.
type matchCoverage struct {
	tags *bitset.BitSet
	// tagCount is 0 for infinite types
	tagCount uint
	// literals are the literal values matched so far,
	// keyed by their rendering
	literals map[string]struct{}
	wildcard bool
}

func newMatchCoverage(tagCount uint) *matchCoverage {
	return &matchCoverage{
		tags:     bitset.New(tagCount),
		tagCount: tagCount,
		literals: map[string]struct{}{},
	}
}

// full returns true once the covered cases leave nothing to match
func (coverage *matchCoverage) full() bool {
	if coverage.wildcard {
		return true
	}
	return coverage.tagCount > 0 &&
		coverage.tags.Count() == coverage.tagCount
}

// coverTag marks one case as covered,
// returning false if it already was
func (coverage *matchCoverage) coverTag(tag uint) bool {
	if coverage.tags.Test(tag) {
		return false
	}
	coverage.tags.Set(tag)
	return true
}

// coverLiteral records one literal arm,
// returning false if the same literal was matched before
func (coverage *matchCoverage) coverLiteral(rendering string) bool {
	if _, ok := coverage.literals[rendering]; ok {
		return false
	}
	coverage.literals[rendering] = struct{}{}
	return true
}

// checkMatchExpression checks a match expression:
// each arm's pattern against the scrutinee's type,
// each arm's result against the first arm's result type,
// and the arms as a whole for exhaustiveness and reachability
func (c *Checker) checkMatchExpression(expression *ast.MatchExpression) Type {
	scrutineeType := c.checkExpression(expression.Expression)

	coverage := c.newCoverageFor(scrutineeType)

	resultType := Type(UnknownType)

	for _, arm := range expression.Arms {
		if arm == nil {
			c.report(&InvalidASTError{
				Detail: "missing match arm",
				Range:  ast.NewRangeFromPositioned(expression),
			})
			continue
		}

		// an arm behind full coverage can never be selected
		unreachable := coverage.full()
		if unreachable {
			c.reportHint(&UnreachableArmHint{
				Range: ast.NewRangeFromPositioned(arm),
			})
		}

		c.enterValueScope()

		c.checkPattern(arm.Pattern, scrutineeType, coverage, unreachable)

		armType := c.checkExpression(arm.Expression)

		c.leaveValueScope()

		// the first arm determines the match's type
		if resultType == UnknownType {
			resultType = armType
		} else if !IsCompatible(armType, resultType) {
			c.report(&TypeMismatchError{
				ExpectedType: resultType,
				ActualType:   armType,
				Range:        ast.NewRangeFromPositioned(arm.Expression),
			})
		}
	}

	if scrutineeType != UnknownType && !coverage.full() {
		c.report(&NonExhaustiveMatchError{
			ScrutineeType: scrutineeType,
			MissingTags:   c.missingTags(scrutineeType, coverage),
			Range:         ast.NewRangeFromPositioned(expression),
		})
	}

	return resultType
}

func (c *Checker) newCoverageFor(scrutineeType Type) *matchCoverage {
	switch scrutineeType := scrutineeType.(type) {
	case *ResultType:
		return newMatchCoverage(2)

	case *EnumType:
		return newMatchCoverage(uint(len(scrutineeType.Variants)))

	case *SimpleType:
		if scrutineeType == BoolType {
			return newMatchCoverage(2)
		}
	}

	return newMatchCoverage(0)
}

func (c *Checker) missingTags(
	scrutineeType Type,
	coverage *matchCoverage,
) []string {

	switch scrutineeType := scrutineeType.(type) {
	case *ResultType:
		var missing []string
		if !coverage.tags.Test(resultTagOk) {
			missing = append(missing, "Ok")
		}
		if !coverage.tags.Test(resultTagErr) {
			missing = append(missing, "Err")
		}
		return missing

	case *EnumType:
		var missing []string
		for i, variant := range scrutineeType.Variants {
			if !coverage.tags.Test(uint(i)) {
				missing = append(missing, variant.Identifier)
			}
		}
		return missing

	case *SimpleType:
		if scrutineeType == BoolType {
			var missing []string
			if !coverage.tags.Test(boolTagFalse) {
				missing = append(missing, "false")
			}
			if !coverage.tags.Test(boolTagTrue) {
				missing = append(missing, "true")
			}
			return missing
		}
	}

	return []string{"_"}
}

// checkPattern checks one arm's pattern against the scrutinee's type,
// binds any pattern variables into the current scope,
// and records the pattern's coverage.
// A pattern that can never be selected is reported as unreachable.
func (c *Checker) checkPattern(
	pattern ast.Pattern,
	scrutineeType Type,
	coverage *matchCoverage,
	alreadyUnreachable bool,
) {
	unknownScrutinee := scrutineeType == UnknownType

	reportInvalidPattern := func(description string) {
		if unknownScrutinee {
			return
		}
		c.report(&InvalidPatternError{
			PatternDescription: description,
			ScrutineeType:      scrutineeType,
			Range:              ast.NewRangeFromPositioned(pattern),
		})
	}

	reportUnreachable := func() {
		// the whole arm was already reported
		if alreadyUnreachable {
			return
		}
		c.reportHint(&UnreachableArmHint{
			Range: ast.NewRangeFromPositioned(pattern),
		})
	}

	switch pattern := pattern.(type) {
	case *ast.WildcardPattern:
		coverage.wildcard = true

	case *ast.OkPattern:
		result, ok := scrutineeType.(*ResultType)
		if !ok {
			reportInvalidPattern("Ok")
			c.declareVariable(pattern.Identifier, UnknownType, common.DeclarationKindVariable)
			return
		}
		if !coverage.coverTag(resultTagOk) {
			reportUnreachable()
		}
		c.declareVariable(pattern.Identifier, result.OkType, common.DeclarationKindVariable)

	case *ast.ErrPattern:
		result, ok := scrutineeType.(*ResultType)
		if !ok {
			reportInvalidPattern("Err")
			c.declareVariable(pattern.Identifier, UnknownType, common.DeclarationKindVariable)
			return
		}
		if !coverage.coverTag(resultTagErr) {
			reportUnreachable()
		}
		c.declareVariable(pattern.Identifier, result.ErrType, common.DeclarationKindVariable)

	case *ast.VariantPattern:
		c.checkVariantPattern(pattern, scrutineeType, coverage, alreadyUnreachable)

	case *ast.LiteralPattern:
		c.checkLiteralPattern(pattern, scrutineeType, coverage, alreadyUnreachable)

	case nil:
		c.report(&InvalidASTError{
			Detail: "missing pattern",
		})

	default:
		c.report(&InvalidASTError{
			Detail: "unknown pattern kind",
			Range:  ast.NewRangeFromPositioned(pattern),
		})
	}
}

func (c *Checker) checkVariantPattern(
	pattern *ast.VariantPattern,
	scrutineeType Type,
	coverage *matchCoverage,
	alreadyUnreachable bool,
) {
	bindUnknown := func() {
		if pattern.Binding != nil {
			c.declareVariable(*pattern.Binding, UnknownType, common.DeclarationKindVariable)
		}
	}

	enum, ok := scrutineeType.(*EnumType)
	if !ok {
		if scrutineeType != UnknownType {
			c.report(&InvalidPatternError{
				PatternDescription: "variant",
				ScrutineeType:      scrutineeType,
				Range:              ast.NewRangeFromPositioned(pattern),
			})
		}
		bindUnknown()
		return
	}

	variantName := pattern.Variant.Identifier

	variant, index := enum.VariantByName(variantName)
	if variant == nil {
		c.report(&NotDeclaredMemberError{
			MemberKind: "variant",
			Name:       variantName,
			Candidates: enum.VariantNames(),
			Type:       enum,
			Range:      ast.NewRangeFromPositioned(pattern.Variant),
		})
		bindUnknown()
		return
	}

	if !coverage.coverTag(uint(index)) && !alreadyUnreachable {
		c.reportHint(&UnreachableArmHint{
			Range: ast.NewRangeFromPositioned(pattern),
		})
	}

	if pattern.Binding == nil {
		return
	}

	if variant.PayloadType == nil {
		c.report(&InvalidPatternError{
			PatternDescription: "payload binding",
			ScrutineeType:      enum,
			Range:              ast.NewRangeFromPositioned(*pattern.Binding),
		})
		bindUnknown()
		return
	}

	c.declareVariable(*pattern.Binding, variant.PayloadType, common.DeclarationKindVariable)
}

func (c *Checker) checkLiteralPattern(
	pattern *ast.LiteralPattern,
	scrutineeType Type,
	coverage *matchCoverage,
	alreadyUnreachable bool,
) {
	var literalType Type
	var rendering string

	switch literal := pattern.Expression.(type) {
	case *ast.NumberExpression:
		literalType = NumberType
		rendering = fmt.Sprintf("%g", literal.Value)

	case *ast.StringExpression:
		literalType = TextType
		rendering = fmt.Sprintf("%q", literal.Value)

	case *ast.BoolExpression:
		literalType = BoolType
		rendering = fmt.Sprintf("%t", literal.Value)

	default:
		c.report(&InvalidASTError{
			Detail: "literal pattern without a literal",
			Range:  ast.NewRangeFromPositioned(pattern),
		})
		return
	}

	if scrutineeType == UnknownType {
		return
	}

	if !IsCompatible(literalType, scrutineeType) {
		c.report(&InvalidPatternError{
			PatternDescription: "literal",
			ScrutineeType:      scrutineeType,
			Range:              ast.NewRangeFromPositioned(pattern),
		})
		return
	}

	// the two bool literals together are exhaustive,
	// all other literal coverage is tracked only to detect duplicates
	if literal, ok := pattern.Expression.(*ast.BoolExpression); ok &&
		scrutineeType == BoolType {

		tag := uint(boolTagFalse)
		if literal.Value {
			tag = boolTagTrue
		}
		if !coverage.coverTag(tag) && !alreadyUnreachable {
			c.reportHint(&UnreachableArmHint{
				Range: ast.NewRangeFromPositioned(pattern),
			})
		}
		return
	}

	if !coverage.coverLiteral(rendering) && !alreadyUnreachable {
		c.reportHint(&UnreachableArmHint{
			Range: ast.NewRangeFromPositioned(pattern),
		})
	}
}
