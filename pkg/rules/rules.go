// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules applies ordered, boundary-anchored regex rewrites to source text.
package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// 📏 Rule is a single pattern/replacement pair
type Rule struct {
	// Name identifies the rule in logs and validation errors
	Name string `yaml:"name" hcl:"name,label"`

	// Pattern is an RE2 expression; it must anchor on token boundaries
	Pattern string `yaml:"pattern" hcl:"pattern"`

	// Replacement is literal text, ${n} expands to capture group n
	Replacement string `yaml:"replacement" hcl:"replacement,optional"`

	// NotAfter lists characters that must not directly precede a match
	NotAfter string `yaml:"not_after,omitempty" hcl:"not_after,optional"`
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// 📦 RuleSet is an immutable, ordered list of compiled rules.
// A match only counts when it does not cut through an identifier.
type RuleSet struct {
	rules []compiledRule
}

// Result contains the outcome of applying a RuleSet to one text
type Result struct {
	// Original is the input text
	Original string

	// Modified is the text after every rule has run
	Modified string

	// Replacements is the number of matches rewritten across all rules
	Replacements int

	// WasModified reports whether Modified differs from Original
	WasModified bool
}

// 🏭 Compile validates and compiles rules into a RuleSet
func Compile(rules []Rule) (*RuleSet, error) {
	seen := make(map[string]struct{}, len(rules))
	compiled := make([]compiledRule, 0, len(rules))

	for i, rule := range rules {
		if rule.Name == "" {
			return nil, errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == "" {
			return nil, errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if _, dup := seen[rule.Name]; dup {
			return nil, errors.Errorf("rule %d (%s): duplicate name", i, rule.Name)
		}
		seen[rule.Name] = struct{}{}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d (%s): compiling pattern: %w", i, rule.Name, err)
		}
		compiled = append(compiled, compiledRule{Rule: rule, re: re})
	}

	return &RuleSet{rules: compiled}, nil
}

// MustCompile is like Compile but panics on error. Only meant for static tables.
func MustCompile(rules []Rule) *RuleSet {
	rs, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// Len returns the number of rules in the set
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the uncompiled rules, in application order
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Rule
	}
	return out
}

// Transform applies every rule in order and returns the rewritten text
func (rs *RuleSet) Transform(text string) string {
	return rs.Apply(text).Modified
}

// 🔄 Apply applies every rule in order and reports what changed.
// Each rule sees the output of the previous one.
func (rs *RuleSet) Apply(text string) *Result {
	result := &Result{Original: text}

	current := text
	for _, rule := range rs.rules {
		var n int
		current, n = rule.apply(current)
		result.Replacements += n
	}

	result.Modified = current
	result.WasModified = current != text
	return result
}

// apply rewrites every accepted match of r in one scan and returns the count
func (r compiledRule) apply(text string) (string, int) {
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var sb strings.Builder
	last, count := 0, 0
	for _, m := range matches {
		if !r.accepts(text, m[0], m[1]) {
			continue
		}
		sb.WriteString(text[last:m[0]])
		sb.Write(r.re.ExpandString(nil, r.Replacement, text, m))
		last = m[1]
		count++
	}
	if count == 0 {
		return text, 0
	}

	sb.WriteString(text[last:])
	return sb.String(), count
}

// accepts reports whether text[start:end] is a whole-token match. An
// identifier rune at either edge of the match must not continue into its
// neighbour, whatever the script.
func (r compiledRule) accepts(text string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if r.NotAfter != "" && strings.ContainsRune(r.NotAfter, prev) {
			return false
		}
		if start < end {
			first, _ := utf8.DecodeRuneInString(text[start:end])
			if isIdentRune(first) && isIdentRune(prev) {
				return false
			}
		}
	}
	if end < len(text) && start < end {
		last, _ := utf8.DecodeLastRuneInString(text[start:end])
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isIdentRune(last) && isIdentRune(next) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
