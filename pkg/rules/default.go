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

package rules

const (
	// OldIdent is the identifier being retired
	OldIdent = "Expression"
	// NewIdent is its replacement
	NewIdent = "Expr"
)

// None of the replacements below produce the whole token "Expression",
// so a second pass over rewritten text matches nothing.
var defaultRules = []Rule{
	{
		Name:        "import",
		Pattern:     `(?m)^(\s*(?:pub(?:\([\w:]+\))?\s+)?use\s+[\w:]+::)Expression\b`,
		Replacement: "${1}Expr",
	},
	{
		Name:        "ast-path",
		Pattern:     `\bast::Expression\b`,
		Replacement: "ast::Expr",
	},
	{
		Name:        "reference",
		Pattern:     `&('\w+\s+)?(mut\s+)?Expression\b`,
		Replacement: "&${1}${2}Expr",
	},
	{
		Name:        "variant",
		Pattern:     `\bExpression::`,
		Replacement: "Expr::",
	},
	{
		Name:        "option-box",
		Pattern:     `\bOption<Box<Expression>>`,
		Replacement: "Option<Box<Expr>>",
	},
	{
		Name:        "box",
		Pattern:     `\bBox<Expression>`,
		Replacement: "Box<Expr>",
	},
	{
		Name:        "vec",
		Pattern:     `\bVec<Expression>`,
		Replacement: "Vec<Expr>",
	},
	{
		Name:        "option",
		Pattern:     `\bOption<Expression>`,
		Replacement: "Option<Expr>",
	},
	{
		Name:        "result",
		Pattern:     `\bResult<Expression(\s*,)`,
		Replacement: "Result<Expr${1}",
	},
	{
		// matched on its own, not built from the single-token rules' output
		Name:        "pair",
		Pattern:     `\(Expression(\s*,\s*)Expression\)`,
		Replacement: "(Expr${1}Expr)",
	},
	{
		Name:        "return",
		Pattern:     `(->\s*)Expression\b`,
		Replacement: "${1}Expr",
	},
	{
		// path segments like ReturnItem::Expression are not annotations
		Name:        "annotation",
		Pattern:     `(:\s*)Expression\b`,
		Replacement: "${1}Expr",
		NotAfter:    ":",
	},
}

// Default returns the compiled-in Expression -> Expr rule table
func Default() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// 🏭 NewDefault compiles the default rule table
func NewDefault() *RuleSet {
	return MustCompile(defaultRules)
}
