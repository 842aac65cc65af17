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

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/exprfix/pkg/rules"
)

func TestDefault(t *testing.T) {
	m, err := Default(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultName, m.Location())
	assert.Empty(t, m.Rules, "embedded manifest should defer to the compiled-in rules")
	require.Len(t, m.Files, 24)
	assert.Equal(t, "src/query/parser/ast/expr.rs", m.Files[0])
	assert.Equal(t, "src/cache/parser_cache.rs", m.Files[len(m.Files)-1])

	rs, err := m.RuleSet()
	require.NoError(t, err)
	assert.Equal(t, rules.Default(), rs.Rules())
}

const yamlManifest = `
rules:
  - name: variant
    pattern: '\bExpression::'
    replacement: 'Expr::'
  - name: return
    pattern: '(->\s*)Expression\b'
    replacement: '${1}Expr'
files:
  - src/a.rs
  - src/b.rs
`

const hclManifest = `
files = ["src/a.rs", "src/b.rs"]

rule "variant" {
  pattern     = "\\b${old_ident}::"
  replacement = "${new_ident}::"
}

rule "return" {
  pattern     = "(->\\s*)Expression\\b"
  replacement = "$${1}Expr"
}
`

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		data      string
		wantFiles []string
		wantRules []string
		wantError string
	}{
		{
			name:      "yaml",
			file:      "manifest.yaml",
			data:      yamlManifest,
			wantFiles: []string{"src/a.rs", "src/b.rs"},
			wantRules: []string{"variant", "return"},
		},
		{
			name:      "yml_extension",
			file:      "manifest.yml",
			data:      yamlManifest,
			wantFiles: []string{"src/a.rs", "src/b.rs"},
			wantRules: []string{"variant", "return"},
		},
		{
			name:      "hcl",
			file:      "manifest.hcl",
			data:      hclManifest,
			wantFiles: []string{"src/a.rs", "src/b.rs"},
			wantRules: []string{"variant", "return"},
		},
		{
			name:      "files_only",
			file:      "manifest.yaml",
			data:      "files: [x.rs]\n",
			wantFiles: []string{"x.rs"},
		},
		{
			name:      "unknown_yaml_field",
			file:      "manifest.yaml",
			data:      "files: []\nbackup: true\n",
			wantError: "parsing YAML",
		},
		{
			name:      "invalid_hcl",
			file:      "manifest.hcl",
			data:      "files = [",
			wantError: "parsing HCL",
		},
		{
			name:      "unknown_hcl_attribute",
			file:      "manifest.hcl",
			data:      "files = []\nbackup = true\n",
			wantError: "decoding HCL",
		},
		{
			name:      "bad_rule_pattern",
			file:      "manifest.yaml",
			data:      "rules:\n  - name: broken\n    pattern: '(oops'\nfiles: []\n",
			wantError: "validating manifest",
		},
		{
			name:      "empty_file_entry",
			file:      "manifest.yaml",
			data:      "files:\n  - src/a.rs\n  - \"\"\n",
			wantError: "path is empty",
		},
		{
			name:      "absolute_file_entry",
			file:      "manifest.hcl",
			data:      "files = [\"/etc/passwd\"]\n",
			wantError: "must be relative",
		},
		{
			name:      "unsupported_extension",
			file:      "manifest.toml",
			data:      "",
			wantError: "unsupported manifest extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(context.Background(), tt.file, []byte(tt.data))

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.file, m.Location())
			assert.Equal(t, tt.wantFiles, m.Files)

			names := make([]string, 0, len(m.Rules))
			for _, r := range m.Rules {
				names = append(names, r.Name)
			}
			if len(tt.wantRules) == 0 {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wantRules, names)
			}
		})
	}
}

// 🧪 both formats must produce rules that behave the same
func TestParse_RulesAgree(t *testing.T) {
	ctx := context.Background()
	input := "fn f() -> Expression { Expression::Literal(1) }"
	want := "fn f() -> Expr { Expr::Literal(1) }"

	for name, data := range map[string]string{
		"manifest.yaml": yamlManifest,
		"manifest.hcl":  hclManifest,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(ctx, name, []byte(data))
			require.NoError(t, err)

			rs, err := m.RuleSet()
			require.NoError(t, err)
			assert.Equal(t, want, rs.Transform(input))
		})
	}
}

func TestParse_NotAfter(t *testing.T) {
	ctx := context.Background()
	docs := map[string]string{
		"manifest.yaml": "rules:\n  - name: annotation\n    pattern: '(:\\s*)Expression\\b'\n    replacement: '${1}Expr'\n    not_after: ':'\nfiles: [a.rs]\n",
		"manifest.hcl":  "files = [\"a.rs\"]\n\nrule \"annotation\" {\n  pattern     = \"(:\\\\s*)Expression\\\\b\"\n  replacement = \"$${1}Expr\"\n  not_after   = \":\"\n}\n",
	}

	for name, data := range docs {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(ctx, name, []byte(data))
			require.NoError(t, err)
			require.Len(t, m.Rules, 1)
			assert.Equal(t, ":", m.Rules[0].NotAfter)

			rs, err := m.RuleSet()
			require.NoError(t, err)
			assert.Equal(t, "x: Expr, ReturnItem::Expression", rs.Transform("x: Expression, ReturnItem::Expression"))
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "exprfix.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hclManifest), 0644))

	m, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, m.Location())
	assert.Len(t, m.Rules, 2)

	_, err = Load(ctx, filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest file")
}
