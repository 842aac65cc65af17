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

package status

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func line(symbol, path, label, detail string) string {
	return fmt.Sprintf("%s%s %-*s %-*s %s", strings.Repeat(" ", fileIndent), symbol, nameWidth, path, statusWidth, label, detail)
}

// 🧪 TestFormatResult tests the per-file status line
func TestFormatResult(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "modified",
			result: Result{Path: "src/a.rs", Outcome: OutcomeModified, Replacements: 3},
			want:   line("✓", "src/a.rs", "fixed", "3 replacements"),
		},
		{
			name:   "modified_single",
			result: Result{Path: "src/a.rs", Outcome: OutcomeModified, Replacements: 1},
			want:   line("✓", "src/a.rs", "fixed", "1 replacement"),
		},
		{
			name:   "unchanged",
			result: Result{Path: "src/b.rs", Outcome: OutcomeUnchanged},
			want:   line("-", "src/b.rs", "no change", "no change needed"),
		},
		{
			name:   "missing",
			result: Result{Path: "src/gone.rs", Outcome: OutcomeMissing},
			want:   line("⚠", "src/gone.rs", "skip", "file not found"),
		},
		{
			name:   "error",
			result: Result{Path: "src/locked.rs", Outcome: OutcomeError, Err: fmt.Errorf("permission denied")},
			want:   line("✗", "src/locked.rs", "error", "permission denied"),
		},
		{
			name:   "error_without_cause",
			result: Result{Path: "src/x.rs", Outcome: OutcomeError},
			want:   line("✗", "src/x.rs", "error", "unknown error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.result))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	s := &Summary{}
	s.Add(Result{Outcome: OutcomeModified})
	s.Add(Result{Outcome: OutcomeUnchanged})
	s.Add(Result{Outcome: OutcomeMissing})

	assert.Equal(t, "1 of 3 files fixed (1 unchanged, 1 missing, 0 failed)", FormatSummary(s))
	assert.Equal(t, "0 of 0 files fixed (0 unchanged, 0 missing, 0 failed)", FormatSummary(&Summary{}))
}

func TestRenderDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	pad := strings.Repeat(" ", diffIndent)

	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "identical",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   "",
		},
		{
			name:   "one_line_changed",
			before: "use x::Expression;\nfn f() {}\n",
			after:  "use x::Expr;\nfn f() {}\n",
			want:   pad + "- use x::Expression;\n" + pad + "+ use x::Expr;\n",
		},
		{
			name:   "middle_line_changed",
			before: "a\nb\nc\n",
			after:  "a\nB\nc\n",
			want:   pad + "- b\n" + pad + "+ B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderDiff(tt.before, tt.after))
		})
	}
}
