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
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffIndent = fileIndent + 2

// 🔍 RenderDiff renders the changed lines between before and after.
// Unchanged lines are omitted; removed lines start with "-", added with "+".
func RenderDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeDiffLines(&sb, "-", d.Text, color.RedString)
		case diffmatchpatch.DiffInsert:
			writeDiffLines(&sb, "+", d.Text, color.GreenString)
		}
	}
	return sb.String()
}

func writeDiffLines(sb *strings.Builder, marker, text string, paint func(string, ...interface{}) string) {
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(strings.Repeat(" ", diffIndent))
		sb.WriteString(paint("%s %s", marker, line))
		sb.WriteString("\n")
	}
}
