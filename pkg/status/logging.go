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

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 60 // Base width for the path
	statusWidth = 10 // Width for status text
)

// Label returns the short operator-facing word for an outcome
func (o Outcome) Label() string {
	switch o {
	case OutcomeModified:
		return "fixed"
	case OutcomeUnchanged:
		return "no change"
	case OutcomeMissing:
		return "skip"
	case OutcomeError:
		return "error"
	default:
		return "?"
	}
}

// detail is the trailing explanation on a status line
func (r Result) detail() string {
	switch r.Outcome {
	case OutcomeModified:
		if r.Replacements == 1 {
			return "1 replacement"
		}
		return fmt.Sprintf("%d replacements", r.Replacements)
	case OutcomeUnchanged:
		return "no change needed"
	case OutcomeMissing:
		return "file not found"
	case OutcomeError:
		if r.Err != nil {
			return r.Err.Error()
		}
		return "unknown error"
	default:
		return ""
	}
}

// 🎯 FormatResult formats one file result for display
func FormatResult(r Result) string {
	var prefix string
	switch r.Outcome {
	case OutcomeModified:
		prefix = color.GreenString("✓")
	case OutcomeMissing:
		prefix = color.YellowString("⚠")
	case OutcomeError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, r.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, r.Outcome.Label())

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		r.detail(),
	)
}

// FormatSummary formats the closing tally of a run
func FormatSummary(s *Summary) string {
	return fmt.Sprintf("%d of %d files fixed (%d unchanged, %d missing, %d failed)",
		s.Modified(),
		s.Total(),
		s.Count(OutcomeUnchanged),
		s.Count(OutcomeMissing),
		s.Count(OutcomeError),
	)
}
