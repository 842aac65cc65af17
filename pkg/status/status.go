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

// 📊 Outcome is the terminal state of one file in a run
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeModified          // Content changed and was written back
	OutcomeUnchanged         // Rules produced identical content, nothing written
	OutcomeMissing           // Path does not exist
	OutcomeError             // Read, decode or write failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeModified:
		return "modified"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeMissing:
		return "missing"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 Result is the outcome of processing a single file
type Result struct {
	Path         string  // Path as listed in the manifest
	Outcome      Outcome // Terminal state
	Replacements int     // Matches rewritten, zero unless modified
	Err          error   // Set when Outcome is OutcomeError
	Diff         string  // Rendered line diff, only when requested
}

// 📈 Summary collects the results of a run, in processing order
type Summary struct {
	Results []Result
}

// Add records a result
func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)
}

// Total is the number of files processed
func (s *Summary) Total() int {
	return len(s.Results)
}

// Count returns how many results ended in o
func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Modified returns how many files were rewritten
func (s *Summary) Modified() int {
	return s.Count(OutcomeModified)
}

// Failed returns the results that ended in an error
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Outcome == OutcomeError {
			failed = append(failed, r)
		}
	}
	return failed
}
