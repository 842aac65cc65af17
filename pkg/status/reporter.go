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
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/exprfix/pkg/rules"
)

// 📢 Reporter prints run progress for operators and mirrors it to zerolog
type Reporter struct {
	console  io.Writer
	showDiff bool
}

// 🏭 NewReporter creates a reporter writing to console
func NewReporter(console io.Writer, showDiff bool) *Reporter {
	return &Reporter{
		console:  console,
		showDiff: showDiff,
	}
}

func (r *Reporter) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style}).WithWriter(r.console)
}

// Banner announces the run
func (r *Reporter) Banner(ctx context.Context, root string, total int) {
	msg := fmt.Sprintf("renaming %s -> %s in %d files under %s", rules.OldIdent, rules.NewIdent, total, root)
	r.printer(pterm.Info, "exprfix").Println(msg)

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Int("files", total).
		Msg("starting migration")
}

// 📝 Report prints the status line of one file
func (r *Reporter) Report(ctx context.Context, res Result) {
	fmt.Fprintln(r.console, FormatResult(res))
	if r.showDiff && res.Diff != "" {
		fmt.Fprint(r.console, res.Diff)
	}

	event := zerolog.Ctx(ctx).Debug()
	if res.Err != nil {
		event = event.Err(res.Err)
	}
	event.
		Str("path", res.Path).
		Str("outcome", res.Outcome.String()).
		Int("replacements", res.Replacements).
		Msg("file processed")
}

// Finish prints the closing summary
func (r *Reporter) Finish(ctx context.Context, s *Summary) {
	if failed := s.Count(OutcomeError); failed > 0 {
		r.printer(pterm.Warning, "warning").Printfln("%d file(s) could not be processed", failed)
	}
	r.printer(pterm.Success, "done").Println(FormatSummary(s))

	zerolog.Ctx(ctx).Debug().
		Int("total", s.Total()).
		Int("modified", s.Modified()).
		Int("unchanged", s.Count(OutcomeUnchanged)).
		Int("missing", s.Count(OutcomeMissing)).
		Int("failed", s.Count(OutcomeError)).
		Msg("migration complete")
}
