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

// Package walker applies a rule set to a fixed list of files, one at a time.
//
// Each file goes through locate, read, transform, compare, then write or skip.
// A failure on one file is recorded in its result and the walk moves on.
package walker

import (
	"context"
	"io"
	"io/fs"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/exprfix/pkg/rules"
	"github.com/walteh/exprfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives progress as the walk runs
type Reporter interface {
	Banner(ctx context.Context, root string, total int)
	Report(ctx context.Context, res status.Result)
	Finish(ctx context.Context, s *status.Summary)
}

// 🔧 Options configures a Walker
type Options struct {
	// Root is the directory relative paths resolve against
	Root string
	// Files is the ordered path list
	Files []string
	// RuleSet is applied to every file
	RuleSet *rules.RuleSet
	// FS defaults to the OS filesystem rooted at Root
	FS FileSystem
	// Reporter defaults to one that discards output
	Reporter Reporter
	// Only, when set, keeps files matching at least one doublestar pattern
	Only []string
	// ShowDiff renders a line diff for every rewritten file
	ShowDiff bool
}

// 🚶 Walker runs a rule set over a list of files
type Walker struct {
	root     string
	files    []string
	rules    *rules.RuleSet
	fs       FileSystem
	reporter Reporter
	only     []string
	showDiff bool
}

// 🏭 New creates a walker with the given options
func New(opts Options) (*Walker, error) {
	if opts.RuleSet == nil {
		return nil, errors.Errorf("rule set is required")
	}
	if opts.FS == nil {
		if opts.Root == "" {
			return nil, errors.Errorf("root is required without a filesystem")
		}
		opts.FS = NewOSFileSystem(opts.Root)
	}
	if opts.Reporter == nil {
		opts.Reporter = status.NewReporter(io.Discard, false)
	}
	for _, pattern := range opts.Only {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid filter pattern %q", pattern)
		}
	}

	return &Walker{
		root:     opts.Root,
		files:    append([]string(nil), opts.Files...),
		rules:    opts.RuleSet,
		fs:       opts.FS,
		reporter: opts.Reporter,
		only:     opts.Only,
		showDiff: opts.ShowDiff,
	}, nil
}

// Files returns the paths a Run will process, in order
func (w *Walker) Files(ctx context.Context) []string {
	if len(w.only) == 0 {
		out := make([]string, len(w.files))
		copy(out, w.files)
		return out
	}

	logger := zerolog.Ctx(ctx)
	selected := make([]string, 0, len(w.files))
	for _, path := range w.files {
		if w.selected(path) {
			selected = append(selected, path)
			continue
		}
		logger.Debug().Str("path", path).Strs("only", w.only).Msg("filtered out")
	}
	return selected
}

func (w *Walker) selected(path string) bool {
	for _, pattern := range w.only {
		// patterns were validated in New, so Match cannot fail
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// 🏃 Run processes every file in order and reports as it goes.
// It never stops early; per-file failures end up in the summary.
func (w *Walker) Run(ctx context.Context) *status.Summary {
	files := w.Files(ctx)
	w.reporter.Banner(ctx, w.root, len(files))

	summary := &status.Summary{}
	for _, path := range files {
		res := w.ProcessFile(ctx, path)
		summary.Add(res)
		w.reporter.Report(ctx, res)
	}

	w.reporter.Finish(ctx, summary)
	return summary
}

// 📄 ProcessFile locates, reads, transforms and conditionally rewrites one file
func (w *Walker) ProcessFile(ctx context.Context, path string) status.Result {
	res := status.Result{Path: path}
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	if _, err := w.fs.Stat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Outcome = status.OutcomeMissing
			return res
		}
		return failed(res, errors.Errorf("checking %s: %w", path, err))
	}

	content, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return failed(res, errors.Errorf("reading %s: %w", path, err))
	}
	if !utf8.Valid(content) {
		return failed(res, errors.Errorf("reading %s: content is not valid UTF-8", path))
	}

	original := string(content)
	applied := w.rules.Apply(original)
	if !applied.WasModified {
		logger.Debug().Int("matches", applied.Replacements).Msg("no change needed")
		res.Outcome = status.OutcomeUnchanged
		return res
	}

	if err := w.fs.WriteFile(ctx, path, []byte(applied.Modified)); err != nil {
		return failed(res, errors.Errorf("writing %s: %w", path, err))
	}

	res.Outcome = status.OutcomeModified
	res.Replacements = applied.Replacements
	if w.showDiff {
		res.Diff = status.RenderDiff(original, applied.Modified)
	}
	return res
}

func failed(res status.Result, err error) status.Result {
	res.Outcome = status.OutcomeError
	res.Err = err
	return res
}
