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

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/exprfix/pkg/manifest"
	"github.com/walteh/exprfix/pkg/status"
	"github.com/walteh/exprfix/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the root command flags
type rootOpts struct {
	root     string
	manifest string
	only     []string
	diff     bool
	debug    bool
}

// newRootCmd creates the exprfix command. With no flags it runs the
// compiled-in migration against the directory holding the binary.
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "exprfix",
		Short: "Rename Expression to Expr across the query engine sources",
		Long: `exprfix rewrites a fixed list of source files, renaming the Expression
type to Expr with boundary-anchored regex rules. Files are processed one at a
time and only written when their content changes. Missing or unreadable files
are reported and skipped; the run always finishes with a summary.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), cmd.ErrOrStderr(), opts.debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run(cmd.Context(), opts, cmd.OutOrStdout())
			return err
		},
	}

	addRootFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.root, "root", "", "directory the file list is relative to (default: the binary's directory)")
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "override the compiled-in manifest (.yaml or .hcl)")
	cmd.Flags().StringArrayVar(&opts.only, "only", nil, "only process files matching this glob (repeatable)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "show the changed lines of every rewritten file")
}

// setupLogging returns ctx carrying a zerolog logger on w
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger().Level(level)
	return logger.WithContext(ctx)
}

// run loads the manifest, resolves the root and walks every file.
// Per-file failures are part of the summary, not the returned error.
func run(ctx context.Context, opts *rootOpts, console io.Writer) (*status.Summary, error) {
	m, err := loadManifest(ctx, opts.manifest)
	if err != nil {
		return nil, err
	}

	rs, err := m.RuleSet()
	if err != nil {
		return nil, errors.Errorf("building rule set: %w", err)
	}

	root, err := resolveRoot(opts.root)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("manifest", m.Location()).
		Str("root", root).
		Int("rules", rs.Len()).
		Msg("configured")

	w, err := walker.New(walker.Options{
		Root:     root,
		Files:    m.Files,
		RuleSet:  rs,
		Reporter: status.NewReporter(console, opts.diff),
		Only:     opts.only,
		ShowDiff: opts.diff,
	})
	if err != nil {
		return nil, errors.Errorf("creating walker: %w", err)
	}

	return w.Run(ctx), nil
}

func loadManifest(ctx context.Context, path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.Default(ctx)
	}
	m, err := manifest.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading manifest: %w", err)
	}
	return m, nil
}

// resolveRoot returns flag as an absolute path, or the directory of the
// running executable when flag is empty
func resolveRoot(flag string) (string, error) {
	if flag != "" {
		abs, err := filepath.Abs(flag)
		if err != nil {
			return "", errors.Errorf("resolving root: %w", err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Errorf("locating executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Errorf("resolving executable symlinks: %w", err)
	}
	return filepath.Dir(exe), nil
}
