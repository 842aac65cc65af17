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

// Package manifest holds the fixed list of files to migrate and the rule
// table applied to them. The default manifest is compiled into the binary.
package manifest

import (
	"context"
	_ "embed"
	"path/filepath"

	"github.com/walteh/exprfix/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

//go:embed default.yaml
var defaultManifest []byte

// DefaultName is the name the embedded manifest is parsed under
const DefaultName = "default.yaml"

// 📋 Manifest is the static configuration of one migration run
type Manifest struct {
	// Rules override the compiled-in rule table when non-empty
	Rules []rules.Rule `yaml:"rules,omitempty" hcl:"rule,block"`

	// Files are paths relative to the migration root, processed in order
	Files []string `yaml:"files" hcl:"files,optional"`

	location string
}

// 🏭 Default parses the manifest embedded in the binary
func Default(ctx context.Context) (*Manifest, error) {
	m, err := Parse(ctx, DefaultName, defaultManifest)
	if err != nil {
		return nil, errors.Errorf("parsing embedded manifest: %w", err)
	}
	return m, nil
}

// Location returns where the manifest was loaded from
func (m *Manifest) Location() string {
	return m.location
}

// Validate checks that the rule table compiles and that every file entry is
// a non-empty relative path
func (m *Manifest) Validate() error {
	if _, err := m.RuleSet(); err != nil {
		return err
	}
	for i, f := range m.Files {
		if f == "" {
			return errors.Errorf("file %d: path is empty", i)
		}
		if filepath.IsAbs(f) {
			return errors.Errorf("file %d (%s): path must be relative to the root", i, f)
		}
	}
	return nil
}

// RuleSet compiles the manifest rules, falling back to the default table
func (m *Manifest) RuleSet() (*rules.RuleSet, error) {
	if len(m.Rules) == 0 {
		return rules.NewDefault(), nil
	}

	rs, err := rules.Compile(m.Rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}
	return rs, nil
}
