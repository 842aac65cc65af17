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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/exprfix/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a manifest from disk. The format is determined by the file extension:
// - .yaml or .yml for YAML
// - .hcl for HCL
func Load(ctx context.Context, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest file: %w", err)
	}

	m, err := Parse(ctx, path, data)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("manifest", path).
		Int("rules", len(m.Rules)).
		Int("files", len(m.Files)).
		Msg("loaded manifest")

	return m, nil
}

// Parse decodes manifest data, using name to pick the format, and validates it
func Parse(ctx context.Context, name string, data []byte) (*Manifest, error) {
	var (
		m   *Manifest
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		m, err = parseYAML(data)
	case ".hcl":
		m, err = parseHCL(data, name)
	default:
		return nil, errors.Errorf("unsupported manifest extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	m.location = name
	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	return m, nil
}

// parseYAML decodes a manifest from YAML data
func parseYAML(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &m, nil
}

// parseHCL decodes a manifest from HCL data
func parseHCL(data []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"old_ident": cty.StringVal(rules.OldIdent),
			"new_ident": cty.StringVal(rules.NewIdent),
		},
	}

	var m Manifest
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &m)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &m, nil
}
