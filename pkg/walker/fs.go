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

package walker

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem is everything the walker needs from disk
type FileSystem interface {
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the content of an existing file
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔧 OSFileSystem resolves every path against a root directory
type OSFileSystem struct {
	root string
}

var _ FileSystem = (*OSFileSystem)(nil)

// 🏭 NewOSFileSystem creates a FileSystem rooted at root
func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: filepath.Clean(root)}
}

// Root returns the directory paths are resolved against
func (f *OSFileSystem) Root() string {
	return f.root
}

func (f *OSFileSystem) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.root, filepath.FromSlash(path))
}

func (f *OSFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	info, err := os.Stat(f.abs(path))
	if err != nil {
		return nil, errors.Errorf("stat: %w", err)
	}
	return info, nil
}

func (f *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	file, err := os.Open(f.abs(path))
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile truncates and rewrites the file in place, so its mode is kept.
// It never creates a file.
func (f *OSFileSystem) WriteFile(ctx context.Context, path string, content []byte) (err error) {
	file, err := os.OpenFile(f.abs(path), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}
