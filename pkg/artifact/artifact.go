// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package artifact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NVIDIA/skugen/pkg/errors"
)

// File permissions of written artifacts.
const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Result describes a written artifact.
type Result struct {
	Path   string `json:"path" yaml:"path"`
	Size   int    `json:"size" yaml:"size"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// Write creates path, including missing parent directories, and writes
// content to it in one pass.
func Write(ctx context.Context, path string, content []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "context cancelled before write", err)
	}
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "artifact path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}

	if err := os.WriteFile(path, content, fileMode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to write %s", path), err)
	}

	sum := sha256.Sum256(content)
	res := &Result{
		Path:   path,
		Size:   len(content),
		SHA256: hex.EncodeToString(sum[:]),
	}

	slog.Info("artifact written",
		"path", res.Path,
		"bytes", res.Size,
		"sha256", res.SHA256)
	return res, nil
}
