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
	"strings"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/errors"
)

// GenerateChecksums writes a sha256sum-compatible manifest of files into dir.
// Paths are recorded relative to dir when possible.
func GenerateChecksums(ctx context.Context, dir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "context cancelled", err)
	}

	checksums := make([]string, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read %s for checksum", file), err)
		}

		hash := sha256.Sum256(data)
		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = file
		}

		checksums = append(checksums, fmt.Sprintf("%s  %s", hex.EncodeToString(hash[:]), filepath.ToSlash(relPath)))
	}

	checksumPath := ChecksumFilePath(dir)
	content := strings.Join(checksums, "\n") + "\n"

	if err := os.WriteFile(checksumPath, []byte(content), fileMode); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write checksums", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(checksums),
		"path", checksumPath,
	)

	return nil
}

// ChecksumFilePath returns the manifest path for dir.
func ChecksumFilePath(dir string) string {
	return filepath.Join(dir, defaults.ChecksumFileName)
}
