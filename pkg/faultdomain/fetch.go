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

package faultdomain

import (
	"context"

	"github.com/NVIDIA/skugen/pkg/errors"
)

// DocumentReader fetches a remote document.
type DocumentReader interface {
	ReadWithContext(ctx context.Context, url string) ([]byte, error)
}

// Fetch downloads the fault-domain document at url as text.
func Fetch(ctx context.Context, reader DocumentReader, url string) (string, error) {
	data, err := reader.ReadWithContext(ctx, url)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to fetch fault-domain document", err,
			map[string]any{"url": url})
	}
	return string(data), nil
}
