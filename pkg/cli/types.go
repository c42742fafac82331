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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/artifact"
	"github.com/NVIDIA/skugen/pkg/faultdomain"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/render"
	"github.com/NVIDIA/skugen/pkg/serializer"
)

// SkuList is the report emitted by the skus command.
type SkuList struct {
	header.Header `json:",inline" yaml:",inline"`

	Profile string            `json:"profile" yaml:"profile"`
	Skus    []render.SkuEntry `json:"skus" yaml:"skus"`
}

// LocationList is the report emitted by the locations command.
type LocationList struct {
	header.Header `json:",inline" yaml:",inline"`

	Profile   string   `json:"profile" yaml:"profile"`
	Locations []string `json:"locations" yaml:"locations"`
}

// FaultDomainReport is the report emitted by the fault-domains command.
type FaultDomainReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Source             string `json:"source" yaml:"source"`
	faultdomain.Result `json:",inline" yaml:",inline"`
}

// writeReport serializes v to path, or stdout when path is empty.
func writeReport(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			slog.Warn("failed to close output writer", "error", closeErr)
		}
	}()
	return w.Serialize(ctx, v)
}

// writeCode writes generated Go source to path, or stdout when path is empty.
func writeCode(ctx context.Context, path string, src []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if _, err := artifact.Write(ctx, path, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
