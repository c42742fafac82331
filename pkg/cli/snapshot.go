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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/inventory"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture the raw Azure inventory",
		Description: `Capture every location, the VM sizes each location reports, the locations
whose listing failed and all virtual machine resource SKUs. The snapshot can be
replayed with --snapshot on generate, skus and locations to reproduce a run
offline.

# Examples

  skugen snapshot --output inventory.yaml
  skugen generate --snapshot inventory.yaml`,
		Flags: append(sourceFlags(),
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.GenerateTimeout)
			defer cancel()

			client, err := newInventoryClient(ctx, cmd)
			if err != nil {
				return err
			}

			snap, err := inventory.Capture(ctx, client,
				header.WithMetadata("version", version),
				header.WithMetadata("runId", runID),
			)
			if err != nil {
				return err
			}
			return writeReport(ctx, cmd, snap)
		},
	}
}
