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
	"github.com/NVIDIA/skugen/pkg/render"
)

func locationsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "locations",
		EnableShellCompletion: true,
		Usage:                 "List Azure regions",
		Description: `List the regions reported by the subscription merged with the sovereign,
canary and DoD regions the profile always carries, lower-cased and sorted.

# Examples

  skugen locations --format json
  skugen locations --format code --output pkg/helpers/azure_locations.go`,
		Flags: append(inventoryFlags(),
			outputFlag(),
			listFormatFlag(),
			packageFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.InventoryLocationsTimeout)
			defer cancel()

			fetcher, profile, err := newFetcher(ctx, cmd)
			if err != nil {
				return err
			}

			regions, err := fetcher.FetchRegions(ctx)
			if err != nil {
				return err
			}

			if wantsCode(cmd) {
				src, err := render.RenderLocations(cmd.String("package"), profile.License, regions)
				if err != nil {
					return err
				}
				return writeCode(ctx, cmd.String("output"), src)
			}

			list := &LocationList{Profile: profile.Name, Locations: regions}
			list.Init(header.KindLocationList, version, runID)
			return writeReport(ctx, cmd, list)
		},
	}
}
