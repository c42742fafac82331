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

	"github.com/NVIDIA/skugen/pkg/classifier"
	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/render"
)

func skusCmd() *cli.Command {
	return &cli.Command{
		Name:                  "skus",
		EnableShellCompletion: true,
		Usage:                 "List VM sizes and their accelerated networking support",
		Description: `List every virtual machine resource SKU visible to the subscription together
with whether it supports accelerated networking. Support is taken from the
AcceleratedNetworkingEnabled capability when Azure reports it and inferred
from the documented size families otherwise.

# Examples

  skugen skus --format table
  skugen skus --format code --output pkg/helpers/azure_skus_const.go`,
		Flags: append(inventoryFlags(),
			outputFlag(),
			listFormatFlag(),
			packageFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.GenerateTimeout)
			defer cancel()

			fetcher, profile, err := newFetcher(ctx, cmd)
			if err != nil {
				return err
			}

			records, err := fetcher.FetchResourceSkus(ctx)
			if err != nil {
				return err
			}

			ac := classifier.NewAccelerationClassifier(profile)
			entries := make([]render.SkuEntry, 0, len(records))
			for _, r := range records {
				entries = append(entries, render.SkuEntry{
					Name:                  r.Name,
					AcceleratedNetworking: ac.IsAccelerationEligible(r),
				})
			}

			if wantsCode(cmd) {
				src, err := render.RenderSkus(cmd.String("package"), profile.License, entries)
				if err != nil {
					return err
				}
				return writeCode(ctx, cmd.String("output"), src)
			}

			list := &SkuList{Profile: profile.Name, Skus: entries}
			list.Init(header.KindSkuList, version, runID)
			return writeReport(ctx, cmd, list)
		},
	}
}
