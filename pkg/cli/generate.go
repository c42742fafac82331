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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/faultdomain"
	"github.com/NVIDIA/skugen/pkg/generator"
	"github.com/NVIDIA/skugen/pkg/serializer"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the Azure constants Go file",
		Description: `Fetch the Azure inventory, classify every VM size and write the constants file:
  - GetAzureLocations: sorted regions followed by the fixed sovereign cloud tail
  - allowedValues functions, one per deployment role of the profile
  - GetSizeMap: storage account type per size
  - AcceleratedNetworkingSkus (hardened profile only)
  - GetFaultDomainCountExpr (with --fault-domains)

A per-region listing failure is logged and the region is skipped. Any other
inventory failure, or a generated file the Go formatter rejects, aborts the
run without touching the output file.

# Examples

Regenerate with the az CLI:
  skugen generate --output pkg/helpers/azureconst.go

Use the Azure SDK and include fault domains:
  skugen generate --source azure --subscription $AZURE_SUBSCRIPTION_ID --fault-domains

Replay a captured snapshot offline:
  skugen generate --snapshot inventory.yaml --output /tmp/azureconst.go`,
		Flags: append(inventoryFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the generated Go file",
				Value:   defaults.OutputPath,
			},
			packageFlag(),
			&cli.BoolFlag{
				Name:  "fault-domains",
				Usage: "Embed GetFaultDomainCountExpr synthesized from the published fault-domain table",
			},
			faultDomainURLFlag(),
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Write a checksums.txt manifest next to the generated file",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write the run report to this file (default: stdout)",
			},
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			profile, err := parseProfile(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.GenerateTimeout)
			defer cancel()

			client, err := newInventoryClient(ctx, cmd)
			if err != nil {
				return err
			}

			var fd *faultdomain.Result
			if cmd.Bool("fault-domains") {
				fdCtx, fdCancel := context.WithTimeout(ctx, defaults.FaultDomainTimeout)
				fd, err = synthesizeFaultDomains(fdCtx, cmd.String("fault-domain-url"))
				fdCancel()
				if err != nil {
					return err
				}
			}

			report := serializer.NewFileWriterOrStdout(outFormat, cmd.String("report"))
			defer func() {
				if closeErr := report.Close(); closeErr != nil {
					slog.Warn("failed to close report writer", "error", closeErr)
				}
			}()

			g := &generator.Generator{
				Version:        version,
				RunID:          runID,
				Profile:        profile,
				Client:         client,
				FetcherOptions: fetcherOptions(cmd),
				Package:        cmd.String("package"),
				OutputPath:     cmd.String("output"),
				FaultDomains:   fd,
				Checksums:      cmd.Bool("checksums"),
				Serializer:     report,
			}

			if err := g.Generate(ctx); err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			return nil
		},
	}
}
